package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/topus-dev/topus/pkg/document"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "topus.json")
	if err := os.WriteFile(path, []byte(`{"log": {"level": "error"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuildDefaultDocument(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)
	dest := filepath.Join(dir, "out", "index.html")

	stdout, _, err := execute(t, "build", "--config", cfg, "-o", dest)
	if err != nil {
		t.Fatalf("build error = %v", err)
	}
	if !strings.Contains(stdout, "successfully wrote to "+dest) {
		t.Errorf("stdout = %q", stdout)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != document.Default().String() {
		t.Errorf("output = %q", data)
	}
}

func TestBuildDefaultDestination(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)

	if _, _, err := execute(t, "build", "--config", cfg, "--title", "Soon"); err != nil {
		t.Fatalf("build error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "dist", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<title>Soon</title>") {
		t.Errorf("output = %q", data)
	}
}

func TestBuildPage(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)
	pagePath := filepath.Join(dir, "page.yaml")
	if err := os.WriteFile(pagePath, []byte("bare: true\nbody:\n  - name: p\n    children:\n      - text: hi\n"), 0644); err != nil {
		t.Fatal(err)
	}
	dest := filepath.Join(dir, "p.html")

	if _, _, err := execute(t, "build", pagePath, "--config", cfg, "-o", dest); err != nil {
		t.Fatalf("build error = %v", err)
	}
	data, _ := os.ReadFile(dest)
	if string(data) != "<p>hi</p>" {
		t.Errorf("output = %q", data)
	}
}

func TestBuildPageError(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)
	pagePath := filepath.Join(dir, "page.yaml")
	if err := os.WriteFile(pagePath, []byte("footer: x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := execute(t, "build", pagePath, "--config", cfg, "-o", filepath.Join(dir, "x.html"))
	if err == nil || !strings.Contains(err.Error(), "T201") {
		t.Errorf("build error = %v, want T201", err)
	}
}

func TestBuildInvalidLogLevel(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)

	_, _, err := execute(t, "build", "--config", cfg, "--log-level", "loud", "-o", filepath.Join(dir, "x.html"))
	if err == nil || !strings.Contains(err.Error(), "T123") {
		t.Errorf("build error = %v, want T123", err)
	}
}

func TestDefine(t *testing.T) {
	stdout, _, err := execute(t, "define", "my-custom")
	if err != nil {
		t.Fatal(err)
	}
	want := "<script>class MyCustom extends HTMLElement { constructor() { super(); } }\ncustomElements.define('my-custom', MyCustom);</script>\n"
	if stdout != want {
		t.Errorf("define = %q, want %q", stdout, want)
	}

	stdout, _, err = execute(t, "define", "pop-up-info", "--raw")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "class PopUpInfo extends HTMLElement") {
		t.Errorf("define --raw = %q", stdout)
	}

	if _, _, err := execute(t, "define", "nodash"); err == nil {
		t.Error("define should reject names without a dash")
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "dev\n" {
		t.Errorf("version --short = %q", stdout)
	}

	stdout, _, err = execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "Version:    dev") {
		t.Errorf("version = %q", stdout)
	}
}

func TestServeRequiresPage(t *testing.T) {
	if _, _, err := execute(t, "serve"); err == nil {
		t.Error("serve without a page should fail")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := map[int64]string{
		0:       "0 B",
		512:     "512 B",
		2048:    "2.0 KB",
		5 << 20: "5.0 MB",
	}
	for in, want := range tests {
		if got := formatBytes(in); got != want {
			t.Errorf("formatBytes(%d) = %q, want %q", in, got, want)
		}
	}
}
