package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/topus-dev/topus/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "topus.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutputDir is the default build output directory.
	DefaultOutputDir = "dist"

	// DefaultOutputFile is the default name of the rendered document.
	DefaultOutputFile = "index.html"

	// DefaultFileMode is the default mode of written files, in octal.
	DefaultFileMode = "0644"

	// DefaultPollInterval is how often the preview server checks the page
	// file for changes.
	DefaultPollInterval = "500ms"

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "topus"
)

// Config represents the complete topus.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Output controls where build writes the document.
	Output OutputConfig `json:"output,omitempty"`

	// Preview contains preview server configuration.
	Preview PreviewConfig `json:"preview,omitempty"`

	// S3 configures uploads to s3:// destinations.
	S3 S3Config `json:"s3,omitempty"`

	// Log configures the process logger.
	Log LogConfig `json:"log,omitempty"`

	// Metrics configures Prometheus collectors.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// OutputConfig contains build output settings.
type OutputConfig struct {
	// Dir is the output directory, relative to topus.json.
	Dir string `json:"dir,omitempty"`

	// File is the document file name inside Dir.
	File string `json:"file,omitempty"`

	// Mode is the octal file mode of written files (e.g., "0644").
	Mode string `json:"mode,omitempty"`
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// Reload injects the live reload script into served pages.
	Reload *bool `json:"reload,omitempty"`

	// PollInterval is the page file polling interval (e.g., "500ms").
	PollInterval string `json:"pollInterval,omitempty"`
}

// S3Config contains S3 upload settings.
type S3Config struct {
	// Bucket is the default bucket, used when a destination is a bare key.
	Bucket string `json:"bucket,omitempty"`

	// Region is the AWS region.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the service endpoint (MinIO, localstack).
	Endpoint string `json:"endpoint,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// PathStyle enables path-style bucket addressing.
	PathStyle bool `json:"pathStyle,omitempty"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	reload := true
	return &Config{
		Output: OutputConfig{
			Dir:  DefaultOutputDir,
			File: DefaultOutputFile,
			Mode: DefaultFileMode,
		},
		Preview: PreviewConfig{
			Host:         DefaultHost,
			Port:         DefaultPort,
			Reload:       &reload,
			PollInterval: DefaultPollInterval,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for topus.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("T141").WithPath(path).
				WithDetail("No topus.json found in " + filepath.Dir(path)).
				WithSuggestion("Create topus.json or run without --config to use defaults")
		}
		return nil, errors.New("T120").WithPath(path).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("T120").WithPath(path).
			WithDetail("Failed to parse topus.json: " + err.Error()).
			WithSuggestion("Check that topus.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("T120").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("T120").WithPath(path).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Output.File == "" {
		c.Output.File = DefaultOutputFile
	}
	if c.Output.Mode == "" {
		c.Output.Mode = DefaultFileMode
	}

	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Preview.Reload == nil {
		reload := true
		c.Preview.Reload = &reload
	}
	if c.Preview.PollInterval == "" {
		c.Preview.PollInterval = DefaultPollInterval
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return errors.New("T121").WithPath(c.configPath).
			WithDetail("Port must be between 0 and 65535")
	}

	if _, err := c.PollDuration(); err != nil {
		return err
	}

	if _, err := c.FileMode(); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("T123").WithPath(c.configPath).
			WithDetailf("unknown level %q", c.Log.Level).
			WithSuggestion("Use one of debug, info, warn, error")
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("T120").WithPath(c.configPath).
			WithDetailf("unknown log format %q", c.Log.Format).
			WithSuggestion(`Use "text" or "json"`)
	}

	return nil
}

// PreviewAddress returns the address string for the preview server.
func (c *Config) PreviewAddress() string {
	return c.Preview.Host + ":" + strconv.Itoa(c.Preview.Port)
}

// PreviewURL returns the full URL for the preview server.
func (c *Config) PreviewURL() string {
	return "http://" + c.PreviewAddress()
}

// ReloadEnabled reports whether served pages get the live reload script.
func (c *Config) ReloadEnabled() bool {
	return c.Preview.Reload == nil || *c.Preview.Reload
}

// PollDuration parses Preview.PollInterval.
func (c *Config) PollDuration() (time.Duration, error) {
	s := c.Preview.PollInterval
	if s == "" {
		s = DefaultPollInterval
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.New("T122").WithPath(c.configPath).
			WithDetailf("preview.pollInterval %q", s).Wrap(err)
	}
	if d <= 0 {
		return 0, errors.New("T122").WithPath(c.configPath).
			WithDetailf("preview.pollInterval must be positive, got %q", s)
	}
	return d, nil
}

// FileMode parses Output.Mode as an octal file mode.
func (c *Config) FileMode() (os.FileMode, error) {
	s := c.Output.Mode
	if s == "" {
		s = DefaultFileMode
	}
	mode, err := strconv.ParseUint(s, 8, 32)
	if err != nil || mode > 0o777 {
		return 0, errors.New("T120").WithPath(c.configPath).
			WithDetailf("output.mode %q is not an octal permission", s)
	}
	return os.FileMode(mode), nil
}

// OutputPath returns the path of the rendered document.
func (c *Config) OutputPath() string {
	dir := c.Output.Dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.Dir(), dir)
	}
	return filepath.Join(dir, c.Output.File)
}

// Destination resolves a user supplied destination. An empty dest means
// OutputPath. With an S3 bucket configured, "s3:key" is shorthand for
// "s3://bucket/key".
func (c *Config) Destination(dest string) string {
	if dest == "" {
		return c.OutputPath()
	}
	if key, ok := strings.CutPrefix(dest, "s3:"); ok && !strings.HasPrefix(key, "//") && c.S3.Bucket != "" {
		return "s3://" + c.S3.Bucket + "/" + strings.TrimPrefix(key, "/")
	}
	return dest
}

// UsesS3 reports whether an S3 client should be created.
func (c *Config) UsesS3() bool {
	return c.S3.Bucket != "" || c.S3.Region != "" || c.S3.Endpoint != ""
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing topus.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("T141").
				WithDetail("No topus.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads topus.json from the working directory or one of
// its parents. Without one, it returns the defaults.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return New(), nil
	}

	return Load(root)
}
