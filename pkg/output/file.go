package output

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/topus-dev/topus/internal/errors"
)

// FileSink writes to the local filesystem, creating parent directories.
type FileSink struct {
	// Mode is the mode of created files (default: DefaultFileMode).
	Mode os.FileMode

	// Logger receives one line per successful write.
	Logger *slog.Logger
}

// Write creates or truncates path and writes content to it.
func (s *FileSink) Write(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return errors.New("T100").WithPath(path).Wrap(err)
	}

	mode := s.Mode
	if mode == 0 {
		mode = DefaultFileMode
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.New("T100").WithPath(path).Wrap(err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return errors.New("T100").WithPath(path).Wrap(err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return errors.New("T101").WithPath(path).Wrap(err)
	}
	if err := f.Close(); err != nil {
		return errors.New("T101").WithPath(path).Wrap(err)
	}

	loggerOrDefault(s.Logger).Info("wrote output", "path", path, "bytes", len(content))
	return nil
}
