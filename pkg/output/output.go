// Package output writes rendered documents to their destination: a local
// file or an S3 object. Every failure is an IOFailure error that names the
// destination and wraps the cause.
package output

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/topus-dev/topus/internal/errors"
)

// DefaultFileMode is the mode of files created by FileSink.
const DefaultFileMode os.FileMode = 0o644

// ErrIOFailure is matched (errors.Is) by every error a Sink returns.
var ErrIOFailure error = errors.ErrIOFailure

// Sink writes content to a destination.
type Sink interface {
	Write(ctx context.Context, dest string, content []byte) error
}

// Observer is notified after every write attempt.
type Observer interface {
	ObserveWrite(sink string, bytes int, err error)
}

// Options configures Resolve.
type Options struct {
	// FileMode is the mode of created files (default: DefaultFileMode).
	FileMode os.FileMode

	// S3Client is required for s3:// destinations.
	S3Client PutObjectAPI

	// S3Prefix is prepended to object keys.
	S3Prefix string

	// Logger receives one line per successful write.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Observer, if set, is notified of every write.
	Observer Observer
}

// Resolve picks the sink for dest. "s3://bucket/key" selects an S3Sink,
// anything else a FileSink. It returns the sink together with the
// destination to pass to its Write method.
func Resolve(dest string, opts Options) (Sink, string, error) {
	if dest == "" {
		return nil, "", errors.New("T102").WithDetail("destination is empty")
	}

	var (
		sink Sink
		name string
	)
	if strings.HasPrefix(dest, "s3://") {
		bucket, key, err := ParseS3URL(dest)
		if err != nil {
			return nil, "", err
		}
		if opts.S3Client == nil {
			return nil, "", errors.New("T102").WithPath(dest).
				WithDetail("no S3 client configured").
				WithSuggestion(`Set "s3" in topus.json`)
		}
		s := NewS3Sink(opts.S3Client, bucket, opts.S3Prefix)
		s.Logger = opts.Logger
		sink, name, dest = s, "s3", key
	} else {
		sink, name = &FileSink{Mode: opts.FileMode, Logger: opts.Logger}, "file"
	}

	if opts.Observer != nil {
		sink = &observedSink{Sink: sink, name: name, observer: opts.Observer}
	}
	return sink, dest, nil
}

// Write resolves dest and writes content to it.
func Write(ctx context.Context, dest string, content []byte, opts Options) error {
	sink, target, err := Resolve(dest, opts)
	if err != nil {
		return err
	}
	return sink.Write(ctx, target, content)
}

// ParseS3URL splits "s3://bucket/key" into bucket and key.
func ParseS3URL(dest string) (bucket, key string, err error) {
	u, perr := url.Parse(dest)
	if perr != nil {
		return "", "", errors.New("T102").WithPath(dest).Wrap(perr)
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if u.Scheme != "s3" || bucket == "" || key == "" {
		return "", "", errors.New("T102").WithPath(dest).
			WithDetail("expected s3://bucket/key")
	}
	return bucket, key, nil
}

type observedSink struct {
	Sink
	name     string
	observer Observer
}

func (s *observedSink) Write(ctx context.Context, dest string, content []byte) error {
	err := s.Sink.Write(ctx, dest, content)
	s.observer.ObserveWrite(s.name, len(content), err)
	return err
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.Default()
}
