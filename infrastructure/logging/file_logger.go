package logging

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// FileLogger writes timestamped entries to the client log file. On open it
// drops the log entirely once it has grown past maxEntries lines, so the
// file never grows without bound across runs.
type FileLogger struct {
	inner *logrus.Logger
	file  *os.File
}

func NewFileLogger(path string, maxEntries int) (*FileLogger, error) {
	if err := truncateIfOversized(path, maxEntries); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	inner := logrus.New()
	inner.SetOutput(file)
	inner.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &FileLogger{
		inner: inner,
		file:  file,
	}, nil
}

func (l *FileLogger) Printf(format string, v ...any) {
	l.inner.Infof(format, v...)
}

func (l *FileLogger) Close() error {
	return l.file.Close()
}

func truncateIfOversized(path string, maxEntries int) error {
	if maxEntries <= 0 {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("inspect log file %s: %w", path, err)
	}

	if bytes.Count(raw, []byte{'\n'}) > maxEntries {
		if err := os.Truncate(path, 0); err != nil {
			return fmt.Errorf("reset log file %s: %w", path, err)
		}
	}
	return nil
}
