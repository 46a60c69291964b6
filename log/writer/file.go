package writer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// RotateConfig describes where log files go and how they rotate
type RotateConfig struct {
	Mode             RotateMode
	Filepath         string
	Filename         string
	FileExt          string
	TimeRotateConfig TimeRotateConfig
	SizeRotateConfig SizeRotateConfig
}

// TimeRotateConfig holds durations in hours
type TimeRotateConfig struct {
	MaxAge       int
	RotationTime int
}

// SizeRotateConfig holds MaxSize in megabytes and MaxAge in days
type SizeRotateConfig struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// File returns a rotating file writer for the configured mode
func File(config RotateConfig) (io.Writer, error) {
	switch config.Mode {
	case RotateModeTime:
		return timeRotateWriter(config)
	case RotateModeSize:
		return sizeRotateWriter(config)
	default:
		return nil, fmt.Errorf("unsupported rotate mode: %v", config.Mode)
	}
}

func (c *RotateConfig) fileFullPath() string {
	return c.fileFullPathWithFormat("")
}

// fileFullPathWithFormat yields <path>/<name>[.<format>].<ext>
func (c *RotateConfig) fileFullPathWithFormat(format string) string {
	var b strings.Builder
	b.Grow(len(c.Filename) + len(format) + len(c.FileExt) + 2)

	b.WriteString(c.Filename)
	if format != "" {
		b.WriteByte('.')
		b.WriteString(format)
	}
	b.WriteByte('.')
	b.WriteString(c.FileExt)

	return filepath.Join(c.Filepath, b.String())
}
