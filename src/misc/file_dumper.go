package misc

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// FileDumper writes line-oriented text files, creating parent directories
// on demand.
type FileDumper struct {
	path string
}

func NewFileDumper(path string) *FileDumper {
	return &FileDumper{path: path}
}

func (fd *FileDumper) Path() string {
	return fd.path
}

// WriteLines replaces the target file with the given lines, each terminated
// by a newline.
func (fd *FileDumper) WriteLines(lines []string) error {
	dir := filepath.Dir(fd.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "mkdir %s", dir)
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if err := os.WriteFile(fd.path, []byte(sb.String()), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", fd.path)
	}
	return nil
}
