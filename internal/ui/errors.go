package ui

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/willibrandon/smartedit/internal/document"
)

// FormatFileError turns a document I/O error into a one-line status message
// with a hint the user can act on.
func FormatFileError(op, path string, err error) string {
	name := filepath.Base(path)
	if path == "" {
		name = "file"
	}

	switch {
	case errors.Is(err, document.ErrEmptyPath):
		return op + " failed: enter a file name"
	case errors.Is(err, document.ErrIsDirectory):
		return op + " failed: " + name + " is a directory, choose a file"
	case errors.Is(err, fs.ErrNotExist):
		return op + " failed: " + name + " does not exist (check the path)"
	case errors.Is(err, fs.ErrPermission):
		return op + " failed: permission denied for " + name + " (check file permissions)"
	}

	msg := err.Error()
	if strings.Contains(msg, "no space left") {
		return op + " failed: disk full"
	}
	if strings.Contains(msg, "read-only file system") {
		return op + " failed: " + name + " is on a read-only file system"
	}
	return op + " failed: " + msg
}
