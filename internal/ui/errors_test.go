package ui

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/willibrandon/smartedit/internal/document"
)

func TestFormatFileError(t *testing.T) {
	tests := []struct {
		name string
		op   string
		path string
		err  error
		want string
	}{
		{
			name: "empty path",
			op:   "Save",
			err:  document.ErrEmptyPath,
			want: "Save failed: enter a file name",
		},
		{
			name: "directory",
			op:   "Open",
			path: "/tmp/notes",
			err:  fmt.Errorf("open /tmp/notes: %w", document.ErrIsDirectory),
			want: "Open failed: notes is a directory, choose a file",
		},
		{
			name: "missing",
			op:   "Open",
			path: "/tmp/missing.txt",
			err:  fmt.Errorf("read: %w", fs.ErrNotExist),
			want: "Open failed: missing.txt does not exist (check the path)",
		},
		{
			name: "permission",
			op:   "Save",
			path: "/etc/passwd",
			err:  &fs.PathError{Op: "open", Path: "/etc/passwd", Err: fs.ErrPermission},
			want: "Save failed: permission denied for passwd (check file permissions)",
		},
		{
			name: "other",
			op:   "Save",
			path: "a.txt",
			err:  errors.New("boom"),
			want: "Save failed: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFileError(tt.op, tt.path, tt.err))
		})
	}
}
