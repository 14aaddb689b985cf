// Package document reads and writes plain-text files for the editor.
package document

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtension is appended to saved files whose name has no extension.
const DefaultExtension = ".txt"

var (
	// ErrEmptyPath is returned when no file name was given.
	ErrEmptyPath = errors.New("no file name given")
	// ErrIsDirectory is returned when the path names a directory.
	ErrIsDirectory = errors.New("path is a directory")
)

// Document is a file loaded from disk.
type Document struct {
	Path string // absolute path
	Name string // base name, for titles
	Text string
	Size int64 // bytes on disk
}

// Open reads a text file. Line endings are normalized to "\n" and every
// line, including the last one, is terminated by "\n".
func Open(path string) (*Document, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrEmptyPath
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("failed to open %s: %w", path, ErrIsDirectory)
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	sb.Grow(int(info.Size()))

	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	return &Document{
		Path: abs,
		Name: filepath.Base(abs),
		Text: sb.String(),
		Size: info.Size(),
	}, nil
}

// ResolveSavePath returns the path a save would write to: absolute, with
// DefaultExtension added when the name has none.
func ResolveSavePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", ErrEmptyPath
	}
	if filepath.Ext(path) == "" {
		path += DefaultExtension
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Save writes text to path through a temporary file and rename, so a failed
// write never truncates the previous contents. It returns the resolved path
// and the number of bytes written.
func Save(path, text string) (string, int64, error) {
	abs, err := ResolveSavePath(path)
	if err != nil {
		return "", 0, err
	}

	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return "", 0, fmt.Errorf("failed to save %s: %w", abs, ErrIsDirectory)
	}

	dir := filepath.Dir(abs)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(abs)+".*.tmp")
	if err != nil {
		return "", 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	n, err := tmp.WriteString(text)
	if err != nil {
		tmp.Close()
		return "", 0, fmt.Errorf("failed to write %s: %w", abs, err)
	}
	if err := tmp.Close(); err != nil {
		return "", 0, fmt.Errorf("failed to write %s: %w", abs, err)
	}

	if info, err := os.Stat(abs); err == nil {
		_ = os.Chmod(tmpName, info.Mode().Perm())
	} else {
		_ = os.Chmod(tmpName, 0644)
	}

	if err := os.Rename(tmpName, abs); err != nil {
		return "", 0, fmt.Errorf("failed to save %s: %w", abs, err)
	}

	return abs, int64(n), nil
}
