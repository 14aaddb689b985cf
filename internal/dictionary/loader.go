package dictionary

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// VocabularyFile is the YAML layout of a vocabulary pack.
//
//	version: 1
//	name: go
//	words:
//	  - func
//	  - defer
type VocabularyFile struct {
	Version int      `yaml:"version"`
	Name    string   `yaml:"name"`
	Words   []string `yaml:"words"`
}

// ParseVocabulary decodes a vocabulary pack. Blank entries are dropped and
// surrounding whitespace is trimmed; interior spaces are kept so multi-word
// snippets survive.
func ParseVocabulary(data []byte) (*VocabularyFile, error) {
	var file VocabularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary: %w", err)
	}
	if file.Version > 1 {
		return nil, fmt.Errorf("unsupported vocabulary version %d", file.Version)
	}

	words := file.Words[:0]
	for _, w := range file.Words {
		w = strings.TrimSpace(w)
		if w != "" {
			words = append(words, w)
		}
	}
	file.Words = words

	return &file, nil
}

// LoadFile reads a vocabulary pack from disk.
func LoadFile(path string) (*VocabularyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary %s: %w", path, err)
	}

	file, err := ParseVocabulary(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if file.Name == "" {
		file.Name = path
	}
	return file, nil
}
