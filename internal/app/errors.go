package app

import (
	"fmt"
	"strings"
)

// FormatConfigError formats a configuration error with actionable guidance
func FormatConfigError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "error reading config file") {
		return fmt.Sprintf(
			"Configuration file could not be read.\n\n"+
				"Troubleshooting steps:\n"+
				"  1. Check the path passed to --config exists\n"+
				"  2. Validate the YAML syntax of the file\n"+
				"  3. Remove the file to fall back to defaults\n"+
				"\nOriginal error: %s", errMsg)
	}

	return fmt.Sprintf(
		"Invalid configuration:\n\n"+
			"%s\n\n"+
			"Check ~/.config/smartedit/config.yaml or SMARTEDIT_* environment variables.", errMsg)
}

// FormatStorageError formats a database open failure with actionable guidance
func FormatStorageError(err error, path string) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "database is locked") {
		return fmt.Sprintf(
			"Storage database is locked.\n\n"+
				"Database: %s\n\n"+
				"Troubleshooting steps:\n"+
				"  1. Close other smartedit instances using the same database\n"+
				"  2. Point storage.path at a different file\n"+
				"\nOriginal error: %s", path, errMsg)
	}

	if strings.Contains(errMsg, "permission denied") || strings.Contains(errMsg, "readonly") {
		return fmt.Sprintf(
			"Storage database is not writable.\n\n"+
				"Database: %s\n\n"+
				"Troubleshooting steps:\n"+
				"  1. Check permissions on the database file and its directory\n"+
				"  2. Set storage.path to a writable location\n"+
				"\nOriginal error: %s", path, errMsg)
	}

	return fmt.Sprintf(
		"Storage database could not be opened.\n\n"+
			"Database: %s\n\n"+
			"%s\n\n"+
			"Run with --debug flag for detailed logs.", path, errMsg)
}

// FormatVocabularyError formats a vocabulary pack failure with actionable guidance
func FormatVocabularyError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "failed to read vocabulary") {
		return fmt.Sprintf(
			"Vocabulary pack not found.\n\n"+
				"Troubleshooting steps:\n"+
				"  1. Check the paths under vocabulary.files and --vocab\n"+
				"  2. Use absolute paths or ~/ for packs outside the working directory\n"+
				"\nOriginal error: %s", errMsg)
	}

	return fmt.Sprintf(
		"Vocabulary pack is invalid.\n\n"+
			"A pack is YAML with a words list:\n"+
			"  version: 1\n"+
			"  name: go\n"+
			"  words: [func, defer, select]\n"+
			"\nOriginal error: %s", errMsg)
}
