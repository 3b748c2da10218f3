package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IntakeFile is one intake document read from the batch directory.
type IntakeFile struct {
	Name string // file name inside the intake directory
	Text string
}

// LoadIntakeDir reads every .txt and .md file directly inside dir, in name
// order. File contents are not validated here; a blank intake fails when its
// file is processed, so one bad file does not stop the run.
func LoadIntakeDir(dir string) ([]IntakeFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading intake directory: %w", err)
	}

	var files []IntakeFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".md":
		default:
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading intake file: %w", err)
		}
		text := strings.TrimPrefix(string(data), "\uFEFF")
		files = append(files, IntakeFile{Name: entry.Name(), Text: text})
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no .txt or .md files in %s", ErrNoIntakeFiles, dir)
	}
	return files, nil
}
