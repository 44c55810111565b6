package fs

import (
	"errors"
	"fmt"
	"os"
)

// ReadFile loads the entire file into memory as raw bytes.
func ReadFile(path string) ([]byte, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}
	return contents, nil
}

// ReadString loads the entire file into memory as a string.
func ReadString(path string) (string, error) {
	contents, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(contents), nil
}

// WriteFile writes data through an explicit handle so the file is
// released on every exit path, and a close failure after a buffered
// write still surfaces as an error.
func WriteFile(path string, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file %s: %w", path, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("error writing file %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("error closing file %s: %w", path, err)
	}
	return nil
}

// WriteString writes text content to a file.
func WriteString(path, content string) error {
	return WriteFile(path, []byte(content))
}

// Exists checks if a file exists or not.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
