package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// MaxSeedFileSize is 1MB in bytes
	MaxSeedFileSize = 1 * 1024 * 1024
	// SeedFileFormat is JSON
	SeedFileFormat = ".json"
)

// JSONFileError represents a seed file validation error
type JSONFileError struct {
	Code    string
	Message string
}

func (e *JSONFileError) Error() string {
	return e.Message
}

// ValidateSeedFile checks the seed file's extension and size before reading
func ValidateSeedFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != SeedFileFormat {
		return &JSONFileError{
			Code:    "INVALID_FILE_FORMAT",
			Message: fmt.Sprintf("Only %s files are allowed", SeedFileFormat),
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return &JSONFileError{
			Code:    "FILE_NOT_FOUND",
			Message: fmt.Sprintf("Seed file %s is not readable: %v", path, err),
		}
	}
	if info.Size() > MaxSeedFileSize {
		return &JSONFileError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("File size exceeds maximum allowed size of %d MB", MaxSeedFileSize/(1024*1024)),
		}
	}

	return nil
}

// ReadJSONFile validates and decodes a JSON seed file into v
func ReadJSONFile(path string, v interface{}) error {
	if err := ValidateSeedFile(path); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return &JSONFileError{
			Code:    "MALFORMED_JSON",
			Message: fmt.Sprintf("Seed file %s is not valid JSON: %v", path, err),
		}
	}

	return nil
}
