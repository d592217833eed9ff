package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSeedFileRejectsNonJSON(t *testing.T) {
	err := ValidateSeedFile("seed/categories.txt")
	require.Error(t, err)

	var fileErr *JSONFileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, "INVALID_FILE_FORMAT", fileErr.Code)
}

func TestValidateSeedFileMissing(t *testing.T) {
	err := ValidateSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	var fileErr *JSONFileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, "FILE_NOT_FOUND", fileErr.Code)
}

func TestReadJSONFileDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Bebidas"}]`), 0o644))

	var rows []struct {
		Name string `json:"name"`
	}
	require.NoError(t, ReadJSONFile(path, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Bebidas", rows[0].Name)
}

func TestReadJSONFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	var v any
	err := ReadJSONFile(path, &v)
	require.Error(t, err)

	var fileErr *JSONFileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, "MALFORMED_JSON", fileErr.Code)
}
