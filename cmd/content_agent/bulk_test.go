package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeywordsFile(t *testing.T) {
	content := `running shoes

# seasonal batch
trail boots
  winter jackets
`
	path := filepath.Join(t.TempDir(), "keywords.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	keywords, err := parseKeywordsFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"running shoes", "trail boots", "winter jackets"}, keywords)
}

func TestParseKeywordsFile_Missing(t *testing.T) {
	keywords, err := parseKeywordsFile("/nonexistent/keywords.txt")
	assert.Error(t, err)
	assert.Nil(t, keywords)
	assert.Contains(t, err.Error(), "failed to open keywords file")
}

func TestParseKeywordsFile_OnlyComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.txt")
	require.NoError(t, os.WriteFile(path, []byte("# nothing here\n\n"), 0644))

	keywords, err := parseKeywordsFile(path)
	require.NoError(t, err)
	assert.Empty(t, keywords)
}

func TestBulkCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantError   bool
		errorString string
	}{
		{
			name:        "Missing --keywords-file flag",
			args:        []string{"bulk"},
			wantError:   true,
			errorString: "keywords-file",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			cmd.Env = append(os.Environ(), "GEMINI_API_KEY=test-key")
			output, err := cmd.CombinedOutput()

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorString != "" {
					assert.Contains(t, string(output), tt.errorString)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
