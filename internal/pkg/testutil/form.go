package testutil

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateEmptyForm creates an empty multipart form for testing
func CreateEmptyForm() *multipart.Form {
	return &multipart.Form{
		File: make(map[string][]*multipart.FileHeader),
	}
}

// CreateTestFilesForm creates a multipart form carrying the given files under
// the "files" field, the shape the upload endpoints consume.
func CreateTestFilesForm(t *testing.T, files map[string][]byte) *multipart.Form {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for filename, content := range files {
		part, err := writer.CreateFormFile("files", filename)
		require.NoError(t, err)

		_, err = part.Write(content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20) // 32 MB
	require.NoError(t, err)

	return form
}
