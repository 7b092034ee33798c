package testutils

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler and
// closes it when the test ends.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// NewUploadRequest builds a multipart POST to target. When file is non-nil it
// is attached under fileField as "document.pdf"; fields are added as plain
// form values.
func NewUploadRequest(
	t *testing.T,
	target string,
	fileField string,
	file []byte,
	fields map[string]string,
) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if file != nil {
		part, err := mw.CreateFormFile(fileField, "document.pdf")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
