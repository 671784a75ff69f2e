package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supplierhub/relay/internal/domain/relay"
)

// Envelope mirrors the API response with the data left raw
type Envelope struct {
	Status    int             `json:"status"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

// Request describes one call against the relay API
type Request struct {
	Method  string
	Path    string
	Body    any
	APIKey  string
	Headers map[string]string
}

// Do sends req to h and returns the recorder. Bodies that are strings are
// sent verbatim; anything else is JSON encoded.
func Do(t *testing.T, h http.Handler, req Request) *httptest.ResponseRecorder {
	t.Helper()

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	switch b := req.Body.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(b)
	default:
		body = ToJSONReader(t, b)
	}

	r := httptest.NewRequest(method, req.Path, body)
	r.Header.Set("Content-Type", "application/json")
	if req.APIKey != "" {
		r.Header.Set("Authorization", "Bearer "+req.APIKey)
	}
	for k, v := range req.Headers {
		r.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

// DecodeEnvelope parses the response envelope and checks its timestamp
func DecodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "Failed to parse response: %s", w.Body.String())
	_, err := time.Parse(relay.TimestampLayout, env.Timestamp)
	require.NoError(t, err, "timestamp %q", env.Timestamp)
	return env
}

// AssertEnvelope checks the HTTP status, the echoed status and the message
func AssertEnvelope(t *testing.T, w *httptest.ResponseRecorder, status int, message string) Envelope {
	t.Helper()

	assert.Equal(t, status, w.Code, w.Body.String())
	env := DecodeEnvelope(t, w)
	assert.Equal(t, status, env.Status)
	assert.Equal(t, message, env.Message)
	return env
}

// DataAs decodes the envelope data into T
func DataAs[T any](t *testing.T, env Envelope) T {
	t.Helper()
	var result T
	require.NoError(t, json.Unmarshal(env.Data, &result), "Failed to parse data: %s", string(env.Data))
	return result
}

// ToJSONReader converts a value to a JSON reader for request bodies.
func ToJSONReader(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err, "Failed to marshal JSON")
	return bytes.NewReader(data)
}
