package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest is one call received by a FakePlatform
type RecordedRequest struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	Body          json.RawMessage
}

// Reply is the canned answer for a route
type Reply struct {
	Status int
	Body   string
}

// FakePlatform is an httptest server standing in for the Supplier Portal
// or the Menu Platform. Routes are keyed by "METHOD /path".
type FakePlatform struct {
	*httptest.Server

	mu       sync.Mutex
	replies  map[string]Reply
	requests []RecordedRequest
}

// NewFakePlatform starts a fake platform that is closed with the test
func NewFakePlatform(t *testing.T) *FakePlatform {
	t.Helper()

	fp := &FakePlatform{replies: make(map[string]Reply)}
	fp.Server = httptest.NewServer(http.HandlerFunc(fp.serve))
	t.Cleanup(fp.Close)
	return fp
}

// Reply sets the answer for method and path
func (fp *FakePlatform) Reply(method, path string, status int, body string) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.replies[method+" "+path] = Reply{Status: status, Body: body}
}

// Requests returns a copy of every request received so far
func (fp *FakePlatform) Requests() []RecordedRequest {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	out := make([]RecordedRequest, len(fp.requests))
	copy(out, fp.requests)
	return out
}

// LastRequest returns the most recent request, or false if none arrived
func (fp *FakePlatform) LastRequest() (RecordedRequest, bool) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	if len(fp.requests) == 0 {
		return RecordedRequest{}, false
	}
	return fp.requests[len(fp.requests)-1], true
}

func (fp *FakePlatform) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	fp.mu.Lock()
	fp.requests = append(fp.requests, RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Query:         r.URL.RawQuery,
		Authorization: r.Header.Get("Authorization"),
		Body:          body,
	})
	reply, ok := fp.replies[r.Method+" "+r.URL.Path]
	fp.mu.Unlock()

	if !ok {
		reply = Reply{Status: http.StatusNotFound, Body: `{"error":"not found"}`}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.Status)
	_, _ = io.WriteString(w, reply.Body)
}
