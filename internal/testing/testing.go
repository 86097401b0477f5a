// package testing contains shared testing utilities
package testing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
	Requests []*http.Request
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.Requests = append(m.Requests, req)
	return m.response, m.err
}

// RouteRoundTripper dispatches responses by request path, for tests that
// exercise multiple endpoints through one client.
type RouteRoundTripper struct {
	Routes   map[string]*http.Response
	Fallback *http.Response
	Requests []*http.Request
}

func (m *RouteRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.Requests = append(m.Requests, req)
	if resp, ok := m.Routes[req.URL.Path]; ok {
		return cloneResponse(resp), nil
	}
	if m.Fallback != nil {
		return cloneResponse(m.Fallback), nil
	}
	return nil, fmt.Errorf("no route for %s", req.URL.Path)
}

// cloneResponse rebuilds the body reader so a canned response can be
// served more than once.
func cloneResponse(resp *http.Response) *http.Response {
	out := *resp
	if resp.Body != nil {
		data, _ := io.ReadAll(resp.Body)
		resp.Body = io.NopCloser(bytes.NewReader(data))
		out.Body = io.NopCloser(bytes.NewReader(data))
	}
	return &out
}

// EnvelopeResponse builds an nvapi-style {"meta":{"status":...},"data":...}
// HTTP response around the given data payload.
func EnvelopeResponse(t *testing.T, status int, data any) *http.Response {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"meta": map[string]any{"status": status},
		"data": data,
	})
	if err != nil {
		t.Fatalf("failed to marshal envelope: %v", err)
	}

	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if err == nil && !info.IsDir() {
		t.Errorf("Path exists but is not a directory: %s", path)
	}
}

// ReadJSONFile reads and unmarshals a JSON file into v.
func ReadJSONFile(t *testing.T, path string, v any) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("failed to unmarshal %s: %v", path, err)
	}
}
