package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// CreateTempDir creates a temp directory removed when the test ends.
func CreateTempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "git-ignore-test-*")
	if err != nil {
		t.Fatalf("create temp dir: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})
	return dir
}

// CreateTempFile writes content to dir/name, creating parents as needed.
func CreateTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	return path
}

// AssertFileExists fails the test if path does not exist.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("file does not exist: %s", path)
	}
}

// AssertFileNotExists fails the test if path exists.
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("file should not exist: %s", path)
	}
}

// AssertFileContent fails the test if path does not hold exactly expected.
func AssertFileContent(t *testing.T, path, expected string) {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(content) != expected {
		t.Errorf("file content mismatch\nwant: %q\ngot:  %q", expected, string(content))
	}
}

// WithTempHome points HOME, USERPROFILE and the XDG dirs at a fresh temp
// directory for the duration of fn.
func WithTempHome(t *testing.T, fn func(home string)) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("LOCALAPPDATA", filepath.Join(home, "AppData", "Local"))
	t.Setenv("APPDATA", filepath.Join(home, "AppData", "Roaming"))
	fn(home)
}

// WithTempCWD runs fn inside a temp working directory and restores the
// original afterwards.
func WithTempCWD(t *testing.T, fn func(cwd string)) {
	t.Helper()
	original, err := os.Getwd()
	if err != nil {
		t.Fatalf("get working dir: %v", err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(original)
	})
	// macOS temp dirs resolve through /private
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("get working dir: %v", err)
	}
	fn(cwd)
}

// CaptureOutput returns what fn wrote to os.Stdout and os.Stderr.
func CaptureOutput(t *testing.T, fn func()) (string, string) {
	t.Helper()

	origOut, origErr := os.Stdout, os.Stderr
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("create stdout pipe: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("create stderr pipe: %v", err)
	}
	os.Stdout, os.Stderr = outW, errW

	var stdout, stderr bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); _, _ = io.Copy(&stdout, outR) }()
	go func() { defer wg.Done(); _, _ = io.Copy(&stderr, errR) }()

	defer func() {
		os.Stdout, os.Stderr = origOut, origErr
	}()
	fn()

	_ = outW.Close()
	_ = errW.Close()
	wg.Wait()
	_ = outR.Close()
	_ = errR.Close()

	return stdout.String(), stderr.String()
}

// MockResponse is a canned reply for MockHTTPClient.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
}

type mockTransport struct {
	mu        sync.Mutex
	responses map[string]MockResponse
	calls     map[string]int
}

func (m *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	m.mu.Lock()
	m.calls[req.URL.String()]++
	resp, ok := m.responses[req.URL.String()]
	m.mu.Unlock()

	if !ok {
		resp = MockResponse{StatusCode: http.StatusNotFound, Body: "not found"}
	}
	if resp.StatusCode == 0 {
		resp.StatusCode = http.StatusOK
	}

	header := make(http.Header)
	for k, v := range resp.Headers {
		header.Set(k, v)
	}

	return &http.Response{
		StatusCode:    resp.StatusCode,
		Status:        http.StatusText(resp.StatusCode),
		Header:        header,
		Body:          io.NopCloser(bytes.NewBufferString(resp.Body)),
		ContentLength: int64(len(resp.Body)),
		Request:       req,
	}, nil
}

// MockHTTPClient returns a client answering from responses keyed by full URL.
// Unknown URLs get a 404.
func MockHTTPClient(t *testing.T, responses map[string]MockResponse) *http.Client {
	t.Helper()
	return &http.Client{Transport: &mockTransport{responses: responses, calls: map[string]int{}}}
}

// MockCalls reports how many requests client made to url. The client must
// come from MockHTTPClient.
func MockCalls(client *http.Client, url string) int {
	m, ok := client.Transport.(*mockTransport)
	if !ok {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[url]
}

// CatalogJSON encodes key -> contents pairs in the gitignore.io list format.
func CatalogJSON(t *testing.T, contents map[string]string) string {
	t.Helper()
	type record struct {
		Key      string `json:"key"`
		Name     string `json:"name"`
		FileName string `json:"fileName"`
		Contents string `json:"contents"`
	}
	doc := make(map[string]record, len(contents))
	for key, body := range contents {
		doc[key] = record{Key: key, Name: key, FileName: key + ".gitignore", Contents: body}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal catalog: %v", err)
	}
	return string(data)
}
