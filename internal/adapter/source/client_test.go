package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
)

func TestResolveGistURLs_FiltersAndSorts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gists/abc123" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer tkn" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"files":{
			"summaries_2024-05-02.json":{"filename":"summaries_2024-05-02.json","raw_url":"https://raw.example/2"},
			"README.md":{"filename":"README.md","raw_url":"https://raw.example/readme"},
			"summaries_2024-05-01.json":{"filename":"summaries_2024-05-01.json","raw_url":"https://raw.example/1"},
			"other.json":{"filename":"other.json","raw_url":"https://raw.example/other"},
			"summaries_2024-05-03.json":{"filename":"summaries_2024-05-03.json","raw_url":""}
		}}`)
	}))
	defer srv.Close()

	c := New(zap.NewNop(), Options{GitHubAPI: srv.URL, GitHubToken: "tkn", FilePrefix: DefaultFilePrefix})
	urls, err := c.ResolveGistURLs(context.Background(), "https://gist.github.com/someone/abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"https://raw.example/1", "https://raw.example/2"}
	if !reflect.DeepEqual(urls, want) {
		t.Fatalf("got %v, want %v", urls, want)
	}
}

func TestResolveGistURLs_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(zap.NewNop(), Options{GitHubAPI: srv.URL})
	_, err := c.ResolveGistURLs(context.Background(), "nope")
	var se *StatusError
	if !errors.As(err, &se) || se.Status != http.StatusNotFound {
		t.Fatalf("expected 404 StatusError, got %v", err)
	}
}

func TestResolveGistURLs_EmptyID(t *testing.T) {
	c := New(zap.NewNop(), Options{})
	if _, err := c.ResolveGistURLs(context.Background(), "   "); err == nil {
		t.Fatalf("expected error for empty id")
	}
}

func TestGistID(t *testing.T) {
	tests := map[string]string{
		"abc123":                                  "abc123",
		" abc123 ":                                "abc123",
		"https://gist.github.com/user/abc123":     "abc123",
		"https://gist.github.com/user/abc123/":    "abc123",
		"https://gist.github.com/abc123.git":      "abc123",
		"https://gist.github.com/user/abc123?x=1": "abc123",
	}
	for in, want := range tests {
		if got := GistID(in); got != want {
			t.Fatalf("GistID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveWakaTimeURLs_DataDumps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, _, ok := r.BasicAuth(); !ok || user != "waka_key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"data":[
			{"download_url":"https://dl.example/new","status":"Completed","created_at":"2024-05-03T00:00:00Z"},
			{"download_url":"https://dl.example/pending","status":"Pending…","created_at":"2024-05-04T00:00:00Z"},
			{"download_url":"https://dl.example/old","status":"Completed","created_at":"2024-05-01T00:00:00Z"}
		]}`)
	}))
	defer srv.Close()

	c := New(zap.NewNop(), Options{WakaTimeAPI: srv.URL, WakaTimeAPIKey: "waka_key"})
	urls, err := c.ResolveWakaTimeURLs(context.Background(), srv.URL+"/api/v1/users/current/data_dumps")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"https://dl.example/old", "https://dl.example/new"}
	if !reflect.DeepEqual(urls, want) {
		t.Fatalf("got %v, want %v", urls, want)
	}
}

func TestResolveWakaTimeURLs_PlainList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, ` ["https://a.example/1.json","https://a.example/2.json"]`)
	}))
	defer srv.Close()

	c := New(zap.NewNop(), Options{})
	urls, err := c.ResolveWakaTimeURLs(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(urls) != 2 || urls[0] != "https://a.example/1.json" {
		t.Fatalf("unexpected urls %v", urls)
	}
}

func TestResolveWakaTimeURLs_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":"nope"}`)
	}))
	defer srv.Close()

	c := New(zap.NewNop(), Options{})
	if _, err := c.ResolveWakaTimeURLs(context.Background(), "not a url"); err == nil {
		t.Fatalf("expected error for invalid url")
	}
	if _, err := c.ResolveWakaTimeURLs(context.Background(), srv.URL); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestFetchContents_PreservesOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"path":%q}`, r.URL.Path)
	}))
	defer srv.Close()

	c := New(zap.NewNop(), Options{Concurrency: 2})
	var urls []string
	for i := 0; i < 7; i++ {
		urls = append(urls, fmt.Sprintf("%s/f%d", srv.URL, i))
	}
	got, err := c.FetchContents(context.Background(), urls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(urls) {
		t.Fatalf("expected %d contents, got %d", len(urls), len(got))
	}
	for i, rc := range got {
		if rc.URL != urls[i] || !strings.Contains(string(rc.Body), fmt.Sprintf("/f%d", i)) {
			t.Fatalf("content %d out of order: %s %s", i, rc.URL, rc.Body)
		}
	}
}

func TestFetchContents_FailsAsBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	c := New(zap.NewNop(), Options{})
	got, err := c.FetchContents(context.Background(), []string{srv.URL + "/ok", srv.URL + "/bad"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if got != nil {
		t.Fatalf("expected no partial result, got %v", got)
	}
	var se *StatusError
	if !errors.As(err, &se) || se.Status != http.StatusBadGateway {
		t.Fatalf("expected 502 StatusError, got %v", err)
	}
}

func TestFetchContents_Empty(t *testing.T) {
	c := New(zap.NewNop(), Options{})
	got, err := c.FetchContents(context.Background(), nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %v %v", got, err)
	}
}

// recordingTransport answers every request with body and remembers the
// Authorization header sent to each host.
type recordingTransport struct {
	mu   sync.Mutex
	auth map[string]string
	body string
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.mu.Lock()
	rt.auth[req.URL.Host] = req.Header.Get("Authorization")
	rt.mu.Unlock()
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(rt.body)),
		Request:    req,
	}, nil
}

func (rt *recordingTransport) authFor(host string) (string, bool) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	v, ok := rt.auth[host]
	return v, ok
}

func newRecordingClient(body string) (*Client, *recordingTransport) {
	rt := &recordingTransport{auth: make(map[string]string), body: body}
	c := New(zap.NewNop(), Options{GitHubToken: "ghp_SECRET", WakaTimeAPIKey: "waka_SECRET"})
	c.http = &http.Client{Transport: rt}
	return c, rt
}

func TestCredentials_NotSentToForeignHosts(t *testing.T) {
	c, rt := newRecordingClient(`["https://api.github.com.evil.example/x.json","https://evil.example/y.json"]`)
	ctx := context.Background()

	urls, err := c.ResolveWakaTimeURLs(ctx, "https://evil.example/listing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.FetchContents(ctx, urls); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, host := range []string{"evil.example", "api.github.com.evil.example"} {
		auth, seen := rt.authFor(host)
		if !seen {
			t.Fatalf("expected a request to %s", host)
		}
		if auth != "" {
			t.Fatalf("credentials leaked to %s: %q", host, auth)
		}
	}
}

func TestCredentials_SentToConfiguredOrigins(t *testing.T) {
	c, rt := newRecordingClient(`{"files":{}}`)
	ctx := context.Background()

	if _, err := c.ResolveGistURLs(ctx, "abc123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth, _ := rt.authFor("api.github.com"); auth != "Bearer ghp_SECRET" {
		t.Fatalf("expected github token on the api host, got %q", auth)
	}

	rt.body = `[]`
	if _, err := c.ResolveWakaTimeURLs(ctx, "https://WakaTime.com/api/v1/users/current/data_dumps"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	auth, _ := rt.authFor("WakaTime.com")
	if !strings.HasPrefix(auth, "Basic ") {
		t.Fatalf("expected basic auth on the wakatime host, got %q", auth)
	}

	if _, err := c.FetchContents(ctx, []string{"http://api.github.com/gists/abc123"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth, _ := rt.authFor("api.github.com"); auth != "" {
		t.Fatalf("scheme mismatch must not carry the token, got %q", auth)
	}
}
