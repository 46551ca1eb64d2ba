package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/dayanaadylkhanova/codetime-charts/internal/entity"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultGitHubAPI   = "https://api.github.com"
	DefaultWakaTimeAPI = "https://wakatime.com"
	DefaultFilePrefix  = "summaries_"
	defaultConcurrency = 8
	maxErrorBody       = 512
)

type Options struct {
	GitHubAPI   string
	GitHubToken string
	FilePrefix  string
	// WakaTimeAPI is the only origin that receives WakaTimeAPIKey.
	WakaTimeAPI    string
	WakaTimeAPIKey string
	Concurrency    int
	// Timeout bounds each HTTP request. Zero means none.
	Timeout time.Duration
}

// Client talks to the GitHub Gist API, WakaTime and raw content hosts.
type Client struct {
	log  *zap.Logger
	http *http.Client
	opts Options

	githubOrigin   *url.URL
	wakatimeOrigin *url.URL
}

func New(log *zap.Logger, opts Options) *Client {
	if opts.GitHubAPI == "" {
		opts.GitHubAPI = DefaultGitHubAPI
	}
	opts.GitHubAPI = strings.TrimRight(opts.GitHubAPI, "/")
	if opts.WakaTimeAPI == "" {
		opts.WakaTimeAPI = DefaultWakaTimeAPI
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	return &Client{
		log:            log,
		http:           &http.Client{Timeout: opts.Timeout},
		opts:           opts,
		githubOrigin:   parseOrigin(opts.GitHubAPI),
		wakatimeOrigin: parseOrigin(opts.WakaTimeAPI),
	}
}

// parseOrigin returns nil for values without scheme and host, so nothing
// ever matches them.
func parseOrigin(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil
	}
	return u
}

func sameOrigin(u, origin *url.URL) bool {
	return origin != nil && u != nil &&
		strings.EqualFold(u.Scheme, origin.Scheme) &&
		strings.EqualFold(u.Host, origin.Host)
}

// StatusError reports a non-2xx response.
type StatusError struct {
	URL    string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d: %s", e.URL, e.Status, e.Body)
}

type gistFile struct {
	Filename string `json:"filename"`
	RawURL   string `json:"raw_url"`
}

type gistResponse struct {
	Files map[string]gistFile `json:"files"`
}

// ResolveGistURLs lists the raw urls of the gist's summary files sorted by
// file name. idOrURL may be a bare gist id or a gist page url.
func (c *Client) ResolveGistURLs(ctx context.Context, idOrURL string) ([]string, error) {
	id := GistID(idOrURL)
	if id == "" {
		return nil, errors.New("empty gist id")
	}
	body, err := c.get(ctx, c.opts.GitHubAPI+"/gists/"+url.PathEscape(id), c.authorizeGitHub)
	if err != nil {
		return nil, err
	}
	var resp gistResponse
	if err := sonic.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode gist %s: %w", id, err)
	}

	files := make([]gistFile, 0, len(resp.Files))
	for name, f := range resp.Files {
		if f.Filename == "" {
			f.Filename = name
		}
		if !strings.HasSuffix(strings.ToLower(f.Filename), ".json") || !strings.HasPrefix(f.Filename, c.opts.FilePrefix) {
			continue
		}
		if f.RawURL == "" {
			continue
		}
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Filename < files[j].Filename })

	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RawURL
	}
	c.log.Debug("gist resolved", zap.String("gist_id", id), zap.Int("files", len(resp.Files)), zap.Int("urls", len(out)))
	return out, nil
}

// GistID extracts the id from "https://gist.github.com/user/<id>" style
// input and returns anything else trimmed.
func GistID(idOrURL string) string {
	s := strings.TrimSpace(idOrURL)
	if u, err := url.Parse(s); err == nil && u.Host != "" {
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		s = parts[len(parts)-1]
	}
	s = strings.TrimSuffix(s, ".git")
	return s
}

type dataDump struct {
	DownloadURL string    `json:"download_url"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type dataDumpList struct {
	Data []dataDump `json:"data"`
}

// ResolveWakaTimeURLs reads a listing document. Either a WakaTime data-dump
// listing (completed dumps, oldest first) or a JSON array of urls.
func (c *Client) ResolveWakaTimeURLs(ctx context.Context, listingURL string) ([]string, error) {
	listingURL = strings.TrimSpace(listingURL)
	if _, err := url.ParseRequestURI(listingURL); err != nil {
		return nil, fmt.Errorf("invalid wakatime url: %w", err)
	}
	body, err := c.get(ctx, listingURL, c.authorizeWakaTime)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var urls []string
		if err := sonic.Unmarshal(body, &urls); err != nil {
			return nil, fmt.Errorf("decode url list: %w", err)
		}
		return urls, nil
	}

	var list dataDumpList
	if err := sonic.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decode data dumps: %w", err)
	}
	dumps := make([]dataDump, 0, len(list.Data))
	for _, d := range list.Data {
		if d.DownloadURL == "" {
			continue
		}
		if d.Status != "" && !strings.EqualFold(d.Status, "completed") {
			continue
		}
		dumps = append(dumps, d)
	}
	sort.SliceStable(dumps, func(i, j int) bool { return dumps[i].CreatedAt.Before(dumps[j].CreatedAt) })

	out := make([]string, len(dumps))
	for i, d := range dumps {
		out[i] = d.DownloadURL
	}
	return out, nil
}

// FetchContents downloads every url, at most Concurrency at a time. The
// result keeps the order of urls; the first failure fails the batch.
func (c *Client) FetchContents(ctx context.Context, urls []string) ([]entity.RawContent, error) {
	out := make([]entity.RawContent, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Concurrency)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			body, err := c.get(gctx, u, c.authorizeContent)
			if err != nil {
				return err
			}
			out[i] = entity.RawContent{URL: u, Body: body}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) authorizeGitHub(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github+json")
	c.attachCredentials(req)
}

func (c *Client) authorizeWakaTime(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	c.attachCredentials(req)
}

// authorizeContent decorates summary downloads. Their urls come from a
// listing, so credentials follow the origin rule only.
func (c *Client) authorizeContent(req *http.Request) {
	c.attachCredentials(req)
}

// attachCredentials sends each secret only to its own configured origin.
func (c *Client) attachCredentials(req *http.Request) {
	switch {
	case c.opts.GitHubToken != "" && sameOrigin(req.URL, c.githubOrigin):
		req.Header.Set("Authorization", "Bearer "+c.opts.GitHubToken)
	case c.opts.WakaTimeAPIKey != "" && sameOrigin(req.URL, c.wakatimeOrigin):
		req.SetBasicAuth(c.opts.WakaTimeAPIKey, "")
	}
}

func (c *Client) get(ctx context.Context, rawURL string, decorate func(*http.Request)) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{URL: rawURL, Status: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}
	return io.ReadAll(resp.Body)
}
