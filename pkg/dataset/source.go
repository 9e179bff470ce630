package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Source opens the raw body of a dataset by key.
type Source interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// NewSource picks an HTTPSource for http(s) locations and a DirSource
// otherwise.
func NewSource(location string) Source {
	if IsRemote(location) {
		return &HTTPSource{BaseURL: location}
	}
	return &DirSource{Dir: location}
}

// IsRemote reports whether location is an http(s) URL.
func IsRemote(location string) bool {
	l := strings.ToLower(strings.TrimSpace(location))
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

var (
	errBadKey   = errors.New("dataset: key must be a plain file name")
	errNoSource = errors.New("dataset: no source configured")
)

func checkKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return errBadKey
	}
	return nil
}

// DirSource reads datasets from files in a local directory.
type DirSource struct {
	Dir string
}

// Open implements Source.
func (s *DirSource) Open(_ context.Context, key string) (io.ReadCloser, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	return os.Open(filepath.Join(s.Dir, key))
}

// HTTPSource fetches datasets relative to a base URL, the way the browser
// viewer fetched data/<file>.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// Open implements Source.
func (s *HTTPSource) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	u, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %s", u, resp.Status)
	}
	return resp.Body, nil
}

func (s *HTTPSource) resolve(key string) (string, error) {
	base, err := url.Parse(strings.TrimSuffix(s.BaseURL, "/") + "/")
	if err != nil {
		return "", fmt.Errorf("dataset: base url: %w", err)
	}
	return base.ResolveReference(&url.URL{Path: key}).String(), nil
}
