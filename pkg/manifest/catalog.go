package manifest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Catalog lists available datasets.
type Catalog interface {
	List(ctx context.Context) ([]Descriptor, error)
}

// DirCatalog reads File inside Dir, or scans Dir when that file is missing.
type DirCatalog struct {
	Dir  string
	File string
}

// Path returns the manifest file location.
func (c *DirCatalog) Path() string {
	file := c.File
	if file == "" {
		file = FileName
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.Dir, file)
}

// List implements Catalog.
func (c *DirCatalog) List(_ context.Context) ([]Descriptor, error) {
	list, err := Read(c.Path())
	if err == nil {
		return list, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return Scan(c.Dir)
}

// HTTPCatalog fetches the manifest from BaseURL/File.
type HTTPCatalog struct {
	BaseURL string
	File    string
	Client  *http.Client
}

// List implements Catalog.
func (c *HTTPCatalog) List(ctx context.Context) ([]Descriptor, error) {
	file := c.File
	if file == "" {
		file = FileName
	}
	base, err := url.Parse(strings.TrimSuffix(c.BaseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("manifest: base url: %w", err)
	}
	u := base.ResolveReference(&url.URL{Path: file}).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("manifest: fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("manifest: GET %s: %s", u, resp.Status)
	}
	return Decode(resp.Body)
}

// Static is a fixed catalog.
type Static []Descriptor

// List implements Catalog.
func (s Static) List(context.Context) ([]Descriptor, error) {
	return append([]Descriptor(nil), s...), nil
}
