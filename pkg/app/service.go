// Package app holds the operations shared by the terminal UI, the CLI
// commands and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/flashq/pkg/dataset"
	"tableflip.dev/flashq/pkg/manifest"
	"tableflip.dev/flashq/pkg/store"
)

var (
	errNoCatalog = errors.New("app: no catalog configured")
	errNoWatch   = errors.New("app: data location cannot be watched")
)

// Topic is a dataset as offered to the user.
type Topic struct {
	Key         string
	DefaultName string
	// DisplayName is the user's chosen name, or DefaultName.
	DisplayName string
}

// Renamed reports whether the user picked a display name.
func (t Topic) Renamed() bool { return t.DisplayName != t.DefaultName }

// Service wires the catalog, the dataset loader and the preference store.
type Service struct {
	Catalog     manifest.Catalog
	Loader      *dataset.Loader
	Preferences store.Preferences
	// WatchDir is the local data directory, empty for remote data.
	WatchDir string
}

// NewService builds a Service from configuration. Local data directories
// use their manifest file (or a scan); remote data fetches the manifest over
// HTTP.
func NewService(cfg *store.Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("app: config required")
	}
	prefs, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	location := cfg.DataLocation()
	svc := &Service{
		Loader:      &dataset.Loader{Source: dataset.NewSource(location)},
		Preferences: prefs,
	}
	if dataset.IsRemote(location) {
		svc.Catalog = &manifest.HTTPCatalog{BaseURL: location, File: cfg.Manifest}
	} else {
		svc.Catalog = &manifest.DirCatalog{Dir: location, File: cfg.Manifest}
		svc.WatchDir = location
	}
	return svc, nil
}

// Watch reports changes to the data directory.
func (s *Service) Watch(ctx context.Context) (<-chan manifest.Event, error) {
	if s.WatchDir == "" {
		return nil, errNoWatch
	}
	return manifest.Watch(ctx, s.WatchDir)
}

// Descriptors lists the catalog with display-name preferences applied.
func (s *Service) Descriptors(ctx context.Context) ([]manifest.Descriptor, error) {
	topics, err := s.Topics(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]manifest.Descriptor, 0, len(topics))
	for _, t := range topics {
		out = append(out, manifest.Descriptor{Filename: t.Key, DisplayName: t.DisplayName})
	}
	return out, nil
}

// Topics lists the datasets in catalog order.
func (s *Service) Topics(ctx context.Context) ([]Topic, error) {
	list, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Topic, 0, len(list))
	for _, d := range list {
		out = append(out, s.topic(d))
	}
	return out, nil
}

// Resolve finds a topic by file name, bare name or display name.
func (s *Service) Resolve(ctx context.Context, query string) (Topic, error) {
	list, err := s.catalog(ctx)
	if err != nil {
		return Topic{}, err
	}
	d, err := manifest.Resolve(s.withPreferences(list), query)
	if err != nil {
		return Topic{}, err
	}
	for _, orig := range list {
		if orig.Filename == d.Filename {
			return s.topic(orig), nil
		}
	}
	return s.topic(d), nil
}

// Rename stores name as the display name of the topic matching query. An
// empty name restores the default.
func (s *Service) Rename(ctx context.Context, query, name string) (Topic, error) {
	if s.Preferences == nil {
		return Topic{}, errors.New("app: no preferences configured")
	}
	t, err := s.Resolve(ctx, query)
	if err != nil {
		return Topic{}, err
	}
	name = strings.TrimSpace(name)
	if name == t.DefaultName {
		name = ""
	}
	if err := s.Preferences.SetDisplayName(t.Key, name); err != nil {
		return Topic{}, fmt.Errorf("app: rename %s: %w", t.Key, err)
	}
	return s.topic(manifest.Descriptor{Filename: t.Key, DisplayName: t.DefaultName}), nil
}

// Load fetches and parses the datasets for keys, in order.
func (s *Service) Load(ctx context.Context, keys []string) ([]*dataset.Dataset, error) {
	return s.Loader.LoadAll(ctx, keys)
}

func (s *Service) catalog(ctx context.Context) ([]manifest.Descriptor, error) {
	if s.Catalog == nil {
		return nil, errNoCatalog
	}
	return s.Catalog.List(ctx)
}

func (s *Service) topic(d manifest.Descriptor) Topic {
	def := d.DisplayName
	if def == "" {
		def = manifest.DisplayNameFor(d.Filename)
	}
	t := Topic{Key: d.Filename, DefaultName: def, DisplayName: def}
	if s.Preferences != nil {
		if name, ok := s.Preferences.DisplayName(d.Filename); ok {
			t.DisplayName = name
		}
	}
	return t
}

// withPreferences lets Resolve match renamed topics. Matching on the default
// name still works through the file name.
func (s *Service) withPreferences(list []manifest.Descriptor) []manifest.Descriptor {
	out := make([]manifest.Descriptor, 0, len(list))
	for _, d := range list {
		t := s.topic(d)
		out = append(out, manifest.Descriptor{Filename: t.Key, DisplayName: t.DisplayName})
	}
	return out
}
