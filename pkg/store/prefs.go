// Package store holds flashq configuration and the display-name preferences
// that survive between sessions.
package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Preferences maps dataset keys to user-chosen display names.
type Preferences interface {
	DisplayName(key string) (string, bool)
	SetDisplayName(key, name string) error
	All(ctx context.Context) map[string]string
}

// Load opens the preference store described by cfg, reading the
// configuration first when cfg is nil.
func Load(cfg *Config) (Preferences, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath, err := cfg.PrefsPath()
	if err != nil {
		return nil, err
	}
	return Open(basePath)
}

// Open returns diskv-backed preferences rooted at basePath.
func Open(basePath string) (Preferences, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: preference path required")
	}
	return &prefs{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      64 * 1024,
	})}, nil
}

type prefs struct {
	d *diskv.Diskv
}

func (p *prefs) DisplayName(key string) (string, bool) {
	k := toKey(key)
	if !p.d.Has(k) {
		return "", false
	}
	val, err := p.d.Read(k)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: read %s: %v\n", key, err)
		return "", false
	}
	name := strings.TrimSpace(string(val))
	return name, name != ""
}

// SetDisplayName stores name for key. An empty name removes the preference.
func (p *prefs) SetDisplayName(key, name string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("store: dataset key required")
	}
	k := toKey(key)
	name = strings.TrimSpace(name)
	if name == "" {
		if !p.d.Has(k) {
			return nil
		}
		if err := p.d.Erase(k); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("store: erase %s: %w", key, err)
		}
		return nil
	}
	if err := p.d.Write(k, []byte(name)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *prefs) All(ctx context.Context) map[string]string {
	out := make(map[string]string)
	for k := range p.d.Keys(ctx.Done()) {
		key, err := fromKey(k)
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %v\n", k, err)
			continue
		}
		if name, ok := p.DisplayName(key); ok {
			out[key] = name
		}
	}
	return out
}

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}

// toKey encodes dataset keys so any name is a safe file name.
func toKey(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func fromKey(s string) (string, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
