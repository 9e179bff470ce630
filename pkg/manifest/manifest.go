// Package manifest lists the datasets that can be quizzed.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FileName is the default manifest file inside a data directory.
const FileName = "file-list.json"

const ext = ".csv"

// Descriptor names one dataset.
type Descriptor struct {
	Filename    string `json:"filename"`
	DisplayName string `json:"displayName"`
}

// DisplayNameFor derives a default display name: the file name without its
// .csv extension, title-cased ("world history.csv" -> "World History").
func DisplayNameFor(filename string) string {
	base := filename
	if strings.HasSuffix(strings.ToLower(base), ext) {
		base = base[:len(base)-len(ext)]
	}
	return cases.Title(language.Und).String(base)
}

// IsDataFile reports whether name looks like a dataset.
func IsDataFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ext)
}

// Scan builds descriptors for every .csv file directly inside dir, sorted by
// file name.
func Scan(dir string) ([]Descriptor, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("manifest: scan %s: %w", dir, err)
	}
	out := make([]Descriptor, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsDataFile(e.Name()) {
			continue
		}
		out = append(out, Descriptor{Filename: e.Name(), DisplayName: DisplayNameFor(e.Name())})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Filename < out[j].Filename })
	return out, nil
}

// Decode parses a manifest document. Entries without a display name get the
// derived default.
func Decode(r io.Reader) ([]Descriptor, error) {
	var list []Descriptor
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}
	out := list[:0]
	for _, d := range list {
		d.Filename = strings.TrimSpace(d.Filename)
		if d.Filename == "" {
			continue
		}
		if strings.TrimSpace(d.DisplayName) == "" {
			d.DisplayName = DisplayNameFor(d.Filename)
		}
		out = append(out, d)
	}
	return out, nil
}

// Read loads a manifest file.
func Read(path string) ([]Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Write stores list at path, replacing any previous file atomically.
func Write(path string, list []Descriptor) error {
	if list == nil {
		list = []Descriptor{}
	}
	data, err := json.MarshalIndent(list, "", "    ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("manifest: ensure directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
