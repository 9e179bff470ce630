// Package selection records which columns of each dataset may be quizzed.
package selection

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/flashq/pkg/dataset"
)

// ErrFrozen is returned when the registry is changed while a quiz is running.
var ErrFrozen = errors.New("selection: registry frozen")

// Registry maps dataset keys to an insertion-ordered set of eligible columns.
//
// A key that was never set explicitly falls back to the dataset's first
// header. The registry does not check column names against headers; callers
// only offer real headers.
type Registry struct {
	headers  func(key string) []string
	columns  map[string][]string
	explicit map[string]bool
	frozen   bool
}

// New returns an empty registry. headers resolves a dataset key to its
// header list for the default-first-column rule and may be nil.
func New(headers func(key string) []string) *Registry {
	return &Registry{
		headers:  headers,
		columns:  make(map[string][]string),
		explicit: make(map[string]bool),
	}
}

// ForDatasets returns a registry whose defaults come from ds.
func ForDatasets(ds ...*dataset.Dataset) *Registry {
	byKey := make(map[string][]string, len(ds))
	for _, d := range ds {
		if d != nil {
			byKey[d.Key] = d.Headers
		}
	}
	return New(func(key string) []string { return byKey[key] })
}

// SetColumnEligible adds or removes column from key's eligible set. Adding a
// present column or removing an absent one changes nothing.
func (r *Registry) SetColumnEligible(key, column string, eligible bool) error {
	if r.frozen {
		return ErrFrozen
	}
	r.explicit[key] = true
	cols := r.columns[key]
	idx := indexOf(cols, column)
	switch {
	case eligible && idx < 0:
		r.columns[key] = append(cols, column)
	case !eligible && idx >= 0:
		r.columns[key] = append(cols[:idx:idx], cols[idx+1:]...)
	}
	return nil
}

// EligibleColumns returns a copy of key's eligible columns in the order they
// were added.
func (r *Registry) EligibleColumns(key string) []string {
	if !r.explicit[key] {
		return r.defaults(key)
	}
	return append([]string(nil), r.columns[key]...)
}

// IsEligible reports whether column is eligible for key.
func (r *Registry) IsEligible(key, column string) bool {
	return indexOf(r.EligibleColumns(key), column) >= 0
}

// Explicit reports whether key has been set at least once.
func (r *Registry) Explicit(key string) bool {
	return r.explicit[key]
}

// Toggle flips column for key. The first toggle on a key starts from its
// defaults, the way a settings screen shows the first column pre-checked.
func (r *Registry) Toggle(key, column string) error {
	if r.frozen {
		return ErrFrozen
	}
	if !r.explicit[key] {
		r.explicit[key] = true
		r.columns[key] = r.defaults(key)
	}
	return r.SetColumnEligible(key, column, !r.IsEligible(key, column))
}

// Freeze stops further changes until Thaw.
func (r *Registry) Freeze() { r.frozen = true }

// Thaw allows changes again, when the user returns to settings.
func (r *Registry) Thaw() { r.frozen = false }

// Frozen reports whether the registry is frozen.
func (r *Registry) Frozen() bool { return r.frozen }

// Apply marks columns eligible from a spec such as "math.csv=Q,A;history.csv=Year".
// Keys named in spec replace their defaults.
func (r *Registry) Apply(spec string) error {
	if r.frozen {
		return ErrFrozen
	}
	for _, seg := range strings.Split(spec, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		key, cols, ok := strings.Cut(seg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("selection: malformed column spec %q", seg)
		}
		r.explicit[key] = true
		for _, col := range strings.Split(cols, ",") {
			col = strings.TrimSpace(col)
			if col == "" {
				continue
			}
			if err := r.SetColumnEligible(key, col, true); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Registry) defaults(key string) []string {
	if r.headers == nil {
		return nil
	}
	h := r.headers(key)
	if len(h) == 0 {
		return nil
	}
	return []string{h[0]}
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
