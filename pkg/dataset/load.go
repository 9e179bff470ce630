package dataset

import "context"

// Loader fetches and parses datasets from a Source.
type Loader struct {
	Source Source
}

// Load fetches and parses one dataset. Every failure is a *LoadError.
func (l *Loader) Load(ctx context.Context, key string) (*Dataset, error) {
	if l == nil || l.Source == nil {
		return nil, &LoadError{Key: key, Err: errNoSource}
	}
	rc, err := l.Source.Open(ctx, key)
	if err != nil {
		return nil, loadError(key, err)
	}
	defer rc.Close()
	return Parse(key, rc)
}

// LoadAll loads keys in order and stops at the first failure. Nothing is
// returned for a partial load.
func (l *Loader) LoadAll(ctx context.Context, keys []string) ([]*Dataset, error) {
	out := make([]*Dataset, 0, len(keys))
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return nil, loadError(key, err)
		}
		d, err := l.Load(ctx, key)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
