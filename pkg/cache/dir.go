package cache

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/plotkit/pkg/errors"
)

const entryExt = ".json"

// Dir stores artifacts as JSON files grouped by format:
//
//	<root>/<format>/<source[:2]>/<key>.json
//
// Each file carries its key, so an entry written for other options is never
// returned.
type Dir struct {
	root string
	now  func() time.Time
}

var _ Store = (*Dir)(nil)

// Open returns a Dir rooted at root, creating the directory if needed.
func Open(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create cache dir %s", root)
	}
	return &Dir{root: root, now: time.Now}, nil
}

// Root returns the cache directory.
func (d *Dir) Root() string { return d.root }

func (d *Dir) path(k Key) string {
	return filepath.Join(d.root, k.Format, k.Source[:2], k.String()+entryExt)
}

// Load implements Store.
func (d *Dir) Load(ctx context.Context, key Key) (*Artifact, bool, error) {
	if err := key.validate(); err != nil {
		return nil, false, err
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	path := d.path(key)
	a, err := readArtifact(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil || a.Key != key || a.Expired(d.now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return a, true, nil
}

// Save implements Store. The entry is written to a temporary file and
// renamed into place.
func (d *Dir) Save(ctx context.Context, key Key, data []byte, ttl time.Duration) error {
	if err := key.validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	a := Artifact{Key: key, Data: data, CreatedAt: d.now()}
	if ttl > 0 {
		a.ExpiresAt = a.CreatedAt.Add(ttl)
	}
	buf, err := json.Marshal(a)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode artifact %s", key)
	}

	path := d.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create cache dir")
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".artifact-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write artifact %s", key)
	}
	_, werr := tmp.Write(buf)
	cerr := tmp.Close()
	if werr == nil {
		werr = cerr
	}
	if werr == nil {
		werr = os.Rename(tmp.Name(), path)
	}
	if werr != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeInternal, werr, "write artifact %s", key)
	}
	return nil
}

// Close implements Store.
func (d *Dir) Close() error { return nil }

// Stats walks the directory and counts its entries.
func (d *Dir) Stats(ctx context.Context) (Stats, error) {
	s := Stats{ByFormat: make(map[string]int)}
	now := d.now()
	err := d.walk(ctx, func(path string, a *Artifact, size int64) error {
		s.Entries++
		s.Bytes += size
		if a == nil || a.Expired(now) {
			s.Expired++
			return nil
		}
		s.ByFormat[a.Format]++
		return nil
	})
	return s, err
}

// Prune removes expired and unreadable entries and returns how many were
// removed.
func (d *Dir) Prune(ctx context.Context) (int, error) {
	now := d.now()
	removed := 0
	err := d.walk(ctx, func(path string, a *Artifact, _ int64) error {
		if a != nil && !a.Expired(now) {
			return nil
		}
		if err := os.Remove(path); err != nil {
			return err
		}
		removed++
		return nil
	})
	return removed, err
}

// Clear removes every entry and returns how many there were. The root
// directory itself is kept.
func (d *Dir) Clear(ctx context.Context) (int, error) {
	st, err := d.Stats(ctx)
	if err != nil {
		return 0, err
	}
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "read cache dir %s", d.root)
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(d.root, e.Name())); err != nil {
			return 0, errors.Wrap(errors.ErrCodeInternal, err, "clear cache dir %s", d.root)
		}
	}
	return st.Entries, nil
}

// walk calls fn for every entry file. a is nil when the entry cannot be
// decoded.
func (d *Dir) walk(ctx context.Context, fn func(path string, a *Artifact, size int64) error) error {
	return filepath.WalkDir(d.root, func(path string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if e.IsDir() || !strings.HasSuffix(path, entryExt) {
			return nil
		}
		info, err := e.Info()
		if err != nil {
			return err
		}
		a, err := readArtifact(path)
		if err != nil {
			a = nil
		}
		return fn(path, a, info.Size())
	})
}

func readArtifact(path string) (*Artifact, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var a Artifact
	if err := json.Unmarshal(buf, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
