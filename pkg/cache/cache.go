// Package cache keeps rendered entity-graph artifacts between CLI runs.
//
// Rendering through Graphviz and rsvg-convert is the slowest step of the
// plotkit CLI. An artifact depends only on the DOT source, the output format
// and, for PNG, the scale factor, so those three make up its [Key]:
//
//	store, _ := cache.Open(dir)
//	key := cache.NewKey(dot, "png", 2)
//	if a, ok, _ := store.Load(ctx, key); ok {
//	    return a.Data
//	}
//
// [Disabled] returns a store that never hits.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/plotkit/pkg/errors"
)

// DefaultTTL is how long rendered artifacts stay valid.
const DefaultTTL = 7 * 24 * time.Hour

// rasterFormats are the formats whose output depends on the scale factor.
var rasterFormats = map[string]bool{"png": true}

// Key identifies one rendered artifact.
type Key struct {
	Source string  `json:"source"` // sha256 of the DOT source
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// NewKey returns the key of dot rendered to format. The scale is dropped for
// vector formats so an SVG rendered at any scale shares one entry.
func NewKey(dot, format string, scale float64) Key {
	k := Key{Source: Digest([]byte(dot)), Format: strings.ToLower(format)}
	if rasterFormats[k.Format] {
		k.Scale = scale
	}
	return k
}

// String returns the file name of the artifact, e.g. "3f2a…@2x.png".
func (k Key) String() string {
	var b strings.Builder
	b.WriteString(k.Source)
	if k.Scale != 0 {
		b.WriteString("@" + strconv.FormatFloat(k.Scale, 'g', -1, 64) + "x")
	}
	b.WriteString("." + k.Format)
	return b.String()
}

func (k Key) validate() error {
	if len(k.Source) != 2*sha256.Size {
		return errors.New(errors.ErrCodeInvalidInput, "cache key has no source digest")
	}
	if k.Format == "" || strings.ContainsAny(k.Format, `/\.`) {
		return errors.New(errors.ErrCodeInvalidInput, "cache key has invalid format %q", k.Format)
	}
	return nil
}

// Artifact is a rendered graph together with the key it was rendered for.
type Artifact struct {
	Key
	Data      []byte    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// Expired reports whether a has a deadline before now.
func (a *Artifact) Expired(now time.Time) bool {
	return !a.ExpiresAt.IsZero() && now.After(a.ExpiresAt)
}

// Store persists artifacts.
type Store interface {
	// Load returns the artifact stored under key. A missing, expired or
	// unreadable entry is a miss, not an error.
	Load(ctx context.Context, key Key) (*Artifact, bool, error)

	// Save stores data under key. A ttl of zero never expires.
	Save(ctx context.Context, key Key, data []byte, ttl time.Duration) error

	Close() error
}

// Digest returns the hex sha256 of data.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Stats summarises the contents of a Dir.
type Stats struct {
	Entries  int
	Expired  int
	Bytes    int64
	ByFormat map[string]int
}

type disabled struct{}

// Disabled returns a Store that keeps nothing.
func Disabled() Store { return disabled{} }

func (disabled) Load(context.Context, Key) (*Artifact, bool, error) { return nil, false, nil }

func (disabled) Save(context.Context, Key, []byte, time.Duration) error { return nil }

func (disabled) Close() error { return nil }
