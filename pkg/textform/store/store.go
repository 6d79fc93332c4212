// Package store defines analysis-history persistence for hosts that
// keep a record of past runs. The engine itself never touches a
// store; this is caller-side infrastructure.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/cognicore/textform/pkg/textform/catalog"
)

// Record is one persisted analysis outcome. InputHash keys the record
// for dedup/cache lookups without retaining the input text.
type Record struct {
	ID         string
	InputHash  string
	Format     catalog.Format // top predicted format
	Confidence int            // in [0,100]
	Duration   time.Duration
	CreatedAt  time.Time
}

// Store persists and queries analysis history.
type Store interface {
	Close() error

	SaveRecord(ctx context.Context, r Record) error
	GetRecord(ctx context.Context, id string) (Record, error)
	// GetByHash returns the most recent record for an input hash,
	// letting hosts reuse prior results for identical inputs.
	GetByHash(ctx context.Context, hash string) (Record, bool, error)
	ListRecent(ctx context.Context, limit int) ([]Record, error)
	CountByFormat(ctx context.Context) (map[catalog.Format]int64, error)
}

// HashInput derives the cache key for an (input text, format hint)
// pair.
func HashInput(text string, format catalog.Format) string {
	h := sha256.New()
	h.Write([]byte(format))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}
