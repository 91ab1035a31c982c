// Package memory provides the in-memory ledger store. All recorded hires
// live for the process lifetime only; nothing is persisted across runs.
package memory

import (
	"context"
	"fmt"

	"tacklehire/internal/domain"
)

// LedgerStore keeps hire records in insertion order. The single-threaded
// session is the only writer, so no locking is needed.
type LedgerStore struct {
	records []domain.HireRecord
}

func NewLedgerStore() *LedgerStore {
	return &LedgerStore{}
}

// Append inserts a record at the end of the ledger. Records arrive in
// customer-id order, so insertion order and id order coincide.
func (s *LedgerStore) Append(ctx context.Context, record *domain.HireRecord) error {
	if record == nil {
		return fmt.Errorf("cannot append a nil hire record")
	}
	stored := *record
	stored.Lines = make([]domain.LineItem, len(record.Lines))
	copy(stored.Lines, record.Lines)
	s.records = append(s.records, stored)
	return nil
}

// All returns a copy of the ledger in insertion order. Callers cannot
// mutate stored records through the returned slice.
func (s *LedgerStore) All(ctx context.Context) ([]domain.HireRecord, error) {
	out := make([]domain.HireRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Count returns the number of recorded hires.
func (s *LedgerStore) Count(ctx context.Context) (int, error) {
	return len(s.records), nil
}
