package repository

import (
	"context"

	"tacklehire/internal/domain"
)

// LedgerRepository is the append-only store of saved hire records for the
// session. There are deliberately no update or delete methods: a saved
// hire cannot be silently altered.
type LedgerRepository interface {
	Append(ctx context.Context, record *domain.HireRecord) error
	All(ctx context.Context) ([]domain.HireRecord, error)
	Count(ctx context.Context) (int, error)
}
