package commands

import (
	"context"

	"elibrary-borrowing/internal/domain/loan"

	"github.com/google/uuid"
)

// LoanRepository is the write-side persistence port. Implementations must be
// safe for concurrent use and must apply each mutation atomically.
type LoanRepository interface {
	Create(ctx context.Context, l *loan.Loan) error
	FindByID(ctx context.Context, id uuid.UUID) (*loan.Loan, error)
	FindOutstandingByUser(ctx context.Context, userID uuid.UUID) ([]*loan.Loan, error)
	MarkReturned(ctx context.Context, l *loan.Loan) error
}

// InventoryClient is the remote copy-count port on the book service. Each
// call distinguishes success, not-found, and failure (infra.IsRemoteNotFound);
// the orchestrator's branching depends on that contract.
type InventoryClient interface {
	AvailableCopies(ctx context.Context, bookID uuid.UUID) (*int32, error)
	DecrementCopies(ctx context.Context, bookID uuid.UUID) error
	IncrementCopies(ctx context.Context, bookID uuid.UUID) error
}
