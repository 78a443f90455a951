package readstore

import (
	"context"
	"errors"
	"time"

	"elibrary-borrowing/internal/infra"
	"elibrary-borrowing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LoanReadStore serves the listing side. It returns flat records; enrichment
// with book and user details happens in the query layer.
type LoanReadStore struct {
	db *pgxpool.Pool
}

func NewLoanReadStore(db *pgxpool.Pool) *LoanReadStore {
	return &LoanReadStore{db: db}
}

const loanColumns = `id, user_id, book_id, borrowed_at, due_at, returned_at, status`

func (r *LoanReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LoanRecord, error) {
	const q = `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`

	rec, err := scanLoanRecord(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("loan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find loan by ID", err)
	}
	return rec, nil
}

func (r *LoanReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.LoanRecord, error) {
	const q = `SELECT ` + loanColumns + ` FROM loans WHERE user_id = $1 ORDER BY borrowed_at DESC`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list loans by user", err)
	}
	return collectLoanRecords(rows)
}

func (r *LoanReadStore) FindAll(ctx context.Context) ([]*queries.LoanRecord, error) {
	const q = `SELECT ` + loanColumns + ` FROM loans ORDER BY borrowed_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list loans", err)
	}
	return collectLoanRecords(rows)
}

func collectLoanRecords(rows pgx.Rows) ([]*queries.LoanRecord, error) {
	defer rows.Close()

	var recs []*queries.LoanRecord
	for rows.Next() {
		rec, err := scanLoanRecord(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan loan row", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read loan rows", err)
	}
	return recs, nil
}

func scanLoanRecord(row pgx.Row) (*queries.LoanRecord, error) {
	var (
		rec        queries.LoanRecord
		returnedAt *time.Time
	)
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.BookID, &rec.BorrowedAt, &rec.DueAt, &returnedAt, &rec.Status); err != nil {
		return nil, err
	}
	rec.ReturnedAt = returnedAt
	return &rec, nil
}
