package repository

import (
	"context"
	"errors"
	"time"

	"elibrary-borrowing/internal/domain/loan"
	"elibrary-borrowing/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

// LoanRepository is the write-side store for loan rows. The partial unique
// indexes on (user_id) and (user_id, book_id) for outstanding loans back up
// the orchestrator's policy checks under concurrency.
type LoanRepository struct {
	db *pgxpool.Pool
}

func NewLoanRepository(db *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{db: db}
}

func (r *LoanRepository) Create(ctx context.Context, l *loan.Loan) error {
	const q = `
		INSERT INTO loans (id, user_id, book_id, borrowed_at, due_at, returned_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, q,
		l.ID(), l.UserID(), l.BookID(), l.BorrowedAt(), l.DueAt(), l.ReturnedAt(), l.Status().String())
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return infra.WrapDuplicateKeyErr("loan conflicts with an outstanding loan", constraint, err)
		}
		return infra.WrapRepoErr("failed to create loan", err)
	}
	return nil
}

func (r *LoanRepository) FindByID(ctx context.Context, id uuid.UUID) (*loan.Loan, error) {
	const q = `
		SELECT id, user_id, book_id, borrowed_at, due_at, returned_at, status
		FROM loans
		WHERE id = $1`

	l, err := scanLoan(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("loan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find loan by ID", err)
	}
	return l, nil
}

func (r *LoanRepository) FindOutstandingByUser(ctx context.Context, userID uuid.UUID) ([]*loan.Loan, error) {
	const q = `
		SELECT id, user_id, book_id, borrowed_at, due_at, returned_at, status
		FROM loans
		WHERE user_id = $1 AND status IN ('BORROWED', 'OVERDUE')
		ORDER BY borrowed_at`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find outstanding loans", err)
	}
	defer rows.Close()

	var loans []*loan.Loan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan loan row", err)
		}
		loans = append(loans, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read loan rows", err)
	}
	return loans, nil
}

// MarkReturned persists the Borrowed/Overdue -> Returned transition. The
// status guard in the WHERE clause makes concurrent returns lose cleanly:
// zero rows affected maps to not-found.
func (r *LoanRepository) MarkReturned(ctx context.Context, l *loan.Loan) error {
	const q = `
		UPDATE loans
		SET returned_at = $2, status = $3
		WHERE id = $1 AND status IN ('BORROWED', 'OVERDUE')`

	tag, err := r.db.Exec(ctx, q, l.ID(), l.ReturnedAt(), l.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to mark loan returned", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("loan not outstanding", nil, infra.KindNotFound)
	}
	return nil
}

// MarkOverdueBefore flips every borrowed loan past its due date to overdue.
// Used by the background sweeper, never by the request path.
func (r *LoanRepository) MarkOverdueBefore(ctx context.Context, now time.Time) (int64, error) {
	const q = `
		UPDATE loans
		SET status = 'OVERDUE'
		WHERE status = 'BORROWED' AND due_at < $1`

	tag, err := r.db.Exec(ctx, q, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark overdue loans", err)
	}
	return tag.RowsAffected(), nil
}

func scanLoan(row pgx.Row) (*loan.Loan, error) {
	var (
		id, userID, bookID uuid.UUID
		borrowedAt, dueAt  time.Time
		returnedAt         *time.Time
		status             string
	)
	if err := row.Scan(&id, &userID, &bookID, &borrowedAt, &dueAt, &returnedAt, &status); err != nil {
		return nil, err
	}
	return loan.Reconstruct(id, userID, bookID, borrowedAt, dueAt, returnedAt, loan.Status(status))
}

// uniqueViolation reports whether err is a unique-index violation and, when
// it is, which index Postgres named in the error.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return pgErr.ConstraintName, true
	}
	return "", false
}
