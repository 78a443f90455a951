//go:build unit

package builder

import (
	"time"

	"elibrary-borrowing/internal/domain/loan"
	"elibrary-borrowing/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoanBuilder struct {
	id         uuid.UUID
	userID     uuid.UUID
	bookID     uuid.UUID
	borrowedAt time.Time
	returnedAt *time.Time
	status     loan.Status
}

func NewLoanBuilder() *LoanBuilder {
	return &LoanBuilder{
		id:         uuid.New(),
		userID:     uuid.New(),
		bookID:     uuid.New(),
		borrowedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		status:     loan.StatusBorrowed,
	}
}

func (b *LoanBuilder) WithID(id uuid.UUID) *LoanBuilder {
	b.id = id
	return b
}

func (b *LoanBuilder) WithUserID(id uuid.UUID) *LoanBuilder {
	b.userID = id
	return b
}

func (b *LoanBuilder) WithBookID(id uuid.UUID) *LoanBuilder {
	b.bookID = id
	return b
}

func (b *LoanBuilder) WithBorrowedAt(t time.Time) *LoanBuilder {
	b.borrowedAt = t
	return b
}

func (b *LoanBuilder) WithStatus(s loan.Status) *LoanBuilder {
	b.status = s
	return b
}

func (b *LoanBuilder) WithReturnedAt(t time.Time) *LoanBuilder {
	b.returnedAt = &t
	return b
}

func (b *LoanBuilder) BuildDomain() (*loan.Loan, error) {
	return loan.Reconstruct(
		b.id, b.userID, b.bookID,
		b.borrowedAt, loan.DueAt(b.borrowedAt),
		b.returnedAt, b.status,
	)
}

func (b *LoanBuilder) BuildRecord() *queries.LoanRecord {
	return &queries.LoanRecord{
		ID:         b.id,
		UserID:     b.userID,
		BookID:     b.bookID,
		BorrowedAt: b.borrowedAt,
		DueAt:      loan.DueAt(b.borrowedAt),
		ReturnedAt: b.returnedAt,
		Status:     b.status.String(),
	}
}

func (b *LoanBuilder) BuildView() *queries.LoanView {
	return &queries.LoanView{
		ID:         b.id,
		UserID:     b.userID,
		BookID:     b.bookID,
		BorrowedAt: b.borrowedAt,
		DueAt:      loan.DueAt(b.borrowedAt),
		ReturnedAt: b.returnedAt,
		Status:     b.status.String(),
		BookTitle:  "The Go Programming Language",
		BookAuthor: "Donovan & Kernighan",
		UserEmail:  "reader@example.com",
		UserName:   "Reader",
	}
}
