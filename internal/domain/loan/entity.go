package loan

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyReturned = errors.New("loan already returned")
	ErrInvalidStatus   = errors.New("invalid loan status")
)

type Loan struct {
	id         uuid.UUID
	userID     uuid.UUID
	bookID     uuid.UUID
	borrowedAt time.Time
	dueAt      time.Time
	returnedAt *time.Time
	status     Status
}

// NewLoan creates an active loan starting at now. The due date is fixed at
// creation and never recomputed.
func NewLoan(userID, bookID uuid.UUID, now time.Time) *Loan {
	return &Loan{
		id:         uuid.New(),
		userID:     userID,
		bookID:     bookID,
		borrowedAt: now,
		dueAt:      DueAt(now),
		status:     StatusBorrowed,
	}
}

func Reconstruct(
	id, userID, bookID uuid.UUID,
	borrowedAt, dueAt time.Time,
	returnedAt *time.Time,
	status Status,
) (*Loan, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Loan{
		id:         id,
		userID:     userID,
		bookID:     bookID,
		borrowedAt: borrowedAt,
		dueAt:      dueAt,
		returnedAt: returnedAt,
		status:     status,
	}, nil
}

// Return closes out the loan. Only outstanding loans (borrowed or overdue)
// can be returned; returning twice fails the second time.
func (l *Loan) Return(now time.Time) error {
	if !l.status.IsOutstanding() {
		return ErrAlreadyReturned
	}
	if now.Before(l.borrowedAt) {
		now = l.borrowedAt
	}
	t := now
	l.returnedAt = &t
	l.status = StatusReturned
	return nil
}

func (l *Loan) OwnedBy(userID uuid.UUID) bool {
	return l.userID == userID
}

func (l *Loan) IsOutstanding() bool {
	return l.status.IsOutstanding()
}

func (l *Loan) ID() uuid.UUID          { return l.id }
func (l *Loan) UserID() uuid.UUID      { return l.userID }
func (l *Loan) BookID() uuid.UUID      { return l.bookID }
func (l *Loan) BorrowedAt() time.Time  { return l.borrowedAt }
func (l *Loan) DueAt() time.Time       { return l.dueAt }
func (l *Loan) ReturnedAt() *time.Time { return l.returnedAt }
func (l *Loan) Status() Status         { return l.status }
