package loan

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Period is how long a borrower may keep a book.
const Period = 14 * 24 * time.Hour

var (
	ErrAlreadyBorrowedThisBook = errors.New("book already borrowed by this user")
	ErrLoanLimitReached        = errors.New("active loan limit reached")
)

func DueAt(borrowedAt time.Time) time.Time {
	return borrowedAt.Add(Period)
}

// CheckEligibility applies the borrowing policy against the user's outstanding
// loans: at most one loan at a time, and never a second copy of the same book.
// The same-book violation is reported first so the caller gets the more
// specific reason.
func CheckEligibility(outstanding []*Loan, bookID uuid.UUID) error {
	for _, l := range outstanding {
		if l.BookID() == bookID {
			return ErrAlreadyBorrowedThisBook
		}
	}
	if len(outstanding) > 0 {
		return ErrLoanLimitReached
	}
	return nil
}
