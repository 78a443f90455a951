//go:build unit

package loan_test

import (
	"testing"
	"time"

	"elibrary-borrowing/internal/domain/loan"
	"elibrary-borrowing/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDueAt(t *testing.T) {
	borrowedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), loan.DueAt(borrowedAt))
}

func TestCheckEligibility(t *testing.T) {
	userID := uuid.New()
	bookID := uuid.New()

	outstanding := func(book uuid.UUID, status loan.Status) *loan.Loan {
		l, err := builder.NewLoanBuilder().
			WithUserID(userID).
			WithBookID(book).
			WithStatus(status).
			BuildDomain()
		require.NoError(t, err)
		return l
	}

	tests := []struct {
		name        string
		outstanding []*loan.Loan
		errIs       error
	}{
		{
			name:        "no outstanding loans",
			outstanding: nil,
		},
		{
			name:        "same book still out",
			outstanding: []*loan.Loan{outstanding(bookID, loan.StatusBorrowed)},
			errIs:       loan.ErrAlreadyBorrowedThisBook,
		},
		{
			name:        "another book still out",
			outstanding: []*loan.Loan{outstanding(uuid.New(), loan.StatusBorrowed)},
			errIs:       loan.ErrLoanLimitReached,
		},
		{
			name:        "overdue loan still occupies the slot",
			outstanding: []*loan.Loan{outstanding(uuid.New(), loan.StatusOverdue)},
			errIs:       loan.ErrLoanLimitReached,
		},
		{
			name: "same-book violation wins over the limit",
			outstanding: []*loan.Loan{
				outstanding(bookID, loan.StatusBorrowed),
			},
			errIs: loan.ErrAlreadyBorrowedThisBook,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loan.CheckEligibility(tt.outstanding, bookID)
			if tt.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}
