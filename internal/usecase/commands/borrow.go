package commands

import (
	"context"
	"errors"
	"log/slog"

	"elibrary-borrowing/internal/domain/loan"
	"elibrary-borrowing/internal/infra"
	"elibrary-borrowing/internal/pkg/clock"
	"elibrary-borrowing/internal/pkg/errs"
	"elibrary-borrowing/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	// Policy violations: the caller did something the rules forbid.
	ErrAlreadyBorrowedThisBook = errs.New("book already borrowed and not yet returned")
	ErrActiveLoanLimitReached  = errs.New("another book is still borrowed")
	ErrBookUnavailable         = errs.New("book has no available copies")
	ErrAlreadyReturned         = errs.New("loan already returned")
	ErrNotAuthorized           = errs.New("loan belongs to another user")

	// Referenced entities that no longer exist.
	ErrBookNotFound = errs.New("book not found")
	ErrLoanNotFound = errs.New("loan not found")

	// Remote-transient failures: the caller may retry.
	ErrInventoryUnavailable  = errs.New("failed to check book availability")
	ErrInventoryUpdateFailed = errs.New("failed to update book availability")

	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BorrowCommands interface {
	Borrow(ctx context.Context, userID, bookID uuid.UUID) (*queries.LoanView, error)
	Return(ctx context.Context, loanID, userID uuid.UUID) (*queries.LoanView, error)
}

type borrowUseCaseImpl struct {
	loans         LoanRepository
	inventory     InventoryClient
	borrowQueries queries.BorrowQueries
	clock         clock.Clock
}

func NewBorrowCommands(
	loans LoanRepository,
	inventory InventoryClient,
	borrowQueries queries.BorrowQueries,
	clock clock.Clock,
) BorrowCommands {
	return &borrowUseCaseImpl{
		loans:         loans,
		inventory:     inventory,
		borrowQueries: borrowQueries,
		clock:         clock,
	}
}

// Borrow runs the borrow saga. The remote decrement happens strictly before
// the local loan record is created: a decrement without a loan record can be
// reconciled by hand, a loan record without a decrement would silently
// over-allocate copies. There is no automatic re-increment if the local
// persist fails after the decrement succeeded.
func (u *borrowUseCaseImpl) Borrow(ctx context.Context, userID, bookID uuid.UUID) (*queries.LoanView, error) {
	outstanding, err := u.loans.FindOutstandingByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := loan.CheckEligibility(outstanding, bookID); err != nil {
		switch {
		case errors.Is(err, loan.ErrAlreadyBorrowedThisBook):
			slog.Warn("borrow rejected, same book still out", "user_id", userID, "book_id", bookID)
			return nil, ErrAlreadyBorrowedThisBook
		case errors.Is(err, loan.ErrLoanLimitReached):
			slog.Warn("borrow rejected, loan limit reached", "user_id", userID)
			return nil, ErrActiveLoanLimitReached
		default:
			return nil, err
		}
	}

	copies, err := u.inventory.AvailableCopies(ctx, bookID)
	if err != nil {
		if infra.IsRemoteNotFound(err) {
			return nil, errs.Mark(err, ErrBookNotFound)
		}
		slog.Error("availability check failed", "book_id", bookID, "error", err)
		return nil, errs.Mark(err, ErrInventoryUnavailable)
	}
	if copies == nil || *copies <= 0 {
		slog.Warn("borrow rejected, no copies available", "book_id", bookID)
		return nil, ErrBookUnavailable
	}

	if err := u.inventory.DecrementCopies(ctx, bookID); err != nil {
		if infra.IsRemoteNotFound(err) {
			// The book vanished between the availability check and here.
			return nil, errs.Mark(err, ErrBookNotFound)
		}
		slog.Error("inventory decrement failed", "book_id", bookID, "error", err)
		return nil, errs.Mark(err, ErrInventoryUpdateFailed)
	}

	newLoan := loan.NewLoan(userID, bookID, u.clock.Now())
	if err := u.loans.Create(ctx, newLoan); err != nil {
		// The decrement already happened; the copy count is now off by one
		// until an out-of-band reconciliation picks this up.
		slog.Error("loan persist failed after inventory decrement, manual reconciliation required",
			"user_id", userID, "book_id", bookID, "error", err)
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Lost a race with a concurrent borrow by the same user. The
			// violated index tells us whether it was the same title.
			if infra.ViolatedConstraint(err) == infra.ConstraintOneOutstandingPerUserBook {
				return nil, errs.Mark(err, ErrAlreadyBorrowedThisBook)
			}
			return nil, errs.Mark(err, ErrActiveLoanLimitReached)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("book borrowed", "loan_id", newLoan.ID(), "user_id", userID, "book_id", bookID)
	return u.borrowQueries.GetByID(ctx, newLoan.ID())
}

// Return discharges an existing loan. Unlike Borrow, a not-found from the
// inventory increment is tolerated: the user must always be able to close out
// a loan even when the book has since been deleted, otherwise their single
// loan slot would be trapped forever.
func (u *borrowUseCaseImpl) Return(ctx context.Context, loanID, userID uuid.UUID) (*queries.LoanView, error) {
	l, err := u.loans.FindByID(ctx, loanID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrLoanNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !l.OwnedBy(userID) {
		slog.Warn("return rejected, not the loan owner", "loan_id", loanID, "user_id", userID)
		return nil, ErrNotAuthorized
	}
	if !l.IsOutstanding() {
		return nil, ErrAlreadyReturned
	}

	if err := u.inventory.IncrementCopies(ctx, l.BookID()); err != nil {
		if infra.IsRemoteNotFound(err) {
			slog.Warn("book deleted since borrowing, skipping increment",
				"loan_id", loanID, "book_id", l.BookID())
		} else {
			slog.Error("inventory increment failed, loan stays outstanding",
				"loan_id", loanID, "book_id", l.BookID(), "error", err)
			return nil, errs.Mark(err, ErrInventoryUpdateFailed)
		}
	}

	if err := l.Return(u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrAlreadyReturned)
	}
	if err := u.loans.MarkReturned(ctx, l); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// A concurrent return won; the loan is already closed.
			return nil, errs.Mark(err, ErrAlreadyReturned)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("book returned", "loan_id", loanID, "user_id", userID, "book_id", l.BookID())
	return u.borrowQueries.GetByID(ctx, loanID)
}
