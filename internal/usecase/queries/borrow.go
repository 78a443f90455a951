package queries

import (
	"context"
	"log/slog"

	"elibrary-borrowing/internal/infra"
	"elibrary-borrowing/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrLoanNotFound = errs.New("loan not found")
	ErrListFailed   = errs.New("failed to list loans")
)

// Placeholder pairs for the three enrichment outcomes. A deleted entity, a
// null-but-successful reply, and a failed call each render differently so the
// operator can tell them apart in the UI.
const (
	DeletedBookPlaceholder = "[Deleted Book]"
	MissingBookPlaceholder = "[Unavailable Book]"
	ErroredBookPlaceholder = "[Error Fetching Book]"
	DeletedUserPlaceholder = "[Deleted User]"
	MissingUserPlaceholder = "[Unavailable User]"
	ErroredUserPlaceholder = "[Error Fetching User]"
)

type LoanReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LoanRecord, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*LoanRecord, error)
	FindAll(ctx context.Context) ([]*LoanRecord, error)
}

type BookCatalog interface {
	BookSummary(ctx context.Context, bookID uuid.UUID) (*BookSummary, error)
}

type UserDirectory interface {
	UserSummary(ctx context.Context, userID uuid.UUID) (*UserSummary, error)
}

type BorrowQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*LoanView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*LoanView, error)
	ListAll(ctx context.Context) ([]*LoanView, error)
}

type borrowQueriesImpl struct {
	readStore LoanReadStore
	books     BookCatalog
	users     UserDirectory
}

func NewBorrowQueries(readStore LoanReadStore, books BookCatalog, users UserDirectory) BorrowQueries {
	return &borrowQueriesImpl{
		readStore: readStore,
		books:     books,
		users:     users,
	}
}

func (q *borrowQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*LoanView, error) {
	rec, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrLoanNotFound)
		}
		return nil, errs.Mark(err, ErrListFailed)
	}
	return q.compose(ctx, rec), nil
}

func (q *borrowQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*LoanView, error) {
	recs, err := q.readStore.FindByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrListFailed)
	}
	return q.composeAll(ctx, recs), nil
}

func (q *borrowQueriesImpl) ListAll(ctx context.Context) ([]*LoanView, error) {
	recs, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrListFailed)
	}
	return q.composeAll(ctx, recs), nil
}

func (q *borrowQueriesImpl) composeAll(ctx context.Context, recs []*LoanRecord) []*LoanView {
	views := make([]*LoanView, len(recs))
	for i, rec := range recs {
		views[i] = q.compose(ctx, rec)
	}
	return views
}

// compose enriches one record with book and user details. Each lookup is
// independent: a failure on one side degrades that side to a placeholder and
// never blocks the other side or the response as a whole.
func (q *borrowQueriesImpl) compose(ctx context.Context, rec *LoanRecord) *LoanView {
	view := &LoanView{
		ID:         rec.ID,
		UserID:     rec.UserID,
		BookID:     rec.BookID,
		BorrowedAt: rec.BorrowedAt,
		DueAt:      rec.DueAt,
		ReturnedAt: rec.ReturnedAt,
		Status:     rec.Status,
	}
	q.enrichBook(ctx, view)
	q.enrichUser(ctx, view)
	return view
}

func (q *borrowQueriesImpl) enrichBook(ctx context.Context, view *LoanView) {
	summary, err := q.books.BookSummary(ctx, view.BookID)
	switch {
	case err != nil && infra.IsRemoteNotFound(err):
		slog.Warn("book no longer exists, rendering placeholder", "book_id", view.BookID)
		view.BookTitle = DeletedBookPlaceholder
		view.BookAuthor = DeletedBookPlaceholder
	case err != nil:
		slog.Error("failed to fetch book details", "book_id", view.BookID, "error", err)
		view.BookTitle = ErroredBookPlaceholder
		view.BookAuthor = ErroredBookPlaceholder
	case summary == nil:
		slog.Warn("book service returned empty details", "book_id", view.BookID)
		view.BookTitle = MissingBookPlaceholder
		view.BookAuthor = MissingBookPlaceholder
	default:
		view.BookTitle = summary.Title
		view.BookAuthor = summary.Author
		if summary.FilePath != "" {
			path := summary.FilePath
			view.BookFilePath = &path
		}
	}
}

func (q *borrowQueriesImpl) enrichUser(ctx context.Context, view *LoanView) {
	summary, err := q.users.UserSummary(ctx, view.UserID)
	switch {
	case err != nil && infra.IsRemoteNotFound(err):
		slog.Warn("user no longer exists, rendering placeholder", "user_id", view.UserID)
		view.UserEmail = DeletedUserPlaceholder
		view.UserName = DeletedUserPlaceholder
	case err != nil:
		slog.Error("failed to fetch user details", "user_id", view.UserID, "error", err)
		view.UserEmail = ErroredUserPlaceholder
		view.UserName = ErroredUserPlaceholder
	case summary == nil:
		slog.Warn("auth service returned empty details", "user_id", view.UserID)
		view.UserEmail = MissingUserPlaceholder
		view.UserName = MissingUserPlaceholder
	default:
		view.UserEmail = summary.Email
		view.UserName = summary.Name
	}
}
