package response

import (
	"time"

	"elibrary-borrowing/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoanResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	BookID       uuid.UUID  `json:"bookId"`
	BorrowedAt   time.Time  `json:"borrowedAt"`
	DueAt        time.Time  `json:"dueAt"`
	ReturnedAt   *time.Time `json:"returnedAt,omitempty"`
	Status       string     `json:"status"`
	BookTitle    string     `json:"bookTitle"`
	BookAuthor   string     `json:"bookAuthor"`
	BookFilePath *string    `json:"bookFilePath,omitempty"`
	UserEmail    string     `json:"userEmail"`
	UserName     string     `json:"userName"`
}

func FromLoanView(view *queries.LoanView) *LoanResponse {
	return &LoanResponse{
		ID:           view.ID,
		UserID:       view.UserID,
		BookID:       view.BookID,
		BorrowedAt:   view.BorrowedAt,
		DueAt:        view.DueAt,
		ReturnedAt:   view.ReturnedAt,
		Status:       view.Status,
		BookTitle:    view.BookTitle,
		BookAuthor:   view.BookAuthor,
		BookFilePath: view.BookFilePath,
		UserEmail:    view.UserEmail,
		UserName:     view.UserName,
	}
}

func FromLoanViews(views []*queries.LoanView) []*LoanResponse {
	out := make([]*LoanResponse, len(views))
	for i, v := range views {
		out[i] = FromLoanView(v)
	}
	return out
}
