package queries

import (
	"time"

	"github.com/google/uuid"
)

// LoanRecord is the persisted loan row as the read store returns it, before
// any enrichment.
type LoanRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	BookID     uuid.UUID
	BorrowedAt time.Time
	DueAt      time.Time
	ReturnedAt *time.Time
	Status     string
}

// BookSummary is the display data owned by the book service.
type BookSummary struct {
	Title    string
	Author   string
	FilePath string
}

// UserSummary is the display data owned by the auth service.
type UserSummary struct {
	Email string
	Name  string
}

// LoanView is the outward-facing loan representation: the persisted record
// plus best-effort book and user details. Enrichment never alters the record.
type LoanView struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	BookID       uuid.UUID
	BorrowedAt   time.Time
	DueAt        time.Time
	ReturnedAt   *time.Time
	Status       string
	BookTitle    string
	BookAuthor   string
	BookFilePath *string
	UserEmail    string
	UserName     string
}
