package request

import "github.com/google/uuid"

type BorrowRequest struct {
	BookID uuid.UUID `json:"bookId" binding:"required"`
}
