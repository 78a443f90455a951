package remote

import (
	"context"
	"net/http"
	"time"

	"elibrary-borrowing/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookServiceClient covers the inventory operations used by the borrow saga
// and the summary lookup used for display enrichment.
type BookServiceClient struct {
	httpClient
}

func NewBookServiceClient(baseURL string, timeout time.Duration) *BookServiceClient {
	return &BookServiceClient{httpClient: newHTTPClient(baseURL, timeout)}
}

type bookSummaryPayload struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	FilePath string `json:"filePath"`
}

// AvailableCopies returns nil when the book service replies with a JSON null
// count; callers treat that the same as zero.
func (c *BookServiceClient) AvailableCopies(ctx context.Context, bookID uuid.UUID) (*int32, error) {
	var count *int32
	path := "/api/books/" + bookID.String() + "/available-copies"
	if err := c.getJSON(ctx, path, &count); err != nil {
		return nil, err
	}
	return count, nil
}

func (c *BookServiceClient) DecrementCopies(ctx context.Context, bookID uuid.UUID) error {
	_, err := c.do(ctx, http.MethodPost, "/api/books/"+bookID.String()+"/copies/decrement")
	return err
}

func (c *BookServiceClient) IncrementCopies(ctx context.Context, bookID uuid.UUID) error {
	_, err := c.do(ctx, http.MethodPost, "/api/books/"+bookID.String()+"/copies/increment")
	return err
}

func (c *BookServiceClient) BookSummary(ctx context.Context, bookID uuid.UUID) (*queries.BookSummary, error) {
	var payload *bookSummaryPayload
	if err := c.getJSON(ctx, "/api/books/"+bookID.String(), &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		// 200 with a null body: the book service answered but had nothing.
		return nil, nil
	}
	return &queries.BookSummary{
		Title:    payload.Title,
		Author:   payload.Author,
		FilePath: payload.FilePath,
	}, nil
}
