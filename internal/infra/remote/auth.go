package remote

import (
	"context"
	"time"

	"elibrary-borrowing/internal/usecase/queries"

	"github.com/google/uuid"
)

// AuthServiceClient fetches user profiles for display enrichment.
type AuthServiceClient struct {
	httpClient
}

func NewAuthServiceClient(baseURL string, timeout time.Duration) *AuthServiceClient {
	return &AuthServiceClient{httpClient: newHTTPClient(baseURL, timeout)}
}

type userSummaryPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (c *AuthServiceClient) UserSummary(ctx context.Context, userID uuid.UUID) (*queries.UserSummary, error) {
	var payload *userSummaryPayload
	if err := c.getJSON(ctx, "/api/users/"+userID.String(), &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, nil
	}
	return &queries.UserSummary{
		Email: payload.Email,
		Name:  payload.Name,
	}, nil
}
