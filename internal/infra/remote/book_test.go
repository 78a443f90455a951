//go:build unit

package remote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"elibrary-borrowing/internal/infra"
	"elibrary-borrowing/internal/infra/remote"
	"elibrary-borrowing/internal/pkg/identity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookClient(t *testing.T, handler http.HandlerFunc) *remote.BookServiceClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return remote.NewBookServiceClient(srv.URL, 2*time.Second)
}

func TestAvailableCopies(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	t.Run("returns the count", func(t *testing.T) {
		c := newBookClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/books/"+bookID.String()+"/available-copies", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte("3"))
		})

		count, err := c.AvailableCopies(ctx, bookID)

		require.NoError(t, err)
		require.NotNil(t, count)
		assert.Equal(t, int32(3), *count)
	})

	t.Run("null count stays nil", func(t *testing.T) {
		c := newBookClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte("null"))
		})

		count, err := c.AvailableCopies(ctx, bookID)

		require.NoError(t, err)
		assert.Nil(t, count)
	})

	t.Run("404 classifies as not-found", func(t *testing.T) {
		c := newBookClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := c.AvailableCopies(ctx, bookID)

		assert.True(t, infra.IsRemoteNotFound(err))
	})

	t.Run("500 classifies as failure", func(t *testing.T) {
		c := newBookClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := c.AvailableCopies(ctx, bookID)

		require.Error(t, err)
		assert.True(t, infra.IsCallKind(err, infra.KindRemoteFailure))
		assert.False(t, infra.IsRemoteNotFound(err))
	})

	t.Run("unreachable server classifies as failure", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		c := remote.NewBookServiceClient(srv.URL, time.Second)

		_, err := c.AvailableCopies(ctx, bookID)

		assert.True(t, infra.IsCallKind(err, infra.KindRemoteFailure))
	})

	t.Run("malformed body classifies as failure", func(t *testing.T) {
		c := newBookClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("not json"))
		})

		_, err := c.AvailableCopies(ctx, bookID)

		assert.True(t, infra.IsCallKind(err, infra.KindRemoteFailure))
	})
}

func TestCopyMutations(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	t.Run("decrement posts to the copies endpoint", func(t *testing.T) {
		var gotMethod, gotPath string
		c := newBookClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		})

		err := c.DecrementCopies(ctx, bookID)

		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/api/books/"+bookID.String()+"/copies/decrement", gotPath)
	})

	t.Run("increment posts to the copies endpoint", func(t *testing.T) {
		var gotPath string
		c := newBookClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		})

		err := c.IncrementCopies(ctx, bookID)

		require.NoError(t, err)
		assert.Equal(t, "/api/books/"+bookID.String()+"/copies/increment", gotPath)
	})

	t.Run("decrement of a deleted book is not-found", func(t *testing.T) {
		c := newBookClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		err := c.DecrementCopies(ctx, bookID)

		assert.True(t, infra.IsRemoteNotFound(err))
	})
}

func TestBookSummary(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	t.Run("decodes the summary", func(t *testing.T) {
		c := newBookClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/books/"+bookID.String(), r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"title":"The Go Programming Language","author":"Donovan & Kernighan","filePath":"books/gopl.pdf"}`))
		})

		summary, err := c.BookSummary(ctx, bookID)

		require.NoError(t, err)
		require.NotNil(t, summary)
		assert.Equal(t, "The Go Programming Language", summary.Title)
		assert.Equal(t, "Donovan & Kernighan", summary.Author)
		assert.Equal(t, "books/gopl.pdf", summary.FilePath)
	})

	t.Run("null body yields no summary and no error", func(t *testing.T) {
		c := newBookClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte("null"))
		})

		summary, err := c.BookSummary(ctx, bookID)

		require.NoError(t, err)
		assert.Nil(t, summary)
	})
}

func TestIdentityForwarding(t *testing.T) {
	bookID := uuid.New()
	userID := uuid.New()

	t.Run("caller identity travels as headers", func(t *testing.T) {
		var gotID, gotEmail, gotRoles string
		c := newBookClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotID = r.Header.Get("X-User-ID")
			gotEmail = r.Header.Get("X-User-Email")
			gotRoles = r.Header.Get("X-User-Roles")
			w.Write([]byte("1"))
		})

		ctx := identity.NewContext(context.Background(), identity.Identity{
			UserID: userID,
			Email:  "reader@example.com",
			Roles:  []identity.Role{identity.RoleUser, identity.RoleAdmin},
		})
		_, err := c.AvailableCopies(ctx, bookID)

		require.NoError(t, err)
		assert.Equal(t, userID.String(), gotID)
		assert.Equal(t, "reader@example.com", gotEmail)
		assert.Equal(t, "USER,ADMIN", gotRoles)
	})

	t.Run("no identity means no headers", func(t *testing.T) {
		var hasID bool
		c := newBookClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, hasID = r.Header["X-User-Id"]
			w.Write([]byte("1"))
		})

		_, err := c.AvailableCopies(context.Background(), bookID)

		require.NoError(t, err)
		assert.False(t, hasID)
	})
}
