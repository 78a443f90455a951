package api

import (
	"errors"
	"net/http"

	reqdto "elibrary-borrowing/internal/handler/dto/request"
	resdto "elibrary-borrowing/internal/handler/dto/response"
	"elibrary-borrowing/internal/handler/httperr"
	"elibrary-borrowing/internal/handler/middleware"
	"elibrary-borrowing/internal/usecase/commands"
	"elibrary-borrowing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BorrowHandler struct {
	borrowCommands commands.BorrowCommands
	borrowQueries  queries.BorrowQueries
}

func NewBorrowHandler(borrowCommands commands.BorrowCommands, borrowQueries queries.BorrowQueries) *BorrowHandler {
	return &BorrowHandler{
		borrowCommands: borrowCommands,
		borrowQueries:  borrowQueries,
	}
}

// @Summary Borrow a book
// @Description Borrow one copy of a book for the authenticated user
// @Tags borrows
// @Accept json
// @Produce json
// @Param request body reqdto.BorrowRequest true "Borrow request"
// @Success 201 {object} resdto.LoanResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /borrows [post]
func (h *BorrowHandler) Borrow(c *gin.Context) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.BorrowRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.Abort(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.borrowCommands.Borrow(c.Request.Context(), id.UserID, req.BookID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAlreadyBorrowedThisBook):
			httperr.Abort(c, http.StatusBadRequest, err, "You have already borrowed this book and have not returned it yet")
		case errors.Is(err, commands.ErrActiveLoanLimitReached):
			httperr.Abort(c, http.StatusBadRequest, err, "You must return your currently borrowed book before borrowing another one")
		case errors.Is(err, commands.ErrBookUnavailable):
			httperr.Abort(c, http.StatusBadRequest, err, "Book is not currently available")
		case errors.Is(err, commands.ErrBookNotFound):
			httperr.Abort(c, http.StatusNotFound, err, "Book not found in the library")
		case errors.Is(err, commands.ErrInventoryUnavailable):
			httperr.Abort(c, http.StatusServiceUnavailable, err, "Failed to check book availability, please try again later")
		case errors.Is(err, commands.ErrInventoryUpdateFailed):
			httperr.Abort(c, http.StatusServiceUnavailable, err, "Failed to update book availability, please try again later")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromLoanView(view))
}

// @Summary Return a borrowed book
// @Description Mark the loan as returned and release the copy
// @Tags borrows
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} resdto.LoanResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /borrows/{id}/return [put]
func (h *BorrowHandler) Return(c *gin.Context) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	loanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid loan ID format")
		return
	}

	view, err := h.borrowCommands.Return(c.Request.Context(), loanID, id.UserID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLoanNotFound):
			httperr.Abort(c, http.StatusNotFound, err, "Borrow record not found")
		case errors.Is(err, commands.ErrNotAuthorized):
			httperr.Abort(c, http.StatusForbidden, err, "You are not authorized to return this book")
		case errors.Is(err, commands.ErrAlreadyReturned):
			httperr.Abort(c, http.StatusBadRequest, err, "This book has already been returned")
		case errors.Is(err, commands.ErrInventoryUpdateFailed):
			httperr.Abort(c, http.StatusServiceUnavailable, err, "Failed to update book availability, please try again later")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoanView(view))
}

// @Summary List own loans
// @Description List every loan of the authenticated user, enriched with book and user details
// @Tags borrows
// @Produce json
// @Success 200 {array} resdto.LoanResponse
// @Failure 401 {object} httperr.Response
// @Router /borrows/mine [get]
func (h *BorrowHandler) ListMine(c *gin.Context) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.borrowQueries.ListByUser(c.Request.Context(), id.UserID)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoanViews(views))
}

// @Summary List all loans
// @Description List every loan in the system (admin only)
// @Tags borrows
// @Produce json
// @Success 200 {array} resdto.LoanResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /borrows [get]
func (h *BorrowHandler) ListAll(c *gin.Context) {
	views, err := h.borrowQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoanViews(views))
}
