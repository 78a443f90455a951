//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"elibrary-borrowing/internal/handler/api"
	"elibrary-borrowing/internal/handler/dto/response"
	"elibrary-borrowing/internal/handler/middleware"
	"elibrary-borrowing/internal/pkg/identity"
	"elibrary-borrowing/internal/usecase/commands"
	"elibrary-borrowing/internal/usecase/queries"
	"elibrary-borrowing/tests/common/builder"
	commonhttp "elibrary-borrowing/tests/common/httptest"
	commandsmock "elibrary-borrowing/tests/mock/commands"
	queriesmock "elibrary-borrowing/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BorrowHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCmd     *commandsmock.MockBorrowCommands
	mockQueries *queriesmock.MockBorrowQueries
	router      *gin.Engine
	userID      uuid.UUID
}

func TestBorrowHandlerSuite(t *testing.T) {
	suite.Run(t, new(BorrowHandlerTestSuite))
}

func (s *BorrowHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.mockCmd = commandsmock.NewMockBorrowCommands(s.ctrl)
	s.mockQueries = queriesmock.NewMockBorrowQueries(s.ctrl)
	s.userID = uuid.New()

	handler := api.NewBorrowHandler(s.mockCmd, s.mockQueries)

	s.router = gin.New()
	borrows := s.router.Group("/borrows")
	borrows.Use(middleware.RequireIdentity())
	{
		borrows.POST("", handler.Borrow)
		borrows.GET("/mine", handler.ListMine)
		borrows.PUT("/:id/return", handler.Return)

		admin := borrows.Group("")
		admin.Use(middleware.RequireRole(identity.RoleAdmin))
		{
			admin.GET("", handler.ListAll)
		}
	}
}

func (s *BorrowHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BorrowHandlerTestSuite) TestBorrow() {
	bookID := uuid.New()
	reqBody := map[string]string{"bookId": bookID.String()}

	s.Run("creates the loan", func() {
		view := builder.NewLoanBuilder().WithUserID(s.userID).WithBookID(bookID).BuildView()
		s.mockCmd.EXPECT().
			Borrow(gomock.Any(), s.userID, bookID).
			Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/borrows",
			reqBody, commonhttp.UserHeaders(s.userID.String()))

		var resp response.LoanResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		assert.Equal(s.T(), view.ID, resp.ID)
		assert.Equal(s.T(), view.BookTitle, resp.BookTitle)
		assert.Equal(s.T(), "BORROWED", resp.Status)
	})

	s.Run("missing identity header", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/borrows",
			reqBody, commonhttp.Headers{})

		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("malformed identity header", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/borrows",
			reqBody, commonhttp.Headers{UserID: "not-a-uuid"})

		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("missing book id in body", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/borrows",
			map[string]string{}, commonhttp.UserHeaders(s.userID.String()))

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("policy violations map to 400", func() {
		cases := []struct {
			err error
			msg string
		}{
			{commands.ErrAlreadyBorrowedThisBook, "already borrowed this book"},
			{commands.ErrActiveLoanLimitReached, "return your currently borrowed book"},
			{commands.ErrBookUnavailable, "not currently available"},
		}
		for _, tc := range cases {
			s.mockCmd.EXPECT().
				Borrow(gomock.Any(), s.userID, bookID).
				Return(nil, tc.err)

			w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/borrows",
				reqBody, commonhttp.UserHeaders(s.userID.String()))

			commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, tc.msg)
		}
	})

	s.Run("unknown book maps to 404", func() {
		s.mockCmd.EXPECT().
			Borrow(gomock.Any(), s.userID, bookID).
			Return(nil, commands.ErrBookNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/borrows",
			reqBody, commonhttp.UserHeaders(s.userID.String()))

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Book not found")
	})

	s.Run("inventory trouble maps to 503", func() {
		for _, cmdErr := range []error{commands.ErrInventoryUnavailable, commands.ErrInventoryUpdateFailed} {
			s.mockCmd.EXPECT().
				Borrow(gomock.Any(), s.userID, bookID).
				Return(nil, cmdErr)

			w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/borrows",
				reqBody, commonhttp.UserHeaders(s.userID.String()))

			commonhttp.AssertErrorResponse(s.T(), w, http.StatusServiceUnavailable, "try again later")
		}
	})

	s.Run("unexpected error maps to 500", func() {
		s.mockCmd.EXPECT().
			Borrow(gomock.Any(), s.userID, bookID).
			Return(nil, commands.ErrDatabaseOperationFailed)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/borrows",
			reqBody, commonhttp.UserHeaders(s.userID.String()))

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *BorrowHandlerTestSuite) TestReturn() {
	loanID := uuid.New()
	path := "/borrows/" + loanID.String() + "/return"

	s.Run("closes the loan", func() {
		view := builder.NewLoanBuilder().WithID(loanID).WithUserID(s.userID).BuildView()
		s.mockCmd.EXPECT().
			Return(gomock.Any(), loanID, s.userID).
			Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPut, path,
			nil, commonhttp.UserHeaders(s.userID.String()))

		var resp response.LoanResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		assert.Equal(s.T(), loanID, resp.ID)
	})

	s.Run("invalid loan id in path", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPut, "/borrows/not-a-uuid/return",
			nil, commonhttp.UserHeaders(s.userID.String()))

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid loan ID")
	})

	s.Run("unknown loan maps to 404", func() {
		s.mockCmd.EXPECT().
			Return(gomock.Any(), loanID, s.userID).
			Return(nil, commands.ErrLoanNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPut, path,
			nil, commonhttp.UserHeaders(s.userID.String()))

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not found")
	})

	s.Run("someone else's loan maps to 403", func() {
		s.mockCmd.EXPECT().
			Return(gomock.Any(), loanID, s.userID).
			Return(nil, commands.ErrNotAuthorized)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPut, path,
			nil, commonhttp.UserHeaders(s.userID.String()))

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusForbidden, "not authorized")
	})

	s.Run("double return maps to 400", func() {
		s.mockCmd.EXPECT().
			Return(gomock.Any(), loanID, s.userID).
			Return(nil, commands.ErrAlreadyReturned)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPut, path,
			nil, commonhttp.UserHeaders(s.userID.String()))

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "already been returned")
	})

	s.Run("inventory trouble maps to 503", func() {
		s.mockCmd.EXPECT().
			Return(gomock.Any(), loanID, s.userID).
			Return(nil, commands.ErrInventoryUpdateFailed)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPut, path,
			nil, commonhttp.UserHeaders(s.userID.String()))

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusServiceUnavailable, "try again later")
	})
}

func (s *BorrowHandlerTestSuite) TestListMine() {
	s.Run("lists the caller's loans", func() {
		views := []*queries.LoanView{
			builder.NewLoanBuilder().WithUserID(s.userID).BuildView(),
			builder.NewLoanBuilder().WithUserID(s.userID).BuildView(),
		}
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.userID).
			Return(views, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/borrows/mine",
			nil, commonhttp.UserHeaders(s.userID.String()))

		var resp []*response.LoanResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		assert.Len(s.T(), resp, 2)
	})

	s.Run("empty history is an empty array", func() {
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.userID).
			Return(nil, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/borrows/mine",
			nil, commonhttp.UserHeaders(s.userID.String()))

		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
		assert.Equal(s.T(), "[]", w.Body.String())
	})
}

func (s *BorrowHandlerTestSuite) TestListAll() {
	s.Run("admin lists everything", func() {
		views := []*queries.LoanView{
			builder.NewLoanBuilder().BuildView(),
		}
		s.mockQueries.EXPECT().
			ListAll(gomock.Any()).
			Return(views, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/borrows",
			nil, commonhttp.AdminHeaders(s.userID.String()))

		var resp []*response.LoanResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		assert.Len(s.T(), resp, 1)
	})

	s.Run("non-admin is rejected", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/borrows",
			nil, commonhttp.UserHeaders(s.userID.String()))

		assert.Equal(s.T(), http.StatusForbidden, w.Code)
	})
}
