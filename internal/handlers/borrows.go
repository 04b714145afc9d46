package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/library-service/internal/models"
)

// BorrowCreator defines the interface that the service must implement.
type BorrowCreator interface {
	Create(ctx context.Context, req models.CreateBorrowRequest) (*models.BorrowRecordDB, error)
}

// BorrowReturner closes borrows.
type BorrowReturner interface {
	Return(ctx context.Context, id int64) (*models.BorrowRecordDB, error)
}

// BorrowReader reads borrow records.
type BorrowReader interface {
	Get(ctx context.Context, id int64) (*models.BorrowRecordDB, error)
	List(ctx context.Context, filter models.BorrowFilter) ([]models.BorrowRecordDB, error)
	ListBorrowed(ctx context.Context) ([]models.BorrowRecordDB, error)
}

// NewCreateBorrowHandler returns an HTTP handler that lends a book to a user.
// @Summary Borrow a book
// @Description Opens a borrow record. A book can only have one open borrow at a time.
// @Tags borrows
// @Accept json
// @Produce json
// @Param request body models.CreateBorrowRequest true "Borrow"
// @Success 201 {object} models.BorrowRecordResponse
// @Failure 400 {object} models.ErrorResponse "Missing fields or book not available"
// @Failure 404 {object} models.ErrorResponse "User or book not found"
// @Failure 500 {object} models.ErrorResponse
// @Router /borrow [post]
func NewCreateBorrowHandler(svc BorrowCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateBorrowRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		record, err := svc.Create(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.NewBorrowRecordResponse(record))
	}
}

// NewReturnBorrowHandler returns an HTTP handler that closes a borrow.
// @Summary Return a book
// @Tags borrows
// @Produce json
// @Param id path int true "Borrow record ID"
// @Success 200 {object} models.BorrowRecordResponse
// @Failure 400 {object} models.ErrorResponse "Book already returned"
// @Failure 404 {object} models.ErrorResponse "Borrow record not found"
// @Failure 500 {object} models.ErrorResponse
// @Router /return/{id} [patch]
// @Router /return/{id} [put]
func NewReturnBorrowHandler(svc BorrowReturner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		record, err := svc.Return(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewBorrowRecordResponse(record))
	}
}

// NewListBorrowsHandler returns an HTTP handler that lists borrow records.
// @Summary List borrow records
// @Tags borrows
// @Produce json
// @Param user_id query int false "Filter by user"
// @Param book_id query int false "Filter by book"
// @Param open query bool false "Only open (true) or closed (false) records"
// @Success 200 {array} models.BorrowRecordResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /borrows [get]
func NewListBorrowsHandler(svc BorrowReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			filter models.BorrowFilter
			err    error
		)
		if filter.UserID, err = queryInt64(r, "user_id"); err != nil {
			writeError(w, r, err)
			return
		}
		if filter.BookID, err = queryInt64(r, "book_id"); err != nil {
			writeError(w, r, err)
			return
		}
		if filter.Open, err = queryBool(r, "open"); err != nil {
			writeError(w, r, err)
			return
		}

		records, err := svc.List(r.Context(), filter)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewBorrowRecordResponses(records))
	}
}

// NewListBorrowedBooksHandler returns an HTTP handler that lists the books currently out.
// @Summary List open borrows
// @Tags borrows
// @Produce json
// @Success 200 {array} models.BorrowRecordResponse
// @Router /borrowed-books [get]
func NewListBorrowedBooksHandler(svc BorrowReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := svc.ListBorrowed(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewBorrowRecordResponses(records))
	}
}

// NewGetBorrowHandler returns an HTTP handler that fetches one borrow record.
// @Summary Get a borrow record
// @Tags borrows
// @Produce json
// @Param id path int true "Borrow record ID"
// @Success 200 {object} models.BorrowRecordResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /borrows/{id} [get]
func NewGetBorrowHandler(svc BorrowReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		record, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewBorrowRecordResponse(record))
	}
}
