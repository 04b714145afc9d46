package services

import (
	"context"

	"github.com/sbilibin2017/library-service/internal/logger"
	"github.com/sbilibin2017/library-service/internal/metrics"
	"github.com/sbilibin2017/library-service/internal/models"
	"github.com/sbilibin2017/library-service/internal/validation"
)

// BorrowService runs the borrow/return workflow. It expects to be called
// inside a request transaction: the book row (borrow) or the record row
// (return) is locked before the rules are checked, and the availability
// flag changes in the same transaction as the record.
type BorrowService struct {
	users      UserStore
	books      BookStore
	borrows    BorrowStore
	events     EventPublisher
	afterWrite Deferrer
}

// NewBorrowService creates a new BorrowService. Events are published through
// afterWrite once the change commits; nil publishes immediately.
func NewBorrowService(users UserStore, books BookStore, borrows BorrowStore, events EventPublisher, afterWrite Deferrer) *BorrowService {
	return &BorrowService{users: users, books: books, borrows: borrows, events: events, afterWrite: afterWrite}
}

// Create opens a borrow of a book for a user.
//
// Missing fields yield a validation error, an unknown user or book
// models.ErrUserNotFound / models.ErrBookNotFound, and a book with an open
// borrow models.ErrBookUnavailable.
func (s *BorrowService) Create(ctx context.Context, req models.CreateBorrowRequest) (record *models.BorrowRecordDB, err error) {
	defer func() { recordViolation(err) }()

	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	dueDate, err := validation.ParseDate(*req.DueDate)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, *req.UserID)
	if err != nil {
		return nil, storageError("get user", err)
	}
	if user == nil {
		return nil, models.ErrUserNotFound
	}

	book, err := s.books.GetByIDForUpdate(ctx, *req.BookID)
	if err != nil {
		return nil, storageError("lock book", err)
	}
	if book == nil {
		return nil, models.ErrBookNotFound
	}

	open, err := s.borrows.FindOpenByBookID(ctx, book.ID)
	if err != nil {
		return nil, storageError("find open borrow", err)
	}
	if open != nil {
		return nil, models.ErrBookUnavailable
	}

	record, err = s.borrows.Insert(ctx, user.ID, book.ID, dueDate)
	if err != nil {
		return nil, storageError("insert borrow", err)
	}
	if err := s.books.SetAvailability(ctx, book.ID, false); err != nil {
		return nil, storageError("mark book unavailable", err)
	}

	logger.FromContext(ctx).Infow("book borrowed", "borrow_id", record.ID, "user_id", user.ID, "book_id", book.ID)
	metrics.BorrowsCreatedTotal.Inc()
	afterCommit(ctx, s.afterWrite, func() {
		s.events.Publish(ctx, models.EventBorrowCreated, user.ID, book.ID, record.ID)
	})

	return record, nil
}

// Return closes an open borrow. An unknown record yields
// models.ErrBorrowNotFound, a closed one models.ErrAlreadyReturned.
func (s *BorrowService) Return(ctx context.Context, id int64) (record *models.BorrowRecordDB, err error) {
	defer func() { recordViolation(err) }()

	current, err := s.borrows.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, storageError("lock borrow", err)
	}
	if current == nil {
		return nil, models.ErrBorrowNotFound
	}
	if !current.IsOpen() {
		return nil, models.ErrAlreadyReturned
	}

	record, err = s.borrows.MarkReturned(ctx, id)
	if err != nil {
		return nil, storageError("mark returned", err)
	}
	if record == nil {
		return nil, models.ErrAlreadyReturned
	}
	if err := s.books.SetAvailability(ctx, record.BookID, true); err != nil {
		return nil, storageError("mark book available", err)
	}

	logger.FromContext(ctx).Infow("book returned", "borrow_id", record.ID, "book_id", record.BookID)
	metrics.BorrowsReturnedTotal.Inc()
	afterCommit(ctx, s.afterWrite, func() {
		s.events.Publish(ctx, models.EventBorrowReturned, record.UserID, record.BookID, record.ID)
	})

	return record, nil
}

// Get returns the record or models.ErrBorrowNotFound.
func (s *BorrowService) Get(ctx context.Context, id int64) (*models.BorrowRecordDB, error) {
	record, err := s.borrows.GetByID(ctx, id)
	if err != nil {
		return nil, storageError("get borrow", err)
	}
	if record == nil {
		return nil, models.ErrBorrowNotFound
	}
	return record, nil
}

func (s *BorrowService) List(ctx context.Context, filter models.BorrowFilter) ([]models.BorrowRecordDB, error) {
	records, err := s.borrows.Find(ctx, filter)
	if err != nil {
		return nil, storageError("list borrows", err)
	}
	return records, nil
}

// ListBorrowed returns the records of books currently out.
func (s *BorrowService) ListBorrowed(ctx context.Context) ([]models.BorrowRecordDB, error) {
	open := true
	return s.List(ctx, models.BorrowFilter{Open: &open})
}
