package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/library-service/internal/models"
	"github.com/sbilibin2017/library-service/internal/validation"
)

// BookService manages the catalogue.
type BookService struct {
	books  BookStore
	genres GenreStore
}

// NewBookService creates a new BookService.
func NewBookService(books BookStore, genres GenreStore) *BookService {
	return &BookService{books: books, genres: genres}
}

// Create validates the request, checks the genre and stores an available book.
func (s *BookService) Create(ctx context.Context, req models.CreateBookRequest) (*models.BookDB, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var published *time.Time
	if req.PublishedYear != nil {
		t, err := validation.ParseDate(*req.PublishedYear)
		if err != nil {
			return nil, err
		}
		published = &t
	}

	if req.GenreID != nil {
		if err := s.checkGenre(ctx, *req.GenreID); err != nil {
			return nil, err
		}
	}

	book, err := s.books.Insert(ctx, models.NewBook{
		Title:         req.Title,
		Author:        req.Author,
		PublishedYear: published,
		Description:   req.Description,
		GenreID:       req.GenreID,
	})
	if err != nil {
		return nil, storageError("insert book", err)
	}
	return book, nil
}

// Get returns the book or models.ErrBookNotFound.
func (s *BookService) Get(ctx context.Context, id int64) (*models.BookDB, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, storageError("get book", err)
	}
	if book == nil {
		return nil, models.ErrBookNotFound
	}
	return book, nil
}

func (s *BookService) List(ctx context.Context, filter models.BookFilter) ([]models.BookDB, error) {
	books, err := s.books.Find(ctx, filter)
	if err != nil {
		return nil, storageError("list books", err)
	}
	return books, nil
}

// Update applies the non-nil fields of req. Only title, author, description
// and genre_id can change; an empty update returns the current book.
func (s *BookService) Update(ctx context.Context, id int64, req models.UpdateBookRequest) (*models.BookDB, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Author != nil {
		fields["author"] = *req.Author
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.GenreID != nil {
		fields["genre_id"] = *req.GenreID
	}

	if len(fields) == 0 {
		return s.Get(ctx, id)
	}

	if req.GenreID != nil {
		if _, err := s.Get(ctx, id); err != nil {
			return nil, err
		}
		if err := s.checkGenre(ctx, *req.GenreID); err != nil {
			return nil, err
		}
	}

	updated, err := s.books.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, storageError("update book", err)
	}
	if !updated {
		return nil, models.ErrBookNotFound
	}
	return s.Get(ctx, id)
}

func (s *BookService) checkGenre(ctx context.Context, id int64) error {
	genre, err := s.genres.GetByID(ctx, id)
	if err != nil {
		return storageError("get genre", err)
	}
	if genre == nil {
		return models.ErrGenreNotFound
	}
	return nil
}
