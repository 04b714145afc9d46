// Command seed loads sample genres, users, books, ratings and borrows into
// the library database. Running it again skips records that already exist.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/sbilibin2017/library-service/internal/events"
	"github.com/sbilibin2017/library-service/internal/logger"
	"github.com/sbilibin2017/library-service/internal/middlewares"
	"github.com/sbilibin2017/library-service/internal/models"
	"github.com/sbilibin2017/library-service/internal/repositories"
	"github.com/sbilibin2017/library-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var sampleGenres = []string{"Fiction", "Philosophy", "Science", "History"}

var sampleUsers = []models.CreateUserRequest{
	{Name: "Alice Reader", Email: "alice@example.com", Password: "password123"},
	{Name: "Bob Borrower", Email: "bob@example.com", Password: "password123"},
	{Name: "Carol Critic", Email: "carol@example.com", Password: "password123"},
}

type sampleBook struct {
	Title     string
	Author    string
	Published string
	Genre     string
}

var sampleBooks = []sampleBook{
	{Title: "1984", Author: "George Orwell", Published: "1949-06-08", Genre: "Fiction"},
	{Title: "Meditations", Author: "Marcus Aurelius", Published: "2002-05-14", Genre: "Philosophy"},
	{Title: "A Brief History of Time", Author: "Stephen Hawking", Published: "1988-04-01", Genre: "Science"},
	{Title: "The Guns of August", Author: "Barbara Tuchman", Published: "1962-01-01", Genre: "History"},
}

// sampleRatings and sampleBorrows reference users and books by index.
var sampleRatings = []struct {
	User, Book, Score int
	Review            string
}{
	{User: 0, Book: 0, Score: 5, Review: "Unsettling and brilliant."},
	{User: 1, Book: 0, Score: 4, Review: "Still relevant."},
	{User: 2, Book: 1, Score: 3, Review: "Dense but rewarding."},
	{User: 0, Book: 2, Score: 4},
}

var sampleBorrows = []struct {
	User, Book int
	DueDate    string
}{
	{User: 1, Book: 2, DueDate: "2030-01-31"},
	{User: 2, Book: 3, DueDate: "2030-02-28"},
}

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	_ = godotenv.Load(*configPath)

	if err := logger.Initialize(getEnv("APP_LOG_LEVEL", "info")); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Log.Sync()

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_PORT", "5432"),
		getEnv("POSTGRES_DB", "library"),
	)

	ctx := context.Background()
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatalf("PostgreSQL connection error: %v", err)
	}
	defer db.Close()

	if err := repositories.Migrate(ctx, db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := seed(ctx, db); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	logger.Log.Info("Sample data loaded")
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

// seeder resolves sample records to ids, creating the ones that are missing.
type seeder struct {
	db *sqlx.DB

	users   *services.UserService
	genres  *services.GenreService
	books   *services.BookService
	borrows *services.BorrowService
	ratings *services.RatingService

	userRepo *repositories.UserRepository
}

func newSeeder(db *sqlx.DB) *seeder {
	userRepo := repositories.NewUserRepository(db, middlewares.GetTxFromContext)
	genreRepo := repositories.NewGenreRepository(db, middlewares.GetTxFromContext)
	bookRepo := repositories.NewBookRepository(db, middlewares.GetTxFromContext)
	borrowRepo := repositories.NewBorrowRepository(db, middlewares.GetTxFromContext)
	ratingRepo := repositories.NewRatingRepository(db, middlewares.GetTxFromContext)

	// No writer: seeded changes are not announced as events.
	publisher := events.NewPublisher(nil)

	return &seeder{
		db:       db,
		users:    services.NewUserService(userRepo),
		genres:   services.NewGenreService(genreRepo, nil, middlewares.AfterCommit),
		books:    services.NewBookService(bookRepo, genreRepo),
		borrows:  services.NewBorrowService(userRepo, bookRepo, borrowRepo, publisher, middlewares.AfterCommit),
		ratings:  services.NewRatingService(userRepo, bookRepo, ratingRepo, publisher, middlewares.AfterCommit),
		userRepo: userRepo,
	}
}

// inTx writes one sample record in its own transaction. Records that
// already exist (ignore) roll back and are skipped.
func (s *seeder) inTx(ctx context.Context, ignore error, fn func(ctx context.Context) error) error {
	err := middlewares.RunInTx(ctx, s.db, fn)
	if ignore != nil && errors.Is(err, ignore) {
		return nil
	}
	return err
}

// seed writes every sample record in its own transaction, the way a request would.
func seed(ctx context.Context, db *sqlx.DB) error {
	s := newSeeder(db)

	genreIDs, err := s.seedGenres(ctx)
	if err != nil {
		return err
	}
	userIDs, err := s.seedUsers(ctx)
	if err != nil {
		return err
	}
	bookIDs, err := s.seedBooks(ctx, genreIDs)
	if err != nil {
		return err
	}

	for _, r := range sampleRatings {
		req := models.CreateRatingRequest{UserID: &userIDs[r.User], BookID: &bookIDs[r.Book], Rating: &r.Score}
		if r.Review != "" {
			req.Review = &r.Review
		}
		err := s.inTx(ctx, models.ErrDuplicateRating, func(ctx context.Context) error {
			_, err := s.ratings.Create(ctx, req)
			return err
		})
		if err != nil {
			return fmt.Errorf("rating %d/%d: %w", r.User, r.Book, err)
		}
	}

	for _, b := range sampleBorrows {
		req := models.CreateBorrowRequest{UserID: &userIDs[b.User], BookID: &bookIDs[b.Book], DueDate: &b.DueDate}
		err := s.inTx(ctx, models.ErrBookUnavailable, func(ctx context.Context) error {
			_, err := s.borrows.Create(ctx, req)
			return err
		})
		if err != nil {
			return fmt.Errorf("borrow %d/%d: %w", b.User, b.Book, err)
		}
	}

	logger.Log.Infow("Seed complete",
		"genres", len(genreIDs), "users", len(userIDs), "books", len(bookIDs),
		"ratings", len(sampleRatings), "borrows", len(sampleBorrows))
	return nil
}

func (s *seeder) seedGenres(ctx context.Context) (map[string]int64, error) {
	for _, name := range sampleGenres {
		err := s.inTx(ctx, models.ErrGenreExists, func(ctx context.Context) error {
			_, err := s.genres.Create(ctx, models.CreateGenreRequest{Name: name})
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("genre %q: %w", name, err)
		}
	}

	genres, err := s.genres.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int64, len(genres))
	for _, g := range genres {
		ids[g.Name] = g.ID
	}
	return ids, nil
}

func (s *seeder) seedUsers(ctx context.Context) ([]int64, error) {
	existing, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byEmail := make(map[string]int64, len(existing))
	for _, u := range existing {
		byEmail[u.Email] = u.ID
	}

	ids := make([]int64, 0, len(sampleUsers))
	for _, req := range sampleUsers {
		if id, ok := byEmail[req.Email]; ok {
			ids = append(ids, id)
			continue
		}
		var user *models.UserDB
		err := s.inTx(ctx, nil, func(ctx context.Context) (err error) {
			user, err = s.users.Create(ctx, req)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("user %q: %w", req.Email, err)
		}
		ids = append(ids, user.ID)
	}
	return ids, nil
}

// seedBooks treats (author, title) as the identity of a sample book.
func (s *seeder) seedBooks(ctx context.Context, genreIDs map[string]int64) ([]int64, error) {
	ids := make([]int64, 0, len(sampleBooks))
	for _, b := range sampleBooks {
		existing, err := s.books.List(ctx, models.BookFilter{Author: &b.Author})
		if err != nil {
			return nil, err
		}
		if id, ok := findTitle(existing, b.Title); ok {
			ids = append(ids, id)
			continue
		}

		req := models.CreateBookRequest{Title: b.Title, Author: b.Author, PublishedYear: &b.Published}
		if id, ok := genreIDs[b.Genre]; ok {
			req.GenreID = &id
		}
		var book *models.BookDB
		err = s.inTx(ctx, nil, func(ctx context.Context) (err error) {
			book, err = s.books.Create(ctx, req)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("book %q: %w", b.Title, err)
		}
		ids = append(ids, book.ID)
	}
	return ids, nil
}

func findTitle(books []models.BookDB, title string) (int64, bool) {
	for _, b := range books {
		if b.Title == title {
			return b.ID, true
		}
	}
	return 0, false
}
