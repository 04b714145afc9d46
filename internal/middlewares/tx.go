package middlewares

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/library-service/internal/logger"
)

const internalErrorBody = `{"error":"Internal server error"}` + "\n"

// TxMiddleware runs every request in its own READ COMMITTED transaction.
//
// The response is buffered until the transaction ends: a status below 400
// commits, anything else rolls back. When the commit fails the buffered
// response is dropped and a 500 is written instead. Hooks registered with
// AfterCommit run only after a successful commit.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			state, err := begin(r.Context(), db)
			if err != nil {
				log.Errorw("failed to begin transaction", "error", err)
				writeInternalError(w)
				return
			}
			tx := state.tx

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			bw := newBufferedWriter(w)
			next.ServeHTTP(bw, r.WithContext(context.WithValue(r.Context(), txKey, state)))

			if bw.status >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				log.Errorw("failed to commit transaction", "error", err)
				writeInternalError(w)
				return
			}

			bw.flush()
			state.runHooks()
		})
	}
}

// RunInTx runs fn in its own READ COMMITTED transaction, bound to the context
// fn receives the same way TxMiddleware binds it to a request. An error from
// fn rolls back and is returned as is. Hooks registered with AfterCommit run
// after a successful commit.
func RunInTx(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context) error) error {
	state, err := begin(ctx, db)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	tx := state.tx

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey, state)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.FromContext(ctx).Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	state.runHooks()
	return nil
}

func begin(ctx context.Context, db *sqlx.DB) (*txState, error) {
	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, err
	}
	return &txState{tx: tx}, nil
}

type txState struct {
	tx          *sqlx.Tx
	afterCommit []func()
}

func (s *txState) runHooks() {
	for _, fn := range s.afterCommit {
		fn()
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

func stateFromContext(ctx context.Context) *txState {
	state, _ := ctx.Value(txKey).(*txState)
	return state
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	if state := stateFromContext(ctx); state != nil {
		return state.tx
	}
	return nil
}

// AfterCommit defers fn until the request transaction has committed. fn is
// dropped when the transaction rolls back. Without a transaction in ctx fn
// runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	state := stateFromContext(ctx)
	if state == nil {
		fn()
		return
	}
	state.afterCommit = append(state.afterCommit, fn)
}

// bufferedWriter holds the status and body until the transaction outcome
// is known. Headers go straight to the underlying writer's map since they
// are not sent before WriteHeader.
type bufferedWriter struct {
	w      http.ResponseWriter
	status int
	body   bytes.Buffer
}

func newBufferedWriter(w http.ResponseWriter) *bufferedWriter {
	return &bufferedWriter{w: w, status: http.StatusOK}
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.w.Header()
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.status = code
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	return bw.body.Write(b)
}

func (bw *bufferedWriter) flush() {
	bw.w.WriteHeader(bw.status)
	bw.body.WriteTo(bw.w)
}

func writeInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Del("Content-Length")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(internalErrorBody))
}
