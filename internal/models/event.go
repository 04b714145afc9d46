package models

// Domain event types published after a successful commit.
const (
	EventBorrowCreated  = "borrow.created"
	EventBorrowReturned = "borrow.returned"
	EventRatingCreated  = "rating.created"
)

// Event is a domain event published to Kafka.
type Event struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event
	Type      string `json:"type"`      // One of the Event* constants
	Timestamp int64  `json:"timestamp"` // Unix seconds
	UserID    int64  `json:"user_id"`   // Acting user
	BookID    int64  `json:"book_id"`   // Affected book
	EntityID  int64  `json:"entity_id"` // Borrow record or rating id
}

// ErrorResponse is the JSON error envelope of every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Book not found
	Error string `json:"error"`

	// Rejected fields, validation errors only
	Fields []string `json:"fields,omitempty"`
}
