package models

// GenreDB represents a genre row
type GenreDB struct {
	ID   int64  `json:"id" db:"id"`     // Primary key
	Name string `json:"name" db:"name"` // Unique genre name
}

// CreateGenreRequest represents the JSON body for creating a genre
// swagger:model CreateGenreRequest
type CreateGenreRequest struct {
	// Genre name
	// required: true
	// example: Philosophy
	Name string `json:"name" validate:"required,notblank,max=100"`
}

// GenreResponse is the transport record of a genre
// swagger:model GenreResponse
type GenreResponse struct {
	ID   int64  `json:"id" example:"3"`
	Name string `json:"name" example:"Philosophy"`
}

func NewGenreResponse(g *GenreDB) GenreResponse {
	return GenreResponse{ID: g.ID, Name: g.Name}
}

func NewGenreResponses(genres []GenreDB) []GenreResponse {
	out := make([]GenreResponse, 0, len(genres))
	for i := range genres {
		out = append(out, NewGenreResponse(&genres[i]))
	}
	return out
}
