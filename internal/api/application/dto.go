package application

import (
	"context"
	"time"

	catalogdomain "muscat-v0/internal/catalog/domain"
	"muscat-v0/internal/shared/validation"
)

// Every request payload carries its own validation rules
var (
	_ validation.Validator = CreateArtistRequest{}
	_ validation.Validator = CreateAlbumRequest{}
	_ validation.Validator = SubmitRatingRequest{}
)

// releaseDateLayout is the required calendar date form for album release dates
const releaseDateLayout = "2006-01-02"

// CreateArtistRequest is the payload for registering an artist
type CreateArtistRequest struct {
	Name string `json:"name"`
}

func (r CreateArtistRequest) Valid(ctx context.Context) map[string]string {
	problems := make(map[string]string)
	if r.Name == "" {
		problems["name"] = "name cannot be empty"
	}
	return problems
}

// CreateAlbumRequest is the payload for registering an album under an artist
type CreateAlbumRequest struct {
	ArtistName  string  `json:"artist_name"`
	Name        string  `json:"name"`
	ReleaseDate string  `json:"release_date"`
	Price       float64 `json:"price"`
}

func (r CreateAlbumRequest) Valid(ctx context.Context) map[string]string {
	problems := make(map[string]string)
	if r.ArtistName == "" {
		problems["artist_name"] = "artist_name cannot be empty"
	}
	if r.Name == "" {
		problems["name"] = "name cannot be empty"
	}
	if _, err := time.Parse(releaseDateLayout, r.ReleaseDate); err != nil {
		problems["release_date"] = "release_date must be in YYYY-MM-DD format"
	}
	if r.Price < 0 {
		problems["price"] = "price cannot be negative"
	}
	return problems
}

// SubmitRatingRequest is the payload for rating an album by name
type SubmitRatingRequest struct {
	AlbumName string `json:"album_name"`
	Rating    int    `json:"rating"`
}

func (r SubmitRatingRequest) Valid(ctx context.Context) map[string]string {
	problems := make(map[string]string)
	if r.AlbumName == "" {
		problems["album_name"] = "album_name cannot be empty"
	}
	if r.Rating < 1 || r.Rating > 5 {
		problems["rating"] = "rating must be between 1 and 5"
	}
	return problems
}

// ArtistResponse represents a created artist in API responses
type ArtistResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AlbumSummaryResponse represents an album inside an artist detail
type AlbumSummaryResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	ReleaseDate   string  `json:"release_date"`
	Price         float64 `json:"price"`
	AverageRating float64 `json:"average_rating"`
}

// AlbumResponse represents a denormalized album record in API responses
type AlbumResponse struct {
	ID            int64   `json:"id"`
	ArtistID      int64   `json:"artist_id"`
	ArtistName    string  `json:"artist_name"`
	Name          string  `json:"name"`
	ReleaseDate   string  `json:"release_date"`
	Price         float64 `json:"price"`
	AverageRating float64 `json:"average_rating"`
}

// ArtistDetailResponse represents an artist with its albums in API responses
type ArtistDetailResponse struct {
	ID     int64                  `json:"id"`
	Name   string                 `json:"name"`
	Albums []AlbumSummaryResponse `json:"albums"`
}

// RatingResponse represents the outcome of a rating submission
type RatingResponse struct {
	AlbumID       int64   `json:"album_id"`
	AverageRating float64 `json:"average_rating"`
}

// ErrorResponse represents an error in API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries per-field problems for a rejected payload
type ValidationErrorResponse struct {
	Error    string            `json:"error"`
	Problems map[string]string `json:"problems"`
}

// ToArtistResponse converts a domain artist to an API response
func ToArtistResponse(a catalogdomain.Artist) ArtistResponse {
	return ArtistResponse{
		ID:   a.ID,
		Name: a.Name,
	}
}

// ToAlbumResponse converts a denormalized domain album to an API response
func ToAlbumResponse(a catalogdomain.AlbumWithArtist) AlbumResponse {
	return AlbumResponse{
		ID:            a.ID,
		ArtistID:      a.ArtistID,
		ArtistName:    a.ArtistName,
		Name:          a.Name,
		ReleaseDate:   a.ReleaseDate,
		Price:         a.Price,
		AverageRating: a.AverageRating,
	}
}

// ToArtistDetailResponse converts a domain artist detail to an API response
func ToArtistDetailResponse(d catalogdomain.ArtistDetail) ArtistDetailResponse {
	albums := make([]AlbumSummaryResponse, len(d.Albums))
	for i, a := range d.Albums {
		albums[i] = AlbumSummaryResponse{
			ID:            a.ID,
			Name:          a.Name,
			ReleaseDate:   a.ReleaseDate,
			Price:         a.Price,
			AverageRating: a.AverageRating,
		}
	}
	return ArtistDetailResponse{
		ID:     d.ID,
		Name:   d.Name,
		Albums: albums,
	}
}

// ToRatingResponse converts a domain rating result to an API response
func ToRatingResponse(r catalogdomain.RatingResult) RatingResponse {
	return RatingResponse{
		AlbumID:       r.AlbumID,
		AverageRating: r.AverageRating,
	}
}

// SearchResponse is the closed set of search response shapes. Each variant
// marshals directly to its wire form, so handlers can encode the value
// without switching on it.
type SearchResponse interface {
	searchResponse()
}

// ArtistSearchResponse renders an artist hit as a flat artist detail object
type ArtistSearchResponse struct {
	ArtistDetailResponse
}

// AlbumListSearchResponse renders album hits as an object with an albums list
type AlbumListSearchResponse struct {
	Albums []AlbumResponse `json:"albums"`
}

// EmptySearchResponse renders as an empty object, not an error
type EmptySearchResponse struct{}

func (ArtistSearchResponse) searchResponse()    {}
func (AlbumListSearchResponse) searchResponse() {}
func (EmptySearchResponse) searchResponse()     {}
