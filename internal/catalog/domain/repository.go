package domain

import (
	"context"
	"errors"
)

var (
	// ErrArtistNotFound is returned when no artist matches a name or id lookup
	ErrArtistNotFound = errors.New("artist not found")

	// ErrAlbumNotFound is returned when no album matches a name lookup
	ErrAlbumNotFound = errors.New("album not found")

	// ErrAlbumAmbiguous is returned when a name that must resolve to exactly
	// one album matches two or more. Distinct from ErrAlbumNotFound so the
	// caller can surface it as a disambiguation error rather than an absence.
	ErrAlbumAmbiguous = errors.New("multiple albums match this name")
)

// Repository is the catalog storage contract. Name resolution is
// case-insensitive exact matching, with no trimming or normalization
// beyond case folding.
type Repository interface {
	// CreateArtist inserts a new artist. Duplicate names are permitted,
	// even with identical casing; they surface as ambiguity later.
	CreateArtist(ctx context.Context, name string) (*Artist, error)

	// CreateAlbum resolves artistName and inserts an album under the
	// resolved artist with a zero average rating. When several artists
	// share the name case-insensitively, the first row in storage-return
	// order is used.
	CreateAlbum(ctx context.Context, artistName, name, releaseDate string, price float64) (*AlbumWithArtist, error)

	// SubmitRating resolves albumName to exactly one album, records the
	// rating, and recomputes the album's average from all of its ratings.
	SubmitRating(ctx context.Context, albumName string, value int) (*RatingResult, error)

	// GetArtistWithAlbums fetches an artist by id together with its
	// albums in creation order.
	GetArtistWithAlbums(ctx context.Context, artistID int64) (*ArtistDetail, error)

	// Search resolves query to an artist, a set of albums, or nothing.
	Search(ctx context.Context, query string) (SearchResult, error)
}
