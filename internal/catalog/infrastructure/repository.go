package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"muscat-v0/internal/catalog/domain"
)

const albumSummaryColumns = `id, name, release_date, price, average_rating`

// Repository implements the catalog repository on SQLite. Reads go to the
// read handle, writes to the single-connection write handle.
type Repository struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

// NewRepository creates a new SQLite catalog repository
func NewRepository(readDB, writeDB *sql.DB) *Repository {
	return &Repository{
		readDB:  readDB,
		writeDB: writeDB,
	}
}

// CreateArtist inserts an artist. No uniqueness check: duplicate names are
// tolerated and only surface as ambiguity at resolution time.
func (r *Repository) CreateArtist(ctx context.Context, name string) (*domain.Artist, error) {
	res, err := r.writeDB.ExecContext(ctx, `INSERT INTO artists (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("inserting artist: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading artist id: %w", err)
	}

	return &domain.Artist{ID: id, Name: name}, nil
}

// CreateAlbum resolves artistName case-insensitively and inserts the album
// under the resolved artist. When several artists share the name, the first
// row in storage-return order wins; rejecting that as ambiguous would be
// more consistent with SubmitRating but would change observable behavior.
func (r *Repository) CreateAlbum(ctx context.Context, artistName, name, releaseDate string, price float64) (*domain.AlbumWithArtist, error) {
	var artist domain.Artist
	err := r.readDB.QueryRowContext(ctx,
		`SELECT id, name FROM artists WHERE LOWER(name) = LOWER(?)`, artistName,
	).Scan(&artist.ID, &artist.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolving artist by name: %w", err)
	}

	res, err := r.writeDB.ExecContext(ctx,
		`INSERT INTO albums (artist_id, name, release_date, price, average_rating) VALUES (?, ?, ?, ?, 0)`,
		artist.ID, name, releaseDate, price,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting album: %w", err)
	}

	albumID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading album id: %w", err)
	}

	return &domain.AlbumWithArtist{
		ID:            albumID,
		ArtistID:      artist.ID,
		ArtistName:    artist.Name,
		Name:          name,
		ReleaseDate:   releaseDate,
		Price:         price,
		AverageRating: 0.0,
	}, nil
}

// SubmitRating resolves albumName to exactly one album, then records the
// rating and recomputes the stored average inside one transaction, so a
// concurrent submission cannot observe or overwrite a half-applied update.
func (r *Repository) SubmitRating(ctx context.Context, albumName string, value int) (*domain.RatingResult, error) {
	rows, err := r.readDB.QueryContext(ctx,
		`SELECT id FROM albums WHERE LOWER(name) = LOWER(?)`, albumName)
	if err != nil {
		return nil, fmt.Errorf("resolving album by name: %w", err)
	}
	defer rows.Close()

	var albumIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning album id: %w", err)
		}
		albumIDs = append(albumIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("resolving album by name: %w", err)
	}

	switch {
	case len(albumIDs) == 0:
		return nil, domain.ErrAlbumNotFound
	case len(albumIDs) > 1:
		return nil, domain.ErrAlbumAmbiguous
	}
	albumID := albumIDs[0]

	tx, err := r.writeDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning rating transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO ratings (album_id, rating) VALUES (?, ?)`, albumID, value)
	if err != nil {
		return nil, fmt.Errorf("inserting rating: %w", err)
	}

	// Recompute from the ratings table rather than adjusting incrementally:
	// the stored average stays exactly the mean of the rows that exist.
	var average float64
	err = tx.QueryRowContext(ctx,
		`SELECT AVG(rating) FROM ratings WHERE album_id = ?`, albumID,
	).Scan(&average)
	if err != nil {
		return nil, fmt.Errorf("recomputing average rating: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE albums SET average_rating = ? WHERE id = ?`, average, albumID)
	if err != nil {
		return nil, fmt.Errorf("persisting average rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing rating transaction: %w", err)
	}

	return &domain.RatingResult{AlbumID: albumID, AverageRating: average}, nil
}

// GetArtistWithAlbums fetches an artist by id with its albums in creation order
func (r *Repository) GetArtistWithAlbums(ctx context.Context, artistID int64) (*domain.ArtistDetail, error) {
	var artist domain.Artist
	err := r.readDB.QueryRowContext(ctx,
		`SELECT id, name FROM artists WHERE id = ?`, artistID,
	).Scan(&artist.ID, &artist.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting artist by id: %w", err)
	}

	albums, err := r.albumsForArtist(ctx, artist.ID)
	if err != nil {
		return nil, err
	}

	return &domain.ArtistDetail{
		ID:     artist.ID,
		Name:   artist.Name,
		Albums: albums,
	}, nil
}

// Search tries the query as an artist name first; an artist match wins
// unconditionally, even when an album shares the name. Otherwise every
// album whose name matches is returned, and no match at all is an empty
// result rather than an error.
func (r *Repository) Search(ctx context.Context, query string) (domain.SearchResult, error) {
	var artist domain.Artist
	err := r.readDB.QueryRowContext(ctx,
		`SELECT id, name FROM artists WHERE LOWER(name) = LOWER(?)`, query,
	).Scan(&artist.ID, &artist.Name)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("searching artists: %w", err)
	}

	if err == nil {
		albums, err := r.albumsForArtist(ctx, artist.ID)
		if err != nil {
			return nil, err
		}
		return domain.ArtistSearchResult{Artist: domain.ArtistDetail{
			ID:     artist.ID,
			Name:   artist.Name,
			Albums: albums,
		}}, nil
	}

	rows, err := r.readDB.QueryContext(ctx, `
		SELECT albums.id, albums.artist_id, artists.name, albums.name,
			albums.release_date, albums.price, albums.average_rating
		FROM albums
		JOIN artists ON albums.artist_id = artists.id
		WHERE LOWER(albums.name) = LOWER(?)`, query)
	if err != nil {
		return nil, fmt.Errorf("searching albums: %w", err)
	}
	defer rows.Close()

	var albums []domain.AlbumWithArtist
	for rows.Next() {
		var a domain.AlbumWithArtist
		err := rows.Scan(&a.ID, &a.ArtistID, &a.ArtistName, &a.Name,
			&a.ReleaseDate, &a.Price, &a.AverageRating)
		if err != nil {
			return nil, fmt.Errorf("scanning album: %w", err)
		}
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("searching albums: %w", err)
	}

	if len(albums) == 0 {
		return domain.EmptySearchResult{}, nil
	}
	return domain.AlbumSearchResult{Albums: albums}, nil
}

func (r *Repository) albumsForArtist(ctx context.Context, artistID int64) ([]domain.AlbumSummary, error) {
	rows, err := r.readDB.QueryContext(ctx,
		`SELECT `+albumSummaryColumns+` FROM albums WHERE artist_id = ? ORDER BY id`, artistID)
	if err != nil {
		return nil, fmt.Errorf("listing albums for artist: %w", err)
	}
	defer rows.Close()

	albums := []domain.AlbumSummary{}
	for rows.Next() {
		var a domain.AlbumSummary
		if err := rows.Scan(&a.ID, &a.Name, &a.ReleaseDate, &a.Price, &a.AverageRating); err != nil {
			return nil, fmt.Errorf("scanning album: %w", err)
		}
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing albums for artist: %w", err)
	}

	return albums, nil
}
