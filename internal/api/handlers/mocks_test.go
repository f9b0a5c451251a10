package handlers

import (
	"context"
	"strings"

	catalogdomain "muscat-v0/internal/catalog/domain"
)

// mockCatalogRepository is an in-memory implementation of catalogdomain.Repository
type mockCatalogRepository struct {
	artists []catalogdomain.Artist
	albums  []catalogdomain.AlbumWithArtist
	err     error
}

func (m *mockCatalogRepository) CreateArtist(ctx context.Context, name string) (*catalogdomain.Artist, error) {
	if m.err != nil {
		return nil, m.err
	}
	artist := catalogdomain.Artist{ID: int64(len(m.artists) + 1), Name: name}
	m.artists = append(m.artists, artist)
	return &artist, nil
}

func (m *mockCatalogRepository) CreateAlbum(ctx context.Context, artistName, name, releaseDate string, price float64) (*catalogdomain.AlbumWithArtist, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, artist := range m.artists {
		if strings.EqualFold(artist.Name, artistName) {
			album := catalogdomain.AlbumWithArtist{
				ID:          int64(len(m.albums) + 1),
				ArtistID:    artist.ID,
				ArtistName:  artist.Name,
				Name:        name,
				ReleaseDate: releaseDate,
				Price:       price,
			}
			m.albums = append(m.albums, album)
			return &album, nil
		}
	}
	return nil, catalogdomain.ErrArtistNotFound
}

func (m *mockCatalogRepository) SubmitRating(ctx context.Context, albumName string, value int) (*catalogdomain.RatingResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	var matches []int64
	for _, a := range m.albums {
		if strings.EqualFold(a.Name, albumName) {
			matches = append(matches, a.ID)
		}
	}
	switch {
	case len(matches) == 0:
		return nil, catalogdomain.ErrAlbumNotFound
	case len(matches) > 1:
		return nil, catalogdomain.ErrAlbumAmbiguous
	}
	return &catalogdomain.RatingResult{AlbumID: matches[0], AverageRating: float64(value)}, nil
}

func (m *mockCatalogRepository) GetArtistWithAlbums(ctx context.Context, artistID int64) (*catalogdomain.ArtistDetail, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, artist := range m.artists {
		if artist.ID == artistID {
			return &catalogdomain.ArtistDetail{
				ID:     artist.ID,
				Name:   artist.Name,
				Albums: m.albumsForArtist(artist.ID),
			}, nil
		}
	}
	return nil, catalogdomain.ErrArtistNotFound
}

func (m *mockCatalogRepository) Search(ctx context.Context, query string) (catalogdomain.SearchResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, artist := range m.artists {
		if strings.EqualFold(artist.Name, query) {
			return catalogdomain.ArtistSearchResult{Artist: catalogdomain.ArtistDetail{
				ID:     artist.ID,
				Name:   artist.Name,
				Albums: m.albumsForArtist(artist.ID),
			}}, nil
		}
	}
	var matches []catalogdomain.AlbumWithArtist
	for _, a := range m.albums {
		if strings.EqualFold(a.Name, query) {
			matches = append(matches, a)
		}
	}
	if len(matches) == 0 {
		return catalogdomain.EmptySearchResult{}, nil
	}
	return catalogdomain.AlbumSearchResult{Albums: matches}, nil
}

func (m *mockCatalogRepository) albumsForArtist(artistID int64) []catalogdomain.AlbumSummary {
	summaries := []catalogdomain.AlbumSummary{}
	for _, a := range m.albums {
		if a.ArtistID == artistID {
			summaries = append(summaries, catalogdomain.AlbumSummary{
				ID:            a.ID,
				Name:          a.Name,
				ReleaseDate:   a.ReleaseDate,
				Price:         a.Price,
				AverageRating: a.AverageRating,
			})
		}
	}
	return summaries
}
