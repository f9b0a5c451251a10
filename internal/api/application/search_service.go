package application

import (
	"context"
	"fmt"

	catalogdomain "muscat-v0/internal/catalog/domain"
)

// SearchService handles free-text name search
type SearchService struct {
	repo catalogdomain.Repository
}

// NewSearchService creates a new search service
func NewSearchService(repo catalogdomain.Repository) *SearchService {
	return &SearchService{
		repo: repo,
	}
}

// Search resolves query to one of the three response shapes: an artist with
// its albums, a list of matching albums, or an empty object.
func (s *SearchService) Search(ctx context.Context, query string) (SearchResponse, error) {
	result, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	switch res := result.(type) {
	case catalogdomain.ArtistSearchResult:
		return ArtistSearchResponse{ToArtistDetailResponse(res.Artist)}, nil
	case catalogdomain.AlbumSearchResult:
		albums := make([]AlbumResponse, len(res.Albums))
		for i, a := range res.Albums {
			albums[i] = ToAlbumResponse(a)
		}
		return AlbumListSearchResponse{Albums: albums}, nil
	case catalogdomain.EmptySearchResult:
		return EmptySearchResponse{}, nil
	default:
		return nil, fmt.Errorf("unexpected search result type %T", result)
	}
}
