package application

import (
	"context"

	catalogdomain "muscat-v0/internal/catalog/domain"
)

// ArtistService handles artist registration and lookup
type ArtistService struct {
	repo catalogdomain.Repository
}

// NewArtistService creates a new artist service
func NewArtistService(repo catalogdomain.Repository) *ArtistService {
	return &ArtistService{
		repo: repo,
	}
}

// CreateArtist registers a new artist. The request must already be valid.
func (s *ArtistService) CreateArtist(ctx context.Context, req CreateArtistRequest) (*ArtistResponse, error) {
	artist, err := s.repo.CreateArtist(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	response := ToArtistResponse(*artist)
	return &response, nil
}

// GetArtist returns an artist by id with its albums in creation order
func (s *ArtistService) GetArtist(ctx context.Context, artistID int64) (*ArtistDetailResponse, error) {
	detail, err := s.repo.GetArtistWithAlbums(ctx, artistID)
	if err != nil {
		return nil, err
	}

	response := ToArtistDetailResponse(*detail)
	return &response, nil
}
