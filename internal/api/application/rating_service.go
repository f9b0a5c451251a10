package application

import (
	"context"

	catalogdomain "muscat-v0/internal/catalog/domain"
)

// RatingService handles rating submission
type RatingService struct {
	repo catalogdomain.Repository
}

// NewRatingService creates a new rating service
func NewRatingService(repo catalogdomain.Repository) *RatingService {
	return &RatingService{
		repo: repo,
	}
}

// SubmitRating records a rating for the single album matching the request's
// album_name and returns the recomputed average. Returns
// catalogdomain.ErrAlbumNotFound on zero matches and
// catalogdomain.ErrAlbumAmbiguous on two or more.
func (s *RatingService) SubmitRating(ctx context.Context, req SubmitRatingRequest) (*RatingResponse, error) {
	result, err := s.repo.SubmitRating(ctx, req.AlbumName, req.Rating)
	if err != nil {
		return nil, err
	}

	response := ToRatingResponse(*result)
	return &response, nil
}
