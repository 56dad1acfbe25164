package services

import (
	"context"
	"encoding/json"
	"fmt"

	"reviewboard-backend/internal/models"
	"reviewboard-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// ReviewInput carries one create/update request. Genres arrives as the
// client sends it: a JSON-encoded array of genre names.
type ReviewInput struct {
	Title          string
	Type           string
	Creator        string
	CompletionDate string
	ShortReview    string
	FullReview     string
	Score          *float64
	ThumbnailURL   string
	Genres         string
}

type ReviewService interface {
	ListReviews(ctx context.Context, filter models.ListFilter) ([]models.MediaItem, error)
	GetReviewByID(ctx context.Context, id uint) (*models.MediaItem, error)
	CreateReview(ctx context.Context, input ReviewInput) (*models.MediaItem, error)
	UpdateReview(ctx context.Context, id uint, input ReviewInput) (*models.MediaItem, error)
	DeleteReview(ctx context.Context, id uint) error
	ListGenres(ctx context.Context) ([]models.Genre, error)
}

type reviewService struct {
	repo      repository.ReviewRepository
	genreRepo repository.GenreRepository
	logger    *logrus.Logger
}

func NewReviewService(repo repository.ReviewRepository, genreRepo repository.GenreRepository, logger *logrus.Logger) ReviewService {
	return &reviewService{
		repo:      repo,
		genreRepo: genreRepo,
		logger:    logger,
	}
}

func (s *reviewService) ListReviews(ctx context.Context, filter models.ListFilter) ([]models.MediaItem, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *reviewService) GetReviewByID(ctx context.Context, id uint) (*models.MediaItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *reviewService) CreateReview(ctx context.Context, input ReviewInput) (*models.MediaItem, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	genreNames, err := parseGenres(input.Genres)
	if err != nil {
		return nil, err
	}

	item := inputToItem(input)
	if err := s.repo.Create(ctx, item, genreNames); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":    item.ID,
		"title": item.Title,
	}).Info("Review created")

	return item, nil
}

// UpdateReview replaces every scalar field and the entire genre set. Score
// bounds are enforced here the same way as on create.
func (s *reviewService) UpdateReview(ctx context.Context, id uint, input ReviewInput) (*models.MediaItem, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	genreNames, err := parseGenres(input.Genres)
	if err != nil {
		return nil, err
	}

	item := inputToItem(input)
	item.ID = id
	if err := s.repo.Update(ctx, item, genreNames); err != nil {
		return nil, err
	}

	s.logger.WithField("id", id).Info("Review updated")
	return item, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithField("id", id).Info("Review deleted")
	return nil
}

func (s *reviewService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return s.genreRepo.FindAll(ctx)
}

func validateInput(input ReviewInput) error {
	if input.Title == "" || input.Type == "" {
		return newValidationError("Title and type are required fields.")
	}
	if input.Score != nil && (*input.Score < models.ScoreMin || *input.Score > models.ScoreMax) {
		return newValidationError(fmt.Sprintf("Score must be between %.1f and %.1f.", models.ScoreMin, models.ScoreMax))
	}
	return nil
}

// parseGenres decodes the JSON array the client sends. An absent or empty
// payload means an empty genre set, not an error.
func parseGenres(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, newFormatError("Genres must be a JSON array of strings.")
	}
	return names, nil
}

func inputToItem(input ReviewInput) *models.MediaItem {
	creator := input.Creator
	if creator == "" {
		creator = models.DefaultCreator
	}
	thumbnail := input.ThumbnailURL
	if thumbnail == "" {
		thumbnail = models.DefaultThumbnail
	}

	return &models.MediaItem{
		Title:          input.Title,
		Type:           input.Type,
		Creator:        creator,
		CompletionDate: input.CompletionDate,
		ShortReview:    input.ShortReview,
		FullReview:     input.FullReview,
		Score:          input.Score,
		ThumbnailURL:   thumbnail,
	}
}
