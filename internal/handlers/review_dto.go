package handlers

import (
	"time"

	"reviewboard-backend/internal/models"
	"reviewboard-backend/internal/services"
)

// ReviewRequest is the body for POST /reviews and PUT /reviews/:id. Genres
// is a JSON-encoded array of names, matching what the tag input serializes.
type ReviewRequest struct {
	Title          string   `json:"title"`
	Type           string   `json:"type"`
	Creator        string   `json:"creator"`
	Genres         string   `json:"genres"`
	CompletionDate string   `json:"completion_date"`
	ShortReview    string   `json:"short_review"`
	FullReview     string   `json:"full_review"`
	Score          *float64 `json:"score"`
	ThumbnailURL   string   `json:"thumbnail_url"`
}

func (r *ReviewRequest) toInput() services.ReviewInput {
	return services.ReviewInput{
		Title:          r.Title,
		Type:           r.Type,
		Creator:        r.Creator,
		CompletionDate: r.CompletionDate,
		ShortReview:    r.ShortReview,
		FullReview:     r.FullReview,
		Score:          r.Score,
		ThumbnailURL:   r.ThumbnailURL,
		Genres:         r.Genres,
	}
}

// ReviewResponse is one review as the client consumes it: genres flattened
// to a plain name array.
type ReviewResponse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Type           string    `json:"type"`
	Creator        string    `json:"creator"`
	Genres         []string  `json:"genres"`
	CompletionDate string    `json:"completion_date"`
	ShortReview    string    `json:"short_review"`
	FullReview     string    `json:"full_review"`
	Score          *float64  `json:"score"`
	ThumbnailURL   string    `json:"thumbnail_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreatedResponse is the body returned by POST /reviews.
type CreatedResponse struct {
	ID uint `json:"id"`
}

func toReviewResponse(item *models.MediaItem) ReviewResponse {
	return ReviewResponse{
		ID:             item.ID,
		Title:          item.Title,
		Type:           item.Type,
		Creator:        item.Creator,
		Genres:         item.GenreNames(),
		CompletionDate: item.CompletionDate,
		ShortReview:    item.ShortReview,
		FullReview:     item.FullReview,
		Score:          item.Score,
		ThumbnailURL:   item.ThumbnailURL,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

func toReviewResponses(items []models.MediaItem) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(items))
	for i := range items {
		out = append(out, toReviewResponse(&items[i]))
	}
	return out
}
