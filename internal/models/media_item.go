package models

import (
	"time"
)

const (
	// DefaultCreator is stored when the client leaves the creator blank.
	DefaultCreator = "Unknown"
	// DefaultThumbnail is a filename the client resolves under its images/ directory.
	DefaultThumbnail = "placeholder.jpg"
)

// Score bounds accepted for a review, inclusive.
const (
	ScoreMin = 1.0
	ScoreMax = 5.0
)

type MediaItem struct {
	ID             uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title          string    `gorm:"not null;index" json:"title" example:"Spirited Away"`
	Type           string    `gorm:"not null;index" json:"type" example:"Movie"`
	Creator        string    `json:"creator" example:"Hayao Miyazaki"`
	CompletionDate string    `json:"completion_date" example:"2025-01-12"`
	ShortReview    string    `gorm:"type:text" json:"short_review" example:"A gorgeous, strange film."`
	FullReview     string    `gorm:"type:text" json:"full_review"`
	Score          *float64  `gorm:"index" json:"score" example:"4.5"`
	ThumbnailURL   string    `json:"thumbnail_url" example:"spirited_away.jpg"`
	Genres         []Genre   `gorm:"many2many:media_item_genres;" json:"genres,omitempty"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time `gorm:"index" json:"updated_at"`
}

func (MediaItem) TableName() string {
	return "media_items"
}

// GenreNames returns the loaded genre set as plain names, in association order.
func (m *MediaItem) GenreNames() []string {
	names := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		names = append(names, g.Name)
	}
	return names
}

// ListFilter holds the optional predicates for listing reviews. Zero values
// mean "absent", never "match the empty set".
type ListFilter struct {
	Type        string   `json:"type"`
	Genres      []string `json:"genres"`
	ScoreMin    *float64 `json:"score_min"`
	ScoreMax    *float64 `json:"score_max"`
	SearchQuery string   `json:"search_query"`
	Sort        string   `json:"sort"`
}

// Sort keys accepted by the list operation. Anything else falls back to
// newest-first by id.
const (
	SortScoreDesc = "score-desc"
	SortScoreAsc  = "score-asc"
)
