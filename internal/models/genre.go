package models

import "time"

// Genre is a reusable tag shared across media items. Lookup is by exact,
// case-sensitive name. Genres are created lazily on first use and never
// deleted, even when the last membership is removed.
type Genre struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Genre) TableName() string {
	return "genres"
}

// MediaItemGenre is one membership row. The whole set for an item is deleted
// and reinserted on every edit.
type MediaItemGenre struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	MediaItemID uint      `gorm:"index;not null" json:"media_item_id"`
	GenreID     uint      `gorm:"index;not null" json:"genre_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (MediaItemGenre) TableName() string {
	return "media_item_genres"
}
