package repository

import (
	"context"
	"errors"
	"time"

	"reviewboard-backend/internal/database"
	"reviewboard-backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(ctx context.Context, item *models.MediaItem, genreNames []string) error
	Update(ctx context.Context, item *models.MediaItem, genreNames []string) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.MediaItem, error)
	FindAll(ctx context.Context, filter models.ListFilter) ([]models.MediaItem, error)
}

type reviewRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewReviewRepository(db *database.Database) ReviewRepository {
	return &reviewRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *reviewRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Create inserts the media item and its genre memberships in one transaction.
// Genre rows are found-or-created by exact name; join rows are inserted one
// per distinct name.
func (r *reviewRepository) Create(ctx context.Context, item *models.MediaItem, genreNames []string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item.Genres = nil
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return relinkGenres(tx, item, genreNames)
	})
}

// Update overwrites every scalar field and replaces the entire genre set.
// The item passed in ends up fully populated, including resolved genres.
func (r *reviewRepository) Update(ctx context.Context, item *models.MediaItem, genreNames []string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.MediaItem
		if err := tx.First(&existing, item.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		item.CreatedAt = existing.CreatedAt
		item.Genres = nil
		if err := tx.Save(item).Error; err != nil {
			return err
		}

		// Wholesale replace, no diffing.
		if err := tx.Where("media_item_id = ?", item.ID).Delete(&models.MediaItemGenre{}).Error; err != nil {
			return err
		}
		return relinkGenres(tx, item, genreNames)
	})
}

// Delete removes the item together with its join rows. Genre rows are kept.
// Deleting an id that does not exist is not an error.
func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("media_item_id = ?", id).Delete(&models.MediaItemGenre{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MediaItem{}, id).Error
	})
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*models.MediaItem, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var item models.MediaItem
	err := r.db.WithContext(ctx).Preload("Genres").First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll composes the optional filter predicates, ANDed together when
// present. An empty genre list does not restrict results.
func (r *reviewRepository) FindAll(ctx context.Context, filter models.ListFilter) ([]models.MediaItem, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.MediaItem{})

	if filter.Type != "" {
		query = query.Where("media_items.type = ?", filter.Type)
	}

	if len(filter.Genres) > 0 {
		query = query.
			Joins("JOIN media_item_genres ON media_item_genres.media_item_id = media_items.id").
			Joins("JOIN genres ON genres.id = media_item_genres.genre_id").
			Where("genres.name IN ?", filter.Genres).
			Distinct("media_items.*")
	}

	if filter.ScoreMin != nil {
		query = query.Where("media_items.score >= ?", *filter.ScoreMin)
	}
	if filter.ScoreMax != nil {
		query = query.Where("media_items.score <= ?", *filter.ScoreMax)
	}

	if filter.SearchQuery != "" {
		pattern := "%" + filter.SearchQuery + "%"
		// LOWER() keeps the match case-insensitive on every backend.
		query = query.Where("LOWER(media_items.title) LIKE LOWER(?) OR LOWER(media_items.creator) LIKE LOWER(?)",
			pattern, pattern)
	}

	switch filter.Sort {
	case models.SortScoreDesc:
		query = query.Order("media_items.score DESC")
	case models.SortScoreAsc:
		query = query.Order("media_items.score ASC")
	default:
		// Newest first by identity.
		query = query.Order("media_items.id DESC")
	}

	var items []models.MediaItem
	if err := query.Preload("Genres").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// relinkGenres resolves each name with find-or-create and inserts one join
// row per genre. Input names are deduplicated keeping first-occurrence order
// so repeated tags cannot produce duplicate join rows.
func relinkGenres(tx *gorm.DB, item *models.MediaItem, genreNames []string) error {
	names := dedupeNames(genreNames)

	genres := make([]models.Genre, 0, len(names))
	for _, name := range names {
		var genre models.Genre
		if err := tx.Where("name = ?", name).FirstOrCreate(&genre, models.Genre{Name: name}).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.MediaItemGenre{
			MediaItemID: item.ID,
			GenreID:     genre.ID,
		}).Error; err != nil {
			return err
		}
		genres = append(genres, genre)
	}

	item.Genres = genres
	return nil
}

func dedupeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
