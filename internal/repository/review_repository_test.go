package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"reviewboard-backend/internal/config"
	"reviewboard-backend/internal/database"
	"reviewboard-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	// A named shared-cache memory database so every pooled connection sees
	// the same store within one test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	wrapped := database.New(db, config.DatabaseConfig{QueryTimeout: 5 * time.Second})
	t.Cleanup(func() {
		_ = wrapped.Close()
	})
	return wrapped
}

func score(v float64) *float64 {
	return &v
}

func seedReview(t *testing.T, repo ReviewRepository, title, mediaType, creator string, s *float64, genres ...string) *models.MediaItem {
	t.Helper()

	item := &models.MediaItem{
		Title:        title,
		Type:         mediaType,
		Creator:      creator,
		Score:        s,
		ThumbnailURL: models.DefaultThumbnail,
	}
	require.NoError(t, repo.Create(context.Background(), item, genres))
	require.NotZero(t, item.ID)
	return item
}

func joinRowsFor(t *testing.T, db *database.Database, itemID uint) []models.MediaItemGenre {
	t.Helper()

	var rows []models.MediaItemGenre
	require.NoError(t, db.Where("media_item_id = ?", itemID).Find(&rows).Error)
	return rows
}

func TestCreateAndListRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	created := seedReview(t, repo, "Spirited Away", "Movie", "Hayao Miyazaki", score(4.5), "Fantasy", "Animation")

	items, err := repo.FindAll(ctx, models.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, created.ID, items[0].ID)
	assert.Equal(t, "Spirited Away", items[0].Title)
	assert.ElementsMatch(t, []string{"Fantasy", "Animation"}, items[0].GenreNames())
}

func TestCreateDeduplicatesGenreInput(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)

	created := seedReview(t, repo, "Dune", "Book", "Frank Herbert", score(5.0), "Sci-Fi", "Sci-Fi", "Classic", "Sci-Fi")

	rows := joinRowsFor(t, db, created.ID)
	assert.Len(t, rows, 2)
	assert.ElementsMatch(t, []string{"Sci-Fi", "Classic"}, created.GenreNames())
}

func TestGenreNamesAreCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)

	seedReview(t, repo, "Heat", "Movie", "Michael Mann", score(4.0), "Drama")
	seedReview(t, repo, "Collateral", "Movie", "Michael Mann", score(4.0), "drama")

	var genres []models.Genre
	require.NoError(t, db.Find(&genres).Error)
	assert.Len(t, genres, 2)
}

func TestFindAllScoreBounds(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	seedReview(t, repo, "Low", "Movie", "A", score(1.5))
	seedReview(t, repo, "Mid", "Movie", "B", score(3.0))
	seedReview(t, repo, "High", "Movie", "C", score(4.8))

	items, err := repo.FindAll(ctx, models.ListFilter{ScoreMin: score(3.0)})
	require.NoError(t, err)
	require.Len(t, items, 2)

	titles := []string{items[0].Title, items[1].Title}
	assert.ElementsMatch(t, []string{"Mid", "High"}, titles)

	items, err = repo.FindAll(ctx, models.ListFilter{ScoreMin: score(3.0), ScoreMax: score(3.5)})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Mid", items[0].Title)
}

func TestFindAllSortByScore(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	seedReview(t, repo, "Low", "Movie", "A", score(1.5))
	seedReview(t, repo, "High", "Movie", "B", score(4.8))
	seedReview(t, repo, "Mid", "Movie", "C", score(3.0))

	items, err := repo.FindAll(ctx, models.ListFilter{Sort: models.SortScoreDesc})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"High", "Mid", "Low"}, []string{items[0].Title, items[1].Title, items[2].Title})

	items, err = repo.FindAll(ctx, models.ListFilter{Sort: models.SortScoreAsc})
	require.NoError(t, err)
	assert.Equal(t, "Low", items[0].Title)
}

func TestFindAllDefaultSortIsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	first := seedReview(t, repo, "First", "Movie", "A", score(2.0))
	second := seedReview(t, repo, "Second", "Movie", "B", score(2.0))

	items, err := repo.FindAll(ctx, models.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)
}

func TestFindAllGenreFilterInclusiveOr(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	drama := seedReview(t, repo, "Drama Only", "Movie", "A", score(3.0), "Drama")
	comedy := seedReview(t, repo, "Comedy Only", "Movie", "B", score(3.0), "Comedy")
	both := seedReview(t, repo, "Both", "Movie", "C", score(3.0), "Drama", "Comedy")
	seedReview(t, repo, "Neither", "Movie", "D", score(3.0), "Horror")

	items, err := repo.FindAll(ctx, models.ListFilter{Genres: []string{"Drama", "Comedy"}})
	require.NoError(t, err)
	require.Len(t, items, 3)

	ids := []uint{items[0].ID, items[1].ID, items[2].ID}
	assert.ElementsMatch(t, []uint{drama.ID, comedy.ID, both.ID}, ids)
}

func TestFindAllEmptyGenreFilterDoesNotRestrict(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	seedReview(t, repo, "No Genres", "Movie", "A", score(3.0))
	seedReview(t, repo, "Tagged", "Movie", "B", score(3.0), "Drama")

	items, err := repo.FindAll(ctx, models.ListFilter{Genres: nil})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestFindAllSearchMatchesTitleOrCreatorCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	seedReview(t, repo, "The Godfather", "Movie", "Coppola", score(5.0))
	seedReview(t, repo, "Alien", "Movie", "Ridley Scott", score(4.5))
	seedReview(t, repo, "Blade Runner", "Movie", "Ridley Scott", score(4.0))

	items, err := repo.FindAll(ctx, models.ListFilter{SearchQuery: "godfather"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "The Godfather", items[0].Title)

	items, err = repo.FindAll(ctx, models.ListFilter{SearchQuery: "RIDLEY"})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestFindAllTypeFilterIsExact(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	seedReview(t, repo, "A Movie", "Movie", "A", score(3.0))
	seedReview(t, repo, "A Book", "Book", "B", score(3.0))

	items, err := repo.FindAll(ctx, models.ListFilter{Type: "Book"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "A Book", items[0].Title)
}

func TestUpdateReplacesGenreSet(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	created := seedReview(t, repo, "Akira", "Movie", "Katsuhiro Otomo", score(4.0), "Anime", "Sci-Fi")

	updated := &models.MediaItem{
		ID:           created.ID,
		Title:        "Akira",
		Type:         "Movie",
		Creator:      "Katsuhiro Otomo",
		Score:        score(4.5),
		ThumbnailURL: models.DefaultThumbnail,
	}
	require.NoError(t, repo.Update(ctx, updated, []string{"Sci-Fi", "Cyberpunk"}))

	assert.ElementsMatch(t, []string{"Sci-Fi", "Cyberpunk"}, updated.GenreNames())

	rows := joinRowsFor(t, db, created.ID)
	assert.Len(t, rows, 2)

	// The unlinked genre row survives as an orphan.
	var anime models.Genre
	require.NoError(t, db.Where("name = ?", "Anime").First(&anime).Error)
	assert.NotZero(t, anime.ID)

	fetched, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Sci-Fi", "Cyberpunk"}, fetched.GenreNames())
	require.NotNil(t, fetched.Score)
	assert.InDelta(t, 4.5, *fetched.Score, 0.001)
}

func TestUpdateOverwritesScalarFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	created := seedReview(t, repo, "Old Title", "Movie", "Someone", score(2.0))

	updated := &models.MediaItem{
		ID:           created.ID,
		Title:        "New Title",
		Type:         "Show",
		Creator:      models.DefaultCreator,
		ShortReview:  "changed my mind",
		Score:        nil,
		ThumbnailURL: "new.jpg",
	}
	require.NoError(t, repo.Update(ctx, updated, nil))

	fetched, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Title", fetched.Title)
	assert.Equal(t, "Show", fetched.Type)
	assert.Equal(t, "changed my mind", fetched.ShortReview)
	assert.Nil(t, fetched.Score)
	assert.Equal(t, created.CreatedAt.Unix(), fetched.CreatedAt.Unix())
}

func TestUpdateMissingReviewReturnsNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)

	err := repo.Update(context.Background(), &models.MediaItem{ID: 9999, Title: "x", Type: "Movie"}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRemovesItemAndJoinsButKeepsGenres(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	created := seedReview(t, repo, "Persona", "Movie", "Ingmar Bergman", score(4.9), "Drama", "Arthouse")
	require.NoError(t, repo.Delete(ctx, created.ID))

	items, err := repo.FindAll(ctx, models.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.Empty(t, joinRowsFor(t, db, created.ID))

	var genreCount int64
	require.NoError(t, db.Model(&models.Genre{}).Count(&genreCount).Error)
	assert.Equal(t, int64(2), genreCount)
}

func TestDeleteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	created := seedReview(t, repo, "Gone", "Movie", "A", score(3.0))
	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.NoError(t, repo.Delete(ctx, created.ID))
	assert.NoError(t, repo.Delete(ctx, 424242))
}

func TestFindByIDMissingReturnsNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)

	_, err := repo.FindByID(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDedupeNamesKeepsFirstOccurrenceOrder(t *testing.T) {
	out := dedupeNames([]string{"b", "a", "b", "c", "a"})
	assert.Equal(t, []string{"b", "a", "c"}, out)
}
