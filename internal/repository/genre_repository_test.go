package repository

import (
	"context"
	"testing"

	"reviewboard-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreFindOrCreateIsLazy(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenreRepository(db)
	ctx := context.Background()

	first, err := repo.FindOrCreate(ctx, "Drama")
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := repo.FindOrCreate(ctx, "Drama")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Genre{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGenreFindByNameMissingReturnsNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenreRepository(db)

	genre, err := repo.FindByName(context.Background(), "Nope")
	require.NoError(t, err)
	assert.Nil(t, genre)
}

func TestGenreFindAllSortedByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenreRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Thriller", "Comedy", "Drama"} {
		_, err := repo.FindOrCreate(ctx, name)
		require.NoError(t, err)
	}

	genres, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, genres, 3)
	assert.Equal(t, "Comedy", genres[0].Name)
	assert.Equal(t, "Drama", genres[1].Name)
	assert.Equal(t, "Thriller", genres[2].Name)
}
