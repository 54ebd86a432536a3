package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shammazp/restaurant-backend/internal/domain"
	apperrors "github.com/shammazp/restaurant-backend/internal/errors"
	"github.com/shammazp/restaurant-backend/internal/testutil"
)

// Unit Tests

func TestNewMySQLRestaurantRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLRestaurantRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func seedRestaurant(t *testing.T, db *sql.DB, id string) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO Restaurants (id, bizId, name, isActive)
		VALUES (?, ?, 'Casa Palmera', 1)
	`, id, "biz-"+id)
	require.NoError(t, err)
}

func TestRestaurantRepository_FindByID_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRestaurantRepository(db)
	seedRestaurant(t, db, "rest-1")

	restaurant, err := repo.FindByID(context.Background(), "rest-1")
	require.NoError(t, err)
	assert.Equal(t, "rest-1", restaurant.ID)
	assert.Equal(t, "biz-rest-1", restaurant.BizID)
	assert.Equal(t, "Casa Palmera", restaurant.Name)
	assert.True(t, restaurant.IsActive)
	assert.Nil(t, restaurant.Logo)
	assert.Empty(t, restaurant.CoverImages)
}

func TestRestaurantRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRestaurantRepository(db)

	restaurant, err := repo.FindByID(context.Background(), "missing")
	assert.Nil(t, restaurant)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestRestaurantRepository_UpdateLogo_RoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRestaurantRepository(db)
	seedRestaurant(t, db, "rest-1")

	logo := &domain.AssetDescriptor{
		URL:          "https://cdn.example.com/restaurant-logos/biz-1_1712345678901_3f2a9c.jpg",
		Key:          "restaurant-logos/biz-1_1712345678901_3f2a9c.jpg",
		OriginalName: "logo.png",
		Size:         48213,
		UploadedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, repo.UpdateLogo(context.Background(), "rest-1", logo))

	found, err := repo.FindByID(context.Background(), "rest-1")
	require.NoError(t, err)
	require.NotNil(t, found.Logo)
	assert.Equal(t, logo.Key, found.Logo.Key)
	assert.Equal(t, logo.URL, found.Logo.URL)
	assert.Equal(t, logo.OriginalName, found.Logo.OriginalName)
	assert.Equal(t, logo.Size, found.Logo.Size)
}

func TestRestaurantRepository_UpdateLogo_ClearsWithNil(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRestaurantRepository(db)
	seedRestaurant(t, db, "rest-1")

	logo := &domain.AssetDescriptor{Key: "restaurant-logos/some-key.jpg", URL: "https://cdn.example.com/x"}
	require.NoError(t, repo.UpdateLogo(context.Background(), "rest-1", logo))
	require.NoError(t, repo.UpdateLogo(context.Background(), "rest-1", nil))

	found, err := repo.FindByID(context.Background(), "rest-1")
	require.NoError(t, err)
	assert.Nil(t, found.Logo)
}

func TestRestaurantRepository_UpdateCoverImages_RoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRestaurantRepository(db)
	seedRestaurant(t, db, "rest-1")

	covers := []domain.AssetDescriptor{
		{Key: "restaurant-logos/cover-1.jpg", URL: "https://cdn.example.com/cover-1", OriginalName: "a.png"},
		{Key: "restaurant-logos/cover-2.jpg", URL: "https://cdn.example.com/cover-2", OriginalName: "b.png"},
	}

	require.NoError(t, repo.UpdateCoverImages(context.Background(), "rest-1", covers))

	found, err := repo.FindByID(context.Background(), "rest-1")
	require.NoError(t, err)
	require.Len(t, found.CoverImages, 2)
	assert.Equal(t, "restaurant-logos/cover-1.jpg", found.CoverImages[0].Key)
	assert.Equal(t, "b.png", found.CoverImages[1].OriginalName)

	require.NoError(t, repo.UpdateCoverImages(context.Background(), "rest-1", nil))

	found, err = repo.FindByID(context.Background(), "rest-1")
	require.NoError(t, err)
	assert.Empty(t, found.CoverImages)
}
