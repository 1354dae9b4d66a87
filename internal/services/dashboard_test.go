package services

import (
	"context"
	"testing"

	"github.com/localnerve/drink-trail/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDashboardCounts(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	trailID := seedTrail(t, db, "user-1", "Counted", "One", "Two")
	seedTrail(t, db, "user-2", "Elsewhere", "Three")

	locations, err := FetchLocationsWithDrinksByTrailID(ctx, db, trailID)
	require.NoError(t, err)
	_, err = InsertDrink(ctx, db, DrinkInput{
		LocationID:   locations[0].ID,
		Category:     models.CategorySoftDrink,
		SpecificType: "Cola",
		Size:         models.Size330ml,
	})
	require.NoError(t, err)

	counts, err := FetchDashboardCounts(ctx, db, "user-1")
	require.NoError(t, err)
	assert.Equal(t, DashboardCounts{
		Trails:             1,
		Locations:          2,
		AlcoholicDrinks:    2,
		NonAlcoholicDrinks: 1,
	}, *counts)

	counts, err = FetchDashboardCounts(ctx, db, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.Trails)
	assert.Equal(t, int64(3), counts.Locations)
	assert.Equal(t, int64(3), counts.AlcoholicDrinks)
}
