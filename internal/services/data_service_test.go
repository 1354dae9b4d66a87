package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/localnerve/drink-trail/internal/database"
	"github.com/localnerve/drink-trail/internal/models"
	"github.com/localnerve/drink-trail/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFetchTrailsPagination(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for i := 0; i < 13; i++ {
		seedTrail(t, db, "", fmt.Sprintf("Trail %02d", i))
	}

	pages, err := FetchTrailsPages(ctx, db, "", "")
	require.NoError(t, err)
	assert.Equal(t, 3, pages)

	seen := map[string]bool{}
	for page, want := range map[int]int{1: 6, 2: 6, 3: 1, 4: 0} {
		trails, err := FetchFilteredTrails(ctx, db, "", "", page)
		require.NoError(t, err)
		assert.Len(t, trails, want, "page %d", page)
		for _, trail := range trails {
			assert.False(t, seen[trail.ID], "trail %s on more than one page", trail.ID)
			seen[trail.ID] = true
		}
	}
	assert.Len(t, seen, 13)

	// pages below one read the first page
	first, err := FetchFilteredTrails(ctx, db, "", "", 0)
	require.NoError(t, err)
	assert.Len(t, first, 6)
}

func TestFetchTrailsPagesEmpty(t *testing.T) {
	db := setupTestDB(t)

	pages, err := FetchTrailsPages(context.Background(), db, "", "nothing")
	require.NoError(t, err)
	assert.Zero(t, pages)
}

func TestFetchFilteredTrailsMatching(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	berlinID, err := InsertTrail(ctx, db, "", "Berlin Weekend", "bar crawl")
	require.NoError(t, err)
	_, err = InsertTrail(ctx, db, "", "Vienna", "coffee and BERLINER Weisse")
	require.NoError(t, err)
	_, err = InsertTrail(ctx, db, "", "Prague", "pilsner")
	require.NoError(t, err)

	trails, err := FetchFilteredTrails(ctx, db, "", "berlin", 1)
	require.NoError(t, err)
	assert.Len(t, trails, 2)

	trails, err = FetchFilteredTrails(ctx, db, "", "WEEKEND", 1)
	require.NoError(t, err)
	require.Len(t, trails, 1)
	assert.Equal(t, berlinID, trails[0].ID)
	assert.Equal(t, []string{}, trails[0].LocationNames)

	// textual creation date
	trails, err = FetchFilteredTrails(ctx, db, "", time.Now().UTC().Format("2006"), 1)
	require.NoError(t, err)
	assert.Len(t, trails, 3)

	pages, err := FetchTrailsPages(ctx, db, "", "pilsner")
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}

func TestFetchFilteredTrailsLocationNames(t *testing.T) {
	db := setupTestDB(t)
	seedTrail(t, db, "", "Named", "Zum Schlüssel", "Brauhaus", "Kneipe")

	trails, err := FetchFilteredTrails(context.Background(), db, "", "", 1)
	require.NoError(t, err)
	require.Len(t, trails, 1)
	assert.Equal(t, []string{"Brauhaus", "Kneipe", "Zum Schlüssel"}, trails[0].LocationNames)
}

func TestFetchTrailsScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	mine := seedTrail(t, db, "user-1", "Mine")
	theirs := seedTrail(t, db, "user-2", "Theirs")

	trails, err := FetchFilteredTrails(ctx, db, "user-1", "", 1)
	require.NoError(t, err)
	require.Len(t, trails, 1)
	assert.Equal(t, mine, trails[0].ID)

	trail, err := FetchTrailByID(ctx, db, "user-1", theirs)
	require.NoError(t, err)
	assert.Nil(t, trail)

	all, err := FetchFilteredTrails(ctx, db, "", "", 1)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFetchTrailWithLocationsAndDrinkNames(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	trailID := seedTrail(t, db, "", "Names", "Bar", "Bar", "Club")

	locations, err := FetchLocationsWithDrinksByTrailID(ctx, db, trailID)
	require.NoError(t, err)
	_, err = InsertDrink(ctx, db, DrinkInput{
		LocationID:   locations[2].ID,
		Category:     models.CategoryCocktail,
		SpecificType: "Mojito",
		Size:         models.Size200ml,
		IsAlcoholic:  true,
	})
	require.NoError(t, err)

	first, err := FetchTrailWithLocationsAndDrinkNames(ctx, db, "", trailID)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, []string{"Bar", "Club"}, first.LocationNames)
	assert.Equal(t, []string{"Bitburger", "Mojito"}, first.DrinkNames)

	second, err := FetchTrailWithLocationsAndDrinkNames(ctx, db, "", trailID)
	require.NoError(t, err)
	assert.ElementsMatch(t, first.LocationNames, second.LocationNames)
	assert.ElementsMatch(t, first.DrinkNames, second.DrinkNames)

	missing, err := FetchTrailWithLocationsAndDrinkNames(ctx, db, "", "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFetchTrailWithoutLocations(t *testing.T) {
	db := setupTestDB(t)
	trailID := seedTrail(t, db, "", "Empty")

	trail, err := FetchTrailWithLocationsAndDrinkNames(context.Background(), db, "", trailID)
	require.NoError(t, err)
	require.NotNil(t, trail)
	assert.Equal(t, []string{}, trail.LocationNames)
	assert.Equal(t, []string{}, trail.DrinkNames)
}

func TestFetchLocationsWithDrinksByTrailID(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	trailID := seedTrail(t, db, "", "Timeline", "Zeta", "Alpha", "Mitte")

	locations, err := FetchLocationsWithDrinksByTrailID(ctx, db, trailID)
	require.NoError(t, err)
	require.Len(t, locations, 3)
	assert.Equal(t, "Alpha", locations[0].Name)
	assert.Equal(t, "Mitte", locations[1].Name)
	assert.Equal(t, "Zeta", locations[2].Name)
	for _, location := range locations {
		require.Len(t, location.Drinks, 1)
		assert.Equal(t, location.ID, location.Drinks[0].LocationID)
	}

	none, err := FetchLocationsWithDrinksByTrailID(ctx, db, "missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFetchDrinksByLocationID(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	trailID := seedTrail(t, db, "", "Drinks", "Pub")

	locations, err := FetchLocationsWithDrinksByTrailID(ctx, db, trailID)
	require.NoError(t, err)
	locationID := locations[0].ID

	_, err = InsertDrink(ctx, db, DrinkInput{
		LocationID:   locationID,
		Category:     models.CategorySoftDrink,
		SpecificType: "Apple Juice",
		Size:         models.Size1L,
	})
	require.NoError(t, err)

	drinks, err := FetchDrinksByLocationID(ctx, db, locationID)
	require.NoError(t, err)
	require.Len(t, drinks, 2)

	assert.Equal(t, "Beer", drinks[0].CategoryLabel)
	assert.Equal(t, "Bitburger", drinks[0].SpecificType)
	assert.InDelta(t, 0.048, drinks[0].AlcoholPercentage, 1e-9)

	assert.Equal(t, "Soft Drink", drinks[1].CategoryLabel)
	assert.Equal(t, "Apple Juice", drinks[1].SpecificType)
	assert.Zero(t, drinks[1].AlcoholPercentage)

	location, err := FetchLocationByID(ctx, db, locationID)
	require.NoError(t, err)
	require.NotNil(t, location)
	assert.Equal(t, trailID, location.TrailID)

	location, err = FetchLocationByID(ctx, db, "missing")
	require.NoError(t, err)
	assert.Nil(t, location)
}

func TestReadFaultsAreQueryErrors(t *testing.T) {
	db, err := database.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, database.Close(db))
	ctx := context.Background()

	_, err = FetchFilteredTrails(ctx, db, "", "", 1)
	assert.True(t, types.IsQueryError(err))

	_, err = FetchTrailsPages(ctx, db, "", "")
	assert.True(t, types.IsQueryError(err))

	trail, err := FetchTrailByID(ctx, db, "", "id")
	assert.Nil(t, trail)
	assert.True(t, types.IsQueryError(err))

	locations, err := FetchLocationsWithDrinksByTrailID(ctx, db, "id")
	assert.Nil(t, locations)
	assert.True(t, types.IsQueryError(err))
}

func TestTimelineFailsWhenOneDrinkFetchFails(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	trailID := seedTrail(t, db, "", "Hamburg", "Reeperbahn", "Speicherstadt", "Schanze")

	// Fail the second drinks query only, the others succeed
	var drinkQueries atomic.Int32
	require.NoError(t, db.Callback().Query().Before("gorm:query").Register("test:fail_second_drinks", func(tx *gorm.DB) {
		if tx.Statement.Table == "drinks" && drinkQueries.Add(1) == 2 {
			tx.AddError(errors.New("drinks read failed"))
		}
	}))

	locations, err := FetchLocationsWithDrinksByTrailID(ctx, db, trailID)
	assert.Nil(t, locations)
	require.Error(t, err)

	var qe *types.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "fetchLocationsWithDrinksByTrailId", qe.Op)
	assert.Equal(t, "Failed to fetch locations with drinks.", qe.Message)
	assert.GreaterOrEqual(t, drinkQueries.Load(), int32(2))

	require.NoError(t, db.Callback().Query().Remove("test:fail_second_drinks"))
	locations, err = FetchLocationsWithDrinksByTrailID(ctx, db, trailID)
	require.NoError(t, err)
	assert.Len(t, locations, 3)
}
