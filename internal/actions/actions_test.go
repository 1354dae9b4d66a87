package actions

import (
	"context"
	"testing"

	"github.com/localnerve/drink-trail/internal/database"
	"github.com/localnerve/drink-trail/internal/models"
	"github.com/localnerve/drink-trail/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	return db
}

func createTrail(t *testing.T, db *gorm.DB, userID, name string) string {
	t.Helper()
	state := CreateTrail(context.Background(), db, userID, FormData{
		"name":        name,
		"description": "bar crawl",
	})
	require.Equal(t, StatusCommitted, state.Status, state.Errors)
	return state.ID
}

func createLocation(t *testing.T, db *gorm.DB, trailID, name string) string {
	t.Helper()
	state := CreateLocation(context.Background(), db, "", FormData{
		"trail_id": trailID,
		"name":     name,
	})
	require.Equal(t, StatusCommitted, state.Status, state.Errors)
	return state.ID
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestCreateTrailThenListed(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	state := CreateTrail(ctx, db, "", FormData{
		"name":        "Berlin Weekend",
		"description": "bar crawl",
	})
	require.Equal(t, StatusCommitted, state.Status)
	assert.Empty(t, state.Errors)
	require.NotNil(t, state.Message)
	assert.Equal(t, "/api/trails/"+state.ID, state.Redirect)

	trails, err := services.FetchFilteredTrails(ctx, db, "", "Berlin", 1)
	require.NoError(t, err)
	require.Len(t, trails, 1)
	assert.Equal(t, state.ID, trails[0].ID)
	assert.Empty(t, trails[0].LocationNames)
	assert.NotNil(t, trails[0].LocationNames)
}

func TestCreateTrailRejectsMissingFields(t *testing.T) {
	db := setupTestDB(t)

	state := CreateTrail(context.Background(), db, "", FormData{
		"name":        "   ",
		"description": "",
	})
	assert.Equal(t, StatusRejected, state.Status)
	assert.Equal(t, []string{"Please enter a trail name."}, state.Errors["name"])
	assert.Equal(t, []string{"Please enter a trail description."}, state.Errors["description"])
	require.NotNil(t, state.Message)
	assert.Equal(t, "Missing Fields. Failed to Create Trail.", *state.Message)
	assert.Zero(t, countRows(t, db, &models.Trail{}))
}

func TestUpdateTrail(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	id := createTrail(t, db, "", "Munich")

	state := UpdateTrail(ctx, db, "", id, FormData{"name": "Munich Oktoberfest", "description": "tents"})
	require.Equal(t, StatusCommitted, state.Status)

	trail, err := services.FetchTrailByID(ctx, db, "", id)
	require.NoError(t, err)
	require.NotNil(t, trail)
	assert.Equal(t, "Munich Oktoberfest", trail.Name)
	assert.Equal(t, "tents", trail.Description)

	// unchanged values are still a successful update
	state = UpdateTrail(ctx, db, "", id, FormData{"name": "Munich Oktoberfest", "description": "tents"})
	assert.Equal(t, StatusCommitted, state.Status)

	state = UpdateTrail(ctx, db, "", "missing", FormData{"name": "a", "description": "b"})
	assert.Equal(t, StatusRejected, state.Status)
	assert.NotEmpty(t, state.Errors["id"])

	state = UpdateTrail(ctx, db, "", id, FormData{"name": ""})
	assert.Equal(t, StatusRejected, state.Status)
	assert.Contains(t, *state.Message, "Failed to Update Trail")
}

func TestTrailOwnership(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	id := createTrail(t, db, "user-a", "Hamburg")

	state := UpdateTrail(ctx, db, "user-b", id, FormData{"name": "x", "description": "y"})
	assert.Equal(t, StatusRejected, state.Status)

	state = CreateLocation(ctx, db, "user-b", FormData{"trail_id": id, "name": "Reeperbahn"})
	assert.Equal(t, StatusRejected, state.Status)
	assert.NotEmpty(t, state.Errors["trail_id"])

	state = DeleteTrail(ctx, db, "user-b", id)
	assert.Equal(t, StatusRejected, state.Status)
	assert.Equal(t, int64(1), countRows(t, db, &models.Trail{}))

	state = DeleteTrail(ctx, db, "user-a", id)
	assert.Equal(t, StatusCommitted, state.Status)
	assert.Zero(t, countRows(t, db, &models.Trail{}))
}

func TestCreateLocation(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	trailID := createTrail(t, db, "", "Cologne")

	state := CreateLocation(ctx, db, "", FormData{"trail_id": trailID, "name": "Früh am Dom"})
	require.Equal(t, StatusCommitted, state.Status)
	assert.Equal(t, "/api/trails/"+trailID+"/locations", state.Redirect)

	state = CreateLocation(ctx, db, "", FormData{"trail_id": trailID})
	assert.Equal(t, StatusRejected, state.Status)
	assert.Equal(t, []string{"Please enter a location name."}, state.Errors["name"])
	assert.Equal(t, "Missing Fields. Failed to Create Location.", *state.Message)

	state = CreateLocation(ctx, db, "", FormData{"trail_id": "no-such-trail", "name": "Anywhere"})
	assert.Equal(t, StatusRejected, state.Status)
	assert.Equal(t, []string{"Trail not found."}, state.Errors["trail_id"])

	assert.Equal(t, int64(1), countRows(t, db, &models.Location{}))
}

func TestCreateDrinkSoftDrinkNeverAlcoholic(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	trailID := createTrail(t, db, "", "Dresden")
	locationID := createLocation(t, db, trailID, "Neustadt")

	for _, checkbox := range []interface{}{"on", true, "true", nil, false} {
		state := CreateDrink(ctx, db, "", FormData{
			"trail_id":      trailID,
			"location_id":   locationID,
			"type":          "soft-drink",
			"softDrinkType": "Cola",
			"size":          "0.33L",
			"isAlcoholic":   checkbox,
		})
		require.Equal(t, StatusCommitted, state.Status, state.Errors)

		var drink models.Drink
		require.NoError(t, db.First(&drink, "id = ?", state.ID).Error)
		assert.False(t, drink.IsAlcoholic)
		assert.Equal(t, "Cola", drink.SpecificType)
	}
}

func TestCreateDrinkAlcoholicCheckbox(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	trailID := createTrail(t, db, "", "Leipzig")
	locationID := createLocation(t, db, trailID, "Moritzbastei")

	state := CreateDrink(ctx, db, "", FormData{
		"location_id":  locationID,
		"type":         "cocktail",
		"cocktailType": "Negroni",
		"size":         "0.2L",
		"isAlcoholic":  "on",
	})
	require.Equal(t, StatusCommitted, state.Status)
	assert.Equal(t, "/api/trails/"+trailID+"/locations/"+locationID, state.Redirect)

	var drink models.Drink
	require.NoError(t, db.First(&drink, "id = ?", state.ID).Error)
	assert.True(t, drink.IsAlcoholic)
	assert.Equal(t, models.CategoryCocktail, drink.Category)
	assert.Equal(t, models.Size200ml, drink.Size)

	state = CreateDrink(ctx, db, "", FormData{
		"location_id": locationID,
		"type":        "beer",
		"beerType":    "Paulaner",
		"size":        "0.5L",
	})
	require.Equal(t, StatusCommitted, state.Status)

	var unchecked models.Drink
	require.NoError(t, db.First(&unchecked, "id = ?", state.ID).Error)
	assert.False(t, unchecked.IsAlcoholic)
	assert.Equal(t, "Paulaner", unchecked.SpecificType)
}

func TestCreateDrinkRejectsMismatchedType(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	trailID := createTrail(t, db, "", "Bamberg")
	locationID := createLocation(t, db, trailID, "Schlenkerla")

	state := CreateDrink(ctx, db, "", FormData{
		"location_id": locationID,
		"type":        "beer",
		"beerType":    "Mojito",
		"size":        "0.5L",
	})
	assert.Equal(t, StatusRejected, state.Status)
	assert.Equal(t, []string{"Please select a valid beer type."}, state.Errors["beerType"])
	assert.Zero(t, countRows(t, db, &models.Drink{}))
}

func TestCreateDrinkRejectsMissingSpecificType(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	trailID := createTrail(t, db, "", "Düsseldorf")
	locationID := createLocation(t, db, trailID, "Altstadt")

	state := CreateDrink(ctx, db, "", FormData{
		"location_id":  locationID,
		"type":         "beer",
		"beerType":     "",
		"cocktailType": "Not A Cocktail",
		"size":         "0.5L",
	})
	assert.Equal(t, StatusRejected, state.Status)
	assert.NotEmpty(t, state.Errors["beerType"])
	assert.NotContains(t, state.Errors, "cocktailType")
	assert.NotContains(t, state.Errors, "softDrinkType")
	require.NotNil(t, state.Message)
	assert.Contains(t, *state.Message, "Failed")
	assert.Zero(t, countRows(t, db, &models.Drink{}))
}

func TestCreateDrinkInvalidCategorySkipsSpecificType(t *testing.T) {
	db := setupTestDB(t)

	state := CreateDrink(context.Background(), db, "", FormData{
		"location_id": "somewhere",
		"type":        "wine",
		"size":        "2L",
	})
	assert.Equal(t, StatusRejected, state.Status)
	assert.Equal(t, []string{"Please select a drink type."}, state.Errors["type"])
	assert.Equal(t, []string{"Please select a drink size."}, state.Errors["size"])
	assert.Len(t, state.Errors, 2)
}

func TestCreateDrinkLocationChecks(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	trailA := createTrail(t, db, "", "A")
	trailB := createTrail(t, db, "", "B")
	locationA := createLocation(t, db, trailA, "Bar A")

	form := FormData{
		"location_id": "missing",
		"type":        "beer",
		"beerType":    "Erdinger",
		"size":        "1L",
	}
	state := CreateDrink(ctx, db, "", form)
	assert.Equal(t, StatusRejected, state.Status)
	assert.Equal(t, []string{"Location not found."}, state.Errors["location_id"])

	form["location_id"] = locationA
	form["trail_id"] = trailB
	state = CreateDrink(ctx, db, "", form)
	assert.Equal(t, StatusRejected, state.Status)
	assert.NotEmpty(t, state.Errors["location_id"])

	assert.Zero(t, countRows(t, db, &models.Drink{}))
}

func TestStoreFaultIsGenericFailure(t *testing.T) {
	db := setupTestDB(t)
	database.Close(db)

	state := CreateTrail(context.Background(), db, "", FormData{"name": "a", "description": "b"})
	assert.Equal(t, StatusFailed, state.Status)
	assert.Equal(t, "Database Error: Failed to Create Trail.", *state.Message)
	assert.Empty(t, state.Errors)
}

func TestFormDataString(t *testing.T) {
	form := FormData{
		"a": "  padded ",
		"b": []string{"first", "second"},
		"c": 42,
	}
	assert.Equal(t, "padded", form.String("a"))
	assert.Equal(t, "first", form.String("b"))
	assert.Equal(t, "42", form.String("c"))
	assert.Equal(t, "", form.String("missing"))
}
