package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
)

func TestGeneratePlate(t *testing.T) {
	env := newTestEnv(t)
	env.createFood(t, "Gotukola Sambol", models.Nutrition{Calories: 40, Protein: 2, GlycemicIndex: 15})
	env.createFood(t, "Parippu", models.Nutrition{Calories: 120, Protein: 9, GlycemicIndex: 30})
	env.createFood(t, "Kottu Roti", models.Nutrition{Calories: 450, Protein: 12, GlycemicIndex: 70})

	w := env.PerformRequestWithToken(http.MethodGet, "/api/sri-lankan-plates/generate?goal=weight-loss&calories=500&language=si", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var plate map[string]interface{}
	decodeBody(t, w, &plate)
	assert.Equal(t, "weight-loss", plate["goal"])
	assert.Equal(t, "Weight-loss Friendly Plate", plate["displayName"])
	assert.Equal(t, true, plate["isBusyLifeFriendly"])
	items := plate["items"].([]interface{})
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.NotEqual(t, "Kottu Roti", item.(map[string]interface{})["name"])
	}

	// The stored plate is served on the next request.
	w = env.PerformRequestWithToken(http.MethodGet, "/api/sri-lankan-plates/generate?goal=weight-loss", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var again map[string]interface{}
	decodeBody(t, w, &again)
	assert.Equal(t, plate["id"], again["id"])
}

func TestGeneratePlateValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.PerformRequestWithToken(http.MethodGet, "/api/sri-lankan-plates/generate", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.PerformRequestWithToken(http.MethodGet, "/api/sri-lankan-plates/generate?goal=bulking", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.PerformRequestWithToken(http.MethodGet, "/api/sri-lankan-plates/generate?goal=diabetes&calories=-1", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeneratePlateRejectsNonFiniteCalories(t *testing.T) {
	env := newTestEnv(t)
	env.createFood(t, "Parippu", models.Nutrition{Calories: 120, Protein: 9, GlycemicIndex: 30})

	for _, raw := range []string{"NaN", "Inf", "-Inf", "1e308", "10001"} {
		w := env.PerformRequestWithToken(http.MethodGet, "/api/sri-lankan-plates/generate?goal=diabetes&calories="+raw, nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, raw)
		assert.Contains(t, w.Body.String(), "calories", raw)
	}

	var count int64
	require.NoError(t, env.db.Model(&models.SriLankanPlate{}).Count(&count).Error)
	assert.Zero(t, count)

	w := env.PerformRequestWithToken(http.MethodGet, "/api/sri-lankan-plates/generate?goal=diabetes&calories=1500", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.PerformRequestWithToken(http.MethodGet, "/api/sri-lankan-plates?goal=diabetes", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var plates []models.SriLankanPlate
	decodeBody(t, w, &plates)
	assert.Len(t, plates, 1)
}

func TestGeneratePlateEmptyCatalog(t *testing.T) {
	env := newTestEnv(t)

	w := env.PerformRequestWithToken(http.MethodGet, "/api/sri-lankan-plates/generate?goal=diabetes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var plate models.SriLankanPlate
	decodeBody(t, w, &plate)
	assert.Empty(t, plate.Items)
	assert.Zero(t, plate.TotalNutrition.Calories)
}

func TestListAndCreatePlates(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "admin@example.com", models.RoleAdmin)

	w := env.PerformRequestWithToken(http.MethodPost, "/api/sri-lankan-plates", map[string]interface{}{
		"name":               map[string]string{"en": "Office Lunch"},
		"goal":               "general-health",
		"isBusyLifeFriendly": true,
		"items": []map[string]interface{}{
			{"name": "Red Rice", "portion": "150g", "nutrition": map[string]float64{"calories": 166, "protein": 4}},
			{"name": "Dhal", "portion": "100g", "nutrition": map[string]float64{"calories": 120, "protein": 9}},
		},
		"totalNutrition": map[string]float64{"calories": 1},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.SriLankanPlate
	decodeBody(t, w, &created)
	assert.Equal(t, 286.0, created.TotalNutrition.Calories)
	assert.Equal(t, 13.0, created.TotalNutrition.Protein)

	w = env.PerformRequestWithToken(http.MethodGet, "/api/sri-lankan-plates?busyLife=true", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var plates []models.SriLankanPlate
	decodeBody(t, w, &plates)
	require.Len(t, plates, 1)

	w = env.PerformRequestWithToken(http.MethodGet, "/api/sri-lankan-plates?busyLife=false", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &plates)
	assert.Empty(t, plates)

	w = env.PerformRequestWithToken(http.MethodGet, "/api/sri-lankan-plates?busyLife=maybe", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
