package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
)

func TestCalculateNutrition(t *testing.T) {
	env := newTestEnv(t)
	rice := env.createFood(t, "Red Rice", models.Nutrition{Calories: 111, Protein: 2.6})
	flour := env.createProduct(t, "Kurakkan Flour", 450, 10)

	w := env.PerformRequestWithToken(http.MethodPost, "/api/nutrition/calculate", map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": rice.ID.String(), "quantity": 200},
			{"source": "product", "id": flour.ID.String(), "quantity": 50},
		},
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result service.Calculation
	decodeBody(t, w, &result)
	require.Len(t, result.Items, 2)
	assert.Equal(t, 222.0, result.Items[0].Totals.Calories)
	assert.Equal(t, 175.0, result.Items[1].Totals.Calories)
	assert.Equal(t, 397.0, result.Total.Calories)
	assert.Equal(t, 8.7, result.Total.Protein)
}

func TestCalculateNutritionRejectsBadItems(t *testing.T) {
	env := newTestEnv(t)

	w := env.PerformRequestWithToken(http.MethodPost, "/api/nutrition/calculate", map[string]interface{}{
		"items": []map[string]interface{}{{"id": uuid.NewString(), "quantity": 100}},
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.PerformRequestWithToken(http.MethodPost, "/api/nutrition/calculate", map[string]interface{}{
		"items": []map[string]interface{}{{"source": "recipe", "id": uuid.NewString(), "quantity": 100}},
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.PerformRequestWithToken(http.MethodPost, "/api/nutrition/calculate", map[string]interface{}{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
