package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SiddeshHulagur/CarbonTracker/models"
	"github.com/SiddeshHulagur/CarbonTracker/services"
	"github.com/SiddeshHulagur/CarbonTracker/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInput(t *testing.T) {
	cases := []struct {
		name string
		in   utils.ActivityInput
		msg  string
	}{
		{
			name: "valid payload",
			in: utils.ActivityInput{
				Transport:   &models.Transport{CarKm: 10, BusKm: 2, BikeKm: 1, WalkKm: 0.5},
				Electricity: &models.Electricity{KwhUsed: 5},
				Food:        &models.Food{Meat: 1, Dairy: 2, Vegetables: 3, Processed: 4},
			},
			msg: "",
		},
		{
			name: "empty payload",
			in:   utils.ActivityInput{},
			msg:  "",
		},
		{
			name: "negative transport field",
			in:   utils.ActivityInput{Transport: &models.Transport{CarKm: -1}},
			msg:  "All numeric values must be non-negative numbers",
		},
		{
			name: "negative food field",
			in:   utils.ActivityInput{Food: &models.Food{Dairy: -0.5}},
			msg:  "All numeric values must be non-negative numbers",
		},
		{
			name: "car km over daily ceiling",
			in:   utils.ActivityInput{Transport: &models.Transport{CarKm: 1001}},
			msg:  "Values exceed reasonable daily limits",
		},
		{
			name: "kwh over daily ceiling",
			in:   utils.ActivityInput{Electricity: &models.Electricity{KwhUsed: 1500}},
			msg:  "Values exceed reasonable daily limits",
		},
		{
			name: "exactly at ceiling passes",
			in:   utils.ActivityInput{Transport: &models.Transport{CarKm: 1000}},
			msg:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.msg, validateInput(tc.in))
		})
	}
}

func newActivityRouter() (*gin.Engine, *services.MemoryActivityStore) {
	gin.SetMode(gin.TestMode)
	store := services.NewMemoryActivityStore()
	ctrl := NewActivityController(services.NewActivityService(store))

	r := gin.New()
	r.POST("/api/activities", func(c *gin.Context) {
		c.Set("userID", uint(1))
		ctrl.Log(c)
	})
	return r, store
}

func TestLogRejectsNegativeValues(t *testing.T) {
	r, store := newActivityRouter()

	body := `{"transport":{"carKm":-5}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/activities", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "non-negative")

	n, err := store.CountByUser(req.Context(), 1)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLogRejectsValuesOverDailyLimit(t *testing.T) {
	r, _ := newActivityRouter()

	body := `{"electricity":{"kwhUsed":5000}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/activities", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "daily limits")
}

func TestLogPersistsValidPayload(t *testing.T) {
	r, store := newActivityRouter()

	// 10*0.21 + 5*0.5 + 1*6.61 + 2*0.43 = 12.07
	body := `{"transport":{"carKm":10},"electricity":{"kwhUsed":5},"food":{"meat":1,"vegetables":2}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/activities", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"totalCO2":12.07`)

	n, err := store.CountByUser(req.Context(), 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
