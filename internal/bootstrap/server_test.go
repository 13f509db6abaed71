package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Domenick1991/airport-pps/config"
	"github.com/Domenick1991/airport-pps/internal/logger"
	"github.com/Domenick1991/airport-pps/internal/notifier"
	"github.com/Domenick1991/airport-pps/internal/repository"
	"github.com/Domenick1991/airport-pps/internal/service/bags"
	"github.com/Domenick1991/airport-pps/internal/service/flights"
	"github.com/Domenick1991/airport-pps/internal/service/passengers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	store := repository.NewMemoryStore().Store()
	flightSvc := flights.NewFlightService(store.Flights, store.Passengers, nil, log)
	passengerSvc := passengers.NewPassengerService(store.Passengers, notifier.NewNopNotifier(log), log)
	bagSvc := bags.NewBagService(store.Bags, store.Passengers, log)

	require.NoError(t, Seed(context.Background(), flightSvc, passengerSvc, log))
	// Seeding twice is harmless.
	require.NoError(t, Seed(context.Background(), flightSvc, passengerSvc, log))

	return NewRouter(cfg, Services{Flights: flightSvc, Passengers: passengerSvc, Bags: bagSvc}, log)
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_GateScenario(t *testing.T) {
	router := newTestRouter(t, &config.Config{Telemetry: config.TelemetryConfig{ServiceName: "test"}})

	w := do(router, "GET", "/api/flights", "")
	require.Equal(t, http.StatusOK, w.Code)
	var flightList []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &flightList))
	assert.Len(t, flightList, 2)

	w = do(router, "GET", "/api/passengers/abc123", "")
	require.Equal(t, http.StatusOK, w.Code)
	var passenger struct {
		ID            int64  `json:"id"`
		CheckInStatus string `json:"checkInStatus"`
		SeatNumber    string `json:"seatNumber"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &passenger))
	assert.Equal(t, "CheckedIn", passenger.CheckInStatus)
	assert.Equal(t, "14A", passenger.SeatNumber)

	body, _ := json.Marshal(map[string]interface{}{"passengerId": passenger.ID, "bagTagNumber": "0123456789", "weightKg": 18.5})
	w = do(router, "POST", "/api/bagdrop", string(body))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Registered"`)

	w = do(router, "GET", "/api/flights/EZY1234/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalBags":1`)
	assert.Contains(t, w.Body.String(), `"totalBagWeightKg":18.5`)

	w = do(router, "PATCH", "/api/passengers/ABC123/board", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"checkInStatus":"Boarded"`)

	w = do(router, "PATCH", "/api/passengers/ABC123/board", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(router, "POST", "/api/passengers/check-in", `{"bookingReference":"ABC123","seatNumber":"15C"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(router, "GET", "/api/flights/EZY1234/manifest", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bagTagNumber":"0123456789"`)

	w = do(router, "GET", "/api/flights/NOPE01/stats", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Swagger(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, swaggerDocument), []byte(`{"swagger":"2.0"}`), 0o644))

	router := newTestRouter(t, &config.Config{HTTP: config.HTTPConfig{SwaggerDir: dir}})

	w := do(router, "GET", "/openapi/"+swaggerDocument, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger")

	w = do(router, "GET", "/swagger/index.html", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t, &config.Config{})

	w := do(router, "GET", "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
