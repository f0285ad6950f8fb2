package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-skill/internal/models"
	"weather-skill/internal/services/answer"
	"weather-skill/pkg/observe"
)

type stubForecasts struct {
	payload *models.ForecastPayload
	err     error
}

func (s *stubForecasts) Name() string { return "stub" }

func (s *stubForecasts) FetchForecast(_ context.Context, _, _ float64, _ *time.Location) (*models.ForecastPayload, error) {
	return s.payload, s.err
}

type stubGeocoder struct{}

func (stubGeocoder) Geocode(_ context.Context, _ string) (float64, float64, error) {
	return 53.5506, 9.9930, nil
}

func testApp(forecasts *stubForecasts) *fiber.App {
	l := observe.NewZapLogger("test", io.Discard)
	svc := answer.NewService(forecasts, stubGeocoder{}, nil, l, 53.5506, 9.9930).
		WithClock(func() time.Time { return time.Date(2021, 3, 1, 10, 0, 0, 0, time.UTC) })

	app := fiber.New()
	NewRouter(app, svc, l)
	return app
}

func fp(v float64) *float64 { return &v }

func TestHandleAnswer_MissingQuestion(t *testing.T) {
	app := testApp(&stubForecasts{})

	resp, err := app.Test(httptest.NewRequest("GET", "/answer", nil))

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Error, "question")
}

func TestHandleAnswer_UnknownQuestion(t *testing.T) {
	app := testApp(&stubForecasts{})

	resp, err := app.Test(httptest.NewRequest("GET", "/answer?question=humidity", nil))

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnswer_Success(t *testing.T) {
	app := testApp(&stubForecasts{
		payload: &models.ForecastPayload{
			Currently: &models.WeatherRecord{Summary: "Bewölkt", Icon: models.IconCloudy, Temperature: fp(12.4)},
		},
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/answer?question=temperature", nil))

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body AnswerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Es sind gerade 12 Grad.", body.Answer)
}

func TestHandleAnswer_StaysSilentOnFetchFailure(t *testing.T) {
	app := testApp(&stubForecasts{err: errors.New("upstream 500")})

	resp, err := app.Test(httptest.NewRequest("GET", "/answer?question=forecast", nil))

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestHandleAnswer_StaysSilentWithoutData(t *testing.T) {
	// The requested range resolves fine but the payload cannot serve it; the
	// reply is still empty, never an error sentence.
	app := testApp(&stubForecasts{payload: &models.ForecastPayload{
		Hourly: []models.WeatherRecord{
			{Time: time.Date(2021, 3, 20, 12, 0, 0, 0, time.UTC), Temperature: fp(3)},
		},
	}})

	resp, err := app.Test(httptest.NewRequest("GET", "/answer?question=temperature&when=Morgen", nil))

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
