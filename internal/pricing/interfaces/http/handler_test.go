package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/optionpricing/internal/pricing/application"
	"github.com/wyfcoding/optionpricing/pkg/metrics"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := application.NewService(application.Defaults{Paths: 10000, Steps: 500, Seed: 7}, logger, metrics.New("test"))

	engine := gin.New()
	NewPricingHandler(svc).RegisterRoutes(engine)
	return engine
}

func doPost(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPriceOptionEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doPost(t, router, "/api/v1/pricing/option/price", gin.H{
		"spot":           100,
		"strike":         100,
		"time_to_expiry": 1,
		"risk_free_rate": 0.05,
		"volatility":     0.2,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Model string `json:"model"`
		Call  string `json:"call"`
		Put   string `json:"put"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "BLACK_SCHOLES", resp.Model)
	assert.NotEmpty(t, resp.Call)
	assert.NotEmpty(t, resp.Put)
}

func TestPriceOptionEndpointModelSelection(t *testing.T) {
	router := newTestRouter()

	for _, model := range []string{"BLACK_SCHOLES", "MONTE_CARLO", "BINOMIAL"} {
		rec := doPost(t, router, "/api/v1/pricing/option/price", gin.H{
			"spot":           100,
			"strike":         100,
			"time_to_expiry": 1,
			"risk_free_rate": 0.05,
			"volatility":     0.2,
			"model":          model,
		})
		require.Equal(t, http.StatusOK, rec.Code, "model %s: %s", model, rec.Body.String())
	}
}

func TestPriceOptionEndpointMissingField(t *testing.T) {
	router := newTestRouter()

	// volatility 缺失，binding 校验拒绝
	rec := doPost(t, router, "/api/v1/pricing/option/price", gin.H{
		"spot":           100,
		"strike":         100,
		"time_to_expiry": 1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPriceOptionEndpointInvalidContract(t *testing.T) {
	router := newTestRouter()

	rec := doPost(t, router, "/api/v1/pricing/option/price", gin.H{
		"spot":           100,
		"strike":         100,
		"time_to_expiry": 1,
		"volatility":     -0.2,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPriceOptionEndpointUnknownModel(t *testing.T) {
	router := newTestRouter()

	rec := doPost(t, router, "/api/v1/pricing/option/price", gin.H{
		"spot":           100,
		"strike":         100,
		"time_to_expiry": 1,
		"volatility":     0.2,
		"model":          "TRINOMIAL",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPriceOptionEndpointOverflow(t *testing.T) {
	router := newTestRouter()

	rec := doPost(t, router, "/api/v1/pricing/option/price", gin.H{
		"spot":           100,
		"strike":         100,
		"time_to_expiry": 1,
		"risk_free_rate": -1e7,
		"volatility":     0.2,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGreeksEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doPost(t, router, "/api/v1/pricing/option/greeks", gin.H{
		"spot":           100,
		"strike":         100,
		"time_to_expiry": 1,
		"risk_free_rate": 0.05,
		"volatility":     0.2,
		"option_type":    "CALL",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Delta string `json:"delta"`
		Vega  string `json:"vega"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Delta)
	assert.NotEmpty(t, resp.Vega)
}

func TestGreeksEndpointMissingType(t *testing.T) {
	router := newTestRouter()

	rec := doPost(t, router, "/api/v1/pricing/option/greeks", gin.H{
		"spot":           100,
		"strike":         100,
		"time_to_expiry": 1,
		"volatility":     0.2,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
