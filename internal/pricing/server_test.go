package pricing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firedeskhq/firedesk/pkg/cerr"
)

func newQuoteRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(cerr.NewJSONResponseChiMiddleware())
	NewServer().Routes(r)
	return r
}

func TestQuoteEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	newQuoteRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/templates/tpl-fire-alarm/quote", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Estimate Estimate `json:"estimate"`
		Quote    string   `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Greater(t, body.Estimate.TotalCost, 0.0)
	assert.Contains(t, body.Quote, "FIRE PROTECTION PROJECT QUOTE")
}

func TestQuoteEndpointComplexity(t *testing.T) {
	standard := httptest.NewRecorder()
	newQuoteRouter().ServeHTTP(standard, httptest.NewRequest(http.MethodPost, "/templates/tpl-fire-alarm/quote", nil))

	complexReq := httptest.NewRequest(http.MethodPost, "/templates/tpl-fire-alarm/quote",
		strings.NewReader(`{"complexity":"complex"}`))
	complexRec := httptest.NewRecorder()
	newQuoteRouter().ServeHTTP(complexRec, complexReq)

	var std, cpx struct {
		Estimate Estimate `json:"estimate"`
	}
	require.NoError(t, json.Unmarshal(standard.Body.Bytes(), &std))
	require.NoError(t, json.Unmarshal(complexRec.Body.Bytes(), &cpx))
	assert.Greater(t, cpx.Estimate.TotalCost, std.Estimate.TotalCost)
}

func TestQuoteEndpointUnknownTemplate(t *testing.T) {
	rec := httptest.NewRecorder()
	newQuoteRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/templates/tpl-nope/quote", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}
