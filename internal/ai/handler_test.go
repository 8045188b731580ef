package ai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	NewHandler().Routes().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestKeywordResearchEndpoint(t *testing.T) {
	t.Run("extracts keywords", func(t *testing.T) {
		rec := doRequest(t, "/keyword-research",
			`{"title":"Wireless Bluetooth Earbuds","description":"IPX7 waterproof"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		keywords, ok := body["keywords"].([]interface{})
		require.True(t, ok)
		assert.Equal(t, "waterproof", keywords[0])
	})

	t.Run("missing title", func(t *testing.T) {
		rec := doRequest(t, "/keyword-research", `{"description":"nope"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "title is required", decodeBody(t, rec)["error"])
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := doRequest(t, "/keyword-research", `{"title":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody(t, rec), "error")
	})
}

func TestCompetitorAnalysisEndpoint(t *testing.T) {
	t.Run("classifies phrases", func(t *testing.T) {
		rec := doRequest(t, "/competitor-analysis",
			`{"keywords":["wireless bluetooth earbuds","earbuds"]}`)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		analysis, ok := body["analysis"].([]interface{})
		require.True(t, ok)
		require.Len(t, analysis, 2)
		first := analysis[0].(map[string]interface{})
		assert.Equal(t, "low", first["competition"])
		second := analysis[1].(map[string]interface{})
		assert.Equal(t, "high", second["competition"])
	})

	t.Run("empty keyword list", func(t *testing.T) {
		rec := doRequest(t, "/competitor-analysis", `{"keywords":[]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListingOptimizeEndpoint(t *testing.T) {
	t.Run("composes listing", func(t *testing.T) {
		rec := doRequest(t, "/listing-optimize",
			`{"category":"Electronics","productName":"AirBuds","seoKeywords":["wireless earbuds"]}`)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "AirBuds – Wireless Earbuds | Electronics", body["title"])
	})

	t.Run("missing category", func(t *testing.T) {
		rec := doRequest(t, "/listing-optimize", `{"productName":"AirBuds"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "category is required", decodeBody(t, rec)["error"])
	})
}

func TestProductResearchEndpoint(t *testing.T) {
	t.Run("computes score with breakdown echo", func(t *testing.T) {
		rec := doRequest(t, "/product-research",
			`{"demandScore":70,"competitionScore":40,"profitMargin":35,"marketSaturation":30}`)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.InDelta(t, 57, body["opportunityScore"].(float64), 1e-9)
		breakdown := body["breakdown"].(map[string]interface{})
		assert.InDelta(t, 40, breakdown["competitionScore"].(float64), 1e-9)
	})

	t.Run("upper boundary accepted", func(t *testing.T) {
		rec := doRequest(t, "/product-research",
			`{"demandScore":100,"competitionScore":0,"profitMargin":100,"marketSaturation":0}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 100, decodeBody(t, rec)["opportunityScore"].(float64), 1e-9)
	})

	t.Run("out of range rejected", func(t *testing.T) {
		rec := doRequest(t, "/product-research",
			`{"demandScore":101,"competitionScore":0,"profitMargin":0,"marketSaturation":0}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "demandScore must be at most 100", decodeBody(t, rec)["error"])
	})

	t.Run("explicit zero is not treated as missing", func(t *testing.T) {
		rec := doRequest(t, "/product-research",
			`{"demandScore":0,"competitionScore":0,"profitMargin":0,"marketSaturation":0}`)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing metric rejected", func(t *testing.T) {
		rec := doRequest(t, "/product-research",
			`{"demandScore":50,"competitionScore":50,"profitMargin":50}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "marketSaturation is required", decodeBody(t, rec)["error"])
	})
}
