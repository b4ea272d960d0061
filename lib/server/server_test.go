package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/gitscore/lib/model"
)

func TestListContributors(t *testing.T) {
	t.Parallel()

	w := request(t, "/api/contributors")
	require.Equal(t, http.StatusOK, w.Code)

	var result []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result, 2)

	assert.Equal(t, "alice@example.com", result[0]["key"])
	assert.Equal(t, "Alice", result[0]["name"])
	assert.Equal(t, float64(5), result[0]["commitsTotal"])
}

func TestListScorecards(t *testing.T) {
	t.Parallel()

	w := request(t, "/api/scorecards")
	require.Equal(t, http.StatusOK, w.Code)

	var result []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result, 2)

	assert.Equal(t, 0.8, result[0]["overall"])
	assert.NotNil(t, result[0]["contributor"])
}

func TestGetScorecard(t *testing.T) {
	t.Parallel()

	w := request(t, "/api/scorecards/bob@example.com")
	require.Equal(t, http.StatusOK, w.Code)

	var result map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	assert.Equal(t, 0.6, result["overall"])
}

func TestGetScorecardNotFound(t *testing.T) {
	t.Parallel()

	w := request(t, "/api/scorecards/ghost@example.com")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func request(t *testing.T, path string) *httptest.ResponseRecorder {
	s := newServer(nil)
	s.cards = testCards()

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)

	s.router().ServeHTTP(w, req)
	return w
}

func testCards() []*model.Scorecard {
	alice := model.NewContributor("alice@example.com")
	alice.Name = "Alice"
	alice.CommitsFeature = 5

	bob := model.NewContributor("bob@example.com")
	bob.Name = "Bob"
	bob.CommitsFeature = 2

	return []*model.Scorecard{
		{Contributor: alice, Overall: 0.8},
		{Contributor: bob, Overall: 0.6},
	}
}
