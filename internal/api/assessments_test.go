package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/uia-collective/compass/internal/catalog"
)

func postAssessment(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/assessments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAssessment(t *testing.T) {
	router := setupTestRouter(t)

	w := postAssessment(t, router, `{"phase":"design","answers":{"e1":5,"e2":5,"c1":3}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp AssessmentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	_, err := uuid.Parse(resp.AssessmentID)
	assert.NoError(t, err, "assessment_id should be a uuid")
	assert.False(t, resp.CreatedAt.IsZero())
	assert.Equal(t, catalog.PhaseDesign, resp.Phase)

	assert.Len(t, resp.SDGScores, 2)
	var seven, thirteen bool
	for _, s := range resp.SDGScores {
		switch s.SDG {
		case 7:
			seven = true
			assert.Equal(t, 100.0, s.Adjusted)
			assert.Equal(t, catalog.TierExemplary, s.Tier)
		case 13:
			thirteen = true
			assert.Equal(t, 60.0, s.Raw)
			assert.Equal(t, 10.0, s.Bonus)
			assert.Equal(t, 70.0, s.Adjusted)
			assert.Equal(t, catalog.TierAdvanced, s.Tier)
		}
	}
	assert.True(t, seven && thirteen, "both goals should be scored")

	assert.Equal(t, 85.0, resp.OverallScore)
	assert.Equal(t, catalog.TierAdvanced, resp.OverallTier)

	assert.Len(t, resp.Recommendations, 2)
	assert.Equal(t, []string{"Size the photovoltaic array against modelled demand"}, resp.Recommendations[0].Items)
	assert.NotEmpty(t, resp.Recommendations[1].Items)
}

func TestCreateAssessmentEmptyBody(t *testing.T) {
	router := setupTestRouter(t)

	w := postAssessment(t, router, `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp AssessmentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	assert.Equal(t, catalog.PhaseDesign, resp.Phase, "missing phase defaults to design")
	assert.Equal(t, 0.0, resp.OverallScore)
	assert.Equal(t, catalog.TierNoScore, resp.OverallTier)
	for _, s := range resp.SDGScores {
		assert.Equal(t, catalog.TierNoScore, s.Tier)
	}
	for _, rec := range resp.Recommendations {
		assert.NotEmpty(t, rec.Items)
	}
}

func TestCreateAssessmentInvalidJSON(t *testing.T) {
	router := setupTestRouter(t)

	w := postAssessment(t, router, `{"phase":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAssessmentUnknownPhase(t *testing.T) {
	router := setupTestRouter(t)

	w := postAssessment(t, router, `{"phase":"demolition"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAssessmentDropsUnknownIDs(t *testing.T) {
	router := setupTestRouter(t)

	w := postAssessment(t, router, `{"answers":{"nope":3,"e1":2}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp AssessmentResponse
	json.NewDecoder(w.Body).Decode(&resp)
	assert.Equal(t, []string{"nope"}, resp.Dropped)
	for _, s := range resp.SDGScores {
		if s.SDG == 7 {
			assert.Equal(t, 20.0, s.Raw)
		}
	}
}

func TestCreateAssessmentClampsLevels(t *testing.T) {
	router := setupTestRouter(t)

	w := postAssessment(t, router, `{"answers":{"e1":99,"c1":-2}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp AssessmentResponse
	json.NewDecoder(w.Body).Decode(&resp)
	for _, s := range resp.SDGScores {
		switch s.SDG {
		case 7:
			assert.Equal(t, 50.0, s.Raw, "oversized level clamps to the top answer")
		case 13:
			assert.Equal(t, 0.0, s.Raw, "negative level clamps to zero")
		}
	}
}
