package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/uia-collective/compass/internal/catalog"
	"github.com/uia-collective/compass/internal/scoring"
)

type AssessmentsHandler struct {
	engine  *scoring.Engine
	metrics *Metrics
	logger  *slog.Logger
}

func NewAssessmentsHandler(e *scoring.Engine, m *Metrics, logger *slog.Logger) *AssessmentsHandler {
	return &AssessmentsHandler{engine: e, metrics: m, logger: logger}
}

type AssessmentRequest struct {
	Phase   string         `json:"phase"`
	Answers map[string]int `json:"answers"`
}

// AssessmentResponse wraps the evaluation result with an id and timestamp so
// the response doubles as an export document.
type AssessmentResponse struct {
	AssessmentID string    `json:"assessment_id"`
	CreatedAt    time.Time `json:"created_at"`
	scoring.Result
}

// Create handles POST /api/v1/assessments
func (h *AssessmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	phase, ok := catalog.ParsePhase(req.Phase)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid phase"})
		return
	}

	start := time.Now()
	result := h.engine.Evaluate(scoring.Input{Phase: phase, Answers: req.Answers})
	h.metrics.AssessmentsTotal.WithLabelValues(string(phase)).Inc()
	h.metrics.Duration.Observe(time.Since(start).Seconds())
	h.metrics.OverallScore.Observe(result.OverallScore)

	if len(result.Dropped) > 0 {
		h.logger.Warn("ignoring unknown question ids",
			"count", len(result.Dropped),
			"ids", result.Dropped,
		)
	}

	writeJSON(w, http.StatusOK, AssessmentResponse{
		AssessmentID: uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		Result:       result,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
