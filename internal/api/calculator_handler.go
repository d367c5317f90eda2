package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/timekeeper/internal/api/shared"
	"github.com/phrazzld/timekeeper/internal/domain/clock"
	"github.com/phrazzld/timekeeper/internal/domain/duration"
	"github.com/phrazzld/timekeeper/internal/service"
)

// CalculatorHandler handles time and duration HTTP requests
type CalculatorHandler struct {
	calculator service.CalculatorService
	logger     *slog.Logger
}

// NewCalculatorHandler creates a new CalculatorHandler
func NewCalculatorHandler(calculator service.CalculatorService, logger *slog.Logger) *CalculatorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CalculatorHandler{
		calculator: calculator,
		logger:     logger.With("component", "calculator_handler"),
	}
}

// Routes mounts the handler's endpoints on r.
func (h *CalculatorHandler) Routes(r chi.Router) {
	r.Route("/times", func(r chi.Router) {
		r.Post("/evaluate", h.EvaluateTime)
		r.Get("/{value}", h.GetTime)
	})
	r.Route("/durations", func(r chi.Router) {
		r.Post("/evaluate", h.EvaluateDuration)
		r.Get("/{value}", h.GetDuration)
	})
}

// GetTime handles GET /api/times/{value} requests
func (h *CalculatorHandler) GetTime(w http.ResponseWriter, r *http.Request) {
	t, err := clock.Parse(chi.URLParam(r, "value"))
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, timeToResponse(t))
}

// GetDuration handles GET /api/durations/{value} requests
func (h *CalculatorHandler) GetDuration(w http.ResponseWriter, r *http.Request) {
	d, err := duration.Parse(chi.URLParam(r, "value"))
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, durationToResponse(d))
}

// EvaluateTime handles POST /api/times/evaluate requests
func (h *CalculatorHandler) EvaluateTime(w http.ResponseWriter, r *http.Request) {
	var req EvaluateTimeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	start, err := clock.Parse(req.Time)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	steps, err := toSteps(req.Steps)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	result, err := h.calculator.EvaluateTime(r.Context(), start, steps)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, EvaluateTimeResponse{Time: result.String()})
}

// EvaluateDuration handles POST /api/durations/evaluate requests
func (h *CalculatorHandler) EvaluateDuration(w http.ResponseWriter, r *http.Request) {
	var req EvaluateDurationRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	start, err := duration.Parse(req.Duration)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	steps, err := toSteps(req.Steps)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	result, err := h.calculator.EvaluateDuration(r.Context(), start, steps)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, EvaluateDurationResponse{Duration: result.String()})
}

// decodeAndValidate reads the JSON body into v and validates it, writing a
// 400 response and returning false on failure.
func (h *CalculatorHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		if MapErrorToStatusCode(err) == http.StatusBadRequest {
			h.respondWithError(w, r, err)
			return false
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}

func (h *CalculatorHandler) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "calculation failed",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
	}
	shared.RespondWithErrorAndLog(w, r, status, ClientErrorMessage(err), err)
}
