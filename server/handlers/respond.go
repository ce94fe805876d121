package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"portal-server/api/portal"
	services "portal-server/service"

	"go.uber.org/zap"
)

const NOW_QUERY_ARG = "now"

// parseNow reads the optional ?now=RFC3339 override, defaulting to clock().
func parseNow(r *http.Request, clock func() time.Time) (time.Time, error) {
	v := r.URL.Query().Get(NOW_QUERY_ARG)
	if v == "" {
		return clock(), nil
	}
	return time.Parse(time.RFC3339, v)
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("error encoding response", zap.Error(err))
	}
}

// writeError maps the service error kinds onto status codes; what failed is
// logged while the client only gets a generic message.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error, what string) {
	var (
		malformedSchedule *services.MalformedScheduleError
		malformedExam     *services.MalformedExamError
	)

	switch {
	case errors.Is(err, portal.ErrNoSession):
		logger.Info("no portal session", zap.Error(err))
		writeJSON(w, logger, http.StatusUnauthorized, map[string]string{"error": "no session"})
	case errors.As(err, &malformedSchedule), errors.As(err, &malformedExam):
		logger.Error("malformed backend payload", zap.Error(err))
		writeJSON(w, logger, http.StatusBadGateway, map[string]string{"error": "could not load " + what})
	default:
		logger.Error("request failed", zap.Error(err))
		writeJSON(w, logger, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
