package handlers

import (
	"context"
	"net/http"
	"time"

	"portal-server/models/exams"
	"portal-server/models/rooms"
	"portal-server/util"

	"go.uber.org/zap"
)

// PortalReader is the part of the portal service the handlers need.
type PortalReader interface {
	GetFreeRooms(ctx context.Context, now time.Time) ([]rooms.DayAvailability, error)
	GetExams(ctx context.Context, now time.Time) ([]exams.NormalizedExam, error)
}

// FreeRoomsResponse is the body of GET /v1/rooms/free.
type FreeRoomsResponse struct {
	Days     []rooms.DayAvailability `json:"days"`
	TuxRooms []string                `json:"tux_rooms"`
}

// ExamsResponse is the body of GET /v1/exams.
type ExamsResponse struct {
	Exams []exams.NormalizedExam `json:"exams"`
}

type PortalHandler struct {
	portal   PortalReader
	tuxRooms []string
	clock    func() time.Time
	logger   *zap.Logger
}

func NewPortalHandler(portal PortalReader, tuxRooms []string, logger *zap.Logger) *PortalHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tuxRooms == nil {
		tuxRooms = []string{}
	}
	return &PortalHandler{
		portal:   portal,
		tuxRooms: tuxRooms,
		clock:    time.Now,
		logger:   logger.With(zap.String("component", "portal_handler")),
	}
}

// GetFreeRooms handles GET /v1/rooms/free
func (h *PortalHandler) GetFreeRooms(w http.ResponseWriter, r *http.Request) {
	days, ok := h.loadFreeRooms(w, r)
	if !ok {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, FreeRoomsResponse{Days: days, TuxRooms: h.tuxRooms})
}

// GetFreeRoomsChart handles GET /v1/rooms/free/chart
func (h *PortalHandler) GetFreeRoomsChart(w http.ResponseWriter, r *http.Request) {
	days, ok := h.loadFreeRooms(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderFreeRoomsChart(w, days); err != nil {
		h.logger.Error("error rendering chart", zap.Error(err))
	}
}

// GetExams handles GET /v1/exams
func (h *PortalHandler) GetExams(w http.ResponseWriter, r *http.Request) {
	now, err := parseNow(r, h.clock)
	if err != nil {
		http.Error(w, "Invalid argument "+NOW_QUERY_ARG, http.StatusBadRequest)
		return
	}

	list, err := h.portal.GetExams(r.Context(), now)
	if err != nil {
		writeError(w, h.logger, err, "exams")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, ExamsResponse{Exams: list})
}

// Ping handles GET /ping
func (h *PortalHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "pong"})
}

func (h *PortalHandler) loadFreeRooms(w http.ResponseWriter, r *http.Request) ([]rooms.DayAvailability, bool) {
	now, err := parseNow(r, h.clock)
	if err != nil {
		http.Error(w, "Invalid argument "+NOW_QUERY_ARG, http.StatusBadRequest)
		return nil, false
	}

	days, err := h.portal.GetFreeRooms(r.Context(), now)
	if err != nil {
		writeError(w, h.logger, err, "room availability")
		return nil, false
	}
	return days, true
}
