package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// MockPortalHandler is a mock implementation of PortalRoutes.
type MockPortalHandler struct{}

func (h *MockPortalHandler) GetFreeRooms(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "free rooms"}`))
}

func (h *MockPortalHandler) GetFreeRoomsChart(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`chart`))
}

func (h *MockPortalHandler) GetExams(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "exams"}`))
}

func (h *MockPortalHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "pong"}`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	router := mux.NewRouter()
	appRouter := NewRouter(&MockPortalHandler{}, router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{"Get Free Rooms", "GET", "/v1/rooms/free", http.StatusOK, `{"message": "free rooms"}`},
		{"Get Free Rooms Chart", "GET", "/v1/rooms/free/chart", http.StatusOK, `chart`},
		{"Get Exams", "GET", "/v1/exams", http.StatusOK, `{"message": "exams"}`},
		{"Ping Route", "GET", "/ping", http.StatusOK, `{"status": "pong"}`},
		{"Wrong Method", "POST", "/v1/exams", http.StatusMethodNotAllowed, ""},
		{"Invalid Route", "GET", "/invalid", http.StatusNotFound, ""},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}
