package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"interest-projector/domain"
	"interest-projector/report"
	"interest-projector/service"
)

// maxBodyBytes bounds the size of a projection request.
const maxBodyBytes = 64 << 10

type ProjectionHandler struct {
	service *service.ProjectionService
	logger  *logrus.Logger
}

func NewProjectionHandler(service *service.ProjectionService, logger *logrus.Logger) *ProjectionHandler {
	return &ProjectionHandler{service: service, logger: logger}
}

func (h *ProjectionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/projections", h.CreateProjection).Methods(http.MethodPost)
	router.HandleFunc("/projections", h.ListProjections).Methods(http.MethodGet)
	router.HandleFunc("/projections/{id}", h.GetProjection).Methods(http.MethodGet)
	router.HandleFunc("/frequencies", h.ListFrequencies).Methods(http.MethodGet)
}

func (h *ProjectionHandler) CreateProjection(w http.ResponseWriter, r *http.Request) {
	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.ProjectionInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&input); err != nil {
		h.logger.WithError(err).Debug("invalid projection request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	projection, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithError(err).Error("failed to calculate projection")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusCreated, report.Rounded(projection))
}

func (h *ProjectionHandler) GetProjection(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid projection id", http.StatusBadRequest)
		return
	}

	projection, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProjectionNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.WithError(err).Error("failed to get projection")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, report.Rounded(projection))
}

func (h *ProjectionHandler) ListProjections(w http.ResponseWriter, r *http.Request) {
	projections, err := h.service.List(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list projections")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	rounded := make([]domain.Projection, len(projections))
	for i, p := range projections {
		rounded[i] = report.Rounded(p)
	}
	h.writeJSON(w, http.StatusOK, rounded)
}

type frequencyResponse struct {
	Name                 string `json:"name"`
	ContributionsPerYear int    `json:"contributions_per_year"`
}

func (h *ProjectionHandler) ListFrequencies(w http.ResponseWriter, _ *http.Request) {
	var out []frequencyResponse
	for _, f := range domain.Frequencies() {
		out = append(out, frequencyResponse{Name: f.String(), ContributionsPerYear: f.ContributionsPerYear()})
	}
	h.writeJSON(w, http.StatusOK, out)
}

// writeJSON encodes into a buffer first so that a failed encoding does not
// leave a half-written response behind.
func (h *ProjectionHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		h.logger.WithError(err).Error("failed to encode response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.WithError(err).Warn("failed to write response")
	}
}
