package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/denistssx-code/botanus/internal/domain"
	domplant "github.com/denistssx-code/botanus/internal/domain/plant"
	cataloguc "github.com/denistssx-code/botanus/internal/usecase/catalog"
	healthuc "github.com/denistssx-code/botanus/internal/usecase/health"
	libraryuc "github.com/denistssx-code/botanus/internal/usecase/library"
	searchuc "github.com/denistssx-code/botanus/internal/usecase/search"
	statsuc "github.com/denistssx-code/botanus/internal/usecase/stats"
	suggestuc "github.com/denistssx-code/botanus/internal/usecase/suggest"
)

// errorCode identifies an error class in JSON error responses.
type errorCode string

const (
	codeBadRequest       errorCode = "bad_request"
	codeValidationFailed errorCode = "validation_failed"
	codeNotFound         errorCode = "not_found"
	codeInternalError    errorCode = "internal_error"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the catalog over HTTP.
type Server struct {
	catalog       *cataloguc.Service
	search        *searchuc.Service
	library       *libraryuc.Service
	stats         *statsuc.Service
	suggest       *suggestuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	catalog *cataloguc.Service,
	search *searchuc.Service,
	library *libraryuc.Service,
	stats *statsuc.Service,
	suggest *suggestuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		catalog: catalog,
		search:  search,
		library: library,
		stats:   stats,
		suggest: suggest,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrPlantNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrInvalidPlant, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidEntry, http.StatusBadRequest, codeValidationFailed),
	}
	return s
}

// Routes registers all endpoints on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.Index)
	r.Get("/api/search", s.Search)
	r.Get("/api/library", s.Library)
	r.Post("/api/library/add", s.LibraryAdd)
	r.Post("/api/plants", s.CreatePlant)
	r.Get("/api/stats", s.Stats)
	r.Get("/api/suggestions", s.Suggestions)
	r.Get("/healthz", s.Healthz)
	r.Get("/metrics", s.Metrics)
}

// Search handles GET /api/search. A missing or empty q matches all
// records; no matches is an empty result set, never an error.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results, err := s.search.Search(r.Context(), query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]plantResponse, len(results))
	for i, p := range results {
		items[i] = plantToAPI(p)
	}

	writeJSON(w, http.StatusOK, searchResponse{Results: items, Count: len(items)})
}

// Library handles GET /api/library.
func (s *Server) Library(w http.ResponseWriter, r *http.Request) {
	items, err := s.library.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	entries := make([]libraryEntryResponse, len(items))
	for i, it := range items {
		entries[i] = libraryItemToAPI(it)
	}

	writeJSON(w, http.StatusOK, libraryResponse{Plants: entries, Count: len(entries)})
}

// LibraryAdd handles POST /api/library/add: saves the plant to the
// catalog (deduped) and records a library entry, merging quantities
// when the plant is already in the library. The plant is given either
// inline or as a plant_id referencing an existing catalog record.
func (s *Server) LibraryAdd(w http.ResponseWriter, r *http.Request) {
	var req libraryAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var item libraryuc.Item
	var err error
	switch {
	case req.Plant != nil:
		item, err = s.library.Add(r.Context(), req.Plant.toAttrs(), req.Notes, req.Quantity)
	case req.PlantID > 0:
		item, err = s.library.AddByID(r.Context(), req.PlantID, req.Notes, req.Quantity)
	default:
		writeError(w, http.StatusBadRequest, codeBadRequest, "Plant data required")
		return
	}
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, libraryAddResponse{
		Success: true,
		Message: "Plante ajoutée à la bibliothèque",
		PlantID: item.Plant.ID(),
	})
}

// CreatePlant handles POST /api/plants. Returns 201 for a new record,
// 200 when the record deduped onto an existing one.
func (s *Server) CreatePlant(w http.ResponseWriter, r *http.Request) {
	var req plantPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	p, created, err := s.catalog.Add(r.Context(), req.toAttrs())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, plantToAPI(p))
}

// Stats handles GET /api/stats.
func (s *Server) Stats(w http.ResponseWriter, r *http.Request) {
	sum, err := s.stats.Stats(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Total:          sum.Total,
		LibraryEntries: sum.LibraryEntries,
		TotalPlants:    sum.TotalPlants,
		Types:          sum.Types,
		Reminders:      sum.Reminders,
	})
}

// Suggestions handles GET /api/suggestions. The response is a
// top-level array, matching the original frontend contract.
func (s *Server) Suggestions(w http.ResponseWriter, r *http.Request) {
	plants, err := s.suggest.Suggestions(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]plantResponse, len(plants))
	for i, p := range plants {
		items[i] = plantToAPI(p)
	}
	writeJSON(w, http.StatusOK, items)
}

// Healthz handles GET /healthz.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	writeJSON(w, status, healthResponse{Status: string(report.Status), Checks: checks})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// --- request/response DTOs ---

// plantPayload is the JSON shape of a plant in requests, using the
// original French field names the frontend and smoke script expect.
type plantPayload struct {
	NomFrancais string `json:"nom_francais"`
	NomLatin    string `json:"nom_latin"`
	Exposition  string `json:"exposition"`
	TypePlante  string `json:"type_plante"`
	Prix        string `json:"prix"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (p plantPayload) toAttrs() domplant.Attrs {
	return domplant.Attrs{
		NomFrancais: p.NomFrancais,
		NomLatin:    p.NomLatin,
		Exposition:  p.Exposition,
		TypePlante:  p.TypePlante,
		Prix:        p.Prix,
		Description: p.Description,
		Icon:        p.Icon,
	}
}

type plantResponse struct {
	ID          int64  `json:"id"`
	NomFrancais string `json:"nom_francais"`
	NomLatin    string `json:"nom_latin"`
	Exposition  string `json:"exposition"`
	TypePlante  string `json:"type_plante"`
	Prix        string `json:"prix"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func plantToAPI(p domplant.Plant) plantResponse {
	return plantResponse{
		ID:          p.ID(),
		NomFrancais: p.NomFrancais(),
		NomLatin:    p.NomLatin(),
		Exposition:  p.Exposition(),
		TypePlante:  p.TypePlante(),
		Prix:        p.Prix(),
		Description: p.Description(),
		Icon:        p.Icon(),
	}
}

type searchResponse struct {
	Results []plantResponse `json:"results"`
	Count   int             `json:"count"`
}

type libraryEntryResponse struct {
	ID        int64         `json:"id"`
	Plant     plantResponse `json:"plant"`
	Notes     string        `json:"notes"`
	Quantity  int           `json:"quantity"`
	DateAdded string        `json:"date_added"`
}

func libraryItemToAPI(it libraryuc.Item) libraryEntryResponse {
	return libraryEntryResponse{
		ID:        it.Entry.ID(),
		Plant:     plantToAPI(it.Plant),
		Notes:     it.Entry.Notes(),
		Quantity:  it.Entry.Quantity(),
		DateAdded: time.UnixMilli(it.Entry.AddedAt()).UTC().Format("2006-01-02"),
	}
}

type libraryResponse struct {
	Plants []libraryEntryResponse `json:"plants"`
	Count  int                    `json:"count"`
}

type libraryAddRequest struct {
	Plant    *plantPayload `json:"plant"`
	PlantID  int64         `json:"plant_id"`
	Notes    string        `json:"notes"`
	Quantity int           `json:"quantity"`
}

type libraryAddResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PlantID int64  `json:"plant_id"`
}

type statsResponse struct {
	Total          int            `json:"total"`
	LibraryEntries int            `json:"library_entries"`
	TotalPlants    int            `json:"total_plants"`
	Types          map[string]int `json:"types"`
	Reminders      int            `json:"reminders"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// --- error helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrPlantNotFound,
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrInvalidPlant,
		domain.ErrInvalidEntry,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
