package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/janani-natarajan/SuyogJobFinder/internal/dataset"
	"github.com/janani-natarajan/SuyogJobFinder/internal/export"
	"github.com/janani-natarajan/SuyogJobFinder/internal/filter"
	"github.com/janani-natarajan/SuyogJobFinder/internal/models"
)

const reportTitle = "Suyog Job Finder Report"

// Server handles HTTP requests
type Server struct {
	store       *dataset.Store
	pdf         *export.PDFGenerator
	exportDir   string
	loadWarning string
}

// NewServer creates a new API server. loadWarning carries a non-fatal
// dataset load failure; the server then serves an empty dataset and
// surfaces the message on /jobs instead of crashing.
func NewServer(store *dataset.Store, pdf *export.PDFGenerator, exportDir string, loadWarning string) *Server {
	return &Server{
		store:       store,
		pdf:         pdf,
		exportDir:   exportDir,
		loadWarning: loadWarning,
	}
}

// Router returns the HTTP router
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /jobs", s.handleJobs)
	mux.HandleFunc("GET /filters", s.handleFilters)
	mux.HandleFunc("POST /export", s.handleExport)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /", s.handleRoot)

	return s.loggingMiddleware(mux)
}

// handleRoot provides API information
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"service": "Suyog Job Finder",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"GET /jobs":    "List job postings matching the selected filters",
			"GET /filters": "Selectable values for each filter field",
			"POST /export": "Export the filtered postings as xlsx or pdf",
			"GET /health":  "Health check",
		},
	})
}

// handleHealth provides a health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	})
}

// handleJobs returns the postings matching the query filters
func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromQuery(r)
	matched := filter.Apply(s.store.Postings(), criteria)

	s.respondJSON(w, http.StatusOK, models.JobsResponse{
		Jobs:        matched,
		Count:       len(matched),
		Timestamp:   time.Now().Format(time.RFC3339),
		LoadWarning: s.loadWarning,
	})
}

// handleFilters returns the selectable values per filterable field
func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.store.Vocabulary())
}

// handleExport generates a report document of the filtered postings
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromQuery(r)
	matched := filter.Apply(s.store.Postings(), criteria)

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "xlsx"
	}

	if err := os.MkdirAll(s.exportDir, 0755); err != nil {
		s.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to create export directory: %v", err))
		return
	}

	name := fmt.Sprintf("jobs_report_%s", uuid.New().String())

	switch format {
	case "xlsx":
		outputPath := filepath.Join(s.exportDir, name+".xlsx")
		if err := export.ToExcel(matched, reportTitle, outputPath); err != nil {
			s.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		s.respondJSON(w, http.StatusOK, models.ExportResponse{Format: "xlsx", Path: outputPath, Rows: len(matched)})
	case "pdf":
		pdfBytes, err := s.pdf.Generate(matched, reportTitle)
		if err != nil {
			s.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		outputPath := filepath.Join(s.exportDir, name+".pdf")
		if err := export.SaveToFile(pdfBytes, outputPath); err != nil {
			s.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		s.respondJSON(w, http.StatusOK, models.ExportResponse{Format: "pdf", Path: outputPath, Rows: len(matched)})
	default:
		s.respondError(w, http.StatusBadRequest, "format must be 'xlsx' or 'pdf'")
	}
}

// criteriaFromQuery builds filter criteria from the request query.
// Each filter is optional; an absent parameter imposes no constraint.
func criteriaFromQuery(r *http.Request) models.FilterCriteria {
	q := r.URL.Query()

	criteria := models.FilterCriteria{
		DisabilityType: q.Get("disability_type"),
		Subcategory:    q.Get("subcategory"),
		Qualification:  q.Get("qualification"),
		Department:     q.Get("department"),
		Keyword:        q.Get("keyword"),
	}

	if raw := q.Get("activities"); raw != "" {
		for _, activity := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(activity); trimmed != "" {
				criteria.FunctionalActivities = append(criteria.FunctionalActivities, trimmed)
			}
		}
	}

	return criteria
}

// respondJSON sends a JSON response
func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}

// respondError sends an error response
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}
