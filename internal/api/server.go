package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/scent-engine/backend/internal/catalog"
	"github.com/scent-engine/backend/internal/engine"
	"github.com/scent-engine/backend/internal/profile"
	"github.com/scent-engine/backend/internal/quiz"
)

type Server struct {
	Engine  *engine.Engine
	Source  catalog.Source
	Logger  *logrus.Entry
	Router  *mux.Router
	started time.Time
}

func NewServer(eng *engine.Engine, src catalog.Source, logger *logrus.Entry) *Server {
	s := &Server{
		Engine:  eng,
		Source:  src,
		Logger:  logger,
		Router:  mux.NewRouter(),
		started: time.Now(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.Use(s.requestID)
	s.Router.Use(s.logRequests)

	r := s.Router.PathPrefix("/api/v1").Subrouter()
	r.HandleFunc("/recommend", s.handleRecommend).Methods(http.MethodPost)
	r.HandleFunc("/quiz", s.handleQuiz).Methods(http.MethodGet)
	r.HandleFunc("/catalog", s.handleCatalog).Methods(http.MethodGet)
	r.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/reload", s.handleReload).Methods(http.MethodPost)
}

func (s *Server) Start(port string) error {
	s.Logger.Infof("Starting API Server on :%s", port)
	return http.ListenAndServe(":"+port, s.Router)
}

// Middleware

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.Logger.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": w.Header().Get("X-Request-ID"),
			"elapsed":    time.Since(start).String(),
		}).Info("Request handled")
	})
}

// Requests and responses

type ErrorResponse struct {
	Error string `json:"error"`
}

type RecommendRequest struct {
	Answers *profile.Answers `json:"answers"`
}

type Analysis struct {
	Keywords []string `json:"keywords"`
}

type RecommendResponse struct {
	DNAVector       []float64               `json:"dna_vector"`
	Analysis        Analysis                `json:"analysis"`
	Recommendations []engine.Recommendation `json:"recommendations"`
}

type StatusResponse struct {
	Items          int    `json:"items"`
	VocabularySize int    `json:"vocabulary_size"`
	IndexBuiltAt   string `json:"index_built_at"`
	Uptime         string `json:"uptime"`
}

type ReloadResponse struct {
	Status string `json:"status"`
	Items  int    `json:"items"`
}

// Handlers

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}
	if req.Answers == nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Missing answers"})
		return
	}

	p, recs := s.Engine.Recommend(*req.Answers)

	keywords := p.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	jsonResponse(w, http.StatusOK, RecommendResponse{
		DNAVector:       p.Vector,
		Analysis:        Analysis{Keywords: keywords},
		Recommendations: recs,
	})
}

func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, quiz.Default())
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.Engine.Items())
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	stats := s.Engine.IndexStats()
	jsonResponse(w, http.StatusOK, StatusResponse{
		Items:          stats.Items,
		VocabularySize: stats.VocabularySize,
		IndexBuiltAt:   stats.BuiltAt.UTC().Format(time.RFC3339),
		Uptime:         time.Since(s.started).String(),
	})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	items, err := s.Source.Load()
	if err != nil {
		jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if err := s.Engine.Reload(items); err != nil {
		jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	jsonResponse(w, http.StatusOK, ReloadResponse{Status: "reloaded", Items: len(items)})
}

func jsonResponse(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
