package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/ankitrawat448/stock-analysis-agent/internal/errors"
	"github.com/ankitrawat448/stock-analysis-agent/internal/models"
	"github.com/ankitrawat448/stock-analysis-agent/internal/symbols"
)

// Server hosts the dashboard page and the analysis API.
type Server struct {
	addr     string
	pipeline *Pipeline
	logger   zerolog.Logger
	httpSrv  *http.Server
}

// NewServer creates a dashboard server.
func NewServer(addr string, pipeline *Pipeline, logger zerolog.Logger) *Server {
	s := &Server{
		addr:     addr,
		pipeline: pipeline,
		logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/symbols", s.handleSymbols)
	mux.HandleFunc("/api/analyze", s.handleAnalyze)

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe starts the HTTP listener and blocks until the context is
// cancelled or a fatal error occurs.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.addr).Msg("Dashboard server listening")
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Handler exposes the server's HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexPage))
}

// symbolsResponse lists selectable companies and periods for the page.
type symbolsResponse struct {
	Companies []string `json:"companies"`
	Periods   []string `json:"periods"`
	FreeText  string   `json:"free_text_choice"`
}

func (s *Server) handleSymbols(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	periods := make([]string, 0, len(models.Periods()))
	for _, p := range models.Periods() {
		periods = append(periods, string(p))
	}

	writeJSON(w, http.StatusOK, symbolsResponse{
		Companies: symbols.Names(),
		Periods:   periods,
		FreeText:  symbols.FreeTextChoice,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	report, err := s.pipeline.Analyze(r.Context(), req)
	if err != nil {
		status := http.StatusBadGateway

		var vErr *apperrors.ValidationError
		if apperrors.Is(err, apperrors.ErrInvalidSymbol) || apperrors.As(err, &vErr) {
			status = http.StatusBadRequest
		}

		s.logger.Error().Err(err).Str("company", req.Company).Str("symbol", req.Symbol).Msg("Analysis failed")
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
