package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
	httpSwagger "github.com/swaggo/http-swagger"

	api "muscat-v0/internal/api/application"
	"muscat-v0/internal/api/handlers"
	catalogdomain "muscat-v0/internal/catalog/domain"
	configapp "muscat-v0/internal/config/application"
	sharedlogger "muscat-v0/internal/shared/logger"
)

// Server represents the API server
type Server struct {
	httpServer *http.Server
	logger     sharedlogger.Logger
}

// NewServer creates a new API server
func NewServer(
	logger sharedlogger.Logger,
	runtimeCfg *configapp.RuntimeConfig,
	catalogRepo catalogdomain.Repository,
) (*Server, error) {
	// Initialize services
	artistService := api.NewArtistService(catalogRepo)
	albumService := api.NewAlbumService(catalogRepo)
	ratingService := api.NewRatingService(catalogRepo)
	searchService := api.NewSearchService(catalogRepo)

	// Initialize handlers
	artistHandler := handlers.NewArtistHandler(artistService)
	albumHandler := handlers.NewAlbumHandler(albumService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	searchHandler := handlers.NewSearchHandler(searchService)

	// Setup chi router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// HTTP logging middleware - need concrete slog.Logger for httplog
	var slogLogger *slog.Logger
	if infraLogger, ok := logger.(interface{ SLog() *slog.Logger }); ok {
		slogLogger = infraLogger.SLog()
	} else {
		slogLogger = slog.Default()
	}

	r.Use(httplog.RequestLogger(slogLogger, &httplog.Options{
		Level:             slog.LevelDebug,
		Schema:            httplog.SchemaECS.Concise(true),
		LogRequestHeaders: []string{},
	}))

	// Swagger UI (only in dev mode)
	if runtimeCfg.DevMode {
		swaggerHandler := httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		)
		r.Handle("/swagger/*", swaggerHandler)
		r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
		})
	}

	// Routes
	r.Get("/healthz", healthz)
	r.Post("/artists", artistHandler.CreateArtist)
	r.Get("/artists/{id}", artistHandler.GetArtist)
	r.Post("/albums", albumHandler.CreateAlbum)
	r.Post("/albums/ratings", ratingHandler.SubmitRating)
	r.Get("/search", searchHandler.Search)

	httpServer := &http.Server{
		Addr:         ":" + runtimeCfg.APIPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Debug("Server configured",
		"port", runtimeCfg.APIPort,
		"dev_mode", runtimeCfg.DevMode,
		"middleware", []string{"RequestID", "RealIP", "Recoverer", "httplog"},
	)

	return &Server{
		httpServer: httpServer,
		logger:     logger,
	}, nil
}

// healthz reports liveness
func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// Handler exposes the configured router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		s.logger.Error("Server error", "err", err)
	}
	return err
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server shutdown error", "err", err)
	} else {
		s.logger.Info("Server shutdown complete")
	}
	return err
}
