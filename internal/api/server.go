package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/limbo/journal/internal/service"
)

const (
	defaultRequestTimeout = 10 * time.Second
	shutdownTimeout       = 10 * time.Second
)

type Server struct {
	mx             *chi.Mux
	journalService service.JournalServiceI
	catalogService service.CatalogServiceI
	streakService  service.StreakServiceI
	queryService   service.QueryServiceI
	requestTimeout time.Duration
}

type ServicesList struct {
	JournalService service.JournalServiceI
	CatalogService service.CatalogServiceI
	StreakService  service.StreakServiceI
	QueryService   service.QueryServiceI
	// Deadline for a single service call. Zero means 10 seconds
	RequestTimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		journalService: servicesOptions.JournalService,
		catalogService: servicesOptions.CatalogService,
		streakService:  servicesOptions.StreakService,
		queryService:   servicesOptions.QueryService,
		requestTimeout: servicesOptions.RequestTimeout,
	}
	if s.requestTimeout <= 0 {
		s.requestTimeout = defaultRequestTimeout
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
		r.Route("/entries", func(r chi.Router) {
			r.Get("/", s.GetPaginatedEntries)
			r.Post("/", s.CreateEntry)
			r.Get("/search", s.SearchEntries)
			r.Get("/export", s.ExportEntries)
			r.Get("/exists", s.HasEntryForDate)
			r.Get("/date/{date}", s.GetEntryForDate)
			r.Get("/{id}", s.GetEntry)
			r.Put("/{id}", s.UpdateEntry)
			r.Delete("/{id}", s.DeleteEntry)
		})
		r.Get("/moods", s.ListMoods)
		r.Get("/categories", s.ListCategories)
		r.Get("/tags", s.ListTags)
		r.Post("/tags", s.CreateTag)
		r.Get("/streak", s.GetStreak)
		r.Get("/streak/missed", s.GetMissedDays)
	})
}

// Handler returns the router wrapped with OpenTelemetry instrumentation.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.mx, "journal-api")
}

// Run serves on addr until ctx is done, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	serveErr := make(chan error, 1)
	slog.Info("journal api listening", slog.String("address", addr))
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
