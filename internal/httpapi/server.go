package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/BrandonDHaskell/acesso/server/internal/acesso/service"
)

// Pinger is satisfied by *sqlx.DB and *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Dependencies struct {
	Logger            *zap.Logger
	Addr              string
	ValidationService *service.ValidationService
	DirectoryService  *service.DirectoryService
	EventLogService   *service.EventLogService
	SummaryService    *service.SummaryService

	// DB backs /healthz. Nil reports healthy unconditionally.
	DB Pinger

	// AllowedOrigins for CORS; empty allows any origin.
	AllowedOrigins []string
}

type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	router     *mux.Router
	db         Pinger

	validationService *service.ValidationService
	directoryService  *service.DirectoryService
	eventLogService   *service.EventLogService
	summaryService    *service.SummaryService
}

func NewServer(d Dependencies) *Server {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("http")

	router := mux.NewRouter()

	s := &Server{
		logger:            logger,
		router:            router,
		db:                d.DB,
		validationService: d.ValidationService,
		directoryService:  d.DirectoryService,
		eventLogService:   d.EventLogService,
		summaryService:    d.SummaryService,
	}

	router.Use(recoverMiddleware(logger), loggingMiddleware(logger))

	// mux skips Use middleware when nothing matches; wrap these directly so
	// stray requests are still logged and counted.
	unmatched := func(h http.HandlerFunc) http.Handler {
		return loggingMiddleware(logger)(h)
	}
	router.NotFoundHandler = unmatched(http.NotFound)
	router.MethodNotAllowedHandler = unmatched(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	api := router.PathPrefix("/api").Subrouter()

	// Terminal-facing.
	api.HandleFunc("/validar/{uid}", s.handleValidate).Methods(http.MethodGet)
	api.HandleFunc("/log", s.handleLogEvent).Methods(http.MethodPost)

	// Dashboard / admin.
	api.HandleFunc("/usuarios", s.handleListUsers).Methods(http.MethodGet)
	api.HandleFunc("/usuarios", s.handleCreateUser).Methods(http.MethodPost)
	api.HandleFunc("/usuarios/{id:[0-9]+}", s.handleDeleteUser).Methods(http.MethodDelete)
	api.HandleFunc("/logs", s.handleListLogs).Methods(http.MethodGet)
	api.HandleFunc("/maquinas", s.handleListMachines).Methods(http.MethodGet)

	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	router.HandleFunc("/dashboard", s.handleDashboard).Methods(http.MethodGet)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	origins := d.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})

	s.httpServer = &http.Server{
		Addr:              d.Addr,
		Handler:           requestIDMiddleware(c.Handler(router)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Start blocks serving HTTP. It returns nil after Shutdown.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// internalError logs err against the request and answers 500. Storage
// faults end the request, never the process.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.logger.Error(op+" failed",
		zap.Error(err),
		zap.String("request_id", RequestIDFromContext(r.Context())),
	)
	writeError(w, http.StatusInternalServerError, msgInternal)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("health ping failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
