package http

// this is the entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/algoarena.net/internal/config"
	"gitlab.com/algoarena.net/internal/core/ports/primary"
	"gitlab.com/algoarena.net/internal/core/ports/secondary"
	auth2 "gitlab.com/algoarena.net/internal/core/services/auth"
	"gitlab.com/algoarena.net/internal/core/services/judging"
	"gitlab.com/algoarena.net/internal/handlers"
	"gitlab.com/algoarena.net/internal/handlers/auth"
	"gitlab.com/algoarena.net/internal/handlers/contests"
	"gitlab.com/algoarena.net/internal/handlers/problems"
	"gitlab.com/algoarena.net/internal/handlers/submissions"
)

type ServiceProvider struct {
	judgingService judging.IJudgingService
	problemPort    secondary.ProblemPort
	testCasePort   secondary.TestCasePort

	ggAuth    auth2.IAuthService
	localAuth *auth2.LocalAuthService
}

func NewServiceProvider(
	judgingService judging.IJudgingService,
	problemPort secondary.ProblemPort,
	testCasePort secondary.TestCasePort,
	ggAuth auth2.IAuthService,
	localAuth *auth2.LocalAuthService,
) *ServiceProvider {
	return &ServiceProvider{
		judgingService: judgingService,
		problemPort:    problemPort,
		testCasePort:   testCasePort,
		ggAuth:         ggAuth,
		localAuth:      localAuth,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	GGAuthConfig    *config.GGAuthConfig
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, ggCfg *config.GGAuthConfig, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		GGAuthConfig:    ggCfg,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()

	auth.NewHandler(s.GGAuthConfig).RegisterRoutes(r, &auth.ServiceDependencies{
		GGAuthService:    s.ServiceProvider.ggAuth,
		LocalAuthService: s.ServiceProvider.localAuth,
	})
	problems.NewProblemHandler(s.ServiceProvider.problemPort, s.ServiceProvider.testCasePort, s.logger).RegisterRoutes(r)

	// Everything under the judging pipeline requires an authenticated user.
	protected := r.NewRoute().Subrouter()
	protected.Use(handlers.New().JWTMiddleware)
	submissions.NewSubmissionHandler(s.ServiceProvider.judgingService, s.logger).RegisterRoutes(protected)
	contests.NewContestSubmissionHandler(s.ServiceProvider.judgingService, s.logger).RegisterRoutes(protected)

	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr, "service", s.ServiceName)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
	}
}
