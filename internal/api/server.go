package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/internal/api/handler"
	"github.com/vfg2006/adcreative-api/internal/api/handler/router"
	"github.com/vfg2006/adcreative-api/internal/config"
	"github.com/vfg2006/adcreative-api/internal/usecases/account"
	"github.com/vfg2006/adcreative-api/internal/usecases/authenticating"
	"github.com/vfg2006/adcreative-api/internal/usecases/billing"
	"github.com/vfg2006/adcreative-api/internal/usecases/generating"
	"github.com/vfg2006/adcreative-api/internal/usecases/insighting"
	"github.com/vfg2006/adcreative-api/internal/usecases/project"
	"github.com/vfg2006/adcreative-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa os usecases expostos pela API
type Services struct {
	Authenticator     authenticating.Authenticator
	AccountService    account.Interface
	ProjectService    project.Interface
	GeneratingService generating.Interface
	InsightService    insighting.Interface
	BillingService    billing.Interface
	CronJobs          handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, fmt.Errorf("authenticator é obrigatório")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(config *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Me(services.Authenticator)...),
		router.WithRoutes(handler.Social(services.AccountService)...),
		router.WithRoutes(handler.Workspace(services.ProjectService)...),
		router.WithRoutes(handler.Projects(services.ProjectService, services.InsightService)...),
		router.WithRoutes(handler.AI(services.GeneratingService)...),
		router.WithRoutes(handler.Billing(services.BillingService)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
		middleware.NewRateLimiter(config.RateLimit).Middleware(),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
