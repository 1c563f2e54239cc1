package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/infrastructure/cache"
	"github.com/vfg2006/adcreative-api/infrastructure/database/postgres"
	billingintegrator "github.com/vfg2006/adcreative-api/infrastructure/integrator/billing"
	"github.com/vfg2006/adcreative-api/infrastructure/integrator/billing/billingclient"
	"github.com/vfg2006/adcreative-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/adcreative-api/infrastructure/integrator/imagineart"
	"github.com/vfg2006/adcreative-api/infrastructure/integrator/imagineart/imagineartclient"
	"github.com/vfg2006/adcreative-api/infrastructure/integrator/instagram"
	"github.com/vfg2006/adcreative-api/infrastructure/integrator/instagram/instagramclient"
	"github.com/vfg2006/adcreative-api/infrastructure/integrator/openai"
	"github.com/vfg2006/adcreative-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/adcreative-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/adcreative-api/infrastructure/repository"
	"github.com/vfg2006/adcreative-api/infrastructure/storage"
	"github.com/vfg2006/adcreative-api/internal/api"
	"github.com/vfg2006/adcreative-api/internal/api/handler"
	"github.com/vfg2006/adcreative-api/internal/config"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/internal/scheduler"
	"github.com/vfg2006/adcreative-api/internal/usecases/account"
	"github.com/vfg2006/adcreative-api/internal/usecases/authenticating"
	"github.com/vfg2006/adcreative-api/internal/usecases/billing"
	"github.com/vfg2006/adcreative-api/internal/usecases/generating"
	"github.com/vfg2006/adcreative-api/internal/usecases/insighting"
	"github.com/vfg2006/adcreative-api/internal/usecases/project"
	"github.com/vfg2006/adcreative-api/internal/usecases/publishing"
	"github.com/vfg2006/adcreative-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	redisClient, err := cache.NewClient(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}
	defer redisClient.Close()

	imageStorage, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o storage de imagens")
	}

	authUserRepo := repository.NewAuthUserRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	subscriptionRepo := repository.NewSubscriptionRepository(pgConn)
	socialAccountRepo := repository.NewSocialAccountRepository(pgConn)
	projectRepo := repository.NewProjectRepository(pgConn)
	adVariationRepo := repository.NewAdVariationRepository(pgConn)

	publishingService := newPublishingService(cfg)
	generatingService := newGeneratingService(ctx, cfg)
	billingService := billing.NewService(newBillingProvider(cfg), subscriptionRepo, userRepo)

	accountService := account.NewService(socialAccountRepo, billingService, publishingService, cfg)

	authenticator := authenticating.NewService(
		authUserRepo,
		userRepo,
		subscriptionRepo,
		cache.NewSessionStore(redisClient),
		accountService,
		cfg.Auth,
	)

	projectService := project.NewService(
		projectRepo,
		adVariationRepo,
		socialAccountRepo,
		imageStorage,
		generatingService,
		publishingService,
		billingService,
	)

	insightService := insighting.NewService(projectService, generatingService, userRepo)

	postMetricsSyncService := scheduler.NewPostMetricsSyncService(adVariationRepo, socialAccountRepo, publishingService, cfg)
	tokenRefreshService := scheduler.NewTokenRefreshService(socialAccountRepo, publishingService, cfg)

	if err := postMetricsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de métricas dos posts")
	} else {
		logrus.Info("Agendador de métricas dos posts iniciado com sucesso")
	}

	if err := tokenRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de renovação de tokens")
	} else {
		logrus.Info("Agendador de renovação de tokens iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:     authenticator,
		AccountService:    accountService,
		ProjectService:    projectService,
		GeneratingService: generatingService,
		InsightService:    insightService,
		BillingService:    billingService,
		CronJobs: handler.CronJobServices{
			PostMetricsSync: postMetricsSyncService,
			TokenRefresh:    tokenRefreshService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do binário")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

func newPublishingService(cfg *config.Config) publishing.Interface {
	if cfg.App.SandboxMode {
		logrus.Warn("SANDBOX_MODE ativo: publicações nas redes sociais são simuladas")
		return publishing.NewService(
			publishing.NewSandboxClient(domain.PlatformInstagram),
			publishing.NewSandboxClient(domain.PlatformTikTok),
		)
	}

	return publishing.NewService(
		instagram.New(instagramclient.NewClient(cfg.Instagram)),
		tiktok.New(tiktokclient.NewClient(cfg.TikTok)),
	)
}

func newBillingProvider(cfg *config.Config) billing.Provider {
	if cfg.App.SandboxMode {
		logrus.Warn("SANDBOX_MODE ativo: cobrança simulada")
		return billing.NewSandboxProvider()
	}

	return billingintegrator.New(billingclient.NewClient(cfg.Billing))
}

// newGeneratingService escolhe o provedor de textos por AI_COPY_PROVIDER.
// Imagens e análise continuam no OpenAI, edição no ImagineArt.
func newGeneratingService(ctx context.Context, cfg *config.Config) generating.Interface {
	if cfg.App.SandboxMode {
		logrus.Warn("SANDBOX_MODE ativo: geração por IA simulada")
		return generating.NewSandboxService()
	}

	openAI := openai.New(cfg.OpenAI)
	editor := imagineart.New(imagineartclient.NewClient(cfg.ImagineArt))

	var copyWriter generating.CopyWriter = openAI
	if cfg.OpenAI.CopyProvider == "gemini" {
		geminiIntegrator, err := gemini.New(ctx, cfg.Gemini)
		if err != nil {
			logrus.WithError(err).Error("Erro ao configurar o Gemini, usando OpenAI para textos")
		} else {
			copyWriter = geminiIntegrator
		}
	}

	return generating.NewService(copyWriter, openAI, openAI, editor)
}
