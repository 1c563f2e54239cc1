package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/infrastructure/repository"
	"github.com/vfg2006/adcreative-api/internal/config"
	"github.com/vfg2006/adcreative-api/internal/usecases/publishing"
	"github.com/vfg2006/adcreative-api/pkg/metrics"
)

const tokenRefreshJob = "token_refresh"

// TokenRefreshService renova os tokens das contas sociais antes de expirarem
type TokenRefreshService struct {
	scheduler         *gocron.Scheduler
	config            config.TokenRefresh
	socialAccountRepo repository.SocialAccountRepository
	publishingService publishing.Interface
	running           sync.Mutex
	statusMutex       sync.Mutex
	lastRunAt         time.Time
	lastRefreshed     int
	now               func() time.Time
}

func NewTokenRefreshService(
	socialAccountRepo repository.SocialAccountRepository,
	publishingService publishing.Interface,
	appConfig *config.Config,
) *TokenRefreshService {
	return &TokenRefreshService{
		scheduler:         gocron.NewScheduler(time.UTC),
		config:            appConfig.TokenRefresh,
		socialAccountRepo: socialAccountRepo,
		publishingService: publishingService,
		now:               time.Now,
	}
}

func (s *TokenRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Renovação de tokens desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar renovação de tokens: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de renovação de tokens")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *TokenRefreshService) run(ctx context.Context) {
	if !s.running.TryLock() {
		logrus.Info("Renovação de tokens já em andamento, ignorando")
		return
	}
	defer s.running.Unlock()

	refreshed, err := s.refreshExpiringTokens(ctx)
	metrics.RecordSchedulerRun(tokenRefreshJob, err)
	if err != nil {
		logrus.WithError(err).Error("Erro na renovação de tokens")
		return
	}

	s.statusMutex.Lock()
	s.lastRunAt = s.now()
	s.lastRefreshed = refreshed
	s.statusMutex.Unlock()

	logrus.WithField("refreshed", refreshed).Info("Renovação de tokens concluída")
}

// TriggerManualRefresh executa a renovação fora do horário agendado
func (s *TokenRefreshService) TriggerManualRefresh(ctx context.Context) bool {
	if !s.running.TryLock() {
		logrus.Info("Renovação de tokens já em andamento, ignorando solicitação manual")
		return false
	}
	s.running.Unlock()

	go s.run(context.WithoutCancel(ctx))
	return true
}

func (s *TokenRefreshService) GetStatus() map[string]any {
	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()

	return map[string]any{
		"refresh_enabled":    s.config.Enabled,
		"refresh_cron":       s.config.CronSchedule,
		"refresh_window":     s.config.RefreshWindow.String(),
		"last_run_at":        s.lastRunAt,
		"last_run_refreshed": s.lastRefreshed,
	}
}

// refreshExpiringTokens renova as contas que expiram dentro da janela configurada
func (s *TokenRefreshService) refreshExpiringTokens(ctx context.Context) (int, error) {
	now := s.now()

	accounts, err := s.socialAccountRepo.ListExpiringSocialAccounts(ctx, now.Add(s.config.RefreshWindow))
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar contas com token expirando: %w", err)
	}

	refreshed := 0
	for _, account := range accounts {
		logger := logrus.WithFields(logrus.Fields{
			"social_account_id": account.ID,
			"platform":          account.Platform,
		})

		token, err := s.publishingService.RefreshToken(ctx, account)
		if err != nil {
			logger.WithError(err).Warn("Não foi possível renovar o token da conta")
			continue
		}

		if err := s.socialAccountRepo.UpdateTokens(ctx, account.ID, token, token.ExpiresAt(now)); err != nil {
			logger.WithError(err).Error("Erro ao salvar token renovado")
			continue
		}

		refreshed++
	}

	return refreshed, nil
}
