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
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/internal/usecases/insighting"
	"github.com/vfg2006/adcreative-api/internal/usecases/publishing"
	"github.com/vfg2006/adcreative-api/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

const postMetricsSyncJob = "post_metrics_sync"

// PostMetricsSyncConfig representa a configuração do agendador de métricas dos posts
type PostMetricsSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// PostMetricsSyncService busca periodicamente as métricas dos posts publicados e atualiza as variações
type PostMetricsSyncService struct {
	scheduler           *gocron.Scheduler
	config              PostMetricsSyncConfig
	adVariationRepo     repository.AdVariationRepository
	socialAccountRepo   repository.SocialAccountRepository
	publishingService   publishing.Interface
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncUpdated     int
	now                 func() time.Time
}

func NewPostMetricsSyncService(
	adVariationRepo repository.AdVariationRepository,
	socialAccountRepo repository.SocialAccountRepository,
	publishingService publishing.Interface,
	appConfig *config.Config,
) *PostMetricsSyncService {
	syncConfig := PostMetricsSyncConfig{
		CronSchedule:        appConfig.PostMetricsSync.CronSchedule,
		LookbackDays:        appConfig.PostMetricsSync.LookbackDays,
		RequestDelaySeconds: appConfig.PostMetricsSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.PostMetricsSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.PostMetricsSync.Enabled,
	}

	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de métricas dos posts carregada")

	return &PostMetricsSyncService{
		scheduler:         gocron.NewScheduler(time.UTC),
		config:            syncConfig,
		adVariationRepo:   adVariationRepo,
		socialAccountRepo: socialAccountRepo,
		publishingService: publishingService,
		now:               time.Now,
	}
}

// Start inicia o agendador
func (s *PostMetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de métricas dos posts desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de métricas dos posts")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas dos posts: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de métricas dos posts")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *PostMetricsSyncService) runSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas dos posts já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()

	updated, err := s.syncPostMetrics(ctx)
	metrics.RecordSchedulerRun(postMetricsSyncJob, err)
	if err != nil {
		logrus.WithError(err).Error("Erro na sincronização de métricas dos posts")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastSyncUpdated = updated
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"updated":  updated,
	}).Info("Sincronização de métricas dos posts concluída")
}

// syncPostMetrics processa as variações publicadas dentro da janela e retorna quantas foram atualizadas
func (s *PostMetricsSyncService) syncPostMetrics(ctx context.Context) (int, error) {
	since := s.now().AddDate(0, 0, -s.config.LookbackDays)

	variations, err := s.adVariationRepo.ListPostedSince(ctx, since)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar variações publicadas: %w", err)
	}

	if len(variations) == 0 {
		logrus.Info("Nenhuma variação publicada no período")
		return 0, nil
	}

	logrus.WithFields(logrus.Fields{
		"variations": len(variations),
		"since":      since.Format(time.DateOnly),
	}).Info("Variações encontradas para sincronização de métricas")

	var (
		mu      sync.Mutex
		updated int
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.config.MaxConcurrentJobs)

	for _, variation := range variations {
		group.Go(func() error {
			if s.syncVariation(groupCtx, variation) {
				mu.Lock()
				updated++
				mu.Unlock()
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return updated, err
	}

	return updated, nil
}

// syncVariation soma as métricas de todos os posts com sucesso da variação
func (s *PostMetricsSyncService) syncVariation(ctx context.Context, variation *domain.PostedVariation) bool {
	logger := logrus.WithFields(logrus.Fields{
		"ad_variation_id": variation.AdVariationID,
		"user_id":         variation.UserID,
	})

	collected := make([]domain.PerformanceMetrics, 0, len(variation.PostingResults))

	for _, result := range variation.PostingResults {
		if !result.Success || result.PostID == "" || result.SocialAccountID == "" {
			continue
		}

		if ctx.Err() != nil {
			return false
		}

		account, err := s.socialAccountRepo.GetSocialAccount(ctx, variation.UserID, result.SocialAccountID)
		if err != nil {
			logger.WithError(err).Error("Erro ao buscar conta social do post")
			continue
		}
		if account == nil {
			logger.WithField("social_account_id", result.SocialAccountID).Warn("Conta social removida, ignorando post")
			continue
		}

		postMetrics, err := s.publishingService.GetPostMetrics(ctx, account, result.PostID)
		if publishing.IsTokenExpired(err) {
			logger.WithField("social_account_id", account.ID).Warn("Token da conta expirado, aguardando renovação")
			continue
		}
		if err != nil {
			logger.WithFields(logrus.Fields{
				"platform": account.Platform,
				"post_id":  result.PostID,
				"error":    err.Error(),
			}).Error("Erro ao obter métricas do post")
			continue
		}

		collected = append(collected, insighting.MetricsFromPost(account.Platform, postMetrics))

		select {
		case <-ctx.Done():
			return false
		case <-time.After(time.Duration(s.config.RequestDelaySeconds) * time.Second):
		}
	}

	if len(collected) == 0 {
		return false
	}

	combined := insighting.CombineMetrics(collected...)
	if _, err := s.adVariationRepo.UpdateMetrics(ctx, variation.AdVariationID, combined); err != nil {
		logger.WithError(err).Error("Erro ao salvar métricas da variação")
		return false
	}

	logger.WithFields(logrus.Fields{
		"impressions": combined.Impressions,
		"clicks":      combined.Clicks,
	}).Debug("Métricas da variação atualizadas")

	return true
}

// TriggerManualSync inicia manualmente uma sincronização
func (s *PostMetricsSyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Sincronização de métricas dos posts já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de métricas dos posts")
	go s.runSync(context.WithoutCancel(ctx))

	return true
}

// GetStatus retorna o status atual do agendador
func (s *PostMetricsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_updated":      s.lastSyncUpdated,
	}
}
