package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wedsync-venue-api/internal/config"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/dashboard"
)

// Períodos da visão geral aquecidos a cada ciclo
var refreshPeriods = []string{"7d", "30d"}

type DashboardRefreshConfig struct {
	CronSchedule    string
	OrganizationIDs []string
	Enabled         bool
}

// DashboardRefreshService descarta a visão geral em cache das organizações
// configuradas e busca de novo, para que o primeiro acesso não espere o backend
type DashboardRefreshService struct {
	scheduler           *gocron.Scheduler
	config              DashboardRefreshConfig
	dashboardService    dashboard.Dashboarder
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncFailures    int
}

func NewDashboardRefreshService(dashboardService dashboard.Dashboarder, appConfig *config.Config) *DashboardRefreshService {
	recoverJobPanics()

	refreshConfig := DashboardRefreshConfig{
		CronSchedule:    appConfig.DashboardRefresh.CronSchedule,
		OrganizationIDs: appConfig.DashboardRefresh.OrganizationIDs,
		Enabled:         appConfig.DashboardRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"organizations": len(refreshConfig.OrganizationIDs),
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração da atualização dos painéis carregada")

	return &DashboardRefreshService{
		scheduler:        gocron.NewScheduler(time.Local),
		config:           refreshConfig,
		dashboardService: dashboardService,
	}
}

func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização agendada dos painéis desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização dos painéis")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização dos painéis: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização dos painéis")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DashboardRefreshService) refreshAll(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização dos painéis já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	failures := 0
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastSyncFailures = failures
		s.syncMutex.Unlock()
	}()

	for _, organizationID := range s.config.OrganizationIDs {
		if ctx.Err() != nil {
			return
		}

		removed := s.dashboardService.Refresh(ctx, dashboard.OverviewKeyPrefix+organizationID+":")

		for _, period := range refreshPeriods {
			if _, err := s.dashboardService.GetOverview(ctx, organizationID, period); err != nil {
				failures++
				logrus.WithError(err).WithFields(logrus.Fields{
					"organization_id": organizationID,
					"period":          period,
				}).Error("dashboard-refresh: failed to warm overview")
			}
		}

		logrus.WithFields(logrus.Fields{
			"organization_id": organizationID,
			"removed":         removed,
		}).Debug("dashboard-refresh: overview refreshed")
	}

	logrus.WithFields(logrus.Fields{
		"organizations": len(s.config.OrganizationIDs),
		"failures":      failures,
	}).Info("Atualização dos painéis concluída")
}

// TriggerManualSync inicia uma atualização fora do agendamento
func (s *DashboardRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização dos painéis já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual dos painéis")
	go runRecovered("dashboard-refresh-manual", func() {
		s.refreshAll(context.Background())
	})
}

func (s *DashboardRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"organizations":          s.config.OrganizationIDs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_failures":     s.lastSyncFailures,
	}
}
