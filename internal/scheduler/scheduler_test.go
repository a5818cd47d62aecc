package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/wedsync-venue-api/internal/config"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/internal/scheduler/mocks"
	dashboardmocks "github.com/vfg2006/wedsync-venue-api/internal/usecases/dashboard/mocks"
	"github.com/vfg2006/wedsync-venue-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestConnectivityMonitorService_Probe(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name       string
		pingErr    error
		wasOnline  bool
		wantOnline bool
		failures   int
	}{
		{name: "backend volta a responder", wasOnline: false, wantOnline: true},
		{name: "backend cai", pingErr: errors.New("dial tcp: connection refused"), wasOnline: true, wantOnline: false, failures: 1},
		{name: "continua online", wasOnline: true, wantOnline: true},
		{name: "continua offline", pingErr: errors.New("timeout"), wasOnline: false, wantOnline: false, failures: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			prober := mocks.NewMockProber(ctrl)
			target := mocks.NewMockConnectivityTarget(ctrl)

			prober.EXPECT().Ping(gomock.Any()).Return(tt.pingErr)
			target.EXPECT().Online().Return(tt.wasOnline).AnyTimes()
			target.EXPECT().SetOnline(gomock.Any(), tt.wantOnline)

			service := &ConnectivityMonitorService{
				config: ConnectivityMonitorConfig{IntervalSeconds: 1, ProbeTimeout: time.Second, Enabled: true},
				prober: prober,
				target: target,
			}

			assert.True(t, service.Probe(context.Background()))

			status := service.GetStatus()
			assert.Equal(t, tt.failures, status["consecutive_failures"])
			assert.False(t, status["probe_running"].(bool))
			if tt.wantOnline != tt.wasOnline {
				assert.False(t, status["last_transition_at"].(time.Time).IsZero())
			}
		})
	}
}

func TestConnectivityMonitorService_ProbeSkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := &ConnectivityMonitorService{
		prober:       mocks.NewMockProber(ctrl),
		target:       mocks.NewMockConnectivityTarget(ctrl),
		probeRunning: true,
	}

	assert.False(t, service.Probe(context.Background()))
}

func TestConnectivityMonitorService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewConnectivityMonitorService(mocks.NewMockProber(ctrl), mocks.NewMockConnectivityTarget(ctrl), &config.Config{})

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, 15, service.config.IntervalSeconds)
}

type panickingProber struct {
	calls atomic.Int32
}

func (p *panickingProber) Ping(context.Context) error {
	p.calls.Add(1)
	panic("health endpoint blew up")
}

type staticTarget struct{}

func (staticTarget) Online() bool                    { return false }
func (staticTarget) SetOnline(context.Context, bool) {}

func TestConnectivityMonitorService_JobPanicIsRecovered(t *testing.T) {
	log.SetupTestLogger()
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	prober := &panickingProber{}
	service := NewConnectivityMonitorService(prober, staticTarget{}, &config.Config{
		ConnectivityMonitor: config.ConnectivityMonitor{IntervalSeconds: 1, Enabled: true},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))

	assert.Eventually(t, func() bool {
		return prober.calls.Load() >= 2
	}, 5*time.Second, 20*time.Millisecond, "o job continua agendado depois do panic")

	recovered := false
	for _, entry := range hook.AllEntries() {
		if entry.Message == "scheduler: job panicked" {
			recovered = true
			assert.Equal(t, "health endpoint blew up", entry.Data["panic"])
		}
	}
	assert.True(t, recovered)
}

func TestRunRecovered(t *testing.T) {
	log.SetupTestLogger()

	assert.NotPanics(t, func() {
		runRecovered("connectivity-manual", func() {
			panic("boom")
		})
	})
}

func TestDashboardRefreshService_RefreshAll(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	dashboardService := dashboardmocks.NewMockDashboarder(ctrl)

	gomock.InOrder(
		dashboardService.EXPECT().Refresh(gomock.Any(), "overview:org-1:").Return(2),
		dashboardService.EXPECT().GetOverview(gomock.Any(), "org-1", "7d").Return(&domain.DashboardOverview{}, nil),
		dashboardService.EXPECT().GetOverview(gomock.Any(), "org-1", "30d").Return(nil, errors.New("rpc failed")),
		dashboardService.EXPECT().Refresh(gomock.Any(), "overview:org-2:").Return(0),
		dashboardService.EXPECT().GetOverview(gomock.Any(), "org-2", "7d").Return(&domain.DashboardOverview{}, nil),
		dashboardService.EXPECT().GetOverview(gomock.Any(), "org-2", "30d").Return(&domain.DashboardOverview{}, nil),
	)

	service := NewDashboardRefreshService(dashboardService, &config.Config{
		DashboardRefresh: config.DashboardRefresh{
			CronSchedule:    "*/5 * * * *",
			OrganizationIDs: []string{"org-1", "org-2"},
			Enabled:         true,
		},
	})

	service.refreshAll(context.Background())

	status := service.GetStatus()
	assert.Equal(t, 1, status["last_sync_failures"])
	assert.False(t, status["sync_running"].(bool))
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestDashboardRefreshService_RefreshAllStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboardService := dashboardmocks.NewMockDashboarder(ctrl)

	service := NewDashboardRefreshService(dashboardService, &config.Config{
		DashboardRefresh: config.DashboardRefresh{OrganizationIDs: []string{"org-1"}},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service.refreshAll(ctx)
}
