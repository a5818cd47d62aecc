package scheduler

//go:generate mockgen -source=connectivity_monitor.go -destination=mocks/mock_connectivity_monitor.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wedsync-venue-api/internal/config"
)

// Prober verifica se o backend está acessível
type Prober interface {
	Ping(ctx context.Context) error
}

// ConnectivityTarget recebe o estado de conectividade (incident.Manager)
type ConnectivityTarget interface {
	Online() bool
	SetOnline(ctx context.Context, online bool)
}

type ConnectivityMonitorConfig struct {
	IntervalSeconds int
	ProbeTimeout    time.Duration
	Enabled         bool
}

// ConnectivityMonitorService consulta o backend em intervalo fixo e avisa a
// fila de incidentes quando a conexão cai ou volta
type ConnectivityMonitorService struct {
	scheduler           *gocron.Scheduler
	config              ConnectivityMonitorConfig
	prober              Prober
	target              ConnectivityTarget
	probeRunning        bool
	probeMutex          sync.Mutex
	lastProbeAt         time.Time
	lastTransitionAt    time.Time
	lastError           string
	consecutiveFailures int
}

func NewConnectivityMonitorService(prober Prober, target ConnectivityTarget, appConfig *config.Config) *ConnectivityMonitorService {
	recoverJobPanics()

	monitorConfig := ConnectivityMonitorConfig{
		IntervalSeconds: appConfig.ConnectivityMonitor.IntervalSeconds,
		ProbeTimeout:    appConfig.Backend.RequestTimeout,
		Enabled:         appConfig.ConnectivityMonitor.Enabled,
	}
	if monitorConfig.IntervalSeconds <= 0 {
		monitorConfig.IntervalSeconds = 15
	}
	if monitorConfig.ProbeTimeout <= 0 {
		monitorConfig.ProbeTimeout = 5 * time.Second
	}

	logrus.WithFields(logrus.Fields{
		"interval_seconds": monitorConfig.IntervalSeconds,
		"probe_timeout":    monitorConfig.ProbeTimeout,
		"enabled":          monitorConfig.Enabled,
	}).Info("Configuração do monitor de conectividade carregada")

	return &ConnectivityMonitorService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    monitorConfig,
		prober:    prober,
		target:    target,
	}
}

func (s *ConnectivityMonitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Monitor de conectividade desabilitado por configuração")
		return nil
	}

	logrus.WithField("interval_seconds", s.config.IntervalSeconds).Info("Iniciando monitor de conectividade")

	_, err := s.scheduler.Every(s.config.IntervalSeconds).Seconds().Do(func() {
		s.Probe(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar monitor de conectividade: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando monitor de conectividade")
		s.scheduler.Stop()
	}()

	return nil
}

// Probe consulta o backend uma vez e repassa o resultado. Retorna false sem
// consultar quando outra verificação está em andamento.
func (s *ConnectivityMonitorService) Probe(ctx context.Context) bool {
	s.probeMutex.Lock()
	if s.probeRunning {
		s.probeMutex.Unlock()
		logrus.Debug("connectivity: probe already running, skipping")
		return false
	}
	s.probeRunning = true
	s.probeMutex.Unlock()

	defer func() {
		s.probeMutex.Lock()
		s.probeRunning = false
		s.probeMutex.Unlock()
	}()

	probeCtx, cancel := context.WithTimeout(ctx, s.config.ProbeTimeout)
	err := s.prober.Ping(probeCtx)
	cancel()

	online := err == nil
	wasOnline := s.target.Online()

	s.probeMutex.Lock()
	s.lastProbeAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
		s.consecutiveFailures++
	} else {
		s.lastError = ""
		s.consecutiveFailures = 0
	}
	if online != wasOnline {
		s.lastTransitionAt = s.lastProbeAt
	}
	failures := s.consecutiveFailures
	s.probeMutex.Unlock()

	if online != wasOnline {
		entry := logrus.WithField("online", online)
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Info("connectivity: backend reachability changed")
	} else if err != nil {
		logrus.WithError(err).WithField("consecutive_failures", failures).Debug("connectivity: backend still unreachable")
	}

	s.target.SetOnline(ctx, online)

	return true
}

// TriggerManualSync força uma verificação fora do intervalo
func (s *ConnectivityMonitorService) TriggerManualSync() {
	s.probeMutex.Lock()
	if s.probeRunning {
		s.probeMutex.Unlock()
		logrus.Info("Verificação de conectividade já em andamento, ignorando solicitação manual")
		return
	}
	s.probeMutex.Unlock()

	logrus.Info("Iniciando verificação manual de conectividade")
	go runRecovered("connectivity-manual", func() {
		s.Probe(context.Background())
	})
}

func (s *ConnectivityMonitorService) GetStatus() map[string]any {
	s.probeMutex.Lock()
	defer s.probeMutex.Unlock()

	return map[string]any{
		"enabled":              s.config.Enabled,
		"interval_seconds":     s.config.IntervalSeconds,
		"online":               s.target.Online(),
		"probe_running":        s.probeRunning,
		"last_probe_at":        s.lastProbeAt,
		"last_transition_at":   s.lastTransitionAt,
		"last_error":           s.lastError,
		"consecutive_failures": s.consecutiveFailures,
	}
}
