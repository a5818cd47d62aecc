package main

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wedsync-venue-api/infrastructure/backend"
	"github.com/vfg2006/wedsync-venue-api/infrastructure/database/postgres"
	"github.com/vfg2006/wedsync-venue-api/infrastructure/kvstore"
	infrarealtime "github.com/vfg2006/wedsync-venue-api/infrastructure/realtime"
	"github.com/vfg2006/wedsync-venue-api/infrastructure/repository"
	"github.com/vfg2006/wedsync-venue-api/internal/api"
	"github.com/vfg2006/wedsync-venue-api/internal/api/handler"
	"github.com/vfg2006/wedsync-venue-api/internal/config"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/internal/scheduler"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/authenticating"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/dashboard"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/incident"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/realtime"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/seating"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/widget"
	"github.com/vfg2006/wedsync-venue-api/pkg/cache"
	"github.com/vfg2006/wedsync-venue-api/pkg/log"
)

// closerFunc adapta funções de encerramento sem retorno ao io.Closer
type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	store, err := kvstore.Open(ctx, cfg.LocalStore)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o armazenamento local da fila")
	}
	defer store.Close()

	backendClient := backend.NewClient(cfg.Backend)

	incidents := incident.NewManager(store, incident.Options{
		Transport:  syncTransport(cfg, backendClient, pgConn),
		PruneAfter: cfg.IncidentSync.PruneAfter,
		OnOfflineReport: func(saved domain.OfflineIncident) {
			logrus.WithFields(logrus.Fields{
				"venue_id":    saved.VenueID,
				"incident_id": saved.ID,
			}).Info("Relato salvo offline; será enviado quando a conexão voltar")
		},
	})
	defer incidents.Wait()

	dashboardService := dashboard.NewService(
		repository.NewAnalyticsRepository(pgConn),
		repository.NewBudgetRepository(pgConn),
		backendClient,
		cache.New(cfg.Cache.Capacity, cfg.Cache.TTL),
	)

	seatingService := seating.NewService(repository.NewSeatingRepository(pgConn))

	catalog, err := widget.NewCatalog()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o catálogo de widgets")
	}

	authenticator := authenticating.NewService(cfg)

	hub := realtime.NewHub()
	dashboardWatch := dashboardService.Watch(hub)
	seatingWatch := seatingService.Watch(hub)
	startRealtime(ctx, cfg, hub)

	connectivityMonitor := scheduler.NewConnectivityMonitorService(backendClient, incidents, cfg)
	dashboardRefresh := scheduler.NewDashboardRefreshService(dashboardService, cfg)

	if err := connectivityMonitor.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o monitor de conectividade")
	} else {
		logrus.Info("Monitor de conectividade iniciado com sucesso")
	}

	if err := dashboardRefresh.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a atualização agendada do painel")
	} else {
		logrus.Info("Atualização agendada do painel iniciada com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Incidents:     incidents,
		Dashboard:     dashboardService,
		Seating:       seatingService,
		Widgets:       catalog,
		CronJobs: handler.CronJobServices{
			ConnectivityMonitor: connectivityMonitor,
			DashboardRefresh:    dashboardRefresh,
		},
	}, closerFunc(dashboardWatch.Close), closerFunc(seatingWatch.Close), closerFunc(cancel))
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// syncTransport escolhe para onde a fila envia os relatos (INCIDENT_SYNC_TRANSPORT)
func syncTransport(cfg *config.Config, client *backend.Client, conn postgres.Queryer) incident.Transport {
	if cfg.IncidentSync.Transport == "postgres" {
		logrus.Info("Fila de incidentes sincronizando direto no PostgreSQL")
		return repository.NewIncidentRepository(conn)
	}

	logrus.WithField("backend_url", cfg.Backend.URL).Info("Fila de incidentes sincronizando pela API do backend")
	return client
}

// startRealtime consome o feed de mudanças em background até o contexto ser cancelado
func startRealtime(ctx context.Context, cfg *config.Config, hub *realtime.Hub) {
	var source realtime.Source

	switch cfg.Realtime.Source {
	case "postgres":
		pqSource, err := infrarealtime.NewPQSource(cfg.Database.DSN, cfg.Realtime.Channel)
		if err != nil {
			logrus.WithError(err).Error("Erro ao escutar o canal de mudanças no PostgreSQL; seguindo sem tempo real")
			return
		}
		source = pqSource
	case "kafka":
		source = infrarealtime.NewKafkaSource(cfg.Realtime.KafkaBrokers, cfg.Realtime.KafkaTopic, cfg.Realtime.KafkaGroupID)
	default:
		logrus.Info("Tempo real desativado (REALTIME_SOURCE=none)")
		return
	}

	go func() {
		defer closeQuietly(source)
		if err := hub.Run(ctx, source); err != nil {
			logrus.WithError(err).Error("Feed de mudanças encerrado com erro")
		}
	}()
}

func closeQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar recurso")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
