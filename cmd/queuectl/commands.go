package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vfg2006/wedsync-venue-api/infrastructure/backend"
	"github.com/vfg2006/wedsync-venue-api/infrastructure/kvstore"
	"github.com/vfg2006/wedsync-venue-api/internal/config"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/incident"
	"github.com/vfg2006/wedsync-venue-api/pkg/utils"
)

// app guarda as flags globais e as dependências trocáveis nos testes
type app struct {
	out io.Writer

	storeDriver string
	storePath   string
	redisURL    string
	venue       string
	backendURL  string
	apiKey      string
	timeout     time.Duration
	pruneAfter  time.Duration

	openStore    func(ctx context.Context, cfg config.LocalStore) (kvstore.Store, error)
	newTransport func(cfg config.Backend) incident.Transport
}

func newApp(out io.Writer) *app {
	return &app{
		out:       out,
		openStore: kvstore.Open,
		newTransport: func(cfg config.Backend) incident.Transport {
			return backend.NewClient(cfg)
		},
	}
}

func newRootCmd(a *app) *cobra.Command {
	viper.AutomaticEnv()
	viper.SetDefault("LOCAL_STORE_DRIVER", "sqlite")
	viper.SetDefault("LOCAL_STORE_PATH", "./data/offline.db")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("BACKEND_URL", "http://localhost:3000")
	viper.SetDefault("BACKEND_API_KEY", "")

	root := &cobra.Command{
		Use:           "queuectl",
		Short:         "Inspeciona e sincroniza a fila offline de incidentes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.storeDriver, "store-driver", viper.GetString("LOCAL_STORE_DRIVER"), "armazenamento da fila: sqlite, redis ou memory")
	flags.StringVar(&a.storePath, "store-path", viper.GetString("LOCAL_STORE_PATH"), "arquivo sqlite da fila")
	flags.StringVar(&a.redisURL, "redis-url", viper.GetString("REDIS_URL"), "URL do redis quando --store-driver=redis")
	flags.StringVar(&a.venue, "venue", "", "ID do local")
	flags.DurationVar(&a.pruneAfter, "prune-after", incident.DefaultPruneAfter, "idade mínima dos sincronizados removidos por prune")

	root.AddCommand(
		a.venuesCmd(),
		a.listCmd(),
		a.syncCmd(),
		a.pruneCmd(),
		a.clearCmd(),
	)

	return root
}

func (a *app) manager(ctx context.Context, transport incident.Transport) (*incident.Manager, kvstore.Store, error) {
	store, err := a.openStore(ctx, config.LocalStore{
		Driver:   a.storeDriver,
		Path:     a.storePath,
		RedisURL: a.redisURL,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "queuectl: open store")
	}

	return incident.NewManager(store, incident.Options{
		Transport:  transport,
		PruneAfter: a.pruneAfter,
	}), store, nil
}

func (a *app) queue(ctx context.Context, transport incident.Transport) (*incident.Queue, kvstore.Store, error) {
	if strings.TrimSpace(a.venue) == "" {
		return nil, nil, errors.New("queuectl: --venue é obrigatório")
	}

	manager, store, err := a.manager(ctx, transport)
	if err != nil {
		return nil, nil, err
	}

	queue, err := manager.Queue(ctx, a.venue)
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	return queue, store, nil
}

func (a *app) venuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "venues",
		Short: "Lista os locais com fila persistida",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, store, err := a.manager(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer store.Close()

			venues, err := manager.Venues(cmd.Context())
			if err != nil {
				return err
			}

			for _, venueID := range venues {
				fmt.Fprintln(a.out, venueID)
			}
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	var since string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Mostra os incidentes da fila de um local",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := utils.ParseDate(since)
			if err != nil {
				return err
			}

			queue, store, err := a.queue(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer store.Close()

			status := queue.Status()
			fmt.Fprintf(a.out, "local %s: %d total, %d pendentes, %d sincronizados, %d com erro\n",
				status.VenueID, status.Total, status.Pending, status.Synced, status.Errored)

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTIPO\tSEVERIDADE\tSTATUS\tTENTATIVAS\tCRIADO EM\tTÍTULO")
			for _, inc := range queue.List() {
				if from != nil && inc.Timestamp.Before(*from) {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
					inc.ID, inc.Type, inc.Severity, inc.SyncStatus, inc.RetryCount,
					inc.Timestamp.Format(time.RFC3339), inc.Title)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&since, "since", "", "mostra só os relatos criados a partir da data (YYYY-MM-DD)")

	return cmd
}

func (a *app) syncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Envia os incidentes pendentes ao backend (todos os locais sem --venue)",
		RunE: func(cmd *cobra.Command, args []string) error {
			transport := a.newTransport(config.Backend{
				URL:            strings.TrimRight(a.backendURL, "/"),
				APIKey:         a.apiKey,
				RequestTimeout: a.timeout,
			})

			var results []domain.SyncResult

			if a.venue != "" {
				queue, store, err := a.queue(cmd.Context(), transport)
				if err != nil {
					return err
				}
				defer store.Close()

				result, err := queue.Sync(cmd.Context(), domain.SyncTriggerCLI)
				if err != nil {
					return err
				}
				results = append(results, result)
			} else {
				manager, store, err := a.manager(cmd.Context(), transport)
				if err != nil {
					return err
				}
				defer store.Close()

				results, err = manager.SyncAll(cmd.Context(), domain.SyncTriggerCLI)
				if err != nil {
					return err
				}
			}

			failed := 0
			for _, result := range results {
				fmt.Fprintf(a.out, "%s: %d enviados, %d sincronizados, %d falharam, %d removidos\n",
					result.VenueID, result.Attempted, result.Synced, result.Failed, result.Pruned)
				failed += result.Failed
			}

			if failed > 0 {
				return fmt.Errorf("queuectl: %d incidentes não sincronizados", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&a.backendURL, "backend-url", viper.GetString("BACKEND_URL"), "URL base da API do backend")
	cmd.Flags().StringVar(&a.apiKey, "api-key", viper.GetString("BACKEND_API_KEY"), "chave de API do backend")
	cmd.Flags().DurationVar(&a.timeout, "timeout", 10*time.Second, "timeout de cada requisição")

	return cmd
}

func (a *app) pruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove os incidentes sincronizados há mais de --prune-after",
		RunE: func(cmd *cobra.Command, args []string) error {
			queue, store, err := a.queue(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer store.Close()

			pruned, err := queue.Prune(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%d incidentes removidos\n", pruned)
			return nil
		},
	}
}

func (a *app) clearCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Apaga toda a fila do local, inclusive os pendentes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return errors.New("queuectl: clear apaga relatos não sincronizados; confirme com --yes")
			}

			queue, store, err := a.queue(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := queue.Clear(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%d incidentes apagados\n", removed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "yes", false, "confirma a remoção")

	return cmd
}
