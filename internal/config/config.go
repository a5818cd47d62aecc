package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Backend             Backend             `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	LocalStore          LocalStore          `mapstructure:",squash"`
	IncidentSync        IncidentSync        `mapstructure:",squash"`
	ConnectivityMonitor ConnectivityMonitor `mapstructure:",squash"`
	DashboardRefresh    DashboardRefresh    `mapstructure:",squash"`
	Cache               Cache               `mapstructure:",squash"`
	Realtime            Realtime            `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Backend é a API REST hospedada (rotas /api/marketing/..., /api/incidents)
type Backend struct {
	URL            string        `mapstructure:"backend_url"`
	APIKey         string        `mapstructure:"backend_api_key"`
	RequestTimeout time.Duration `mapstructure:"backend_request_timeout"`
	HealthPath     string        `mapstructure:"backend_health_path"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// LocalStore configura o armazenamento chave-valor durável da fila offline
type LocalStore struct {
	Driver   string `mapstructure:"local_store_driver"` // sqlite | redis | memory
	Path     string `mapstructure:"local_store_path"`
	RedisURL string `mapstructure:"redis_url"`
}

type IncidentSync struct {
	Transport  string        `mapstructure:"incident_sync_transport"` // http | postgres
	PruneAfter time.Duration `mapstructure:"incident_prune_after"`
}

type ConnectivityMonitor struct {
	IntervalSeconds int  `mapstructure:"connectivity_probe_interval_seconds"`
	Enabled         bool `mapstructure:"connectivity_probe_enabled"`
}

type DashboardRefresh struct {
	CronSchedule    string   `mapstructure:"dashboard_refresh_cron"`
	OrganizationIDs []string `mapstructure:"dashboard_refresh_organizations"`
	Enabled         bool     `mapstructure:"dashboard_refresh_enabled"`
}

type Cache struct {
	Capacity int           `mapstructure:"cache_capacity"`
	TTL      time.Duration `mapstructure:"cache_ttl"`
}

type Realtime struct {
	Source       string   `mapstructure:"realtime_source"` // postgres | kafka | none
	Channel      string   `mapstructure:"realtime_channel"`
	KafkaBrokers []string `mapstructure:"kafka_brokers"`
	KafkaTopic   string   `mapstructure:"kafka_topic"`
	KafkaGroupID string   `mapstructure:"kafka_group_id"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://app.wedsync.com")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/wedsync?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("BACKEND_URL", "http://localhost:3000")
	viper.SetDefault("BACKEND_API_KEY", "")
	viper.SetDefault("BACKEND_REQUEST_TIMEOUT", "10s")
	viper.SetDefault("BACKEND_HEALTH_PATH", "/api/health")

	viper.SetDefault("AUTH_SECRET", "your_jwt_secret")

	viper.SetDefault("LOCAL_STORE_DRIVER", "sqlite")
	viper.SetDefault("LOCAL_STORE_PATH", "./data/offline.db")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")

	viper.SetDefault("INCIDENT_SYNC_TRANSPORT", "http")
	viper.SetDefault("INCIDENT_PRUNE_AFTER", "24h") // Registros sincronizados ficam 24h na fila

	viper.SetDefault("CONNECTIVITY_PROBE_INTERVAL_SECONDS", 15)
	viper.SetDefault("CONNECTIVITY_PROBE_ENABLED", true)

	viper.SetDefault("DASHBOARD_REFRESH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("DASHBOARD_REFRESH_ORGANIZATIONS", "")
	viper.SetDefault("DASHBOARD_REFRESH_ENABLED", false)

	viper.SetDefault("CACHE_CAPACITY", 512)
	viper.SetDefault("CACHE_TTL", "5m")

	viper.SetDefault("REALTIME_SOURCE", "none")
	viper.SetDefault("REALTIME_CHANNEL", "table_changes")
	viper.SetDefault("KAFKA_BROKERS", "localhost:9092")
	viper.SetDefault("KAFKA_TOPIC", "wedsync.table_changes")
	viper.SetDefault("KAFKA_GROUP_ID", "venue-api")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Backend.URL = strings.TrimRight(config.Backend.URL, "/")
	config.Server.AllowedOrigins = compact(config.Server.AllowedOrigins)
	config.Realtime.KafkaBrokers = compact(config.Realtime.KafkaBrokers)
	config.DashboardRefresh.OrganizationIDs = compact(config.DashboardRefresh.OrganizationIDs)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica combinações de configuração que impedem a inicialização
func (c *Config) Validate() error {
	switch c.LocalStore.Driver {
	case "sqlite", "redis", "memory":
	default:
		return fmt.Errorf("config: LOCAL_STORE_DRIVER inválido: %q", c.LocalStore.Driver)
	}

	switch c.IncidentSync.Transport {
	case "http", "postgres":
	default:
		return fmt.Errorf("config: INCIDENT_SYNC_TRANSPORT inválido: %q", c.IncidentSync.Transport)
	}

	switch c.Realtime.Source {
	case "postgres", "kafka", "none":
	default:
		return fmt.Errorf("config: REALTIME_SOURCE inválido: %q", c.Realtime.Source)
	}

	if c.Realtime.Source == "kafka" && len(c.Realtime.KafkaBrokers) == 0 {
		return fmt.Errorf("config: KAFKA_BROKERS é obrigatório com REALTIME_SOURCE=kafka")
	}

	if c.IncidentSync.PruneAfter <= 0 {
		return fmt.Errorf("config: INCIDENT_PRUNE_AFTER deve ser positivo")
	}

	if c.Cache.Capacity <= 0 || c.Cache.TTL <= 0 {
		return fmt.Errorf("config: CACHE_CAPACITY e CACHE_TTL devem ser positivos")
	}

	return nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
