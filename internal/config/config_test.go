package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		LocalStore:   LocalStore{Driver: "sqlite", Path: "offline.db"},
		IncidentSync: IncidentSync{Transport: "http", PruneAfter: 24 * time.Hour},
		Cache:        Cache{Capacity: 10, TTL: time.Minute},
		Realtime:     Realtime{Source: "none"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "configuração padrão válida", mutate: func(c *Config) {}},
		{name: "driver de armazenamento desconhecido", mutate: func(c *Config) { c.LocalStore.Driver = "localstorage" }, wantErr: true},
		{name: "transporte desconhecido", mutate: func(c *Config) { c.IncidentSync.Transport = "grpc" }, wantErr: true},
		{name: "kafka sem brokers", mutate: func(c *Config) { c.Realtime.Source = "kafka" }, wantErr: true},
		{name: "kafka com brokers", mutate: func(c *Config) {
			c.Realtime.Source = "kafka"
			c.Realtime.KafkaBrokers = []string{"localhost:9092"}
		}},
		{name: "poda sem janela", mutate: func(c *Config) { c.IncidentSync.PruneAfter = 0 }, wantErr: true},
		{name: "cache sem capacidade", mutate: func(c *Config) { c.Cache.Capacity = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCompact(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, compact([]string{" a ", "", "b", "  "}))
	assert.Empty(t, compact([]string{""}))
}
