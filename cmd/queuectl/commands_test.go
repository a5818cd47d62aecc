package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/wedsync-venue-api/infrastructure/kvstore"
	"github.com/vfg2006/wedsync-venue-api/internal/config"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/incident"
	"github.com/vfg2006/wedsync-venue-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	m.Run()
}

func seededStore(t *testing.T, venues ...string) *kvstore.MemoryStore {
	t.Helper()

	store := kvstore.NewMemoryStore()
	for _, venueID := range venues {
		queue := incident.NewQueue(venueID, store, incident.Options{})
		_, err := queue.SaveOfflineIncident(context.Background(), domain.IncidentReport{
			Type:     domain.IncidentTypeSecurity,
			Severity: domain.SeverityMedium,
			Title:    "Porta lateral aberta",
		})
		require.NoError(t, err)
	}
	return store
}

func run(t *testing.T, store kvstore.Store, transport incident.Transport, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	a := newApp(out)
	a.openStore = func(context.Context, config.LocalStore) (kvstore.Store, error) {
		return store, nil
	}
	a.newTransport = func(config.Backend) incident.Transport {
		return transport
	}

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVenues(t *testing.T) {
	out, err := run(t, seededStore(t, "v2", "v1"), nil, "venues")

	require.NoError(t, err)
	assert.Equal(t, "v1\nv2\n", out)
}

func TestList(t *testing.T) {
	out, err := run(t, seededStore(t, "v1"), nil, "list", "--venue", "v1")

	require.NoError(t, err)
	assert.Contains(t, out, "1 total, 1 pendentes")
	assert.Contains(t, out, "Porta lateral aberta")
	assert.Contains(t, out, "security")
}

func TestList_Since(t *testing.T) {
	out, err := run(t, seededStore(t, "v1"), nil, "list", "--venue", "v1", "--since", "2999-01-01")
	require.NoError(t, err)
	assert.NotContains(t, out, "Porta lateral aberta")

	_, err = run(t, seededStore(t, "v1"), nil, "list", "--venue", "v1", "--since", "01/01/2024")
	assert.Error(t, err)
}

func TestList_RequiresVenue(t *testing.T) {
	_, err := run(t, seededStore(t), nil, "list")

	assert.ErrorContains(t, err, "--venue")
}

func TestSync(t *testing.T) {
	acked := 0
	ack := incident.TransportFunc(func(context.Context, domain.OfflineIncident) (bool, error) {
		acked++
		return true, nil
	})

	store := seededStore(t, "v1", "v2")

	out, err := run(t, store, ack, "sync", "--venue", "v1")
	require.NoError(t, err)
	assert.Contains(t, out, "v1: 1 enviados, 1 sincronizados")
	assert.Equal(t, 1, acked)

	out, err = run(t, store, ack, "sync")
	require.NoError(t, err)
	assert.Contains(t, out, "v2: 1 enviados, 1 sincronizados")
	assert.Equal(t, 2, acked)
}

func TestSync_ReportsFailures(t *testing.T) {
	fail := incident.TransportFunc(func(context.Context, domain.OfflineIncident) (bool, error) {
		return false, errors.New("backend fora do ar")
	})

	out, err := run(t, seededStore(t, "v1"), fail, "sync", "--venue", "v1")

	assert.ErrorContains(t, err, "1 incidentes não sincronizados")
	assert.Contains(t, out, "1 falharam")
}

func TestClear(t *testing.T) {
	store := seededStore(t, "v1")

	_, err := run(t, store, nil, "clear", "--venue", "v1")
	assert.ErrorContains(t, err, "--yes")

	out, err := run(t, store, nil, "clear", "--venue", "v1", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "1 incidentes apagados")

	out, err = run(t, store, nil, "venues")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestPrune_KeepsPending(t *testing.T) {
	out, err := run(t, seededStore(t, "v1"), nil, "prune", "--venue", "v1", "--prune-after", "1ns")

	require.NoError(t, err)
	assert.Contains(t, out, "0 incidentes removidos")
}
