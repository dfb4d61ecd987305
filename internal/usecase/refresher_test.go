package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"InsightFlow/internal/domain/models"
)

func TestRefresherRunsFullPassOnStart(t *testing.T) {
	reg := testRegistry(t, &fakeBackend{}, RegistryConfig{})
	r := NewRefresher(reg, testLogger(t), WithInterval(time.Hour), WithWorkers(2))

	r.Start(context.Background())
	defer r.Stop()

	require.Eventually(t, func() bool {
		for _, store := range reg.All() {
			if store.Projection().Status != models.StatusDone {
				return false
			}
		}
		return true
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRefreshAllBoundsConcurrency(t *testing.T) {
	reg := testRegistry(t, &fakeBackend{}, RegistryConfig{})
	r := NewRefresher(reg, testLogger(t), WithWorkers(1), WithRefreshOnStart(false))

	r.RefreshAll(context.Background())
	for _, store := range reg.All() {
		require.Equal(t, models.StatusDone, store.Projection().Status, string(store.Domain()))
	}
}

func TestRefreshJobHandlesQueuedPayload(t *testing.T) {
	reg := testRegistry(t, &fakeBackend{}, RegistryConfig{})
	job := NewRefreshJob(reg, testLogger(t))

	require.Equal(t, "store_refresh", job.Name())
	require.Equal(t, "store.refresh", job.Type())

	require.NoError(t, job.Handle(context.Background(), &RefreshPayload{Domain: "fx"}))
	store, err := reg.Get("fx")
	require.NoError(t, err)
	require.Equal(t, models.StatusDone, store.Projection().Status)

	require.Error(t, job.Handle(context.Background(), &RefreshPayload{Domain: "nope"}))
}
