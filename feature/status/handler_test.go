package status_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"ornithe-meta/core/snapshot"
	"ornithe-meta/core/snapshot/snapshottest"
	"ornithe-meta/feature/status"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedStatus snapshot.Status

func (s fixedStatus) Status() snapshot.Status { return snapshot.Status(s) }

type breakers map[string]string

func (b breakers) BreakerStates() map[string]string { return b }

func health(t *testing.T, f *status.Feature) (int, status.Report) {
	t.Helper()
	app := fiber.New()
	require.NoError(t, f.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var r status.Report
	require.NoError(t, json.Unmarshal(body, &r), string(body))
	return resp.StatusCode, r
}

func TestHealth_Starting(t *testing.T) {
	f := status.NewFeature(snapshot.NewStore(), fixedStatus{State: snapshot.StateBuilding}, nil)
	assert.Equal(t, "status", f.Name())
	assert.True(t, f.IsEnabled())

	code, r := health(t, f)
	assert.Equal(t, fiber.StatusServiceUnavailable, code)
	assert.Equal(t, status.StatusStarting, r.Status)
	assert.Equal(t, "building", r.Refresher.State)
	assert.Nil(t, r.Snapshot)
	assert.Nil(t, r.Refresher.LastSuccess)
}

func TestHealth_Published(t *testing.T) {
	store := snapshottest.NewFixture().Store(t)
	now := time.Now()
	f := status.NewFeature(store, fixedStatus{
		State:       snapshot.StateIdle,
		LastOutcome: snapshot.StatePublished,
		LastAttempt: now,
		LastSuccess: now,
		Builds:      3,
	}, breakers{"maven.test": "closed"})

	code, r := health(t, f)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, status.StatusOK, r.Status)
	assert.Equal(t, 3, r.Refresher.Builds)
	require.NotNil(t, r.Snapshot)
	assert.Equal(t, snapshot.Generations{Latest: 2, Stable: 1}, r.Snapshot.Generations)
	assert.GreaterOrEqual(t, r.Snapshot.AgeSeconds, int64(0))
	assert.Equal(t, map[string]string{"maven.test": "closed"}, r.Upstreams)
}

func TestHealth_Degraded(t *testing.T) {
	store := snapshottest.NewFixture().Store(t)

	t.Run("FailedRefresh", func(t *testing.T) {
		f := status.NewFeature(store, fixedStatus{
			LastOutcome: snapshot.StateFailed,
			LastError:   errors.New("catalog unavailable"),
			Failures:    1,
		}, nil)
		code, r := health(t, f)
		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, status.StatusDegraded, r.Status)
		assert.Equal(t, "catalog unavailable", r.Refresher.LastError)
		assert.Equal(t, "failed", r.Refresher.LastOutcome)
	})

	t.Run("OpenBreaker", func(t *testing.T) {
		f := status.NewFeature(store, fixedStatus{LastOutcome: snapshot.StatePublished}, breakers{"maven.test": "open"})
		_, r := health(t, f)
		assert.Equal(t, status.StatusDegraded, r.Status)
	})
}
