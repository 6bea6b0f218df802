package store_test

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsas/internal/store"
)

func openMemory(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestSaveRun_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	id, err := s.SaveRun(ctx, store.Run{
		Model:   "sphere",
		Source:  "jobs/sphere.hcl",
		Kind:    store.Kind1D,
		ER:      20,
		VR:      1,
		Created: created,
		Points: []store.Point{
			{Q: 0.01, IQ: 5},
			{Q: 0.02, IQ: 4},
			{Q: 0.03, IQ: 3},
		},
	})
	require.NoError(t, err)

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	r := runs[0]
	assert.Equal(t, id, r.ID)
	assert.Equal(t, "sphere", r.Model)
	assert.Equal(t, "jobs/sphere.hcl", r.Source)
	assert.Equal(t, store.Kind1D, r.Kind)
	assert.Equal(t, 20.0, r.ER)
	assert.Equal(t, 1.0, r.VR)
	assert.Equal(t, 3, r.NPoints)
	assert.True(t, created.Equal(r.Created.UTC()))

	pts, err := s.Points(ctx, id)
	require.NoError(t, err)
	require.Len(t, pts, 3)
	assert.Equal(t, 0.02, pts[1].Q)
	assert.Equal(t, 4.0, pts[1].IQ)
}

func TestSaveRun_IDsIncreaseAndNaNSurvives(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	first, err := s.SaveRun(ctx, store.Run{Model: "sphere", Kind: store.Kind1D})
	require.NoError(t, err)
	second, err := s.SaveRun(ctx, store.Run{
		Model:  "cylinder",
		Kind:   store.Kind2D,
		Points: []store.Point{{Q: 0.05, QX: 0.03, QY: 0.04, IQ: math.NaN()}},
	})
	require.NoError(t, err)
	assert.Greater(t, second, first)

	pts, err := s.Points(ctx, second)
	require.NoError(t, err)
	require.Len(t, pts, 1)
	assert.True(t, math.IsNaN(pts[0].IQ))
	assert.Equal(t, 0.03, pts[0].QX)

	empty, err := s.Points(ctx, first)
	require.NoError(t, err)
	assert.Empty(t, empty)

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.False(t, runs[0].Created.IsZero())
}

func TestOpen_FilePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.duckdb")

	s, err := store.Open(path)
	require.NoError(t, err)
	_, err = s.SaveRun(ctx, store.Run{Model: "sphere", Kind: store.Kind1D, Points: []store.Point{{Q: 1, IQ: 2}}})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = store.Open(path)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 1, runs[0].NPoints)
}

func TestClosed(t *testing.T) {
	s, err := store.Open("")
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.SaveRun(context.Background(), store.Run{})
	assert.ErrorIs(t, err, store.ErrClosed)
	_, err = s.Runs(context.Background())
	assert.ErrorIs(t, err, store.ErrClosed)
	_, err = s.Points(context.Background(), 1)
	assert.ErrorIs(t, err, store.ErrClosed)
}
