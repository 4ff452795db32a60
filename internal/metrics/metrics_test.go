package metrics_test

import (
	"errors"
	"tagfacet/internal/catalog"
	"tagfacet/internal/metrics"
	"tagfacet/internal/search"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecorder(t *testing.T) (*metrics.Recorder, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return metrics.NewRecorder(reg), reg
}

func TestRecorder_ObserveEvaluation(t *testing.T) {
	r, _ := newTestRecorder(t)

	r.ObserveEvaluation(2*time.Millisecond, 7)
	r.ObserveEvaluation(time.Millisecond, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.Evaluations))
	assert.Equal(t, uint64(2), histogramCount(t, r.EvaluationDuration))
	assert.Equal(t, uint64(2), histogramCount(t, r.ResultSize))
	assert.Equal(t, 1, testutil.CollectAndCount(r.EvaluationDuration))
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, h.Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func TestRecorder_ObserveCacheHit(t *testing.T) {
	r, _ := newTestRecorder(t)

	r.ObserveCacheHit()
	r.ObserveCacheHit()
	r.ObserveCacheHit()

	assert.Equal(t, 3.0, testutil.ToFloat64(r.CacheHits))
}

func TestRecorder_ObserveReload(t *testing.T) {
	r, _ := newTestRecorder(t)

	r.ObserveReload(nil)
	r.ObserveReload(errors.New("boom"))
	r.ObserveReload(nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.CatalogReloads.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.CatalogReloads.WithLabelValues("error")))
}

func TestRecorder_RegistersOnGivenRegistry(t *testing.T) {
	r, reg := newTestRecorder(t)
	r.ObserveCacheHit()
	r.ObserveReload(nil)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "tagfacet_search_cache_hits_total")
	assert.Contains(t, names, "tagfacet_search_evaluations_total")
	assert.Contains(t, names, "tagfacet_catalog_reloads_total")
}

func TestRecorder_CountsSessionEvaluations(t *testing.T) {
	r, _ := newTestRecorder(t)
	cat := catalog.New("300")
	require.NoError(t, cat.AddPhoto("a.jpg"))
	s := search.NewSession(cat, search.WithObserver(r))

	_ = s.Photos()
	_ = s.Photos()
	s.AddCriterion("color", "red")
	_ = s.Photos()

	assert.Equal(t, 2.0, testutil.ToFloat64(r.Evaluations))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.CacheHits))
}
