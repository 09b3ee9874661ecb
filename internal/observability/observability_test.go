package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap/zapcore"

	"metreg/internal/config"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.ObservabilityConfig{LogLevel: "debug"})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level not enabled")
	}
}

func TestNewLogger_badLevelFallsBackToInfo(t *testing.T) {
	logger, err := NewLogger(config.ObservabilityConfig{LogLevel: "chatty"})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug enabled, want info fallback")
	}
	if !logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info not enabled")
	}
}

func TestInitMetrics_registersAllInstruments(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := InitMetrics(reg)

	m.HTTPRequestsTotal.WithLabelValues("GET", "/api/equipment", "200").Inc()
	m.SourceRefreshTotal.WithLabelValues("ok").Inc()
	m.RecomputeTotal.Inc()
	m.RecordsTotal.Set(10)
	m.RecordsFiltered.Set(4)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	want := map[string]bool{
		"metreg_http_requests_total":  false,
		"metreg_source_refresh_total": false,
		"metreg_view_recompute_total": false,
		"metreg_records_total":        false,
		"metreg_records_filtered":     false,
	}
	for _, fam := range families {
		if _, tracked := want[fam.GetName()]; tracked {
			want[fam.GetName()] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("metric %s not gathered", name)
		}
	}
}
