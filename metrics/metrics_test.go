package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	dto "github.com/prometheus/client_model/go"
)

func find(t *testing.T, fams []*dto.MetricFamily, name string) *dto.MetricFamily {
	t.Helper()
	for _, f := range fams {
		if f.GetName() == name {
			return f
		}
	}
	t.Fatalf("metric %s not registered", name)
	return nil
}

// TestCountersAccumulate verifies the frame observer hookups
func TestCountersAccumulate(t *testing.T) {
	c := NewCollector()
	c.IncPositionCommits()
	c.IncPositionCommits()
	c.IncSnapshotsDropped()
	c.ObserveFrame(0.005)
	c.ObserveFrame(0.012)

	fams, err := c.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	commits := find(t, fams, "agentfloor_position_commits_total")
	if v := commits.GetMetric()[0].GetCounter().GetValue(); v != 2 {
		t.Errorf("position commits %v, want 2", v)
	}
	dropped := find(t, fams, "agentfloor_snapshots_dropped_total")
	if v := dropped.GetMetric()[0].GetCounter().GetValue(); v != 1 {
		t.Errorf("snapshots dropped %v, want 1", v)
	}
	frames := find(t, fams, "agentfloor_frame_seconds")
	if n := frames.GetMetric()[0].GetHistogram().GetSampleCount(); n != 2 {
		t.Errorf("frame samples %v, want 2", n)
	}
}

// TestCollectorsAreIndependent verifies per-instance registries
func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector()
	b := NewCollector()
	a.IncPositionCommits()

	fams, err := b.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	commits := find(t, fams, "agentfloor_position_commits_total")
	if v := commits.GetMetric()[0].GetCounter().GetValue(); v != 0 {
		t.Errorf("collector b saw collector a's commits: %v", v)
	}
}

// TestHandlerServesTextFormat verifies the scrape endpoint
func TestHandlerServesTextFormat(t *testing.T) {
	c := NewCollector()
	c.IncPositionCommits()

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), "agentfloor_position_commits_total 1") {
		t.Errorf("scrape output missing commit counter:\n%s", body)
	}
}
