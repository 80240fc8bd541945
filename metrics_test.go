package vbpool

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector(t *testing.T) {
	p := New()
	defer p.Close()

	var acquired []*VertexBufferInfo
	for range SlabSize + 3 {
		acquired = append(acquired, p.Acquire())
	}
	defer func() {
		for _, v := range acquired {
			p.Release(v)
		}
	}()

	c := NewCollector(p, "render", prometheus.Labels{"backend": "vulkan"})
	if n := testutil.CollectAndCount(c); n != 5 {
		t.Fatalf("expected 5 metrics, got %d", n)
	}

	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(c); err != nil {
		t.Fatalf("failed to register collector: %v", err)
	}
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather: %v", err)
	}

	expected := map[string]float64{
		"render_vertex_buffer_pool_slabs":          2,
		"render_vertex_buffer_pool_records":        2 * SlabSize,
		"render_vertex_buffer_pool_records_free":   SlabSize - 3,
		"render_vertex_buffer_pool_records_in_use": SlabSize + 3,
		"render_vertex_buffer_pool_grows_total":    1,
	}
	if len(families) != len(expected) {
		t.Fatalf("expected %d metric families, got %d", len(expected), len(families))
	}
	for _, mf := range families {
		want, ok := expected[mf.GetName()]
		if !ok {
			t.Errorf("unexpected metric %q", mf.GetName())
			continue
		}
		m := mf.GetMetric()[0]
		var got float64
		if mf.GetType().String() == "COUNTER" {
			got = m.GetCounter().GetValue()
		} else {
			got = m.GetGauge().GetValue()
		}
		if got != want {
			t.Errorf("expected %s = %v, got %v", mf.GetName(), want, got)
		}
		if l := m.GetLabel(); len(l) != 1 || l[0].GetName() != "backend" || l[0].GetValue() != "vulkan" {
			t.Errorf("expected backend label on %s, got %v", mf.GetName(), l)
		}
	}
}
