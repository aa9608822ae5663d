package eval

import (
	"testing"
	"time"

	"github.com/ewan-klein/carneades/internal/cache"
	"github.com/ewan-klein/carneades/internal/model"
	"github.com/ewan-klein/carneades/internal/standard"
)

// spyCache records hits and misses around a plain map store.
type spyCache struct {
	entries map[string][]byte
	hits    int
	misses  int
	sets    int
}

func newSpyCache() *spyCache {
	return &spyCache{entries: make(map[string][]byte)}
}

func (c *spyCache) Get(key string) ([]byte, bool) {
	if val, found := c.entries[key]; found {
		c.hits++
		return val, true
	}
	c.misses++
	return nil, false
}

func (c *spyCache) Set(key string, value []byte, _ time.Duration) error {
	c.sets++
	c.entries[key] = value
	return nil
}

func (c *spyCache) Delete(key string) error {
	delete(c.entries, key)
	return nil
}

func (c *spyCache) Clear() error {
	c.entries = make(map[string][]byte)
	return nil
}

func TestCachedEvaluator_Memoizes(t *testing.T) {
	p := model.Prop("p")
	g := buildGraph(t, mustArg(t, "a1", p, nil, nil, nil))
	audience := mustAudience(t, nil, nil)
	assignment := mustAssignment(t, "scintilla", nil)
	store := newSpyCache()

	e := NewCached(g, audience, assignment, standard.DefaultThresholds(), store, time.Minute)

	first, err := e.Evaluate(p)
	if err != nil {
		t.Fatalf("first evaluate: %v", err)
	}
	if first != model.VerdictAccepted {
		t.Fatalf("expected accepted, got %s", first)
	}
	if store.misses != 1 || store.sets != 1 {
		t.Errorf("expected one miss and one set after first call, got %d/%d", store.misses, store.sets)
	}

	second, err := e.Evaluate(p)
	if err != nil {
		t.Fatalf("second evaluate: %v", err)
	}
	if second != first {
		t.Errorf("cached verdict %s differs from computed %s", second, first)
	}
	if store.hits != 1 {
		t.Errorf("expected second call to hit the cache, hits = %d", store.hits)
	}
}

func TestCachedEvaluator_MatchesInner(t *testing.T) {
	q := model.Prop("q")
	g := buildGraph(t,
		mustArg(t, "a1", q, nil, nil, nil),
		mustArg(t, "a2", q.Negate(), nil, nil, nil),
	)
	audience := mustAudience(t, nil, map[string]float64{"a1": 0.4, "a2": 0.6})
	assignment := mustAssignment(t, "preponderance", nil)

	cached := NewCached(g, audience, assignment, standard.DefaultThresholds(),
		cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	for _, s := range []model.Statement{q, q.Negate()} {
		want, err := cached.Inner().Evaluate(s)
		if err != nil {
			t.Fatalf("inner evaluate %s: %v", s, err)
		}
		// Twice: once computed, once served from cache.
		for i := 0; i < 2; i++ {
			got, err := cached.Evaluate(s)
			if err != nil {
				t.Fatalf("cached evaluate %s: %v", s, err)
			}
			if got != want {
				t.Errorf("cached verdict for %s = %s, want %s", s, got, want)
			}
		}
	}
}

func TestCachedEvaluator_DifferentAudienceDifferentKeys(t *testing.T) {
	// Two evaluators over the same graph but different audiences share a
	// store; their entries must not collide.
	p := model.Prop("p")
	g := buildGraph(t, mustArg(t, "a1", p, nil, nil, nil))
	assignment := mustAssignment(t, "preponderance", nil)
	store := cache.NewMemoryCache(time.Minute, time.Minute)

	plain := NewCached(g, mustAudience(t, nil, nil), assignment, standard.DefaultThresholds(), store, time.Minute)
	skeptic := NewCached(g, mustAudience(t, []model.Statement{p.Negate()}, nil), assignment, standard.DefaultThresholds(), store, time.Minute)

	got, err := plain.Evaluate(p)
	if err != nil {
		t.Fatalf("plain evaluate: %v", err)
	}
	if got != model.VerdictAccepted {
		t.Errorf("plain audience: expected accepted, got %s", got)
	}

	got, err = skeptic.Evaluate(p)
	if err != nil {
		t.Fatalf("skeptic evaluate: %v", err)
	}
	if got != model.VerdictRejected {
		t.Errorf("skeptical audience: expected rejected, got %s", got)
	}
}

func TestCachedEvaluator_Report(t *testing.T) {
	p := model.Prop("p")
	g := buildGraph(t, mustArg(t, "a1", p, nil, nil, nil))
	cached := NewCached(g, mustAudience(t, nil, nil), mustAssignment(t, "scintilla", nil),
		standard.DefaultThresholds(), cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	report := cached.Report("Cached Case", "case.yaml", nil)
	if len(report.Targets) != 1 {
		t.Fatalf("expected 1 target, got %d", len(report.Targets))
	}
	if report.Targets[0].Verdict != model.VerdictAccepted {
		t.Errorf("expected accepted, got %s", report.Targets[0].Verdict)
	}
}
