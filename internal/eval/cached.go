package eval

import (
	"fmt"
	"time"

	"github.com/ewan-klein/carneades/internal/cache"
	"github.com/ewan-klein/carneades/internal/graph"
	"github.com/ewan-klein/carneades/internal/model"
	"github.com/ewan-klein/carneades/internal/standard"
)

// CachedEvaluator memoizes verdicts across Evaluate calls. Keys combine the
// graph, audience, and assignment fingerprints with the statement, so a
// different graph or audience never hits a stale entry. The wrapped
// evaluator is the source of truth; the cache is purely an optimization.
type CachedEvaluator struct {
	inner   *Evaluator
	store   cache.Cache
	baseKey string
	ttl     time.Duration
}

// NewCached wraps an evaluator with a verdict cache.
func NewCached(g *graph.Graph, audience *model.Audience, standards *standard.Assignment, th standard.Thresholds, store cache.Cache, ttl time.Duration) *CachedEvaluator {
	return &CachedEvaluator{
		inner: New(g, audience, standards, th),
		store: store,
		baseKey: cache.Key(
			g.Fingerprint(),
			audience.Fingerprint(),
			standards.Fingerprint(),
			fmt.Sprintf("%v/%v/%v", th.Alpha, th.Beta, th.Gamma),
		),
		ttl: ttl,
	}
}

// Evaluate returns the memoized verdict for a statement, computing and
// storing it on a miss. Errors are never cached.
func (c *CachedEvaluator) Evaluate(s model.Statement) (model.Verdict, error) {
	key := cache.Key(c.baseKey, s.String())
	if data, found := c.store.Get(key); found {
		return model.Verdict(data), nil
	}
	verdict, err := c.inner.Evaluate(s)
	if err != nil {
		return "", err
	}
	_ = c.store.Set(key, []byte(verdict), c.ttl)
	return verdict, nil
}

// Report builds a report like Evaluator.Report, with target verdicts served
// through the memoized path.
func (c *CachedEvaluator) Report(title, source string, targets []model.Statement) *model.Report {
	return c.inner.buildReport(c.Evaluate, title, source, targets)
}

// Inner exposes the wrapped evaluator.
func (c *CachedEvaluator) Inner() *Evaluator {
	return c.inner
}
