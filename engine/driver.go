package engine

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Config bounds one parse. The zero value is usable: one worker, the
// rule-count pass bound, and no invocation budget.
type Config struct {
	// Workers is the number of goroutines matching concurrently within a
	// pass. Values below 1 mean a single worker.
	Workers int

	// MaxPasses caps the number of passes. Zero means the safe bound of
	// one pass per rule; larger values are clamped to that bound, since a
	// useful pass must add at least one token built from tokens present
	// before it.
	MaxPasses int

	// MaxMatches caps the total number of matcher invocations per parse
	// as a safety valve against pathological rule sets. Zero means
	// unlimited. Exceeding the budget ends the parse early with the pool
	// built so far; it is not an error.
	MaxMatches int64
}

// Driver runs the pass loop: repeated full sweeps of every rule at every
// feasible offset against a pool snapshot, until a pass adds nothing new.
type Driver struct {
	cfg Config
	log *zap.SugaredLogger
}

// NewDriver builds a pass driver. A nil logger disables logging.
func NewDriver(cfg Config, log *zap.SugaredLogger) *Driver {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Driver{cfg: cfg, log: log}
}

// Parse runs rs against doc until a fixpoint, the pass bound, the
// invocation budget, or context cancellation, whichever comes first, and
// returns the full token pool. Parse never fails on ordinary text: the
// worst outcome is an empty pool.
//
// Within a pass every matcher invocation reads the same pool snapshot and
// produces independent tokens, so invocations are sharded across workers
// and their results merged (union with duplicate collapsing) at the pass
// boundary. The final pool is independent of rule iteration order.
func (d *Driver) Parse(ctx context.Context, doc string, rs *RuleSet) *Pool {
	pool := NewPool()
	if len(doc) == 0 || rs.Len() == 0 {
		return pool
	}

	maxPasses := rs.Len()
	if d.cfg.MaxPasses > 0 && d.cfg.MaxPasses < maxPasses {
		maxPasses = d.cfg.MaxPasses
	}

	var invocations atomic.Int64

	for pass := 1; pass <= maxPasses; pass++ {
		if ctx.Err() != nil {
			d.log.Debugw("parse cancelled", "pass", pass, "pool_size", pool.Size())
			return pool
		}

		produced := d.runPass(doc, rs, pool.Snapshot(), pass, &invocations)

		added := 0
		for _, t := range produced {
			if pool.Insert(t) {
				added++
			}
		}
		d.log.Debugw("pass complete",
			"pass", pass,
			"produced", len(produced),
			"added", added,
			"pool_size", pool.Size())

		if added == 0 {
			break
		}
		if d.cfg.MaxMatches > 0 && invocations.Load() >= d.cfg.MaxMatches {
			d.log.Debugw("match budget exhausted",
				"invocations", invocations.Load(),
				"pool_size", pool.Size())
			break
		}
	}
	return pool
}

// runPass tries every (rule, feasible offset) combination once against the
// snapshot and returns all produced tokens. Rules are sharded round-robin
// across workers; each worker accumulates locally and results are merged by
// the caller, so workers never contend on shared state.
func (d *Driver) runPass(doc string, rs *RuleSet, snap *Snapshot, pass int, invocations *atomic.Int64) []Token {
	workers := d.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > rs.Len() {
		workers = rs.Len()
	}

	m := &matcher{doc: doc, snap: snap}
	rules := rs.Rules()
	results := make([][]Token, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			var local []Token
			for i := w; i < len(rules); i += workers {
				rule := &rules[i]
				for _, offset := range m.feasibleStarts(rule) {
					if d.cfg.MaxMatches > 0 && invocations.Add(1) > d.cfg.MaxMatches {
						results[w] = local
						return
					}
					local = append(local, m.tryRule(rule, i, offset, pass)...)
				}
			}
			results[w] = local
		}(w)
	}
	wg.Wait()

	var out []Token
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}
