package geom

// quantity is one node of the dependency graph: a compute thunk, the
// upstream nodes it reads, and require-count bookkeeping. The graph is
// static and acyclic; nodes are registered dependencies-first, so the
// registration order is a topological order.
type quantity struct {
	name         string
	deps         []*quantity
	compute      func()
	reset        func()
	requireCount int
	evaluated    bool
}

func (g *Geometry) register(name string, deps []*quantity, compute, reset func()) *quantity {
	q := &quantity{name: name, deps: deps, compute: compute, reset: reset}
	g.quantities = append(g.quantities, q)

	return q
}

// require marks q as needed, evaluates it (and anything upstream) if
// necessary, and returns the balancing release function. The release
// function may be called at most once effectively; further calls no-op.
func (g *Geometry) require(q *quantity) func() {
	q.requireCount++
	g.ensureHave(q)

	released := false

	return func() {
		if released {
			return
		}
		released = true
		g.unrequire(q)
	}
}

// ensureHave evaluates q bottom-up, memoized. Dependencies are evaluated
// but not require-counted; they stay alive only as long as something
// that required them (or RefreshQuantities re-fills them).
func (g *Geometry) ensureHave(q *quantity) {
	if q.evaluated {
		return
	}
	for _, d := range q.deps {
		g.ensureHave(d)
	}
	q.compute()
	q.evaluated = true
}

func (g *Geometry) unrequire(q *quantity) {
	q.requireCount--
	if q.requireCount == 0 && q.evaluated {
		q.evaluated = false
		if q.reset != nil {
			q.reset()
		}
	}
}

// RefreshQuantities recomputes every currently evaluated quantity, in
// dependency order. Call it after editing VertexPositions (or the mesh)
// to bring derived data back in sync; quantities that were never
// required stay untouched.
func (g *Geometry) RefreshQuantities() {
	for _, q := range g.quantities {
		if q.evaluated {
			q.compute()
		}
	}
}
