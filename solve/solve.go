package solve

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
)

// Solve computes a shortest path from start to end in g.
//
// Preconditions and validation (in order, before any cell is read):
//  1. g must be non-nil (ErrNilGrid).
//  2. start must lie inside g (ErrInvalidCoordinate).
//  3. end must lie inside g (ErrInvalidCoordinate).
//
// Returns a Result with Found=false and a nil Path when end is unreachable
// (or beyond MaxDistance). A settle hook error is returned wrapped, with a
// nil Result.
//
// Complexity:
//
//   - Time:  O(V log V)
//   - Space: O(V)
func Solve(g *maze.Grid, start, end maze.Point, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("Solve: start %s not in %dx%d grid: %w",
			start, g.Width(), g.Height(), ErrInvalidCoordinate)
	}
	if !g.Contains(end) {
		return nil, fmt.Errorf("Solve: end %s not in %dx%d grid: %w",
			end, g.Width(), g.Height(), ErrInvalidCoordinate)
	}

	// 3) Run.
	r := &runner{
		g:       g,
		options: cfg,
		end:     end,
		dist:    make(map[maze.Point]int),
		prev:    make(map[maze.Point]maze.Point),
		settled: make(map[maze.Point]bool),
	}
	r.init(start)
	if err := r.process(); err != nil {
		return nil, err
	}

	// 4) Assemble the result.
	res := &Result{Settled: len(r.settled)}
	if !r.settled[end] {
		return res, nil
	}
	res.Found = true
	res.Path = r.path(start)
	res.Distance = res.Path.Steps()

	return res, nil
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	g       *maze.Grid
	options Options
	end     maze.Point
	dist    map[maze.Point]int        // best known distance from start
	prev    map[maze.Point]maze.Point // predecessor on the best known path
	settled map[maze.Point]bool       // distance is final
	pq      cellPQ
	seq     int // push counter, breaks distance ties in FIFO order
}

// init seeds the heap with start at distance 0.
func (r *runner) init(start maze.Point) {
	r.dist[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

func (r *runner) push(p maze.Point, d int) {
	heap.Push(&r.pq, &cellItem{p: p, dist: d, seq: r.seq})
	r.seq++
}

// process pops cells in distance order until end is settled, the heap is
// empty, or the next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the closest cell.
		item := heap.Pop(&r.pq).(*cellItem)
		u, d := item.p, item.dist

		// 2) Skip stale entries.
		if r.settled[u] {
			continue
		}

		// 3) Everything left is at least this far.
		if d > r.options.MaxDistance {
			break
		}

		// 4) Finalize u and report it.
		r.settled[u] = true
		if r.options.OnSettle != nil {
			if err := r.options.OnSettle(u, d); err != nil {
				return fmt.Errorf("Solve: OnSettle at %s: %w", u, err)
			}
		}
		if u == r.end {
			return nil
		}

		// 5) Relax open passages.
		r.relax(u, d)
	}

	return nil
}

// relax pushes every neighbour reachable through an open passage of u whose
// distance improves.
func (r *runner) relax(u maze.Point, d int) {
	nd := d + 1
	for _, n := range r.g.Neighbors(u.X, u.Y) {
		if !r.g.HasPassage(u.X, u.Y, n.Dir) {
			continue // wall
		}
		v := n.Point
		if r.settled[v] {
			continue
		}
		if old, ok := r.dist[v]; ok && nd >= old {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.push(v, nd)
	}
}

// path walks prev back from end to start and reverses the result.
func (r *runner) path(start maze.Point) maze.Path {
	n := r.dist[r.end] + 1
	p := make(maze.Path, n)
	cur := r.end
	for i := n - 1; i > 0; i-- {
		p[i] = cur
		cur = r.prev[cur]
	}
	p[0] = start
	return p
}

// cellItem is a heap entry: a cell and the distance it was pushed with.
type cellItem struct {
	p    maze.Point
	dist int
	seq  int
}

// cellPQ is a min-heap of *cellItem ordered by dist, then seq.
type cellPQ []*cellItem

func (pq cellPQ) Len() int { return len(pq) }

func (pq cellPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *cellItem. Called by heap.Push.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
