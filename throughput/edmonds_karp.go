package throughput

import (
	"context"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

// MaxThroughput returns the largest total flow the origin can deliver to the
// union of targets without exceeding any connection capacity or any node's
// maxIn/maxOut bound.
//
// It builds a fresh Network and runs Edmonds–Karp on it, so repeated calls on
// the same inputs return the same value. A network where nothing reaches a
// target yields 0 and no error.
//
// Complexity: O(V · E²) over the internal graph (V = 3·D+1, E = C+2·D+T).
// Memory:     O(V + E)
func MaxThroughput(
	ctx context.Context,
	connections []Connection,
	maxIn, maxOut []int64,
	origin int,
	targets []int,
	opts *Options,
) (int64, error) {
	n, err := NewNetwork(connections, maxIn, maxOut, origin, targets)
	if err != nil {
		return 0, err
	}

	return n.Run(ctx, opts)
}

// step records how BFS reached a node: from prev, over the edge
// capacity[tail][index], forwards or against its direction.
type step struct {
	prev     int
	tail     int
	index    int
	backward bool
}

// Run augments flow along shortest residual paths from Source to SuperSink
// until none remains and returns Value.
//
// Residual edges are the forward edges with flow < capacity and, against
// their direction, the edges with flow > 0, so flow pushed by an earlier
// round can be rerouted. Every round preserves 0 ≤ flow ≤ capacity.
// Calling Run again on a saturated network finds no path and returns the
// same value.
//
// ctx is checked before every round; on cancellation the flow found so far
// stays in the network and ctx.Err() is returned.
func (n *Network) Run(ctx context.Context, opts *Options) (int64, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	if opts != nil && opts.Logger != nil {
		cfg.Logger = opts.Logger
	}

	// 2) Main loop: one shortest residual path per round.
	rounds := 0
	for {
		// 3) Honour cancellation between rounds; flow found so far is kept.
		if err := ctx.Err(); err != nil {
			return n.Value(), err
		}

		// 4) BFS for an augmenting path; none left means the flow is maximal.
		preds, found := n.augmentingPath()
		if !found {
			break
		}
		if _, ok := preds[n.superSink]; !ok {
			// BFS claimed the sink without recording how; stop rather than loop.
			cfg.Logger.Warn("throughput: augmenting path without super-sink predecessor")
			break
		}

		// 5) Bottleneck residual capacity along the path.
		var bottleneck int64 = -1
		hops := 0
		for v := n.superSink; v != n.source; v = preds[v].prev {
			p := preds[v]
			residual := n.capacity[p.tail][p.index].capacity - n.flow[p.tail][p.index]
			if p.backward {
				residual = n.flow[p.tail][p.index]
			}
			if bottleneck < 0 || residual < bottleneck {
				bottleneck = residual
			}
			hops++
		}

		// 6) Push it: add on forward edges, cancel on backward ones.
		for v := n.superSink; v != n.source; v = preds[v].prev {
			p := preds[v]
			if p.backward {
				n.flow[p.tail][p.index] -= bottleneck
			} else {
				n.flow[p.tail][p.index] += bottleneck
			}
		}

		rounds++
		cfg.Logger.WithFields(logrus.Fields{
			"round":      rounds,
			"hops":       hops,
			"bottleneck": bottleneck,
		}).Debug("throughput: augmented")
	}

	// 7) The answer is whatever reaches the super-sink.
	value := n.Value()
	cfg.Logger.WithFields(logrus.Fields{
		"rounds": rounds,
		"value":  value,
	}).Debug("throughput: done")

	return value, nil
}

// augmentingPath runs BFS over the residual graph from Source and stops as
// soon as SuperSink is reached. preds maps every reached node except Source
// to the step that reached it.
func (n *Network) augmentingPath() (map[int]step, bool) {
	// 1) Seed the frontier with the source.
	visited := make([]bool, len(n.capacity))
	preds := make(map[int]step)
	visited[n.source] = true

	var queue deque.Deque[int]
	queue.PushBack(n.source)
	for queue.Len() > 0 {
		u := queue.PopFront()

		// 2) Forward edges with spare capacity.
		for k, l := range n.capacity[u] {
			v := l.to
			if visited[v] || n.flow[u][k] >= l.capacity {
				continue
			}
			visited[v] = true
			preds[v] = step{prev: u, tail: u, index: k}
			// The super-sink has no outgoing edges; stop as soon as it is reached.
			if v == n.superSink {
				return preds, true
			}
			queue.PushBack(v)
		}

		// 3) Backward over edges into u that carry flow, so it can be rerouted.
		for _, r := range n.incoming[u] {
			v := r.from
			if visited[v] || n.flow[r.from][r.index] <= 0 {
				continue
			}
			visited[v] = true
			preds[v] = step{prev: u, tail: r.from, index: r.index, backward: true}
			queue.PushBack(v)
		}
	}

	return preds, false
}
