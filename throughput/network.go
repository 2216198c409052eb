package throughput

import (
	"fmt"

	"github.com/samber/lo"
)

// InNode returns the internal id that receives every connection into node i.
func InNode(i int) int { return 3 * i }

// MidNode returns the internal id between node i's inbound and outbound limits.
func MidNode(i int) int { return 3*i + 1 }

// OutNode returns the internal id that emits every connection out of node i.
func OutNode(i int) int { return 3*i + 2 }

// link is one internal edge in the capacity adjacency list.
type link struct {
	to       int
	capacity int64
}

// ref locates the edge capacity[from][index] from its head.
type ref struct {
	from  int
	index int
}

// Network is the split-node expansion of a bounded network.
//
// Every node i becomes three internal nodes in → mid → out with capacities
// maxIn[i] and maxOut[i]; a connection u→v becomes out(u) → in(v); a single
// super-sink collects from every target. capacity and flow are parallel
// adjacency lists of identical shape: flow[u][k] is the flow on capacity[u][k].
//
// A Network is owned by one caller; Run mutates flow in place.
type Network struct {
	capacity [][]link
	flow     [][]int64
	incoming [][]ref

	nodes     int // logical node count D
	source    int // MidNode(origin)
	superSink int // 3·D
}

// NewNetwork validates the inputs and builds the internal graph with zero flow.
//
// Targets are logical sinks: their outbound limit is lifted by giving their
// mid→out edge, and their out→super-sink edge, the demand bound
// min(maxIn[t], Σ capacities of connections into t). No feasible flow through
// t can exceed it, so it never binds. Duplicate targets are ignored. The
// origin is deliberately not accepted as a target (ErrOriginIsTarget).
//
// Errors: ErrBoundsMismatch, ErrNodeOutOfRange, ErrOriginIsTarget, CapacityError.
func NewNetwork(connections []Connection, maxIn, maxOut []int64, origin int, targets []int) (*Network, error) {
	// 1) Validate bounds and ids.
	if len(maxIn) != len(maxOut) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrBoundsMismatch, len(maxIn), len(maxOut))
	}
	d := len(maxIn)
	for i := 0; i < d; i++ {
		if maxIn[i] < 0 {
			return nil, CapacityError{Kind: "max_in", From: i, To: i, Cap: maxIn[i]}
		}
		if maxOut[i] < 0 {
			return nil, CapacityError{Kind: "max_out", From: i, To: i, Cap: maxOut[i]}
		}
	}
	if origin < 0 || origin >= d {
		return nil, fmt.Errorf("%w: origin %d not in [0, %d)", ErrNodeOutOfRange, origin, d)
	}
	for _, c := range connections {
		if c.From < 0 || c.From >= d || c.To < 0 || c.To >= d {
			return nil, fmt.Errorf("%w: connection %d→%d", ErrNodeOutOfRange, c.From, c.To)
		}
		if c.Capacity < 0 {
			return nil, CapacityError{Kind: "connection", From: c.From, To: c.To, Cap: c.Capacity}
		}
	}
	targets = lo.Uniq(targets)
	isTarget := make([]bool, d)
	for _, t := range targets {
		if t < 0 || t >= d {
			return nil, fmt.Errorf("%w: target %d not in [0, %d)", ErrNodeOutOfRange, t, d)
		}
		if t == origin {
			return nil, fmt.Errorf("%w: node %d", ErrOriginIsTarget, t)
		}
		isTarget[t] = true
	}

	// 2) Demand bound per target: the inbound sum saturates at maxIn[t], so it
	// stays ≤ maxIn[t] and cannot overflow.
	demand := make([]int64, d)
	for _, c := range connections {
		if !isTarget[c.To] {
			continue
		}
		room := maxIn[c.To] - demand[c.To]
		demand[c.To] += min(c.Capacity, room)
	}

	// 3) Allocate the 3·D internal nodes plus the super-sink.
	total := 3*d + 1
	n := &Network{
		capacity:  make([][]link, total),
		flow:      make([][]int64, total),
		incoming:  make([][]ref, total),
		nodes:     d,
		source:    MidNode(origin),
		superSink: 3 * d,
	}

	// 4) Connections first, then the per-node limits, then the super-sink edges.
	for _, c := range connections {
		n.addEdge(OutNode(c.From), InNode(c.To), c.Capacity)
	}
	for i := 0; i < d; i++ {
		n.addEdge(InNode(i), MidNode(i), maxIn[i])
		if isTarget[i] {
			n.addEdge(MidNode(i), OutNode(i), demand[i])
		} else {
			n.addEdge(MidNode(i), OutNode(i), maxOut[i])
		}
	}
	for _, t := range targets {
		n.addEdge(OutNode(t), n.superSink, demand[t])
	}

	return n, nil
}

func (n *Network) addEdge(u, v int, capacity int64) {
	n.incoming[v] = append(n.incoming[v], ref{from: u, index: len(n.capacity[u])})
	n.capacity[u] = append(n.capacity[u], link{to: v, capacity: capacity})
	n.flow[u] = append(n.flow[u], 0)
}

// Source returns the internal id augmenting paths start from: the origin's mid node.
func (n *Network) Source() int { return n.source }

// SuperSink returns the internal id of the super-sink.
func (n *Network) SuperSink() int { return n.superSink }

// Nodes returns the logical node count.
func (n *Network) Nodes() int { return n.nodes }

// Value returns the total flow currently entering the super-sink.
func (n *Network) Value() int64 {
	return lo.SumBy(n.incoming[n.superSink], func(r ref) int64 {
		return n.flow[r.from][r.index]
	})
}

// Edges lists every internal edge with its capacity and current flow,
// grouped by tail in ascending internal id.
func (n *Network) Edges() []EdgeFlow {
	var out []EdgeFlow
	for u, links := range n.capacity {
		for k, l := range links {
			out = append(out, EdgeFlow{From: u, To: l.to, Capacity: l.capacity, Flow: n.flow[u][k]})
		}
	}

	return out
}
