// Package throughput computes the maximum flow a single origin can deliver to a
// set of targets in a network whose nodes have their own inbound and outbound
// limits.
//
// Each logical node i (a data centre, a router, a depot) accepts at most
// maxIn[i] units in total and emits at most maxOut[i] units in total, on top of
// the per-connection capacities. The limits are modelled by splitting the node:
//
//	  connections ──► [in] ──maxIn──► [mid] ──maxOut──► [out] ──► connections
//
// The origin's flow starts at its mid node, so its inbound limit never applies.
// Targets are logical sinks: their out node feeds a shared super-sink and their
// outbound limit is lifted, while their inbound limit still holds.
//
// The origin may not also be a target. Delivering to oneself would let the
// origin's own flow bypass every connection, so NewNetwork rejects it with
// ErrOriginIsTarget instead of wiring the origin to the super-sink. This is
// a deliberate narrowing of the accepted target sets.
//
// # Algorithm
//
// Edmonds–Karp over the split graph. The graph is held as two parallel
// adjacency lists, capacity and flow; a breadth-first search
// (github.com/gammazero/deque frontier) looks for the shortest path of residual
// edges (forward with spare capacity, or backward over existing flow), the
// bottleneck is pushed along it, and rounds repeat until the super-sink is
// unreachable.
//
// Complexity: O(V · E²) time, O(V + E) memory, where V = 3·D+1 and
// E = C + 2·D + T for D nodes, C connections and T targets.
//
// # Errors
//
//	ErrBoundsMismatch   - maxIn and maxOut have different lengths.
//	ErrNodeOutOfRange   - an origin, target or endpoint outside [0, D).
//	ErrOriginIsTarget   - the origin is listed as a target.
//	CapacityError       - a negative connection capacity or node bound.
//	context.Canceled / context.DeadlineExceeded - ctx ended between rounds.
//
// All validation errors wrap ErrInvalidInput.
package throughput
