// Package carpool finds minimum-cost driving routes on a road network that has
// carpool lanes.
//
// Every road carries two non-negative weights: the cost of driving it alone
// and the cost of driving it with a passenger. A subset of nodes are pickup
// points. The first time a route visits a pickup point the passenger boards
// and stays on board, so every later road is charged its carpool weight.
//
// The search is Dijkstra over the implicit (node, carrying) state space, kept
// as two per-node distance arrays instead of a doubled node set:
//
//	distance[v]              – cheapest cost of reaching v while still alone
//	distanceWithPassenger[v] – cheapest cost of reaching v with a passenger
//
// Each carrying predecessor record also stores the node where the passenger
// boarded, so the route is rebuilt by following the carrying chain back to
// that node and then the solo chain back to the start.
//
// Complexity:
//
//   - Time:  O(E log V)
//   - Space: O(V + E)
//
// Errors (sentinel):
//
//   - ErrInvalidInput   – category wrapped by every validation error below.
//   - ErrNoRoads        – the road list is empty.
//   - ErrNodeOutOfRange – start, end or a passenger node is outside [0, N).
//   - ErrNegativeWeight – a road has a negative (or NaN) weight.
//   - ErrNoPath         – end cannot be reached from start.
//
// Example usage:
//
//	roads := []carpool.Road{
//	    {From: 0, To: 1, Solo: 5, Carpool: 3},
//	    {From: 1, To: 3, Solo: 5, Carpool: 3},
//	}
//	path, err := carpool.FindRoute(0, 3, []int{1}, roads)
package carpool
