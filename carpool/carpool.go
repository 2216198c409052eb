package carpool

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// FindRoute returns the node ids of a minimum-cost route from start to end.
//
// Roads are traversed at their Solo weight until the route visits any node in
// passengers; from that node on every road costs its Carpool weight. The
// passenger is never dropped. When driving alone and picking up cost the same,
// the solo route is returned.
//
// Errors:
//   - ErrNoRoads, ErrNegativeWeight, ErrNodeOutOfRange (all wrap ErrInvalidInput).
//   - ErrNoPath if end is unreachable (or only reachable beyond WithMaxCost).
func FindRoute(start, end int, passengers []int, roads []Road, opts ...Option) ([]int, error) {
	route, err := Plan(start, end, passengers, roads, opts...)
	if err != nil {
		return nil, err
	}

	return route.Path, nil
}

// Plan runs the same search as FindRoute and returns the route together with
// its cost and the node where the passenger boarded.
//
// Complexity:
//
//   - Time:  O(E log V)
//   - Space: O(V + E) for the adjacency list, two distance arrays,
//     two predecessor arrays and the lazy heap.
func Plan(start, end int, passengers []int, roads []Road, opts ...Option) (Route, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	// 2) Validate roads and derive the node range.
	n, err := nodeCount(roads)
	if err != nil {
		return Route{}, err
	}
	if err = checkNode(start, n, "start"); err != nil {
		return Route{}, err
	}
	if err = checkNode(end, n, "end"); err != nil {
		return Route{}, err
	}
	pickup := make([]bool, n)
	for _, p := range passengers {
		if err = checkNode(p, n, "passenger"); err != nil {
			return Route{}, err
		}
		pickup[p] = true
	}

	// 3) Search the (node, carrying) state space.
	r := newRunner(n, roads, pickup, cfg.MaxCost)
	r.init(start)
	r.process()

	// 4) Rebuild the cheaper of the two end states.
	route, err := r.reconstruct(start, end)
	log := cfg.Logger.WithFields(logrus.Fields{
		"start":      start,
		"end":        end,
		"nodes":      n,
		"roads":      len(roads),
		"passengers": len(passengers),
	})
	if err != nil {
		log.Debug("carpool: no route")

		return Route{}, err
	}
	log.WithFields(logrus.Fields{
		"cost":   route.Cost,
		"hops":   len(route.Path) - 1,
		"pickup": route.Pickup,
	}).Debug("carpool: route found")

	return route, nil
}

// RouteCost evaluates path under the pickup rule: each hop uses the cheapest
// road between the two nodes for the current state, and the state switches to
// carrying once the path visits a passenger node.
func RouteCost(path []int, passengers []int, roads []Road) (float64, error) {
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: empty path", ErrInvalidInput)
	}
	n, err := nodeCount(roads)
	if err != nil {
		return 0, err
	}
	pickup := make(map[int]bool, len(passengers))
	for _, p := range passengers {
		if err = checkNode(p, n, "passenger"); err != nil {
			return 0, err
		}
		pickup[p] = true
	}

	// cheapest solo and carpool weight per ordered node pair
	type hop struct{ solo, carpool float64 }
	hops := make(map[[2]int]hop, len(roads))
	for _, rd := range roads {
		key := [2]int{rd.From, rd.To}
		h, ok := hops[key]
		if !ok {
			hops[key] = hop{solo: rd.Solo, carpool: rd.Carpool}
			continue
		}
		hops[key] = hop{solo: math.Min(h.solo, rd.Solo), carpool: math.Min(h.carpool, rd.Carpool)}
	}

	var cost float64
	carrying := false
	for i, u := range path {
		if err = checkNode(u, n, "path"); err != nil {
			return 0, err
		}
		if pickup[u] {
			carrying = true
		}
		if i == len(path)-1 {
			break
		}
		h, ok := hops[[2]int{u, path[i+1]}]
		if !ok {
			return 0, fmt.Errorf("%w: %d→%d", ErrNotAdjacent, u, path[i+1])
		}
		if carrying {
			cost += h.carpool
		} else {
			cost += h.solo
		}
	}

	return cost, nil
}

// nodeCount validates every road and returns 1 + the largest node id.
func nodeCount(roads []Road) (int, error) {
	if len(roads) == 0 {
		return 0, ErrNoRoads
	}
	maxID := 0
	for _, rd := range roads {
		if rd.From < 0 || rd.To < 0 {
			return 0, fmt.Errorf("%w: road %d→%d", ErrNodeOutOfRange, rd.From, rd.To)
		}
		if rd.Solo < 0 || rd.Carpool < 0 || math.IsNaN(rd.Solo) || math.IsNaN(rd.Carpool) {
			return 0, fmt.Errorf("%w: road %d→%d solo=%g carpool=%g",
				ErrNegativeWeight, rd.From, rd.To, rd.Solo, rd.Carpool)
		}
		maxID = max(maxID, rd.From, rd.To)
	}

	return maxID + 1, nil
}

func checkNode(id, n int, role string) error {
	if id < 0 || id >= n {
		return fmt.Errorf("%w: %s %d not in [0, %d)", ErrNodeOutOfRange, role, id, n)
	}

	return nil
}

// arc is one outgoing road in the adjacency list.
type arc struct {
	to      int
	solo    float64
	carpool float64
}

// passengerLink is the predecessor record of the carrying state.
// pred is -1 at the pickup node itself, where the carrying chain starts.
type passengerLink struct {
	pred   int
	pickup int
}

// runner holds the mutable state for a single search.
type runner struct {
	adj     [][]arc
	pickup  []bool
	maxCost float64

	// distance is the best known cost of reaching a node while still alone.
	distance []float64
	// distanceWithPassenger is the best known cost of reaching a node with a
	// passenger on board. It is tracked separately because it may sit above
	// distance and still improve the routes leaving the node.
	distanceWithPassenger []float64

	prev              []int
	prevWithPassenger []passengerLink

	pq statePQ
}

func newRunner(n int, roads []Road, pickup []bool, maxCost float64) *runner {
	adj := make([][]arc, n)
	for _, rd := range roads {
		adj[rd.From] = append(adj[rd.From], arc{to: rd.To, solo: rd.Solo, carpool: rd.Carpool})
	}

	return &runner{
		adj:                   adj,
		pickup:                pickup,
		maxCost:               maxCost,
		distance:              make([]float64, n),
		distanceWithPassenger: make([]float64, n),
		prev:                  make([]int, n),
		prevWithPassenger:     make([]passengerLink, n),
		pq:                    make(statePQ, 0, n),
	}
}

// init sets every distance to +Inf and pushes the start state.
func (r *runner) init(start int) {
	inf := math.Inf(1)
	for v := range r.distance {
		r.distance[v] = inf
		r.distanceWithPassenger[v] = inf
		r.prev[v] = -1
		r.prevWithPassenger[v] = passengerLink{pred: -1, pickup: -1}
	}
	r.distance[start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem{node: start, dist: 0})
}

// process pops states in cost order until the heap is empty or the next
// state exceeds MaxCost. Entries are stale when their cost no longer matches
// the array of their own state.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest state.
		item := heap.Pop(&r.pq).(*stateItem)

		// 2) Everything left in the heap costs at least this much; stop past MaxCost.
		if item.dist > r.maxCost {
			break
		}

		// 3) Carrying states: skip stale entries, otherwise relax at carpool weights.
		if item.carrying {
			if item.dist > r.distanceWithPassenger[item.node] {
				continue
			}
			r.relaxCarrying(item.node, item.dist)

			continue
		}

		// 4) Solo states: skip stale entries.
		if item.dist > r.distance[item.node] {
			continue
		}

		// 5) A pickup node turns the solo state into a carrying one;
		//    its roads are relaxed when that entry is popped.
		if r.pickup[item.node] {
			r.board(item.node, item.dist)

			continue
		}

		// 6) Still alone: relax at solo weights.
		r.relaxSolo(item.node, item.dist)
	}
}

// board switches the driver at pickup node u into the carrying state at no cost.
// Roads leaving u are then relaxed by the carrying entry.
func (r *runner) board(u int, d float64) {
	if d >= r.distanceWithPassenger[u] {
		return
	}
	r.distanceWithPassenger[u] = d
	r.prevWithPassenger[u] = passengerLink{pred: -1, pickup: u}
	heap.Push(&r.pq, &stateItem{node: u, dist: d, carrying: true})
}

func (r *runner) relaxSolo(u int, d float64) {
	for _, a := range r.adj[u] {
		// 1) Candidate cost of reaching a.to alone through u.
		nd := d + a.solo

		// 2) Skip beyond MaxCost, or when not strictly better.
		if nd > r.maxCost || nd >= r.distance[a.to] {
			continue
		}

		// 3) Record the improvement and its predecessor.
		r.distance[a.to] = nd
		r.prev[a.to] = u

		// 4) Lazy decrease-key: the old entry stays and is skipped as stale.
		heap.Push(&r.pq, &stateItem{node: a.to, dist: nd})
	}
}

// relaxCarrying propagates the pickup node of u to every neighbour it improves,
// so reconstruction finds the hand-off without searching.
func (r *runner) relaxCarrying(u int, d float64) {
	// 1) The passenger boarded where u's chain says; every successor inherits it.
	pickedAt := r.prevWithPassenger[u].pickup
	for _, a := range r.adj[u] {
		// 2) Candidate cost at the carpool weight.
		nd := d + a.carpool

		// 3) Skip beyond MaxCost, or when not strictly better.
		if nd > r.maxCost || nd >= r.distanceWithPassenger[a.to] {
			continue
		}

		// 4) Record the improvement, then push a carrying entry.
		r.distanceWithPassenger[a.to] = nd
		r.prevWithPassenger[a.to] = passengerLink{pred: u, pickup: pickedAt}
		heap.Push(&r.pq, &stateItem{node: a.to, dist: nd, carrying: true})
	}
}

// reconstruct walks the carrying chain back to the pickup node (only when it
// is strictly cheaper than driving alone), then the solo chain back to start.
func (r *runner) reconstruct(start, end int) (Route, error) {
	alone, carried := r.distance[end], r.distanceWithPassenger[end]
	if math.IsInf(alone, 1) && math.IsInf(carried, 1) {
		return Route{}, fmt.Errorf("%w: %d→%d", ErrNoPath, start, end)
	}

	// 1) Default to the solo state at end.
	route := Route{Cost: alone, Pickup: -1}
	path := []int{end}
	v := end

	// 2) Strictly cheaper with a passenger: walk the carrying chain to the pickup.
	if carried < alone {
		route.Cost = carried
		route.Pickup = r.prevWithPassenger[end].pickup
		for v != route.Pickup {
			v = r.prevWithPassenger[v].pred
			path = append(path, v)
		}
	}
	// 3) Walk the solo chain back to start.
	for v != start {
		v = r.prev[v]
		path = append(path, v)
	}

	// 4) Collected end→start; reverse into travel order.
	route.Path = lo.Reverse(path)

	return route, nil
}

// stateItem is one heap entry: a node reached at dist, alone or carrying.
type stateItem struct {
	node     int
	dist     float64
	carrying bool
}

// statePQ is a min-heap of *stateItem ordered by dist, used with the
// lazy decrease-key strategy.
type statePQ []*stateItem

func (pq statePQ) Len() int { return len(pq) }

func (pq statePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
