package carpool_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlath-netkit/carpool"
)

// randomRoads builds a network on nodes 0..n-1 where each ordered pair gets a
// road with probability p and integral weights in [0, maxW]. A zero-weight
// self-loop on n-1 pins the node range to exactly n.
func randomRoads(r *rand.Rand, n int, p float64, maxW int) []carpool.Road {
	roads := []carpool.Road{{From: n - 1, To: n - 1}}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || r.Float64() >= p {
				continue
			}
			roads = append(roads, carpool.Road{
				From:    u,
				To:      v,
				Solo:    float64(r.Intn(maxW + 1)),
				Carpool: float64(r.Intn(maxW + 1)),
			})
		}
	}

	return roads
}

func randomSubset(r *rand.Rand, n int, p float64) []int {
	var out []int
	for v := 0; v < n; v++ {
		if r.Float64() < p {
			out = append(out, v)
		}
	}

	return out
}

// bruteForceCost enumerates every walk that never repeats a (node, carrying)
// state and returns the cheapest cost of reaching end, +Inf if none.
func bruteForceCost(n, start, end int, passengers []int, roads []carpool.Road) float64 {
	pickup := make([]bool, n)
	for _, p := range passengers {
		pickup[p] = true
	}
	out := make([][]carpool.Road, n)
	for _, rd := range roads {
		out[rd.From] = append(out[rd.From], rd)
	}

	best := math.Inf(1)
	seen := make(map[[2]int]bool)
	var walk func(u int, carrying bool, cost float64)
	walk = func(u int, carrying bool, cost float64) {
		if pickup[u] {
			carrying = true
		}
		key := [2]int{u, 0}
		if carrying {
			key[1] = 1
		}
		if seen[key] {
			return
		}
		if u == end {
			best = math.Min(best, cost)
		}
		seen[key] = true
		for _, rd := range out[u] {
			w := rd.Solo
			if carrying {
				w = rd.Carpool
			}
			walk(rd.To, carrying, cost+w)
		}
		seen[key] = false
	}
	walk(start, false, 0)

	return best
}

// soloDistances is Bellman–Ford on solo weights.
func soloDistances(n, start int, roads []carpool.Road) []float64 {
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[start] = 0
	for i := 0; i < n; i++ {
		for _, rd := range roads {
			if d := dist[rd.From] + rd.Solo; d < dist[rd.To] {
				dist[rd.To] = d
			}
		}
	}

	return dist
}
