package carpool_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlath-netkit/carpool"
)

// BenchmarkPlan measures the search on a random sparse network of 5000 nodes
// with roughly 8 roads per node and 2% pickup points.
func BenchmarkPlan(b *testing.B) {
	const n = 5000
	r := rand.New(rand.NewSource(42))
	roads := make([]carpool.Road, 0, n*8)
	for u := 0; u < n; u++ {
		for k := 0; k < 8; k++ {
			roads = append(roads, carpool.Road{
				From:    u,
				To:      r.Intn(n),
				Solo:    float64(1 + r.Intn(100)),
				Carpool: float64(1 + r.Intn(60)),
			})
		}
	}
	passengers := randomSubset(r, n, 0.02)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = carpool.Plan(0, n-1, passengers, roads)
	}
}
