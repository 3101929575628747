package flow_test

import (
	"math/rand"
	"testing"

	"github.com/graphpick/graphpick/flow"
)

// buildRandomNetwork constructs a network with V nodes and roughly p
// probability of an arc between any ordered pair u→v.
// Capacities are uniform in [1, maxCap].
func buildRandomNetwork(v int, p, maxCap float64, seed int64) *flow.Network {
	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	net := flow.NewNetwork(v)
	for u := 0; u < v; u++ {
		for w := 0; w < v; w++ {
			if u == w {
				continue // skip self-loops
			}
			if r.Float64() < p {
				_ = net.AddEdge(u, w, r.Float64()*maxCap+1.0)
			}
		}
	}

	return net
}

// BenchmarkMaxFlow measures Dinic on networks of increasing size and density.
func BenchmarkMaxFlow(b *testing.B) {
	cases := []struct {
		name     string
		vertices int
		edgeProb float64
		maxCap   float64
		seed     int64
	}{
		{"Small", 200, 0.05, 10.0, 42},
		{"Medium", 500, 0.02, 10.0, 42},
		{"Dense", 200, 0.25, 10.0, 42},
	}

	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				net := buildRandomNetwork(c.vertices, c.edgeProb, c.maxCap, c.seed)
				b.StartTimer()
				if _, err := net.MaxFlow(0, c.vertices-1, flow.DefaultOptions()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
