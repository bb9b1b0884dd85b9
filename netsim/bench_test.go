package netsim_test

import (
	"testing"

	"github.com/dilernia/RCCM/netsim"
	"gonum.org/v1/gonum/mat"
)

// benchmarkSimulate runs the full pipeline under a fixed configuration.
func benchmarkSimulate(b *testing.B, cfg netsim.Config) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := netsim.Simulate(cfg); err != nil {
			b.Fatalf("Simulate failed: %v", err)
		}
	}
}

// BenchmarkSimulate_HubSmall measures the default-sized hub problem:
// 2 clusters × 5 subjects, 10 variables, 100 observations.
func BenchmarkSimulate_HubSmall(b *testing.B) {
	cfg := netsim.DefaultConfig()
	cfg.ClusterSizes = []int{5}
	cfg.Seed = 1
	benchmarkSimulate(b, cfg)
}

// BenchmarkSimulate_RandomWide measures a denser random-topology problem:
// 3 clusters × 10 subjects, 30 variables, 200 observations.
func BenchmarkSimulate_RandomWide(b *testing.B) {
	cfg := netsim.DefaultConfig()
	cfg.Clusters = 3
	cfg.ClusterSizes = []int{10}
	cfg.Vars = 30
	cfg.Obs = 200
	cfg.Topology = netsim.Random
	cfg.EdgeProb = 0.2
	cfg.Seed = 1
	benchmarkSimulate(b, cfg)
}

// BenchmarkSampleDataset measures the Gaussian sampling stage alone on a
// 20-variable tridiagonal precision matrix.
func BenchmarkSampleDataset(b *testing.B) {
	const p = 20
	prec := mat.NewSymDense(p, nil)
	for i := 0; i < p; i++ {
		prec.SetSym(i, i, 2)
		if i+1 < p {
			prec.SetSym(i, i+1, 0.4)
		}
	}
	src := netsim.DeriveSource(9, 0)
	if _, err := netsim.SampleDataset(prec, 100, src); err != nil {
		b.Fatalf("setup SampleDataset failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := netsim.SampleDataset(prec, 100, src); err != nil {
			b.Fatalf("SampleDataset failed: %v", err)
		}
	}
}
