// Package rccm is a toolkit for random covariance clustering models:
// simulate hierarchical Gaussian graphical-model data with a known
// cluster structure, then score candidate structures against it.
//
// 🚀 What does RCCM cover?
//
//	A pure-Go, gonum-backed stack that brings together:
//		• Network simulation: cluster-level graphs with controlled edge overlap
//		• Hub and random topologies with signed, chained edge weights
//		• Subject-level perturbation: edge swaps plus additive noise
//		• Positive-definite repair with bounded rejection loops
//		• Gaussian sampling from precision matrices, columns centered
//		• Wishart densities, mixture log-likelihoods, degrees of freedom, AIC
//		• Graph utilities: adjacency thresholding, co-membership, Rand index
//
// ✨ Why RCCM?
//
//   - Known ground truth – every simulated edge, weight, and label is returned
//   - Deterministic – one seed replays an entire study, streams derive cleanly
//   - Typed failures – sentinel errors for every rejected input, no panics
//   - Pure Go – gonum linear algebra, no cgo
//
// Everything is organized under four subpackages:
//
//	netsim/  — hierarchical network and dataset simulation
//	score/   — mixture Wishart log-likelihood, degrees of freedom, AIC
//	wishart/ — closed-form Wishart density evaluation
//	support/ — adjacency, co-membership and Rand index helpers
//
// The simulated hierarchy, sketched:
//
//	cluster 1          cluster 2
//	  Ω₁ ────┐           Ω₂ ────┐
//	  │      │           │      │
//	 Ω₁₁ … Ω₁ₖ          Ω₂₁ … Ω₂ₖ      subject precisions
//	  │      │           │      │
//	 X₁₁ … X₁ₖ          X₂₁ … X₂ₖ      centered n×p datasets
//
// Dive into each package's doc.go for options, invariants, and errors.
//
//	go get github.com/dilernia/RCCM
package rccm
