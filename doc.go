// Package lvlath is a small kit of routing and capacity algorithms over
// in-memory networks, one package per problem.
//
// 🚀 What is inside?
//
//	• carpool/      — shortest route where picking up a passenger unlocks carpool lanes
//	• sections/     — one cell per row, adjacent columns, minimal total (DP)
//	• throughput/   — max flow with per-node inbound/outbound limits (Edmonds–Karp)
//	• autocomplete/ — frequency-ranked prefix completion over a trie
//
// ✨ Conventions shared by every package
//
//   - Sentinel errors prefixed with the package name; every validation error
//     wraps the package's ErrInvalidInput.
//   - Options structs with DefaultOptions(), or functional Option closures.
//   - Debug-level tracing through a logrus.FieldLogger, silent by default.
//   - No package imports another.
//
// Quick ASCII example of the split-node model used by throughput:
//
//	    ──► [in] ──maxIn──► [mid] ──maxOut──► [out] ──►
//
//	go get github.com/katalvlaran/lvlath-netkit
package lvlath
