// Package littletsp solves small Travelling Salesman instances exactly with
// Little's branch-and-bound over reduced cost matrices.
//
// 🚀 What is littletsp?
//
//	A compact toolkit around one exact algorithm:
//		• matrix/   - tagged Cost values (weight or blocked), dense N×N Costs,
//		              text/JSON/YAML/TOML codecs
//		• tsp/      - the branch-and-bound Engine, Solve, Held–Karp reference,
//		              tour validation helpers
//		• builder/  - reproducible instance generators (random, euclidean,
//		              planted, bipartite)
//		• solver/   - asynchronous jobs with cancellation, timeouts and caching
//		• cache/    - route caches: file, Redis, SQLite, MongoDB
//		• render/   - Graphviz DOT and SVG of a tour
//		• server/   - HTTP API
//		• config/   - TOML configuration
//
// ✨ Guarantees
//
//   - Optimal: the first complete tour the engine reaches is a cheapest one.
//   - Deterministic: same matrix, same tour.
//   - Cancellable: every search observes its context.
//   - Asymmetric costs and blocked transitions are first-class.
//
// Quick start:
//
//	m, _ := matrix.FromInts([][]int{
//		{-1, 10, 15, 20},
//		{10, -1, 35, 25},
//		{15, 35, -1, 30},
//		{20, 25, 30, -1},
//	})
//	r, err := tsp.Solve(ctx, m, tsp.DefaultOptions())
//	// r.Sequence == [0 1 3 2 0], r.Cost == 80
//
// The littletsp command (cmd/littletsp) wraps all of the above:
// solve, gen, serve and version.
package littletsp
