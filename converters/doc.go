// Package converters provides two-way adapters between core.Graph and
// gonum graphs (gonum.org/v1/gonum/graph).
//
// Use converters to hand a network to gonum's algorithms (topo, community,
// path) or to import a gonum-built graph for lvnet's metrics and annealer.
//
// Ids: core ids become gonum node ids verbatim on export. On import gonum
// ids are compacted in ascending order to 0..N-1 and the original id is kept
// as the node label.
package converters
