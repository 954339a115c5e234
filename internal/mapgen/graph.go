package mapgen

import "math/rand"

// Edge is a candidate adjacency link between two grid-neighboring
// sectors. A always holds the smaller sector index, so for horizontal
// edges A is the left sector and for vertical edges A is the upper one.
type Edge struct {
	A, B       int
	Horizontal bool

	// Selected marks the edge as part of the final connectivity.
	Selected bool
	// Absorbed marks a selected edge whose rooms were merged; no hallway
	// is routed for it.
	Absorbed bool
}

// buildAdjacency lists every horizontal and vertical sector adjacency in
// a fixed order (row-major, right neighbor before down neighbor). The
// order matters: edge selection shuffles indices into this slice, so the
// slice itself must be a pure function of the grid shape.
func buildAdjacency(columns, rows int) []Edge {
	edges := make([]Edge, 0, 2*columns*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			id := row*columns + col
			if col+1 < columns {
				edges = append(edges, Edge{A: id, B: id + 1, Horizontal: true})
			}
			if row+1 < rows {
				edges = append(edges, Edge{A: id, B: id + columns})
			}
		}
	}
	return edges
}

// unionFind is a parent-index arena over sector nodes.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

// union joins the two sets and reports whether they were distinct.
func (u *unionFind) union(a, b int) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	u.parent[rb] = ra
	return true
}

// selectEdges marks the final connectivity: a randomized spanning tree
// over the sector grid (shuffled Kruskal, adding an edge only if it joins
// two components), then each remaining non-tree edge with an independent
// extra-connectivity roll. The selected subgraph is always a superset of
// a spanning tree, so every sector is reachable from every other.
func selectEdges(edges []Edge, nodes int, extraChance float64, rng *rand.Rand) {
	uf := newUnionFind(nodes)
	for _, i := range rng.Perm(len(edges)) {
		if uf.union(edges[i].A, edges[i].B) {
			edges[i].Selected = true
		}
	}
	for i := range edges {
		if !edges[i].Selected && rng.Float64() < extraChance {
			edges[i].Selected = true
		}
	}
}
