// SPDX-License-Identifier: MIT
// Package core: connected components by breadth-first search.

package core

// Components labels every node with the index of its connected component,
// treating each edge as undirected. Components are numbered in order of
// their smallest node. Isolated nodes form singleton components.
//
// Stage 1: build symmetric neighbor lists from the edge index.
// Stage 2: BFS from each unvisited node in ascending order.
//
// Complexity: O(N + E) time and space.
func (g *Graph) Components() (comp []int, count int) {
	n := g.NumNodes()
	nbrs := make([][]int, n)
	for e := range g.edges.Src {
		s, d := g.edges.Src[e], g.edges.Dst[e]
		nbrs[s] = append(nbrs[s], d)
		if s != d {
			nbrs[d] = append(nbrs[d], s)
		}
	}

	comp = make([]int, n)
	for i := range comp {
		comp[i] = -1
	}
	queue := make([]int, 0, n)
	for start := 0; start < n; start++ {
		if comp[start] >= 0 {
			continue
		}
		comp[start] = count
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range nbrs[u] {
				if comp[v] < 0 {
					comp[v] = count
					queue = append(queue, v)
				}
			}
		}
		count++
	}

	return comp, count
}

// Isolated returns the number of nodes with no incident edge other than a
// self-loop.
func (g *Graph) Isolated() int {
	touched := make([]bool, g.NumNodes())
	for e := range g.edges.Src {
		s, d := g.edges.Src[e], g.edges.Dst[e]
		if s != d {
			touched[s], touched[d] = true, true
		}
	}
	c := 0
	for _, t := range touched {
		if !t {
			c++
		}
	}

	return c
}
