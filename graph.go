/*
 * graph.go, part of gocrystal.
 *
 * Copyright 2026 The gocrystal authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package crystal

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//BondGraph returns an undirected graph where the nodes are the atoms of the crystal,
//with IDs equal to their indexes, and the edges join nearest neighbors. The weight of
//each edge is the minimum image distance between the two atoms.
func BondGraph(C *Crystal) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := 0; i < C.Len(); i++ {
		g.AddNode(simple.Node(i))
	}
	for _, v := range C.nearest.Unique() {
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(v.At1), simple.Node(v.At2), v.Dist))
	}
	return g
}

//Components returns the sets of atoms in the crystal that are connected through
//nearest neighbor bonds. Each set is sorted by atom index, and the sets are sorted
//by their first atom.
func Components(C *Crystal) [][]int {
	cc := topo.ConnectedComponents(BondGraph(C))
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		ret = append(ret, nodeIDs(c))
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

func nodeIDs(nodes []graph.Node) []int {
	ids := make([]int, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, int(n.ID()))
	}
	sort.Ints(ids)
	return ids
}
