// SPDX-License-Identifier: MIT
// Package: minelab/vent
//
// loops.go — fundamental cycle basis derivation for raw airway lists.

package vent

import (
	"fmt"
	"sort"
)

// DeriveLoops builds a fundamental cycle basis for the airway graph:
// one loop per non-tree airway of a BFS spanning forest, i.e. exactly
// edges − nodes + components loops in total.
//
// The basis covers every airway that lies on any cycle. Tree-only
// (dead-end) airways appear in no loop; Solve will reject them with
// ErrUncoveredAirway unless they are marked Fixed, which is the correct
// outcome; their flow is not determined by mesh balancing.
//
// Determinism: junctions are scanned in sorted order and airways in
// input order, so identical inputs always yield an identical basis.
//
// Complexity: O(V + E·L) time where L is the mean tree-path length,
// O(V + E) memory.
func DeriveLoops(airways []Airway) ([]Loop, error) {
	// 1) Record validation (shared with Solve) plus the self-loop rule:
	//    an airway from a junction to itself cannot carry a meaningful
	//    traversal sign and is rejected outright.
	if _, err := indexAirways(airways); err != nil {
		return nil, err
	}
	for i := range airways {
		if airways[i].From == airways[i].To {
			return nil, fmt.Errorf("%w: %q", ErrSelfLoop, airways[i].ID)
		}
	}

	// 2) Undirected incidence lists, junction → airway indices.
	adjacency := make(map[string][]int, len(airways))
	for i := range airways {
		adjacency[airways[i].From] = append(adjacency[airways[i].From], i)
		adjacency[airways[i].To] = append(adjacency[airways[i].To], i)
	}
	junctions := make([]string, 0, len(adjacency))
	for j := range adjacency {
		junctions = append(junctions, j)
	}
	sort.Strings(junctions)

	// 3) BFS spanning forest. parentEdge/parentOf describe the tree,
	//    depth supports the common-ancestor walk below.
	visited := make(map[string]bool, len(junctions))
	parentOf := make(map[string]string, len(junctions))
	parentEdge := make(map[string]int, len(junctions))
	depth := make(map[string]int, len(junctions))
	treeEdge := make([]bool, len(airways))

	for _, root := range junctions {
		if visited[root] {
			continue
		}
		visited[root] = true
		depth[root] = 0
		queue := []string{root}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, i := range adjacency[u] {
				v := otherEnd(&airways[i], u)
				if visited[v] {
					continue
				}
				visited[v] = true
				parentOf[v] = u
				parentEdge[v] = i
				depth[v] = depth[u] + 1
				treeEdge[i] = true
				queue = append(queue, v)
			}
		}
	}

	// 4) One fundamental cycle per non-tree airway: the airway itself
	//    (traversed From→To, sign +1) closed by the unique tree path
	//    To→…→ancestor→…→From.
	var loops []Loop
	for i := range airways {
		if treeEdge[i] {
			continue
		}
		loops = append(loops, fundamentalCycle(airways, i, parentOf, parentEdge, depth))
	}

	return loops, nil
}

// fundamentalCycle closes non-tree airway `chord` through the spanning
// tree. Signs follow the traversal direction around the cycle: +1 when
// it matches the airway's From→To orientation, -1 otherwise.
func fundamentalCycle(
	airways []Airway,
	chord int,
	parentOf map[string]string,
	parentEdge map[string]int,
	depth map[string]int,
) Loop {
	loop := Loop{{AirwayID: airways[chord].ID, Sign: +1}}
	u := airways[chord].From // cycle re-enters here
	v := airways[chord].To   // cycle continues from here

	// Climb the deeper endpoint first, then both, until they meet.
	// vSide edges are traversed child→parent (the cycle's direction);
	// uSide edges are traversed parent→child, so their signs flip and
	// their order reverses.
	var vSide, uSide Loop
	for depth[v] > depth[u] {
		vSide = append(vSide, climb(airways, &v, parentOf, parentEdge, false))
	}
	for depth[u] > depth[v] {
		uSide = append(uSide, climb(airways, &u, parentOf, parentEdge, true))
	}
	for u != v {
		vSide = append(vSide, climb(airways, &v, parentOf, parentEdge, false))
		uSide = append(uSide, climb(airways, &u, parentOf, parentEdge, true))
	}

	loop = append(loop, vSide...)
	for i := len(uSide) - 1; i >= 0; i-- {
		loop = append(loop, uSide[i])
	}

	return loop
}

// climb moves *node one tree edge toward the root and returns the loop
// member for that edge. flip=true emits the parent→child traversal sign.
func climb(
	airways []Airway,
	node *string,
	parentOf map[string]string,
	parentEdge map[string]int,
	flip bool,
) LoopEdge {
	e := parentEdge[*node]
	sign := -1
	if airways[e].From == *node { // climbing along From→To
		sign = +1
	}
	if flip {
		sign = -sign
	}
	*node = parentOf[*node]

	return LoopEdge{AirwayID: airways[e].ID, Sign: sign}
}

// otherEnd returns the endpoint of aw opposite to junction u.
func otherEnd(aw *Airway, u string) string {
	if aw.From == u {
		return aw.To
	}

	return aw.From
}
