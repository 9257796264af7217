package dag

import (
	"fmt"
	"sort"
	"strings"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a new node with the given ID to the graph. If a node with
// the same ID already exists, the function does nothing.
func (g *Graph) AddNode(id string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[id]; ok {
		return
	}

	g.nodes[id] = &node{id: id}
}

// AddEdge records a directed precedence edge from `fromID` to `toID`,
// meaning `fromID` must be emitted before `toID`. Parallel edges between the
// same pair are kept; each occurrence counts once toward the destination's
// in-degree. An error is returned if either node does not exist or if the
// edge would create a self-reference.
func (g *Graph) AddEdge(fromID, toID string) error {
	if fromID == toID {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", fromID, fromID)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromID)
	}

	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toID)
	}

	fromNode.succs = append(fromNode.succs, toID)
	toNode.indegree++

	return nil
}

// Successors returns the ordered list of direct successors of the given
// node, one entry per recorded edge.
func (g *Graph) Successors(id string) ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}

	succs := make([]string, len(n.succs))
	copy(succs, n.succs)
	return succs, nil
}

// Nodes returns the IDs of all nodes in the graph in ascending ID order.
func (g *Graph) Nodes() []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CycleError is returned by Sort when the edge set contains a contradiction.
// Remaining names the unresolved residual node set, in ascending ID order.
type CycleError struct {
	Remaining []string
}

// Error implements the error interface for CycleError.
func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected among nodes: %s", strings.Join(e.Remaining, ", "))
}

// Sort performs a deterministic Kahn-style elimination over the graph.
//
// A node is eligible for emission once it has at least one outgoing edge and
// every incoming edge has been resolved; among eligible nodes the smallest
// ID always wins, so the result depends only on the recorded edges, never on
// map iteration order. Nodes with no outgoing edge are never emitted by the
// elimination loop; they are returned separately as leaves, in ascending ID
// order. If no node is eligible while unemitted predecessors remain, the
// graph contains a cycle and a CycleError naming the residual set is
// returned with no partial order.
func (g *Graph) Sort() (order []string, leaves []string, err error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	indeg := make(map[string]int, len(g.nodes))
	predCount := 0
	var ready []string
	for id, n := range g.nodes {
		indeg[id] = n.indegree
		if len(n.succs) == 0 {
			leaves = append(leaves, id)
			continue
		}
		predCount++
		if n.indegree == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)
	sort.Strings(leaves)

	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		for _, succ := range g.nodes[id].succs {
			indeg[succ]--
			if indeg[succ] == 0 && len(g.nodes[succ].succs) > 0 {
				// Insert keeping ready sorted, so the smallest ID is
				// always picked next.
				at := sort.SearchStrings(ready, succ)
				ready = append(ready, "")
				copy(ready[at+1:], ready[at:])
				ready[at] = succ
			}
		}
	}

	if len(order) < predCount {
		emitted := make(map[string]bool, len(order))
		for _, id := range order {
			emitted[id] = true
		}
		var remaining []string
		for id, n := range g.nodes {
			if !emitted[id] && (len(n.succs) > 0 || indeg[id] > 0) {
				remaining = append(remaining, id)
			}
		}
		sort.Strings(remaining)
		return nil, nil, &CycleError{Remaining: remaining}
	}

	return order, leaves, nil
}
