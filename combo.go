package tricklog

import "fmt"

// ComboGraph is the persisted form of a combo: tricks as nodes, the
// transitions between consecutive tricks as edges. It is stored as a JSONB
// document on the combo record and converted to a Sequence for editing.
type ComboGraph struct {
	Nodes []ComboNode `json:"nodes"`
	Edges []ComboEdge `json:"edges"`
}

// ComboNode is one trick performed in a combo, in order.
type ComboNode struct {
	TrickID       string `json:"trick_id"`
	LandingStance string `json:"landing_stance,omitempty"`
}

// ComboEdge is the transition connecting the tricks at two node indices.
// Edges emitted by SequenceToGraph always connect index i to i+1.
type ComboEdge struct {
	FromIndex    int    `json:"from_index"`
	ToIndex      int    `json:"to_index"`
	TransitionID string `json:"transition_id"`
}

// Validate rejects malformed graphs before they are written to storage or
// trusted after being read back: empty trick or transition ids, and edge
// indices that don't reference a node. An empty graph is valid (no combo
// built yet). Edge adjacency (to_index == from_index+1) is not enforced.
func (g ComboGraph) Validate() error {
	for i, n := range g.Nodes {
		if n.TrickID == "" {
			return fmt.Errorf("%w: node %d has empty trick_id", ErrInvalidGraph, i)
		}
	}
	for i, e := range g.Edges {
		if e.TransitionID == "" {
			return fmt.Errorf("%w: edge %d has empty transition_id", ErrInvalidGraph, i)
		}
		if e.FromIndex < 0 || e.FromIndex >= len(g.Nodes) {
			return fmt.Errorf("%w: edge %d from_index %d out of range", ErrInvalidGraph, i, e.FromIndex)
		}
		if e.ToIndex < 0 || e.ToIndex >= len(g.Nodes) {
			return fmt.Errorf("%w: edge %d to_index %d out of range", ErrInvalidGraph, i, e.ToIndex)
		}
	}
	return nil
}
