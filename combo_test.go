package tricklog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComboGraphValidate(t *testing.T) {
	tests := []struct {
		name    string
		graph   ComboGraph
		wantErr string
	}{
		{
			name:  "empty graph",
			graph: ComboGraph{},
		},
		{
			name: "valid two-trick combo",
			graph: ComboGraph{
				Nodes: []ComboNode{{TrickID: "btwist"}, {TrickID: "cork"}},
				Edges: []ComboEdge{{FromIndex: 0, ToIndex: 1, TransitionID: "s/t"}},
			},
		},
		{
			name:    "empty trick_id",
			graph:   ComboGraph{Nodes: []ComboNode{{TrickID: "btwist"}, {}}},
			wantErr: "node 1 has empty trick_id",
		},
		{
			name: "empty transition_id",
			graph: ComboGraph{
				Nodes: []ComboNode{{TrickID: "btwist"}, {TrickID: "cork"}},
				Edges: []ComboEdge{{FromIndex: 0, ToIndex: 1}},
			},
			wantErr: "edge 0 has empty transition_id",
		},
		{
			name: "from_index past nodes",
			graph: ComboGraph{
				Nodes: []ComboNode{{TrickID: "btwist"}, {TrickID: "cork"}},
				Edges: []ComboEdge{{FromIndex: 2, ToIndex: 1, TransitionID: "s/t"}},
			},
			wantErr: "from_index 2 out of range",
		},
		{
			name: "negative to_index",
			graph: ComboGraph{
				Nodes: []ComboNode{{TrickID: "btwist"}, {TrickID: "cork"}},
				Edges: []ComboEdge{{FromIndex: 0, ToIndex: -1, TransitionID: "s/t"}},
			},
			wantErr: "to_index -1 out of range",
		},
		{
			name: "edge with no nodes",
			graph: ComboGraph{
				Edges: []ComboEdge{{FromIndex: 0, ToIndex: 0, TransitionID: "s/t"}},
			},
			wantErr: "from_index 0 out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.graph.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidGraph)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSequenceToGraphAlwaysValidates(t *testing.T) {
	// The converter only ever emits chain-consistent edges, so its output
	// always passes the persistence boundary check.
	seq := []SequenceItem{
		ArrowItem{ID: "i0", TransitionID: "vs"},
		TrickItem{ID: "i1", TrickID: "btwist"},
		ArrowItem{ID: "i2", TransitionID: "s/t"},
		ArrowItem{ID: "i3"},
		TrickItem{ID: "i4", TrickID: "cork"},
	}

	g := SequenceToGraph(seq)
	assert.NoError(t, g.Validate())
	for _, e := range g.Edges {
		assert.Equal(t, e.FromIndex+1, e.ToIndex)
	}
}
