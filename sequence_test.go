package tricklog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trickIDs(seq []SequenceItem) []string {
	ids := []string{}
	for _, item := range seq {
		if t, ok := item.(TrickItem); ok {
			ids = append(ids, t.TrickID)
		}
	}
	return ids
}

// assertAlternation fails if the sequence has a leading arrow, a trailing
// arrow, or two arrows in a row.
func assertAlternation(t *testing.T, seq []SequenceItem) {
	t.Helper()
	for i, item := range seq {
		if !isArrow(item) {
			continue
		}
		if i == 0 {
			t.Fatalf("leading arrow at index 0")
		}
		if i == len(seq)-1 {
			t.Fatalf("trailing arrow at index %d", i)
		}
		if isArrow(seq[i-1]) {
			t.Fatalf("adjacent arrows at indices %d, %d", i-1, i)
		}
	}
}

func TestGraphToSequence(t *testing.T) {
	g := ComboGraph{
		Nodes: []ComboNode{
			{TrickID: "btwist", LandingStance: "complete"},
			{TrickID: "cork"},
			{TrickID: "gainer", LandingStance: "mega"},
		},
		Edges: []ComboEdge{
			{FromIndex: 0, ToIndex: 1, TransitionID: "s/t"},
			{FromIndex: 1, ToIndex: 2, TransitionID: "round"},
		},
	}

	seq := GraphToSequence(g)
	require.Len(t, seq, 5)
	assertAlternation(t, seq)

	assert.Equal(t, "btwist", seq[0].(TrickItem).TrickID)
	assert.Equal(t, "complete", seq[0].(TrickItem).LandingStance)
	assert.Equal(t, "s/t", seq[1].(ArrowItem).TransitionID)
	assert.Equal(t, "cork", seq[2].(TrickItem).TrickID)
	assert.Equal(t, "", seq[2].(TrickItem).LandingStance)
	assert.Equal(t, "round", seq[3].(ArrowItem).TransitionID)
	assert.Equal(t, "gainer", seq[4].(TrickItem).TrickID)
	assert.Equal(t, "mega", seq[4].(TrickItem).LandingStance)

	// Every item gets a unique id.
	seen := map[string]bool{}
	for _, item := range seq {
		assert.NotEmpty(t, item.ItemID())
		assert.False(t, seen[item.ItemID()])
		seen[item.ItemID()] = true
	}
}

func TestGraphToSequence_Empty(t *testing.T) {
	assert.Empty(t, GraphToSequence(ComboGraph{}))
}

func TestGraphToSequence_SingleNode(t *testing.T) {
	seq := GraphToSequence(ComboGraph{Nodes: []ComboNode{{TrickID: "cork"}}})
	require.Len(t, seq, 1)
	assert.Equal(t, "cork", seq[0].(TrickItem).TrickID)
}

func TestGraphToSequence_MissingEdgeEmitsEmptyArrow(t *testing.T) {
	g := ComboGraph{
		Nodes: []ComboNode{{TrickID: "btwist"}, {TrickID: "cork"}, {TrickID: "gainer"}},
		Edges: []ComboEdge{{FromIndex: 1, ToIndex: 2, TransitionID: "round"}},
	}

	seq := GraphToSequence(g)
	require.Len(t, seq, 5)
	assert.Equal(t, "", seq[1].(ArrowItem).TransitionID)
	assert.Equal(t, "round", seq[3].(ArrowItem).TransitionID)
}

func TestGraphToSequence_DuplicateFromIndexLastWins(t *testing.T) {
	g := ComboGraph{
		Nodes: []ComboNode{{TrickID: "btwist"}, {TrickID: "cork"}},
		Edges: []ComboEdge{
			{FromIndex: 0, ToIndex: 1, TransitionID: "s/t"},
			{FromIndex: 0, ToIndex: 1, TransitionID: "round"},
		},
	}

	seq := GraphToSequence(g)
	require.Len(t, seq, 3)
	assert.Equal(t, "round", seq[1].(ArrowItem).TransitionID)
}

func TestSequenceToGraph(t *testing.T) {
	seq := []SequenceItem{
		TrickItem{ID: "i1", TrickID: "btwist", LandingStance: "complete"},
		ArrowItem{ID: "i2", TransitionID: "s/t"},
		TrickItem{ID: "i3", TrickID: "cork"},
		ArrowItem{ID: "i4", TransitionID: "round"},
		TrickItem{ID: "i5", TrickID: "gainer", LandingStance: "mega"},
	}

	want := ComboGraph{
		Nodes: []ComboNode{
			{TrickID: "btwist", LandingStance: "complete"},
			{TrickID: "cork"},
			{TrickID: "gainer", LandingStance: "mega"},
		},
		Edges: []ComboEdge{
			{FromIndex: 0, ToIndex: 1, TransitionID: "s/t"},
			{FromIndex: 1, ToIndex: 2, TransitionID: "round"},
		},
	}
	assert.Equal(t, want, SequenceToGraph(seq))
}

func TestSequenceToGraph_DropsEmptyArrows(t *testing.T) {
	seq := []SequenceItem{
		TrickItem{ID: "i1", TrickID: "btwist"},
		ArrowItem{ID: "i2"},
		TrickItem{ID: "i3", TrickID: "cork"},
	}

	g := SequenceToGraph(seq)
	assert.Len(t, g.Nodes, 2)
	assert.Empty(t, g.Edges)
}

func TestSequenceToGraph_LeadingArrowMakesNoEdge(t *testing.T) {
	// A filled arrow before the first trick has nowhere to connect from.
	seq := []SequenceItem{
		ArrowItem{ID: "i1", TransitionID: "s/t"},
		TrickItem{ID: "i2", TrickID: "btwist"},
		ArrowItem{ID: "i3", TransitionID: "round"},
		TrickItem{ID: "i4", TrickID: "cork"},
	}

	g := SequenceToGraph(seq)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, ComboEdge{FromIndex: 0, ToIndex: 1, TransitionID: "round"}, g.Edges[0])
}

func TestSequenceToGraph_LastPendingArrowWins(t *testing.T) {
	// Two filled arrows between the same tricks, as raw splicing can leave:
	// only the most recent one before the next trick becomes an edge.
	seq := []SequenceItem{
		TrickItem{ID: "i1", TrickID: "btwist"},
		ArrowItem{ID: "i2", TransitionID: "s/t"},
		ArrowItem{ID: "i3", TransitionID: "round"},
		TrickItem{ID: "i4", TrickID: "cork"},
	}

	g := SequenceToGraph(seq)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "round", g.Edges[0].TransitionID)
}

func TestGraphSequenceRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		graph ComboGraph
	}{
		{
			name:  "single trick",
			graph: ComboGraph{Nodes: []ComboNode{{TrickID: "cork"}}, Edges: []ComboEdge{}},
		},
		{
			name: "all slots filled",
			graph: ComboGraph{
				Nodes: []ComboNode{
					{TrickID: "btwist", LandingStance: "complete"},
					{TrickID: "cork"},
					{TrickID: "gainer", LandingStance: "mega"},
				},
				Edges: []ComboEdge{
					{FromIndex: 0, ToIndex: 1, TransitionID: "s/t"},
					{FromIndex: 1, ToIndex: 2, TransitionID: "round"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.graph, SequenceToGraph(GraphToSequence(tt.graph)))
		})
	}
}

func TestTricksSequenceRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		tricks []ComboTrick
	}{
		{name: "empty", tricks: []ComboTrick{}},
		{name: "single", tricks: []ComboTrick{{TrickID: "cork"}}},
		{
			name: "transitions and stances",
			tricks: []ComboTrick{
				{TrickID: "btwist", LandingStance: "complete"},
				{TrickID: "cork", TransitionID: "s/t"},
				{TrickID: "gainer", LandingStance: "mega", TransitionID: "round"},
			},
		},
		{
			name: "unfilled transition slot survives",
			tricks: []ComboTrick{
				{TrickID: "btwist"},
				{TrickID: "cork"},
				{TrickID: "gainer", TransitionID: "round"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := TricksToSequence(tt.tricks)
			assertAlternation(t, seq)
			assert.Equal(t, tt.tricks, SequenceToTricks(seq))
		})
	}
}

func TestSequenceJSONRoundTrip(t *testing.T) {
	seq := []SequenceItem{
		TrickItem{ID: "i1", TrickID: "btwist", LandingStance: "complete"},
		ArrowItem{ID: "i2", TransitionID: "s/t"},
		TrickItem{ID: "i3", TrickID: "cork"},
		ArrowItem{ID: "i4"},
		TrickItem{ID: "i5", TrickID: "gainer"},
	}

	data, err := json.Marshal(seq)
	require.NoError(t, err)

	// Items carry their variant in a "type" tag on the wire.
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "trick", raw[0]["type"])
	assert.Equal(t, "arrow", raw[1]["type"])
	assert.Equal(t, "btwist", raw[0]["data"].(map[string]any)["trick_id"])

	decoded, err := UnmarshalSequence(data)
	require.NoError(t, err)
	assert.Equal(t, seq, decoded)
}

func TestUnmarshalSequence_UnknownType(t *testing.T) {
	_, err := UnmarshalSequence([]byte(`[{"id":"x","type":"spin"}]`))
	assert.ErrorContains(t, err, "unknown type")
}
