package tricklog

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// SequenceItem is one element of the editable combo sequence: either a trick
// or the arrow slot between two tricks. A valid sequence alternates
// trick, arrow, trick, ..., trick — never two arrows in a row, never an
// arrow first or last.
type SequenceItem interface {
	// ItemID returns the item's id, unique within its sequence. Ids exist
	// for stable list diffing in the UI and carry no other meaning.
	ItemID() string

	sequenceItem()
}

// TrickItem is a trick performed at one position in the sequence.
type TrickItem struct {
	ID            string
	TrickID       string
	LandingStance string
}

// ArrowItem is the transition slot between two adjacent tricks.
// TransitionID may be empty: the slot exists but no transition has been
// chosen for it yet.
type ArrowItem struct {
	ID           string
	TransitionID string
}

func (t TrickItem) ItemID() string { return t.ID }
func (a ArrowItem) ItemID() string { return a.ID }

func (TrickItem) sequenceItem() {}
func (ArrowItem) sequenceItem() {}

// Wire form of the two variants, tagged by a "type" field.
type trickItemJSON struct {
	ID   string        `json:"id"`
	Type string        `json:"type"`
	Data trickItemData `json:"data"`
}

type trickItemData struct {
	TrickID       string `json:"trick_id"`
	LandingStance string `json:"landing_stance,omitempty"`
}

type arrowItemJSON struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	TransitionID string `json:"transition_id,omitempty"`
}

// MarshalJSON encodes the trick item in its tagged wire form.
func (t TrickItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(trickItemJSON{
		ID:   t.ID,
		Type: "trick",
		Data: trickItemData{TrickID: t.TrickID, LandingStance: t.LandingStance},
	})
}

// MarshalJSON encodes the arrow item in its tagged wire form.
func (a ArrowItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(arrowItemJSON{ID: a.ID, Type: "arrow", TransitionID: a.TransitionID})
}

// UnmarshalSequence decodes a JSON array of tagged sequence items.
func UnmarshalSequence(data []byte) ([]SequenceItem, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("tricklog: decode sequence: %w", err)
	}

	items := make([]SequenceItem, 0, len(raw))
	for i, r := range raw {
		var tag struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(r, &tag); err != nil {
			return nil, fmt.Errorf("tricklog: decode item %d: %w", i, err)
		}
		switch tag.Type {
		case "trick":
			var t trickItemJSON
			if err := json.Unmarshal(r, &t); err != nil {
				return nil, fmt.Errorf("tricklog: decode trick item %d: %w", i, err)
			}
			items = append(items, TrickItem{
				ID:            t.ID,
				TrickID:       t.Data.TrickID,
				LandingStance: t.Data.LandingStance,
			})
		case "arrow":
			var a arrowItemJSON
			if err := json.Unmarshal(r, &a); err != nil {
				return nil, fmt.Errorf("tricklog: decode arrow item %d: %w", i, err)
			}
			items = append(items, ArrowItem{ID: a.ID, TransitionID: a.TransitionID})
		default:
			return nil, fmt.Errorf("tricklog: item %d has unknown type %q", i, tag.Type)
		}
	}
	return items, nil
}

// GraphToSequence expands a persisted combo graph into the editable sequence
// form. An arrow item is emitted between every pair of consecutive tricks
// even when the graph has no edge there, so the UI always has a slot for
// adding a transition later. If several edges share a from_index, the last
// one wins.
func GraphToSequence(g ComboGraph) []SequenceItem {
	transitions := make(map[int]string, len(g.Edges))
	for _, e := range g.Edges {
		transitions[e.FromIndex] = e.TransitionID
	}

	seq := make([]SequenceItem, 0, 2*len(g.Nodes))
	for i, n := range g.Nodes {
		if i > 0 {
			seq = append(seq, ArrowItem{ID: uuid.NewString(), TransitionID: transitions[i-1]})
		}
		seq = append(seq, TrickItem{
			ID:            uuid.NewString(),
			TrickID:       n.TrickID,
			LandingStance: n.LandingStance,
		})
	}
	return seq
}

// ComboTrick is the flat form of one combo entry: a trick plus the
// transition performed into it from the previous trick. The first trick of
// a combo has an empty TransitionID.
type ComboTrick struct {
	TrickID       string `json:"trick_id"`
	LandingStance string `json:"landing_stance,omitempty"`
	TransitionID  string `json:"transition_id,omitempty"`
}

// TricksToSequence expands a flat trick list into the editable sequence
// form. The first entry's TransitionID, if any, has no slot to land in and
// is ignored.
func TricksToSequence(tricks []ComboTrick) []SequenceItem {
	seq := make([]SequenceItem, 0, 2*len(tricks))
	for i, ct := range tricks {
		if i > 0 {
			seq = append(seq, ArrowItem{ID: uuid.NewString(), TransitionID: ct.TransitionID})
		}
		seq = append(seq, TrickItem{
			ID:            uuid.NewString(),
			TrickID:       ct.TrickID,
			LandingStance: ct.LandingStance,
		})
	}
	return seq
}

// SequenceToTricks collapses the editable sequence into the flat trick
// list. Unlike SequenceToGraph, empty arrow slots survive as empty
// TransitionIDs, so TricksToSequence(SequenceToTricks(seq)) loses nothing.
func SequenceToTricks(seq []SequenceItem) []ComboTrick {
	tricks := []ComboTrick{}
	pending := ""
	for _, item := range seq {
		switch it := item.(type) {
		case ArrowItem:
			if it.TransitionID != "" {
				pending = it.TransitionID
			}
		case TrickItem:
			ct := ComboTrick{TrickID: it.TrickID, LandingStance: it.LandingStance}
			if len(tricks) > 0 {
				ct.TransitionID = pending
			}
			tricks = append(tricks, ct)
			pending = ""
		}
	}
	return tricks
}

// SequenceToGraph collapses the editable sequence back into the persisted
// graph form. Arrow items with no transition carry no persistable
// information and are dropped; when several filled arrows precede a trick,
// only the most recent one becomes the edge.
func SequenceToGraph(seq []SequenceItem) ComboGraph {
	g := ComboGraph{Nodes: []ComboNode{}, Edges: []ComboEdge{}}

	pending := ""
	for _, item := range seq {
		switch it := item.(type) {
		case ArrowItem:
			if it.TransitionID != "" {
				pending = it.TransitionID
			}
		case TrickItem:
			g.Nodes = append(g.Nodes, ComboNode{
				TrickID:       it.TrickID,
				LandingStance: it.LandingStance,
			})
			if n := len(g.Nodes); pending != "" && n > 1 {
				g.Edges = append(g.Edges, ComboEdge{
					FromIndex:    n - 2,
					ToIndex:      n - 1,
					TransitionID: pending,
				})
			}
			pending = ""
		}
	}
	return g
}
