package tricklog

// RemoveItem returns a copy of seq with the item at index removed, cleaning
// up any arrow the removal left dangling. An out-of-range index is a no-op
// returning the input: edit gestures routinely fire with stale indices and
// that is not an error.
func RemoveItem(seq []SequenceItem, index int) []SequenceItem {
	if index < 0 || index >= len(seq) {
		return seq
	}

	out := make([]SequenceItem, 0, len(seq)-1)
	out = append(out, seq[:index]...)
	out = append(out, seq[index+1:]...)

	// Removing an arrow just leaves its two tricks directly adjacent, which
	// is a valid state: no transition between them.
	if isArrow(seq[index]) {
		return out
	}

	switch {
	case index > 0 && index < len(out) && isArrow(out[index-1]) && isArrow(out[index]):
		// The trick sat between two arrows. Keep the earlier arrow: its
		// transition led into the gap.
		out = append(out[:index], out[index+1:]...)
	case index == len(out) && len(out) > 0 && isArrow(out[len(out)-1]):
		// Removed the last trick, leaving a trailing arrow.
		out = out[:len(out)-1]
	case index == 0 && len(out) > 0 && isArrow(out[0]):
		// Removed the first trick, leaving a leading arrow.
		out = out[1:]
	}
	return out
}

// MoveTrick relocates the trick at fromIndex so that it occupies the given
// trick position: a 0-based rank counting tricks only, not sequence indices.
// It returns the updated sequence and the trick's new sequence index.
// Arrows are deliberately left where they are — this runs on every drag
// frame, and the sequence is reconciled with Cleanup when the drag ends.
func MoveTrick(seq []SequenceItem, fromIndex, toTrickPos int) ([]SequenceItem, int) {
	if fromIndex < 0 || fromIndex >= len(seq) {
		return seq, fromIndex
	}
	moved, ok := seq[fromIndex].(TrickItem)
	if !ok {
		return seq, fromIndex
	}

	rank, total := 0, 0
	for i, item := range seq {
		if isArrow(item) {
			continue
		}
		if i < fromIndex {
			rank++
		}
		total++
	}
	if toTrickPos == rank {
		return seq, fromIndex
	}
	if toTrickPos < 0 {
		toTrickPos = 0
	}
	if toTrickPos > total-1 {
		toTrickPos = total - 1
	}

	rest := make([]SequenceItem, 0, len(seq)-1)
	rest = append(rest, seq[:fromIndex]...)
	rest = append(rest, seq[fromIndex+1:]...)

	insertAt := 0
	if toTrickPos > 0 {
		// Insert immediately before the trick currently holding the target
		// rank, or just after the last trick when the rank is past the end.
		r, lastTrick := 0, -1
		insertAt = -1
		for i, item := range rest {
			if isArrow(item) {
				continue
			}
			if r == toTrickPos {
				insertAt = i
				break
			}
			r++
			lastTrick = i
		}
		if insertAt == -1 {
			insertAt = lastTrick + 1
		}
	}

	out := make([]SequenceItem, 0, len(seq))
	out = append(out, rest[:insertAt]...)
	out = append(out, moved)
	out = append(out, rest[insertAt:]...)
	return out, insertAt
}

// Cleanup restores the alternation invariant on a sequence that raw splicing
// during a drag may have left inconsistent: no leading arrow, no trailing
// arrow, no two arrows in a row. Tricks are never dropped and keep their
// relative order.
func Cleanup(seq []SequenceItem) []SequenceItem {
	out := make([]SequenceItem, 0, len(seq))
	for _, item := range seq {
		if isArrow(item) && (len(out) == 0 || isArrow(out[len(out)-1])) {
			continue
		}
		out = append(out, item)
	}
	if n := len(out); n > 0 && isArrow(out[n-1]) {
		out = out[:n-1]
	}
	return out
}

func isArrow(item SequenceItem) bool {
	_, ok := item.(ArrowItem)
	return ok
}
