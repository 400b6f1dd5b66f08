package landing

import (
	"errors"
	"sort"
)

var (
	ErrBlockNotFound   = errors.New("block not found")
	ErrReorderMismatch = errors.New("reorder ids must list every block exactly once")
)

// Block order is kept contiguous (0..n-1) by every helper below. Reads still
// tolerate gaps and ties, since older rows were renumbered by hand.

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			m[k] = cloneValue(vv)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, vv := range t {
			s[i] = cloneValue(vv)
		}
		return s
	default:
		return v
	}
}

func cloneBlock(b Block) Block {
	out := b
	if b.Data != nil {
		out.Data = cloneValue(b.Data).(map[string]any)
	}
	return out
}

func cloneBlocks(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = cloneBlock(b)
	}
	return out
}

// sortedByOrder returns a copy sorted by Order; ties keep array position.
func sortedByOrder(blocks []Block) []Block {
	out := cloneBlocks(blocks)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func renumber(blocks []Block) []Block {
	for i := range blocks {
		blocks[i].Order = i
	}
	return blocks
}

// NormalizeOrder sorts by Order and renumbers from zero.
func NormalizeOrder(blocks []Block) []Block {
	return renumber(sortedByOrder(blocks))
}

// StripDeprecated drops deprecated block types and renumbers the rest.
func StripDeprecated(blocks []Block) []Block {
	kept := make([]Block, 0, len(blocks))
	for _, b := range sortedByOrder(blocks) {
		if IsDeprecated(b.Type) {
			continue
		}
		kept = append(kept, b)
	}
	return renumber(kept)
}

// InsertBlock puts b at position at (clamped to the list bounds).
func InsertBlock(blocks []Block, b Block, at int) []Block {
	sorted := sortedByOrder(blocks)
	if at < 0 {
		at = 0
	}
	if at > len(sorted) {
		at = len(sorted)
	}

	out := make([]Block, 0, len(sorted)+1)
	out = append(out, sorted[:at]...)
	out = append(out, cloneBlock(b))
	out = append(out, sorted[at:]...)
	return renumber(out)
}

func RemoveBlock(blocks []Block, id string) ([]Block, error) {
	sorted := sortedByOrder(blocks)
	out := make([]Block, 0, len(sorted))
	found := false
	for _, b := range sorted {
		if b.ID == id {
			found = true
			continue
		}
		out = append(out, b)
	}
	if !found {
		return nil, ErrBlockNotFound
	}
	return renumber(out), nil
}

// ReorderBlocks rewrites every block's order to follow ids.
func ReorderBlocks(blocks []Block, ids []string) ([]Block, error) {
	if len(ids) != len(blocks) {
		return nil, ErrReorderMismatch
	}

	byID := make(map[string]Block, len(blocks))
	for _, b := range blocks {
		byID[b.ID] = b
	}
	if len(byID) != len(blocks) {
		return nil, ErrReorderMismatch
	}

	out := make([]Block, 0, len(ids))
	used := make(map[string]bool, len(ids))
	for _, id := range ids {
		b, ok := byID[id]
		if !ok || used[id] {
			return nil, ErrReorderMismatch
		}
		used[id] = true
		out = append(out, cloneBlock(b))
	}
	return renumber(out), nil
}
