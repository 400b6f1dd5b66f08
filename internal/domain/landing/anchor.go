package landing

import (
	"regexp"
	"strings"
)

const NoNameAnchor = "(no-name)"

var (
	nonAnchor  = regexp.MustCompile(`[^a-z0-9\s-]+`)
	whitespace = regexp.MustCompile(`\s+`)
	multiDash  = regexp.MustCompile(`-+`)
)

// AnchorSlug derives an in-page anchor from a block name.
// Example: "How it Works!" -> "how-it-works"
func AnchorSlug(name string) string {
	s := strings.ToLower(name)
	s = nonAnchor.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = multiDash.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		return NoNameAnchor
	}
	return s
}

// ExplicitAnchor returns data.anchor_id when it is a non-empty string.
func (b Block) ExplicitAnchor() (string, bool) {
	v, ok := b.Data["anchor_id"].(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

func (b Block) AnchorID() string {
	if a, ok := b.ExplicitAnchor(); ok {
		return a
	}
	return AnchorSlug(b.Name)
}

// SyncAnchors pins the anchors of source onto target by render position, so
// a translated page keeps the same menu links as the page it was translated
// from. Blocks past the end of source keep their own. target is not modified.
func SyncAnchors(source, target []Block) []Block {
	src := sortedByOrder(source)
	out := NormalizeOrder(target)
	for i := range out {
		if i >= len(src) {
			break
		}
		if out[i].Data == nil {
			out[i].Data = map[string]any{}
		}
		out[i].Data["anchor_id"] = src[i].AnchorID()
	}
	return out
}
