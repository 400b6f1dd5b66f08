package landing

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

var ErrPageNotFound = errors.New("landing page not found")

const (
	ViewDraft     = "draft"
	ViewPublished = "published"
)

// Draft is the snapshot currently being edited.
func (p *LandingPage) Draft() Snapshot {
	return Snapshot{
		Blocks:     p.Blocks.Data(),
		HeroSlides: p.HeroSlides.Data(),
		Footer:     p.Footer.Data(),
	}
}

// Published returns the live snapshot, if the page was ever published.
func (p *LandingPage) Published() (Snapshot, bool) {
	if p.PublishedAt == nil {
		return Snapshot{}, false
	}
	return p.PublishedData.Data(), true
}

// View picks the snapshot to serve: preview always sees the draft, the live
// site sees the published copy and falls back to the draft for pages that
// predate publishing.
func (p *LandingPage) View(preview bool) (Snapshot, string) {
	if !preview {
		if pub, ok := p.Published(); ok {
			return pub, ViewPublished
		}
	}
	return p.Draft(), ViewDraft
}

func (p *LandingPage) SetDraft(s Snapshot) {
	p.Blocks = datatypes.NewJSONType(s.Blocks)
	p.HeroSlides = datatypes.NewJSONType(s.HeroSlides)
	p.Footer = datatypes.NewJSONType(s.Footer)
}

// Publish copies the draft into the published snapshot.
func (p *LandingPage) Publish(now time.Time) {
	draft := p.Draft()
	draft.Blocks = cloneBlocks(draft.Blocks)
	p.PublishedData = datatypes.NewJSONType(draft)
	p.IsPublished = true
	p.PublishedAt = &now
}

// Unpublish takes the page off the live site. The draft is kept.
func (p *LandingPage) Unpublish() {
	p.PublishedData = datatypes.NewJSONType(Snapshot{})
	p.IsPublished = false
	p.PublishedAt = nil
}
