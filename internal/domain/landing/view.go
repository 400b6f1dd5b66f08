package landing

type ViewBlock struct {
	Block
	AnchorID string `json:"anchor_id"`
}

// PageView is the render-ready form of a page snapshot.
type PageView struct {
	HeroSection []Slide      `json:"heroSection"`
	Blocks      []ViewBlock  `json:"blocks"`
	FooterLinks []FooterLink `json:"footerLinks"`
}

// Carousel resolves is_carousel: only an explicit false turns it off.
func (s Slide) Carousel() bool {
	return s.IsCarousel == nil || *s.IsCarousel
}

func (s Slide) IsVideo() bool {
	return s.BackgroundType == BackgroundVideo
}

func cloneSlide(s Slide) Slide {
	out := s
	if s.Features != nil {
		out.Features = append([]string(nil), s.Features...)
	}
	carousel := s.Carousel()
	out.IsCarousel = &carousel
	return out
}

// BuildPageView composes a snapshot into what the renderer consumes:
// blocks sorted by order (stable), deprecated and unknown types dropped,
// anchors resolved, legacy slides exposed as a hero section ahead of blocks.
// The snapshot is not modified.
func BuildPageView(s Snapshot) PageView {
	view := PageView{
		Blocks:      []ViewBlock{},
		FooterLinks: []FooterLink{},
	}

	if len(s.HeroSlides) > 0 {
		view.HeroSection = make([]Slide, 0, len(s.HeroSlides))
		for _, sl := range s.HeroSlides {
			view.HeroSection = append(view.HeroSection, cloneSlide(sl))
		}
	}

	for _, b := range sortedByOrder(s.Blocks) {
		if IsDeprecated(b.Type) || !IsKnown(b.Type) {
			continue
		}
		view.Blocks = append(view.Blocks, ViewBlock{Block: b, AnchorID: b.AnchorID()})
	}

	view.FooterLinks = append(view.FooterLinks, s.Footer.Links...)

	return view
}

// HasPricing reports whether the page shows a price banner, either as a
// pricing block or as a legacy price-banner slide.
func (v PageView) HasPricing() bool {
	for _, b := range v.Blocks {
		if b.Type == TypePricing {
			return true
		}
	}
	for _, s := range v.HeroSection {
		if s.IsPriceBanner {
			return true
		}
	}
	return false
}
