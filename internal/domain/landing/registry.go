package landing

import (
	"errors"

	"github.com/google/uuid"
)

var ErrUnknownBlockType = errors.New("unknown block type")

const (
	TypeSplit        = "split"
	TypeCard         = "card"
	TypeAccordion    = "accordion"
	TypePricing      = "pricing"
	TypeTestimonials = "testimonials"
	TypeSteps        = "steps"
	TypeStaticBanner = "static_banner"
	TypePolicies     = "policies"
	TypeTable        = "table"

	// TypeTextImage was replaced by split blocks. Old rows still contain it.
	TypeTextImage = "textimage"
)

var deprecatedTypes = map[string]bool{
	TypeTextImage: true,
}

// blockDefaults holds the data a freshly created block starts with.
var blockDefaults = map[string]func() map[string]any{
	TypeSplit: func() map[string]any {
		return map[string]any{
			"layout":    "image-right",
			"image_url": "",
			"headline":  "",
			"content":   "",
			"cta_text":  "",
			"cta_url":   "",
		}
	},
	TypeCard: func() map[string]any {
		return map[string]any{
			"layout": "grid-3",
			"cards":  []any{},
		}
	},
	TypeAccordion: func() map[string]any {
		return map[string]any{
			"items": []any{map[string]any{"title": "", "content": ""}},
		}
	},
	TypePricing: func() map[string]any {
		return map[string]any{
			"product_name":         "Product Name",
			"features":             []any{},
			"features_font_size":   "1rem",
			"features_font_family": "Cormorant Garamond",
			"features_color":       "#374151",
			"plan_heading":         "Choose Your Plan",
			"plans":                []any{},
			"cta_text":             "Buy Now & SAVE",
			"currency_symbol":      "$",
			"background_color":     "#ffffff",
		}
	},
	TypeTestimonials: func() map[string]any {
		return map[string]any{
			"heading":           "Customer Reviews",
			"testimonials":      []any{},
			"background_color":  "#ffffff",
			"autoplay":          false,
			"autoplay_interval": 5000,
		}
	},
	TypeSteps: func() map[string]any {
		return map[string]any{
			"heading":         "How It Works",
			"steps":           []any{},
			"background_type": BackgroundImage,
		}
	},
	TypeStaticBanner: func() map[string]any {
		return map[string]any{
			"headline":        "",
			"subheadline":     "",
			"background_url":  "",
			"background_type": BackgroundImage,
		}
	},
	TypePolicies: func() map[string]any {
		return map[string]any{
			"policies": []any{},
		}
	},
	TypeTable: func() map[string]any {
		return map[string]any{
			"headers": []any{},
			"rows":    []any{},
		}
	},
}

func IsDeprecated(blockType string) bool {
	return deprecatedTypes[blockType]
}

// IsKnown reports whether the renderer understands blockType.
func IsKnown(blockType string) bool {
	_, ok := blockDefaults[blockType]
	return ok
}

func KnownTypes() []string {
	return []string{
		TypeSplit, TypeCard, TypeAccordion, TypePricing, TypeTestimonials,
		TypeSteps, TypeStaticBanner, TypePolicies, TypeTable,
	}
}

func NewBlock(blockType, name string, order int) (Block, error) {
	def, ok := blockDefaults[blockType]
	if !ok {
		return Block{}, ErrUnknownBlockType
	}
	return Block{
		ID:    uuid.NewString(),
		Type:  blockType,
		Name:  name,
		Order: order,
		Data:  def(),
	}, nil
}
