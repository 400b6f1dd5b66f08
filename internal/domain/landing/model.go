package landing

import (
	"time"

	"gorm.io/datatypes"
)

type Block struct {
	ID    string         `json:"id"`
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Order int            `json:"order"`
	Data  map[string]any `json:"data"`
}

const (
	BackgroundImage = "image"
	BackgroundVideo = "video"
)

// Slide is the hero carousel entry that predates blocks. Rows still carry them.
type Slide struct {
	Headline       string `json:"headline,omitempty"`
	Subheadline    string `json:"subheadline,omitempty"`
	Content        string `json:"content,omitempty"`
	BackgroundURL  string `json:"background_url,omitempty"`
	BackgroundType string `json:"background_type,omitempty"`
	PosterURL      string `json:"poster_url,omitempty"`

	// nil means carousel.
	IsCarousel    *bool `json:"is_carousel,omitempty"`
	IsPriceBanner bool  `json:"is_price_banner,omitempty"`

	Features           []string `json:"features,omitempty"`
	FeaturesFontSize   string   `json:"features_font_size,omitempty"`
	FeaturesFontFamily string   `json:"features_font_family,omitempty"`
	FeaturesColor      string   `json:"features_color,omitempty"`

	CTAText string `json:"cta_text,omitempty"`
	CTAURL  string `json:"cta_url,omitempty"`

	OriginalFilename string `json:"original_filename,omitempty"`
}

type FooterLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type Footer struct {
	Links         []FooterLink      `json:"links"`
	PolicyContent map[string]string `json:"policy_content,omitempty"`
}

// Snapshot is one full copy of the editable content of a page.
type Snapshot struct {
	Blocks     []Block `json:"blocks"`
	HeroSlides []Slide `json:"hero_slides"`
	Footer     Footer  `json:"footer"`
}

// LandingPage is one localized page of a business unit. The row fields hold
// the draft; PublishedData holds what the public site serves once PublishedAt is set.
type LandingPage struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	BusinessUnitID string `gorm:"type:uuid;not null;index:idx_landing_pages_locale,priority:1" json:"business_unit_id"`
	Country        string `gorm:"not null;index:idx_landing_pages_locale,priority:2" json:"country"`
	LanguageCode   string `gorm:"not null;index:idx_landing_pages_locale,priority:3" json:"language_code"`

	Slug *string `gorm:"uniqueIndex" json:"slug"`

	// At most one active row per (business unit, country, language) is expected;
	// the store does not enforce it. See locale.FindDuplicateActive.
	IsActive    bool       `gorm:"not null;default:false" json:"is_active"`
	IsPublished bool       `gorm:"not null;default:false" json:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`

	Blocks     datatypes.JSONType[[]Block] `gorm:"type:jsonb;not null;default:'[]'" json:"blocks"`
	HeroSlides datatypes.JSONType[[]Slide] `gorm:"type:jsonb;not null;default:'[]'" json:"hero_slides"`
	Footer     datatypes.JSONType[Footer]  `gorm:"type:jsonb;not null;default:'{}'" json:"footer"`

	PublishedData datatypes.JSONType[Snapshot] `gorm:"type:jsonb;not null;default:'{}'" json:"-"`

	EnableSocialLogin bool `gorm:"not null;default:false" json:"enable_social_login"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
