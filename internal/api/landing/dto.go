package landingapi

import "landing-platform/internal/domain/landing"

type SavePageRequest struct {
	BusinessUnitID    string          `json:"businessUnitId" binding:"required"`
	Country           string          `json:"country"`
	LanguageCode      string          `json:"language_code"`
	Slug              *string         `json:"slug"`
	Blocks            []landing.Block `json:"blocks"`
	HeroSlides        []landing.Slide `json:"hero_slides"`
	Footer            *landing.Footer `json:"footer"`
	EnableSocialLogin *bool           `json:"enable_social_login"`
}

type PublishRequest struct {
	BusinessUnitID string `json:"businessUnitId" binding:"required"`
	Country        string `json:"country"`
	LanguageCode   string `json:"language_code"`
	IsPublished    bool   `json:"is_published"`
}

type CreateLocaleRequest struct {
	BusinessUnitID string `json:"businessUnitId" binding:"required"`
	Country        string `json:"country" binding:"required"`
	Language       string `json:"language" binding:"required"`
	Mode           string `json:"mode"`
	SourceCountry  string `json:"sourceCountry"`
	SourceLanguage string `json:"sourceLanguage"`
}

type SetActiveRequest struct {
	BusinessUnitID string `json:"businessUnitId" binding:"required"`
	PageID         string `json:"pageId" binding:"required"`
	IsActive       bool   `json:"is_active"`
}

type SyncAnchorsRequest struct {
	BusinessUnitID string `json:"businessUnitId" binding:"required"`
}

type ReorderBlocksRequest struct {
	BusinessUnitID string   `json:"businessUnitId" binding:"required"`
	Country        string   `json:"country"`
	LanguageCode   string   `json:"language_code"`
	BlockIDs       []string `json:"block_ids" binding:"required"`
}

type AddBlockRequest struct {
	BusinessUnitID string `json:"businessUnitId" binding:"required"`
	Country        string `json:"country"`
	LanguageCode   string `json:"language_code"`
	Type           string `json:"type" binding:"required"`
	Name           string `json:"name"`
	Position       *int   `json:"position"`
}
