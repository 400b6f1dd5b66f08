package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"landing-platform/internal/domain/businessunit"
	"landing-platform/internal/domain/landing"
	"landing-platform/internal/domain/locale"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultCountry  = "US"
	DefaultLanguage = "en"
)

// LandingService provides landing page business logic.
type LandingService struct {
	pages    landing.Repository
	units    businessunit.Repository
	resolver *businessunit.Resolver
	cache    PageCache
	prober   MediaProber
	logger   *slog.Logger

	// defaultBusinessUnit is used by public reads that name no business unit.
	defaultBusinessUnit string
	now                 func() time.Time
}

// NewLandingService creates a landing service. cache and prober may be nil.
func NewLandingService(
	pages landing.Repository,
	units businessunit.Repository,
	cache PageCache,
	prober MediaProber,
	logger *slog.Logger,
	defaultBusinessUnit string,
) *LandingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LandingService{
		pages:               pages,
		units:               units,
		resolver:            businessunit.NewResolver(units),
		cache:               cache,
		prober:              prober,
		logger:              logger.With("component", "landing"),
		defaultBusinessUnit: defaultBusinessUnit,
		now:                 time.Now,
	}
}

type Locale struct {
	Country  string `json:"country"`
	Language string `json:"language"`
}

// ResolvedPage is a landing page row with the snapshot served for the
// request laid over its content fields.
type ResolvedPage struct {
	ID                string     `json:"id"`
	BusinessUnitID    string     `json:"business_unit_id"`
	Country           string     `json:"country"`
	LanguageCode      string     `json:"language_code"`
	Slug              *string    `json:"slug"`
	IsActive          bool       `json:"is_active"`
	IsPublished       bool       `json:"is_published"`
	PublishedAt       *time.Time `json:"published_at,omitempty"`
	EnableSocialLogin bool       `json:"enable_social_login"`
	UpdatedAt         time.Time  `json:"updated_at"`

	Source     string          `json:"source"`
	Blocks     []landing.Block `json:"blocks"`
	HeroSlides []landing.Slide `json:"hero_slides"`
	Footer     landing.Footer  `json:"footer"`
}

type PageResult struct {
	LandingPage      *ResolvedPage              `json:"landingPage"`
	View             *landing.PageView          `json:"view"`
	BusinessUnit     *businessunit.BusinessUnit `json:"businessUnit"`
	HasLandingPage   bool                       `json:"hasLandingPage"`
	AvailableLocales []locale.Pair              `json:"availableLocales"`
	CurrentLocale    Locale                     `json:"currentLocale"`
	IsPreview        bool                       `json:"isPreview"`
}

// normalizeLocale applies the US/en defaults. Landing pages store short
// language codes, so ISO input such as "zh-TW" is folded to "tw".
func normalizeLocale(country, language string) (string, string) {
	country = strings.TrimSpace(country)
	language = strings.TrimSpace(language)
	if country == "" {
		country = DefaultCountry
	}
	if language == "" {
		language = DefaultLanguage
	}
	return country, locale.ToURLLanguage(language)
}

func resolvePage(p *landing.LandingPage, preview bool) (*ResolvedPage, landing.Snapshot) {
	snap, source := p.View(preview)
	return &ResolvedPage{
		ID:                p.ID,
		BusinessUnitID:    p.BusinessUnitID,
		Country:           p.Country,
		LanguageCode:      p.LanguageCode,
		Slug:              p.Slug,
		IsActive:          p.IsActive,
		IsPublished:       p.IsPublished,
		PublishedAt:       p.PublishedAt,
		EnableSocialLogin: p.EnableSocialLogin,
		UpdatedAt:         p.UpdatedAt,
		Source:            source,
		Blocks:            snap.Blocks,
		HeroSlides:        snap.HeroSlides,
		Footer:            snap.Footer,
	}, snap
}

func buildResult(page *landing.LandingPage, unit *businessunit.BusinessUnit, refs []locale.PageRef, current Locale, preview bool) *PageResult {
	res := &PageResult{
		BusinessUnit:     unit,
		AvailableLocales: locale.AvailableLocales(refs),
		CurrentLocale:    current,
		IsPreview:        preview,
	}
	if page == nil {
		return res
	}

	resolved, snap := resolvePage(page, preview)
	view := landing.BuildPageView(snap)
	res.LandingPage = resolved
	res.View = &view
	res.HasLandingPage = true
	return res
}

// loadContext fetches the business unit and its locale list side by side.
func (s *LandingService) loadContext(ctx context.Context, g *errgroup.Group, businessUnitID string, unit **businessunit.BusinessUnit, refs *[]locale.PageRef) {
	g.Go(func() error {
		u, err := s.units.FindByID(ctx, businessUnitID)
		if err != nil && !errors.Is(err, businessunit.ErrNotFound) {
			return fmt.Errorf("find business unit: %w", err)
		}
		*unit = u
		return nil
	})
	g.Go(func() error {
		r, err := s.pages.ListLocaleRefs(ctx, businessUnitID)
		if err != nil {
			return fmt.Errorf("list locales: %w", err)
		}
		*refs = r
		return nil
	})
}

// GetPage returns the page served for a business unit and locale. Preview
// reads see the draft; live reads see the published snapshot when one exists.
// A locale without an active page is not an error: HasLandingPage is false.
func (s *LandingService) GetPage(ctx context.Context, businessUnit, country, language string, preview bool) (*PageResult, error) {
	if strings.TrimSpace(businessUnit) == "" && s.defaultBusinessUnit == "" {
		return nil, ErrBusinessUnitRequired
	}
	buID, err := s.resolver.ResolveOr(ctx, businessUnit, s.defaultBusinessUnit)
	if err != nil {
		return nil, err
	}
	country, language = normalizeLocale(country, language)

	key := pageCacheKey(buID, country, language)
	if !preview {
		if res, ok := s.cachedPage(ctx, key); ok {
			return res, nil
		}
	}

	var (
		page *landing.LandingPage
		unit *businessunit.BusinessUnit
		refs []locale.PageRef
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.pages.FindActive(gctx, buID, country, language)
		if err != nil && !errors.Is(err, landing.ErrPageNotFound) {
			return fmt.Errorf("find landing page: %w", err)
		}
		page = p
		return nil
	})
	s.loadContext(gctx, g, buID, &unit, &refs)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := buildResult(page, unit, refs, Locale{Country: country, Language: language}, preview)
	if !preview {
		s.storePage(ctx, key, res)
	}
	return res, nil
}

// GetPageBySlug serves a page addressed by its own slug.
func (s *LandingService) GetPageBySlug(ctx context.Context, slug string, preview bool) (*PageResult, error) {
	page, err := s.pages.FindBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}

	var (
		unit *businessunit.BusinessUnit
		refs []locale.PageRef
	)
	g, gctx := errgroup.WithContext(ctx)
	s.loadContext(gctx, g, page.BusinessUnitID, &unit, &refs)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buildResult(page, unit, refs, Locale{Country: page.Country, Language: page.LanguageCode}, preview), nil
}

func (s *LandingService) cachedPage(ctx context.Context, key string) (*PageResult, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("page cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var res PageResult
	if err := json.Unmarshal(raw, &res); err != nil {
		s.logger.Warn("page cache entry unreadable", "key", key, "error", err)
		return nil, false
	}
	return &res, true
}

func (s *LandingService) storePage(ctx context.Context, key string, res *PageResult) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		s.logger.Warn("page cache encode failed", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, raw); err != nil {
		s.logger.Warn("page cache write failed", "key", key, "error", err)
	}
}

func (s *LandingService) invalidate(ctx context.Context, businessUnitID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, strings.ToLower(businessUnitID)); err != nil {
		s.logger.Warn("page cache invalidation failed", "business_unit_id", businessUnitID, "error", err)
	}
}

// SaveInput carries a draft update. Nil fields are left unchanged.
type SaveInput struct {
	Country           string
	LanguageCode      string
	Slug              *string
	Blocks            []landing.Block
	HeroSlides        []landing.Slide
	Footer            *landing.Footer
	EnableSocialLogin *bool
}

func applyDraft(p *landing.LandingPage, in SaveInput) {
	draft := p.Draft()
	if in.Blocks != nil {
		blocks := landing.StripDeprecated(in.Blocks)
		for i := range blocks {
			if blocks[i].ID == "" {
				blocks[i].ID = uuid.NewString()
			}
		}
		draft.Blocks = blocks
	}
	if in.HeroSlides != nil {
		draft.HeroSlides = in.HeroSlides
	}
	if in.Footer != nil {
		footer := *in.Footer
		footer.Links = landing.NormalizeFooterLinks(footer.Links)
		draft.Footer = footer
	}
	p.SetDraft(draft)

	if in.Slug != nil {
		// An empty slug is stored as NULL so it does not collide on the unique index.
		if slug := strings.TrimSpace(*in.Slug); slug == "" {
			p.Slug = nil
		} else {
			p.Slug = &slug
		}
	}
	if in.EnableSocialLogin != nil {
		p.EnableSocialLogin = *in.EnableSocialLogin
	}
}

// SavePage upserts the draft of a locale. New rows are created active.
func (s *LandingService) SavePage(ctx context.Context, businessUnit string, in SaveInput) (*landing.LandingPage, error) {
	buID, err := s.resolver.Resolve(ctx, businessUnit)
	if err != nil {
		return nil, err
	}
	country, language := normalizeLocale(in.Country, in.LanguageCode)

	page, err := s.pages.FindByLocale(ctx, buID, country, language)
	created := false
	switch {
	case errors.Is(err, landing.ErrPageNotFound):
		page = &landing.LandingPage{
			BusinessUnitID: buID,
			Country:        country,
			LanguageCode:   language,
			IsActive:       true,
		}
		page.SetDraft(landing.Snapshot{Blocks: []landing.Block{}, HeroSlides: []landing.Slide{}})
		created = true
	case err != nil:
		return nil, fmt.Errorf("find landing page: %w", err)
	}

	applyDraft(page, in)

	if created {
		err = s.pages.Create(ctx, page)
	} else {
		err = s.pages.Save(ctx, page)
	}
	if err != nil {
		return nil, fmt.Errorf("save landing page: %w", err)
	}
	s.invalidate(ctx, buID)

	s.logger.Info("landing page saved",
		"business_unit_id", buID,
		"country", country,
		"language", language,
		"page_id", page.ID,
		"created", created,
	)
	return page, nil
}

// Publish copies the draft of a locale to its live snapshot, or takes the
// live snapshot down when publish is false.
func (s *LandingService) Publish(ctx context.Context, businessUnit, country, language string, publish bool) (*landing.LandingPage, error) {
	buID, err := s.resolver.Resolve(ctx, businessUnit)
	if err != nil {
		return nil, err
	}
	country, language = normalizeLocale(country, language)

	page, err := s.pages.FindByLocale(ctx, buID, country, language)
	if err != nil {
		return nil, err
	}

	if publish {
		page.Publish(s.now().UTC())
	} else {
		page.Unpublish()
	}
	if err := s.pages.Save(ctx, page); err != nil {
		return nil, fmt.Errorf("save publish state: %w", err)
	}
	s.invalidate(ctx, buID)

	s.logger.Info("landing page publish state changed", "page_id", page.ID, "published", publish)
	return page, nil
}

func (s *LandingService) ListLocales(ctx context.Context, businessUnit string) ([]locale.Entry, error) {
	buID, err := s.resolver.Resolve(ctx, businessUnit)
	if err != nil {
		return nil, err
	}
	refs, err := s.pages.ListLocaleRefs(ctx, buID)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	return locale.ListLocales(refs), nil
}

// FindDuplicateActive reports locales holding more than one active page.
// It only diagnoses; resolving a conflict is left to an operator.
func (s *LandingService) FindDuplicateActive(ctx context.Context, businessUnit string) ([]locale.Conflict, error) {
	buID, err := s.resolver.Resolve(ctx, businessUnit)
	if err != nil {
		return nil, err
	}
	refs, err := s.pages.ListLocaleRefs(ctx, buID)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	return locale.FindDuplicateActive(refs), nil
}

func (s *LandingService) DeleteLocale(ctx context.Context, businessUnit, country, language string) error {
	if strings.TrimSpace(country) == "" || strings.TrimSpace(language) == "" {
		return ErrLocaleRequired
	}
	buID, err := s.resolver.Resolve(ctx, businessUnit)
	if err != nil {
		return err
	}
	country, language = normalizeLocale(country, language)

	n, err := s.pages.DeleteByLocale(ctx, buID, country, language)
	if err != nil {
		return fmt.Errorf("delete locale: %w", err)
	}
	if n == 0 {
		return landing.ErrPageNotFound
	}
	s.invalidate(ctx, buID)

	s.logger.Info("landing locale deleted", "business_unit_id", buID, "country", country, "language", language, "rows", n)
	return nil
}

// SetActive switches a page on or off. Activating a page deactivates the
// other rows of its locale, which is how a duplicate conflict is resolved.
func (s *LandingService) SetActive(ctx context.Context, businessUnit, pageID string, active bool) (*landing.LandingPage, error) {
	buID, err := s.resolver.Resolve(ctx, businessUnit)
	if err != nil {
		return nil, err
	}
	page, err := s.pages.FindByID(ctx, pageID)
	if err != nil {
		return nil, err
	}
	if page.BusinessUnitID != buID {
		return nil, ErrWrongBusinessUnit
	}

	if active {
		err = s.pages.Activate(ctx, page)
	} else {
		err = s.pages.Deactivate(ctx, page.ID)
		page.IsActive = false
	}
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, buID)
	return page, nil
}

const (
	ModeBlank = "blank"
	ModeCopy  = "copy"
)

type CreateLocaleInput struct {
	Country        string
	LanguageCode   string
	Mode           string
	SourceCountry  string
	SourceLanguage string
}

// CreateLocale adds a page for a new locale, either empty or copied from
// the draft of an existing one. The copy starts unpublished and without a slug.
func (s *LandingService) CreateLocale(ctx context.Context, businessUnit string, in CreateLocaleInput) (*landing.LandingPage, error) {
	if strings.TrimSpace(in.Country) == "" || strings.TrimSpace(in.LanguageCode) == "" {
		return nil, ErrLocaleRequired
	}
	mode := in.Mode
	if mode == "" {
		mode = ModeBlank
	}
	if mode != ModeBlank && mode != ModeCopy {
		return nil, ErrUnsupportedMode
	}

	buID, err := s.resolver.Resolve(ctx, businessUnit)
	if err != nil {
		return nil, err
	}
	country, language := normalizeLocale(in.Country, in.LanguageCode)

	if _, err := s.pages.FindByLocale(ctx, buID, country, language); err == nil {
		return nil, landing.ErrLocaleExists
	} else if !errors.Is(err, landing.ErrPageNotFound) {
		return nil, fmt.Errorf("find landing page: %w", err)
	}

	page := &landing.LandingPage{
		BusinessUnitID: buID,
		Country:        country,
		LanguageCode:   language,
		IsActive:       true,
	}
	draft := landing.Snapshot{Blocks: []landing.Block{}, HeroSlides: []landing.Slide{}}

	if mode == ModeCopy {
		if strings.TrimSpace(in.SourceCountry) == "" || strings.TrimSpace(in.SourceLanguage) == "" {
			return nil, ErrLocaleRequired
		}
		srcCountry, srcLanguage := normalizeLocale(in.SourceCountry, in.SourceLanguage)
		src, err := s.pages.FindByLocale(ctx, buID, srcCountry, srcLanguage)
		if errors.Is(err, landing.ErrPageNotFound) {
			return nil, ErrSourceNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("find source locale: %w", err)
		}
		draft = src.Draft()
		draft.Blocks = landing.NormalizeOrder(draft.Blocks)
		page.EnableSocialLogin = src.EnableSocialLogin
	}
	page.SetDraft(draft)

	if err := s.pages.Create(ctx, page); err != nil {
		return nil, fmt.Errorf("create locale: %w", err)
	}
	s.invalidate(ctx, buID)

	s.logger.Info("landing locale created", "business_unit_id", buID, "country", country, "language", language, "mode", mode)
	return page, nil
}

type AnchorSync struct {
	PageID       string `json:"page_id"`
	Country      string `json:"country"`
	LanguageCode string `json:"language_code"`
	Blocks       int    `json:"blocks"`
}

// SyncAnchors copies the block anchors of each country's English page onto
// the other language pages of that country, matching blocks by position.
func (s *LandingService) SyncAnchors(ctx context.Context, businessUnit string) ([]AnchorSync, error) {
	buID, err := s.resolver.Resolve(ctx, businessUnit)
	if err != nil {
		return nil, err
	}
	pages, err := s.pages.ListByBusinessUnit(ctx, buID)
	if err != nil {
		return nil, fmt.Errorf("list landing pages: %w", err)
	}

	byCountry := map[string][]*landing.LandingPage{}
	var countries []string
	for i := range pages {
		p := &pages[i]
		if _, ok := byCountry[p.Country]; !ok {
			countries = append(countries, p.Country)
		}
		byCountry[p.Country] = append(byCountry[p.Country], p)
	}

	out := []AnchorSync{}
	for _, country := range countries {
		group := byCountry[country]
		source := anchorSource(group)
		if source == nil {
			s.logger.Info("no english page, anchors not synced", "business_unit_id", buID, "country", country)
			continue
		}

		srcBlocks := source.Draft().Blocks
		for _, p := range group {
			if p.LanguageCode == DefaultLanguage {
				continue
			}
			draft := p.Draft()
			draft.Blocks = landing.SyncAnchors(srcBlocks, draft.Blocks)
			p.SetDraft(draft)
			if err := s.pages.Save(ctx, p); err != nil {
				return out, fmt.Errorf("save anchors for %s/%s: %w", p.Country, p.LanguageCode, err)
			}
			out = append(out, AnchorSync{
				PageID:       p.ID,
				Country:      p.Country,
				LanguageCode: p.LanguageCode,
				Blocks:       len(draft.Blocks),
			})
		}
	}
	if len(out) > 0 {
		s.invalidate(ctx, buID)
	}
	return out, nil
}

// anchorSource picks the English page of a country, preferring the active one.
func anchorSource(group []*landing.LandingPage) *landing.LandingPage {
	var fallback *landing.LandingPage
	for _, p := range group {
		if p.LanguageCode != DefaultLanguage {
			continue
		}
		if p.IsActive {
			return p
		}
		if fallback == nil {
			fallback = p
		}
	}
	return fallback
}

func (s *LandingService) editBlocks(
	ctx context.Context,
	businessUnit, country, language string,
	edit func([]landing.Block) ([]landing.Block, error),
) (*landing.LandingPage, error) {
	buID, err := s.resolver.Resolve(ctx, businessUnit)
	if err != nil {
		return nil, err
	}
	country, language = normalizeLocale(country, language)

	page, err := s.pages.FindByLocale(ctx, buID, country, language)
	if err != nil {
		return nil, err
	}

	draft := page.Draft()
	blocks, err := edit(draft.Blocks)
	if err != nil {
		return nil, err
	}
	draft.Blocks = blocks
	page.SetDraft(draft)

	if err := s.pages.Save(ctx, page); err != nil {
		return nil, fmt.Errorf("save blocks: %w", err)
	}
	s.invalidate(ctx, buID)
	return page, nil
}

func (s *LandingService) ReorderBlocks(ctx context.Context, businessUnit, country, language string, ids []string) (*landing.LandingPage, error) {
	return s.editBlocks(ctx, businessUnit, country, language, func(blocks []landing.Block) ([]landing.Block, error) {
		return landing.ReorderBlocks(blocks, ids)
	})
}

// AddBlock inserts a new block of blockType with its default data. A nil
// position appends it.
func (s *LandingService) AddBlock(ctx context.Context, businessUnit, country, language, blockType, name string, position *int) (*landing.LandingPage, error) {
	return s.editBlocks(ctx, businessUnit, country, language, func(blocks []landing.Block) ([]landing.Block, error) {
		at := len(blocks)
		if position != nil {
			at = *position
		}
		b, err := landing.NewBlock(blockType, name, at)
		if err != nil {
			return nil, err
		}
		return landing.InsertBlock(blocks, b, at), nil
	})
}

func (s *LandingService) RemoveBlock(ctx context.Context, businessUnit, country, language, blockID string) (*landing.LandingPage, error) {
	return s.editBlocks(ctx, businessUnit, country, language, func(blocks []landing.Block) ([]landing.Block, error) {
		return landing.RemoveBlock(blocks, blockID)
	})
}

type UnitConflicts struct {
	BusinessUnitID string            `json:"business_unit_id"`
	Conflicts      []locale.Conflict `json:"conflicts"`
}

// ScanDuplicates runs FindDuplicateActive over every business unit that has pages.
// Only units with conflicts are returned.
func (s *LandingService) ScanDuplicates(ctx context.Context) ([]UnitConflicts, error) {
	ids, err := s.pages.ListBusinessUnitIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list business units: %w", err)
	}

	out := []UnitConflicts{}
	for _, id := range ids {
		refs, err := s.pages.ListLocaleRefs(ctx, id)
		if err != nil {
			return out, fmt.Errorf("list locales of %s: %w", id, err)
		}
		if conflicts := locale.FindDuplicateActive(refs); len(conflicts) > 0 {
			out = append(out, UnitConflicts{BusinessUnitID: id, Conflicts: conflicts})
		}
	}
	return out, nil
}
