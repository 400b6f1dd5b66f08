package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"landing-platform/internal/domain/landing"

	"golang.org/x/sync/errgroup"
)

const mediaProbeLimit = 4

type MediaAudit struct {
	PageID  string               `json:"page_id"`
	Slides  int                  `json:"slides"`
	Probed  int                  `json:"probed"`
	Issues  []landing.MediaIssue `json:"issues"`
	Healthy bool                 `json:"healthy"`
}

type mediaProbe struct {
	slide    int
	filename string
	url      string
	poster   bool
}

// AuditMedia checks the hero slides of a locale's draft against the media
// budgets. Poster checks need no network; sizes are probed only when a
// prober is configured. Nothing here blocks a save or publish.
func (s *LandingService) AuditMedia(ctx context.Context, businessUnit, country, language string) (*MediaAudit, error) {
	buID, err := s.resolver.Resolve(ctx, businessUnit)
	if err != nil {
		return nil, err
	}
	country, language = normalizeLocale(country, language)

	page, err := s.pages.FindByLocale(ctx, buID, country, language)
	if err != nil {
		return nil, err
	}

	slides := page.Draft().HeroSlides
	issues := landing.PosterIssues(slides)

	var probes []mediaProbe
	if s.prober != nil {
		for i, sl := range slides {
			if !sl.IsVideo() {
				continue
			}
			if sl.BackgroundURL != "" {
				probes = append(probes, mediaProbe{slide: i, filename: sl.OriginalFilename, url: sl.BackgroundURL})
			}
			if sl.PosterURL != "" && !strings.Contains(sl.PosterURL, "#t=") {
				probes = append(probes, mediaProbe{slide: i, filename: sl.OriginalFilename, url: sl.PosterURL, poster: true})
			}
		}
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(mediaProbeLimit)
	for _, p := range probes {
		p := p
		g.Go(func() error {
			issue, ok := s.probeMedia(ctx, p)
			if ok {
				mu.Lock()
				issues = append(issues, issue)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].SlideIndex != issues[j].SlideIndex {
			return issues[i].SlideIndex < issues[j].SlideIndex
		}
		return issues[i].Kind < issues[j].Kind
	})

	return &MediaAudit{
		PageID:  page.ID,
		Slides:  len(slides),
		Probed:  len(probes),
		Issues:  issues,
		Healthy: len(issues) == 0,
	}, nil
}

func (s *LandingService) probeMedia(ctx context.Context, p mediaProbe) (landing.MediaIssue, bool) {
	issue := landing.MediaIssue{SlideIndex: p.slide, Filename: p.filename, URL: p.url}

	size, err := s.prober.Size(ctx, p.url)
	if err != nil {
		s.logger.Warn("media size probe failed", "url", p.url, "error", err)
		issue.Kind = landing.IssueSizeUnavailable
		issue.Severity = landing.SeverityWarning
		return issue, true
	}
	issue.SizeBytes = size

	if p.poster {
		issue.Kind = landing.IssuePosterTooLarge
		issue.Severity = landing.PosterSizeSeverity(size)
	} else {
		issue.Kind = landing.IssueVideoTooLarge
		issue.Severity = landing.VideoSizeSeverity(size)
	}
	return issue, issue.Severity != landing.SeverityOK
}
