package landing

import "strings"

// Soft operational budgets for hero media. Nothing here blocks a save.
const (
	PosterMaxBytes     int64 = 50 * 1024
	VideoWarnBytes     int64 = 5 * 1024 * 1024
	VideoCriticalBytes int64 = 10 * 1024 * 1024
)

const (
	SeverityOK       = "ok"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

const (
	IssuePosterMissing   = "poster_missing"
	IssuePosterTimeSeek  = "poster_time_seek"
	IssuePosterTooLarge  = "poster_too_large"
	IssueVideoTooLarge   = "video_too_large"
	IssueSizeUnavailable = "size_unavailable"
)

type MediaIssue struct {
	SlideIndex int    `json:"slide_index"`
	Filename   string `json:"filename,omitempty"`
	Kind       string `json:"kind"`
	Severity   string `json:"severity"`
	URL        string `json:"url"`
	SizeBytes  int64  `json:"size_bytes,omitempty"`
}

// NeedsPosterOptimization is true for a video slide whose poster was never
// generated: either missing, or pointing at the video with a #t= seek.
func (s Slide) NeedsPosterOptimization() bool {
	if !s.IsVideo() {
		return false
	}
	return s.PosterURL == "" || strings.Contains(s.PosterURL, "#t=")
}

// PosterIssues checks the poster of every video slide without touching the network.
func PosterIssues(slides []Slide) []MediaIssue {
	out := []MediaIssue{}
	for i, s := range slides {
		if !s.IsVideo() {
			continue
		}
		switch {
		case s.PosterURL == "":
			out = append(out, MediaIssue{
				SlideIndex: i, Filename: s.OriginalFilename,
				Kind: IssuePosterMissing, Severity: SeverityWarning, URL: s.BackgroundURL,
			})
		case strings.Contains(s.PosterURL, "#t="):
			out = append(out, MediaIssue{
				SlideIndex: i, Filename: s.OriginalFilename,
				Kind: IssuePosterTimeSeek, Severity: SeverityWarning, URL: s.PosterURL,
			})
		}
	}
	return out
}

func VideoSizeSeverity(size int64) string {
	switch {
	case size > VideoCriticalBytes:
		return SeverityCritical
	case size > VideoWarnBytes:
		return SeverityWarning
	default:
		return SeverityOK
	}
}

func PosterSizeSeverity(size int64) string {
	if size > PosterMaxBytes {
		return SeverityWarning
	}
	return SeverityOK
}
