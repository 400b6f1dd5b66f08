package locale

import (
	"sort"
	"time"
)

// PageRef is the slice of a landing page row the index needs.
type PageRef struct {
	ID           string
	Country      string
	LanguageCode string
	Slug         *string
	IsActive     bool
	UpdatedAt    time.Time
}

type Entry struct {
	Country       string    `json:"country"`
	LanguageCode  string    `json:"language_code"`
	LandingPageID string    `json:"id"`
	Slug          *string   `json:"slug"`
	IsActive      bool      `json:"is_active"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Pair struct {
	Country      string `json:"country"`
	LanguageCode string `json:"language_code"`
}

// Conflict is a (country, language) with more than one active row.
type Conflict struct {
	Country      string   `json:"country"`
	LanguageCode string   `json:"language_code"`
	PageIDs      []string `json:"page_ids"`
}

func less(aCountry, aLang, bCountry, bLang string) bool {
	if aCountry != bCountry {
		return aCountry < bCountry
	}
	return aLang < bLang
}

// ListLocales returns every row as a locale entry, ordered by country then language.
func ListLocales(pages []PageRef) []Entry {
	out := make([]Entry, 0, len(pages))
	for _, p := range pages {
		out = append(out, Entry{
			Country:       p.Country,
			LanguageCode:  p.LanguageCode,
			LandingPageID: p.ID,
			Slug:          p.Slug,
			IsActive:      p.IsActive,
			UpdatedAt:     p.UpdatedAt,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i].Country, out[i].LanguageCode, out[j].Country, out[j].LanguageCode)
	})
	return out
}

// AvailableLocales returns the distinct active (country, language) pairs for a locale switcher.
func AvailableLocales(pages []PageRef) []Pair {
	seen := map[Pair]bool{}
	out := []Pair{}
	for _, p := range pages {
		if !p.IsActive {
			continue
		}
		k := Pair{Country: p.Country, LanguageCode: p.LanguageCode}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		return less(out[i].Country, out[i].LanguageCode, out[j].Country, out[j].LanguageCode)
	})
	return out
}

// FindDuplicateActive reports every locale served by more than one active row.
// Nothing is resolved here: picking the survivor is left to an operator.
func FindDuplicateActive(pages []PageRef) []Conflict {
	groups := map[Pair][]string{}
	for _, p := range pages {
		if !p.IsActive {
			continue
		}
		k := Pair{Country: p.Country, LanguageCode: p.LanguageCode}
		groups[k] = append(groups[k], p.ID)
	}

	out := []Conflict{}
	for k, ids := range groups {
		if len(ids) < 2 {
			continue
		}
		out = append(out, Conflict{Country: k.Country, LanguageCode: k.LanguageCode, PageIDs: ids})
	}
	sort.Slice(out, func(i, j int) bool {
		return less(out[i].Country, out[i].LanguageCode, out[j].Country, out[j].LanguageCode)
	})
	return out
}
