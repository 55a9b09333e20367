package engine

import (
	"strings"

	"github.com/kateryna-ts/NiceFrogbeta/pkg/domain"
)

// firstMatch evaluates enabled preferences against a candidate in stable
// order (dating before marketplace) and returns the first whose predicate
// holds. At most one preference wins per candidate.
func firstMatch(prefs domain.PreferenceSet, c domain.Candidate) (domain.AlertPreference, bool) {
	for _, pref := range prefs.Ordered() {
		if !pref.IsEnabled() {
			continue
		}
		if matches(pref, c) {
			return pref, true
		}
	}
	return nil, false
}

// matches dispatches to the kind-specific predicate. A preference only ever
// sees candidates of its own kind.
func matches(pref domain.AlertPreference, c domain.Candidate) bool {
	switch alert := pref.(type) {
	case domain.DatingAlert:
		person, ok := c.(domain.PersonCandidate)
		return ok && matchDating(alert, person)
	case domain.MarketplaceAlert:
		item, ok := c.(domain.ItemCandidate)
		return ok && matchMarketplace(alert, item)
	}
	return false
}

// matchDating requires the age inside [AgeMin, AgeMax] and a non-empty
// interest intersection. An empty preference interest set never matches,
// as does an inverted age range.
func matchDating(alert domain.DatingAlert, person domain.PersonCandidate) bool {
	if person.Age < alert.AgeMin || person.Age > alert.AgeMax {
		return false
	}
	for _, want := range alert.Interests {
		for _, have := range person.Interests {
			if want == have {
				return true
			}
		}
	}
	return false
}

// matchMarketplace requires (category member OR keyword substring) AND price
// within cap. Keywords are comma-split, trimmed and compared
// case-insensitively against the candidate name.
func matchMarketplace(alert domain.MarketplaceAlert, item domain.ItemCandidate) bool {
	if item.Price > alert.MaxPrice {
		return false
	}

	for _, cat := range alert.Categories {
		if cat == item.Category {
			return true
		}
	}

	name := strings.ToLower(item.Name)
	for _, kw := range strings.Split(alert.Keywords, ",") {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(name, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
