package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kateryna-ts/NiceFrogbeta/pkg/domain"
)

func TestMatchDating(t *testing.T) {
	alert := domain.DatingAlert{
		AlertBase: domain.AlertBase{Enabled: true},
		AgeMin:    25,
		AgeMax:    30,
		Interests: []string{"Tech", "Coffee"},
	}

	tests := []struct {
		name      string
		age       int
		interests []string
		want      bool
	}{
		{"age in range with shared interest", 28, []string{"Tech", "Hiking"}, true},
		{"age in range without shared interest", 28, []string{"Hiking"}, false},
		{"age out of range with shared interest", 40, []string{"Tech"}, false},
		{"age at lower bound", 25, []string{"Coffee"}, true},
		{"age at upper bound", 30, []string{"Coffee"}, true},
		{"age just below range", 24, []string{"Coffee"}, false},
		{"empty candidate interests", 28, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			person := domain.PersonCandidate{Age: tt.age, Interests: tt.interests}
			assert.Equal(t, tt.want, matchDating(alert, person))
		})
	}
}

func TestMatchDating_EmptyInterestSetNeverMatches(t *testing.T) {
	// no interests selected means no possible overlap, the rule is inert
	alert := domain.DatingAlert{AlertBase: domain.AlertBase{Enabled: true}, AgeMin: 18, AgeMax: 99}
	person := domain.PersonCandidate{Age: 30, Interests: []string{"Tech", "Coffee", "Travel"}}
	assert.False(t, matchDating(alert, person))
}

func TestMatchDating_InvertedAgeRangeNeverMatches(t *testing.T) {
	// degenerate configuration, not an error: the predicate just never holds
	alert := domain.DatingAlert{
		AlertBase: domain.AlertBase{Enabled: true},
		AgeMin:    35, AgeMax: 25,
		Interests: []string{"Tech"},
	}
	person := domain.PersonCandidate{Age: 30, Interests: []string{"Tech"}}
	assert.False(t, matchDating(alert, person))
}

func TestMatchMarketplace(t *testing.T) {
	alert := domain.MarketplaceAlert{
		AlertBase:  domain.AlertBase{Enabled: true},
		Categories: []string{"Electronics"},
		Keywords:   "lamp",
		MaxPrice:   100,
	}

	tests := []struct {
		name     string
		itemName string
		category string
		price    float64
		want     bool
	}{
		{"keyword in name case-insensitive", "Vintage Lamp", "Furniture", 45, true},
		{"category match over price cap", "Drone", "Electronics", 150, false},
		{"category match within cap", "Headphones", "Electronics", 80, true},
		{"no category no keyword", "Fixie Bike", "Vehicles", 50, false},
		{"price exactly at cap", "Desk Lamp", "Furniture", 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := domain.ItemCandidate{
				CandidateDisplay: domain.CandidateDisplay{Name: tt.itemName},
				Category:         tt.category,
				Price:            tt.price,
			}
			assert.Equal(t, tt.want, matchMarketplace(alert, item))
		})
	}
}

func TestMatchMarketplace_KeywordSplitting(t *testing.T) {
	alert := domain.MarketplaceAlert{
		AlertBase: domain.AlertBase{Enabled: true},
		Keywords:  " macbook , , guitar ",
		MaxPrice:  1000,
	}

	macbook := domain.ItemCandidate{CandidateDisplay: domain.CandidateDisplay{Name: "MacBook Pro M1"}, Price: 850}
	assert.True(t, matchMarketplace(alert, macbook), "trimmed keyword should match case-insensitively")

	bike := domain.ItemCandidate{CandidateDisplay: domain.CandidateDisplay{Name: "Fixie Bike"}, Price: 200}
	assert.False(t, matchMarketplace(alert, bike), "blank keyword fragments must not match everything")
}

func TestFirstMatch_StableOrder(t *testing.T) {
	prefs := domain.PreferenceSet{
		Dating: &domain.DatingAlert{
			AlertBase: domain.AlertBase{Enabled: true},
			AgeMin:    18, AgeMax: 99,
			Interests: []string{"Tech"},
		},
		Marketplace: &domain.MarketplaceAlert{
			AlertBase: domain.AlertBase{Enabled: true},
			Keywords:  "lamp",
			MaxPrice:  100,
		},
	}

	person := domain.PersonCandidate{
		CandidateDisplay: domain.CandidateDisplay{Name: "James"},
		Age:              32, Interests: []string{"Tech"},
	}
	matched, ok := firstMatch(prefs, person)
	assert.True(t, ok)
	assert.Equal(t, domain.KindDating, matched.Kind())

	item := domain.ItemCandidate{
		CandidateDisplay: domain.CandidateDisplay{Name: "Vintage Lamp"},
		Category:         "Furniture", Price: 45,
	}
	matched, ok = firstMatch(prefs, item)
	assert.True(t, ok)
	assert.Equal(t, domain.KindMarketplace, matched.Kind())
}

func TestFirstMatch_SkipsDisabled(t *testing.T) {
	prefs := domain.PreferenceSet{
		Dating: &domain.DatingAlert{
			AlertBase: domain.AlertBase{Enabled: false},
			AgeMin:    18, AgeMax: 99,
			Interests: []string{"Tech"},
		},
	}
	person := domain.PersonCandidate{Age: 32, Interests: []string{"Tech"}}

	_, ok := firstMatch(prefs, person)
	assert.False(t, ok)
}

func TestFirstMatch_KindMismatch(t *testing.T) {
	prefs := domain.PreferenceSet{
		Marketplace: &domain.MarketplaceAlert{
			AlertBase: domain.AlertBase{Enabled: true},
			Keywords:  "james", // would match the name if kinds were ignored
			MaxPrice:  1000,
		},
	}
	person := domain.PersonCandidate{CandidateDisplay: domain.CandidateDisplay{Name: "James"}, Age: 32}

	_, ok := firstMatch(prefs, person)
	assert.False(t, ok, "marketplace rules must never see dating candidates")
}
