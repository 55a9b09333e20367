package domain

// AlertKind discriminates alert preferences and candidates
type AlertKind string

// alert kinds, evaluated in declaration order (dating before marketplace)
const (
	KindDating      AlertKind = "dating"
	KindMarketplace AlertKind = "marketplace"
)

// Channel is a notification delivery channel selected per alert
type Channel string

// delivery channels
const (
	ChannelInApp Channel = "inApp"
	ChannelPush  Channel = "push"
)

// AlertPreference is a user-declared rule describing what kind of nearby
// entity should trigger a notification. Exactly two variants exist:
// DatingAlert and MarketplaceAlert.
type AlertPreference interface {
	Kind() AlertKind
	IsEnabled() bool
	HasChannel(c Channel) bool
}

// AlertBase holds the fields shared by both alert variants
type AlertBase struct {
	Enabled      bool      `json:"enabled"`
	RadiusMeters int       `json:"radius_meters"`
	NotifyVia    []Channel `json:"notify_via"`
}

// IsEnabled reports whether the alert is active
func (a AlertBase) IsEnabled() bool { return a.Enabled }

// HasChannel checks if a delivery channel is selected
func (a AlertBase) HasChannel(c Channel) bool {
	for _, v := range a.NotifyVia {
		if v == c {
			return true
		}
	}
	return false
}

// DatingAlert matches nearby people by age range and shared interests.
// An empty interest set never matches, interest overlap is required.
type DatingAlert struct {
	AlertBase
	AgeMin    int      `json:"age_min"`
	AgeMax    int      `json:"age_max"`
	Interests []string `json:"interests"`
}

// Kind returns KindDating
func (a DatingAlert) Kind() AlertKind { return KindDating }

// MarketplaceAlert matches nearby listings by category or keyword, capped by price.
// Keywords is a free-text comma-separated list, compared case-insensitively
// as substrings of the listing name.
type MarketplaceAlert struct {
	AlertBase
	Keywords   string   `json:"keywords"`
	Categories []string `json:"categories"`
	MaxPrice   float64  `json:"max_price"`
}

// Kind returns KindMarketplace
func (a MarketplaceAlert) Kind() AlertKind { return KindMarketplace }

// PreferenceSet holds at most one alert per kind. The zero value is a valid
// empty set. Replacement is whole-set, there is no partial update.
type PreferenceSet struct {
	Dating      *DatingAlert      `json:"dating,omitempty"`
	Marketplace *MarketplaceAlert `json:"marketplace,omitempty"`
}

// Ordered returns the alerts in stable evaluation order, dating first.
// Nil slots are skipped.
func (p PreferenceSet) Ordered() []AlertPreference {
	var res []AlertPreference
	if p.Dating != nil {
		res = append(res, *p.Dating)
	}
	if p.Marketplace != nil {
		res = append(res, *p.Marketplace)
	}
	return res
}

// Active reports whether at least one alert is present and enabled
func (p PreferenceSet) Active() bool {
	if p.Dating != nil && p.Dating.Enabled {
		return true
	}
	if p.Marketplace != nil && p.Marketplace.Enabled {
		return true
	}
	return false
}
