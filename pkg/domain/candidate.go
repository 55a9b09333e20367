package domain

// Candidate is a simulated nearby entity drawn from the candidate feed and
// evaluated against alert preferences. Two variants exist: PersonCandidate
// for the dating kind and ItemCandidate for the marketplace kind. Candidates
// are static configuration data, never mutated.
type Candidate interface {
	Kind() AlertKind
	Display() CandidateDisplay
}

// CandidateDisplay holds the presentation fields snapshotted into a
// notification when a candidate matches
type CandidateDisplay struct {
	ID       string
	Name     string
	Detail   string
	Distance string
	Initial  string
	Color    string
}

// PersonCandidate is a nearby person with age and interest tags
type PersonCandidate struct {
	CandidateDisplay
	Age       int
	Interests []string
}

// Kind returns KindDating
func (c PersonCandidate) Kind() AlertKind { return KindDating }

// Display returns the presentation fields
func (c PersonCandidate) Display() CandidateDisplay { return c.CandidateDisplay }

// ItemCandidate is a nearby marketplace item with category and price
type ItemCandidate struct {
	CandidateDisplay
	Category string
	Price    float64
}

// Kind returns KindMarketplace
func (c ItemCandidate) Kind() AlertKind { return KindMarketplace }

// Display returns the presentation fields
func (c ItemCandidate) Display() CandidateDisplay { return c.CandidateDisplay }
