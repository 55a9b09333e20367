// Package feed provides the simulated nearby-candidate source the proximity
// engine draws from. It stands in for a live BLE/GPS discovery feed: a fixed
// pool sampled uniformly at random, so the same candidate may recur on any
// draw (passersby re-approach).
package feed

import (
	"math/rand/v2"

	"github.com/kateryna-ts/NiceFrogbeta/pkg/domain"
)

// Source draws candidates from a static pool
type Source struct {
	pool []domain.Candidate
	rnd  func(n int) int
}

// NewSource creates a source over the default nearby pool
func NewSource() *Source {
	return &Source{pool: defaultPool(), rnd: rand.IntN}
}

// NewSourceWithPool creates a source over a custom pool, mostly for tests
func NewSourceWithPool(pool []domain.Candidate) *Source {
	return &Source{pool: pool, rnd: rand.IntN}
}

// Next returns one candidate chosen uniformly at random. Stateless across
// calls, previously returned candidates are not excluded.
func (s *Source) Next() domain.Candidate {
	return s.pool[s.rnd(len(s.pool))]
}

// Pool returns the backing pool, read-only by convention
func (s *Source) Pool() []domain.Candidate { return s.pool }

func defaultPool() []domain.Candidate {
	return []domain.Candidate{
		domain.PersonCandidate{
			CandidateDisplay: domain.CandidateDisplay{
				ID: "m1", Name: "Sarah", Detail: "Age 27 • Yoga, Coffee",
				Distance: "12m away", Initial: "S", Color: "bg-pink-500",
			},
			Age: 27, Interests: []string{"Yoga", "Coffee", "Travel"},
		},
		domain.ItemCandidate{
			CandidateDisplay: domain.CandidateDisplay{
				ID: "m2", Name: "MacBook Pro M1", Detail: "Electronics • $850",
				Distance: "45m away", Initial: "M", Color: "bg-blue-500",
			},
			Category: "Electronics", Price: 850,
		},
		domain.PersonCandidate{
			CandidateDisplay: domain.CandidateDisplay{
				ID: "m3", Name: "James", Detail: "Age 32 • Tech, Startups",
				Distance: "8m away", Initial: "J", Color: "bg-green-500",
			},
			Age: 32, Interests: []string{"Tech", "Startups", "Fitness"},
		},
		domain.ItemCandidate{
			CandidateDisplay: domain.CandidateDisplay{
				ID: "m4", Name: "Vintage Lamp", Detail: "Furniture • $45",
				Distance: "120m away", Initial: "V", Color: "bg-yellow-500",
			},
			Category: "Furniture", Price: 45,
		},
		domain.PersonCandidate{
			CandidateDisplay: domain.CandidateDisplay{
				ID: "m5", Name: "Elena", Detail: "Age 24 • Art, Music",
				Distance: "30m away", Initial: "E", Color: "bg-purple-500",
			},
			Age: 24, Interests: []string{"Art", "Music", "Design"},
		},
		domain.ItemCandidate{
			CandidateDisplay: domain.CandidateDisplay{
				ID: "m6", Name: "Fixie Bike", Detail: "Vehicles • $200",
				Distance: "15m away", Initial: "F", Color: "bg-red-500",
			},
			Category: "Vehicles", Price: 200,
		},
		domain.PersonCandidate{
			CandidateDisplay: domain.CandidateDisplay{
				ID: "m7", Name: "Marcus", Detail: "Age 29 • Food, Travel",
				Distance: "55m away", Initial: "M", Color: "bg-indigo-500",
			},
			Age: 29, Interests: []string{"Food", "Travel", "Startups"},
		},
		domain.ItemCandidate{
			CandidateDisplay: domain.CandidateDisplay{
				ID: "m8", Name: "Textbooks", Detail: "Books • $20",
				Distance: "5m away", Initial: "T", Color: "bg-orange-500",
			},
			Category: "Books", Price: 20,
		},
	}
}
