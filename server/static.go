package server

import "github.com/kateryna-ts/NiceFrogbeta/pkg/domain"

// datingProfiles is the simulated nearby people pool shown in the dating view
var datingProfiles = []domain.DatingProfile{
	{
		ID:        "d1",
		Name:      "Sarah",
		Age:       28,
		Gender:    "F",
		Interests: []string{"Tech", "Coffee", "Hiking"},
		Distance:  "Same Room",
		Bio:       "Looking for someone to discuss startups with.",
		Color:     "pink",
	},
	{
		ID:        "d2",
		Name:      "Mike",
		Age:       32,
		Gender:    "M",
		Interests: []string{"Real Estate", "DJing", "Travel"},
		Distance:  "10m away",
		Bio:       "Here for the networking event.",
		Color:     "blue",
	},
	{
		ID:        "d3",
		Name:      "Jess",
		Age:       25,
		Gender:    "F",
		Interests: []string{"Art", "Design", "Yoga"},
		Distance:  "40m away",
		Bio:       "Just moved to the neighborhood.",
		Color:     "purple",
	},
}

// tokenPackages is the token store catalog, purchases are simulated
var tokenPackages = []domain.TokenPackage{
	{ID: "starter", Name: "Starter", Tokens: 100, Price: 0.99},
	{ID: "popular", Name: "Popular", Tokens: 500, Price: 3.99, Tag: "Most Popular"},
	{ID: "pro", Name: "Pro", Tokens: 1200, Price: 7.99, Tag: "Best Value"},
	{ID: "elite", Name: "Elite", Tokens: 3000, Price: 17.99, Tag: "Power User"},
}
