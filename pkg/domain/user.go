package domain

import "time"

// User is the locally stored profile record. Authentication is simulated:
// there is no server-side identity, the record is fabricated at signup and
// kept for the lifetime of the local profile.
type User struct {
	ID                 string    `json:"id" db:"id"`
	Username           string    `json:"username" db:"username"`
	FirstName          string    `json:"first_name" db:"first_name"`
	LastName           string    `json:"last_name" db:"last_name"`
	Email              string    `json:"email" db:"email"`
	Password           string    `json:"-" db:"password"`
	Bio                string    `json:"bio" db:"bio"`
	Location           string    `json:"location" db:"location"`
	JoinedAt           time.Time `json:"joined_at" db:"joined_at"`
	OnboardingComplete bool      `json:"onboarding_complete" db:"onboarding_complete"`
}

// DatingProfile is a read-only simulated nearby person shown in the dating view
type DatingProfile struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Gender    string   `json:"gender"`
	Interests []string `json:"interests"`
	Distance  string   `json:"distance"`
	Bio       string   `json:"bio"`
	Color     string   `json:"color"`
}

// Wallet holds the token balance for the local profile. Purchases are a pure
// client-side funnel, the balance just increments.
type Wallet struct {
	UserID  string `json:"user_id" db:"user_id"`
	Balance int    `json:"balance" db:"balance"`
}

// TokenPackage is a purchasable bundle in the token store
type TokenPackage struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Tokens int     `json:"tokens"`
	Price  float64 `json:"price"`
	Tag    string  `json:"tag,omitempty"`
}
