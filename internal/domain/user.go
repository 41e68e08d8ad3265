package domain

import "time"

// AgeBand is an ordinal age bucket; exact ages are never stored.
type AgeBand string

const (
	AgeBand16To18 AgeBand = "16-18"
	AgeBand19To22 AgeBand = "19-22"
	AgeBand23To26 AgeBand = "23-26"
	AgeBand27Plus AgeBand = "27+"
)

func (b AgeBand) IsValid() bool {
	switch b {
	case AgeBand16To18, AgeBand19To22, AgeBand23To26, AgeBand27Plus:
		return true
	}
	return false
}

// UpperBound returns the highest age the band can contain. The open-ended
// band resolves to its floor so a max-age filter of >= 27 still includes it.
func (b AgeBand) UpperBound() int {
	switch b {
	case AgeBand16To18:
		return 18
	case AgeBand19To22:
		return 22
	case AgeBand23To26:
		return 26
	case AgeBand27Plus:
		return 27
	}
	return 0
}

type Role string

const (
	RoleFounder  Role = "founder"
	RoleTeammate Role = "teammate"
	RoleMentor   Role = "mentor"
	RoleInvestor Role = "investor"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleFounder, RoleTeammate, RoleMentor, RoleInvestor:
		return true
	}
	return false
}

type User struct {
	ID               string    `json:"id" db:"id"`
	Email            string    `json:"email" db:"email"`
	DisplayName      string    `json:"display_name" db:"display_name"`
	AgeBand          AgeBand   `json:"age_band" db:"age_band"`
	Timezone         string    `json:"timezone" db:"timezone"`
	Languages        []string  `json:"languages" db:"languages"`
	Role             Role      `json:"role" db:"role"`
	VerificationTier int       `json:"verification_tier" db:"verification_tier"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// PublicUser is the subset of User shown to other users.
type PublicUser struct {
	ID               string   `json:"id"`
	DisplayName      string   `json:"display_name"`
	AgeBand          AgeBand  `json:"age_band"`
	Timezone         string   `json:"timezone"`
	Languages        []string `json:"languages"`
	Role             Role     `json:"role"`
	VerificationTier int      `json:"verification_tier"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:               u.ID,
		DisplayName:      u.DisplayName,
		AgeBand:          u.AgeBand,
		Timezone:         u.Timezone,
		Languages:        u.Languages,
		Role:             u.Role,
		VerificationTier: u.VerificationTier,
	}
}
