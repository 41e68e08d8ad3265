package domain

import "time"

// Stage is the funding/product stage; meaningful only for founders.
type Stage string

const (
	StageIdea      Stage = "idea"
	StagePrototype Stage = "prototype"
	StageLaunched  Stage = "launched"
)

func (s Stage) IsValid() bool {
	switch s {
	case StageIdea, StagePrototype, StageLaunched:
		return true
	}
	return false
}

type Profile struct {
	UserID          string    `json:"user_id" db:"user_id"`
	Headline        *string   `json:"headline" db:"headline"`
	Bio             *string   `json:"bio" db:"bio"`
	Domains         []string  `json:"domains" db:"domains"`
	Skills          []string  `json:"skills" db:"skills"`
	Stage           *Stage    `json:"stage" db:"stage"`
	CommitmentHours *int      `json:"commitment_hours" db:"commitment_hours"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
