package domain

// Candidate bundles everything the feed shows about an eligible user.
// Intent is optional: a user may not have finished onboarding step 3.
type Candidate struct {
	User    *PublicUser `json:"user"`
	Profile *Profile    `json:"profile"`
	Intent  *Intent     `json:"intent,omitempty"`
}
