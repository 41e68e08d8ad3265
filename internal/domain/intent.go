package domain

// Seeking is the role a user wants to find.
type Seeking string

const (
	SeekingFounder   Seeking = "founder"
	SeekingCofounder Seeking = "cofounder"
	SeekingTeammate  Seeking = "teammate"
	SeekingMentor    Seeking = "mentor"
	SeekingInvestor  Seeking = "investor"
)

func (s Seeking) IsValid() bool {
	switch s {
	case SeekingFounder, SeekingCofounder, SeekingTeammate, SeekingMentor, SeekingInvestor:
		return true
	}
	return false
}

// InvestorDetails holds fields that only make sense for investor users.
// The profile usecase rejects them for any other role.
type InvestorDetails struct {
	InvestmentType string  `json:"investment_type" db:"investment_type"`
	PortfolioSize  *string `json:"portfolio_size" db:"portfolio_size"`
	PortfolioURL   *string `json:"portfolio_url" db:"portfolio_url"`
}

type Intent struct {
	UserID           string           `json:"user_id" db:"user_id"`
	Seeking          Seeking          `json:"seeking" db:"seeking"`
	ExpertiseAreas   []string         `json:"expertise_areas" db:"expertise_areas"`
	ExperienceLevel  *string          `json:"experience_level" db:"experience_level"`
	AvailabilityText *string          `json:"availability_text" db:"availability_text"`
	Investor         *InvestorDetails `json:"investor,omitempty"`
}
