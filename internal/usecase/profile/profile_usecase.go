package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/repository"
)

// UseCase is the profile store: upsert semantics for user info, profile and
// intent, with the user row as a hard prerequisite for the other two.
type UseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	intentRepo  repository.IntentRepository
}

func NewUseCase(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	intentRepo repository.IntentRepository,
) *UseCase {
	return &UseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		intentRepo:  intentRepo,
	}
}

// UserInfoRequest is onboarding step 1.
type UserInfoRequest struct {
	DisplayName string   `json:"display_name" binding:"required,min=2,max=100"`
	AgeBand     string   `json:"age_band" binding:"required,ageband"`
	Timezone    string   `json:"timezone" binding:"required,max=64"`
	Languages   []string `json:"languages" binding:"omitempty,max=10"`
	Role        string   `json:"role" binding:"required,oneof=founder teammate mentor investor"`
}

// ProfileRequest is onboarding step 2.
type ProfileRequest struct {
	Headline        *string  `json:"headline" binding:"omitempty,max=120"`
	Bio             *string  `json:"bio" binding:"omitempty,max=500"`
	Domains         []string `json:"domains" binding:"required,min=1,max=10"`
	Skills          []string `json:"skills" binding:"required,min=1,max=10"`
	Stage           *string  `json:"stage" binding:"omitempty,stage"`
	CommitmentHours *int     `json:"commitment_hours" binding:"omitempty,min=1,max=80"`
}

// IntentRequest is onboarding step 3. Investor fields are only legal when
// the user's role is investor.
type IntentRequest struct {
	Seeking          string   `json:"seeking" binding:"required,oneof=founder cofounder teammate mentor investor"`
	ExpertiseAreas   []string `json:"expertise_areas" binding:"omitempty,max=10"`
	ExperienceLevel  *string  `json:"experience_level" binding:"omitempty,max=32"`
	AvailabilityText *string  `json:"availability_text" binding:"omitempty,max=500"`
	InvestmentType   *string  `json:"investment_type" binding:"omitempty,oneof=angel vc syndicate"`
	PortfolioSize    *string  `json:"portfolio_size" binding:"omitempty,max=32"`
	PortfolioURL     *string  `json:"portfolio_url" binding:"omitempty,url,max=255"`
}

// OnboardingStatus mirrors what each onboarding step has persisted.
type OnboardingStatus struct {
	HasUser    bool `json:"has_user"`
	HasProfile bool `json:"has_profile"`
	HasIntent  bool `json:"has_intent"`
	IsComplete bool `json:"is_complete"`
}

// UpsertUser updates the identity fields of an existing user. The row itself
// is created at authentication; onboarding may be re-submitted freely.
func (uc *UseCase) UpsertUser(ctx context.Context, userID string, req *UserInfoRequest) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.DisplayName = req.DisplayName
	user.AgeBand = domain.AgeBand(req.AgeBand)
	user.Timezone = req.Timezone
	user.Role = domain.Role(req.Role)
	if req.Languages != nil {
		user.Languages = req.Languages
	}

	if err := uc.userRepo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return user, nil
}

// UpsertProfile writes the profile, rejecting the call when no user row
// exists yet for the id.
func (uc *UseCase) UpsertProfile(ctx context.Context, userID string, req *ProfileRequest) (*domain.Profile, error) {
	if err := uc.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		UserID:          userID,
		Headline:        req.Headline,
		Bio:             req.Bio,
		Domains:         req.Domains,
		Skills:          req.Skills,
		CommitmentHours: req.CommitmentHours,
	}
	if req.Stage != nil {
		stage := domain.Stage(*req.Stage)
		profile.Stage = &stage
	}

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return profile, nil
}

// UpsertIntent writes the intent. Investor-only fields must be absent for
// any other role.
func (uc *UseCase) UpsertIntent(ctx context.Context, userID string, req *IntentRequest) (*domain.Intent, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserRequired
		}
		return nil, err
	}

	hasInvestorFields := req.InvestmentType != nil || req.PortfolioSize != nil || req.PortfolioURL != nil
	if hasInvestorFields && user.Role != domain.RoleInvestor {
		return nil, fmt.Errorf("%w: investor fields require the investor role", domain.ErrInvalidArgument)
	}

	intent := &domain.Intent{
		UserID:           userID,
		Seeking:          domain.Seeking(req.Seeking),
		ExpertiseAreas:   req.ExpertiseAreas,
		ExperienceLevel:  req.ExperienceLevel,
		AvailabilityText: req.AvailabilityText,
	}
	if user.Role == domain.RoleInvestor && req.InvestmentType != nil {
		intent.Investor = &domain.InvestorDetails{
			InvestmentType: *req.InvestmentType,
			PortfolioSize:  req.PortfolioSize,
			PortfolioURL:   req.PortfolioURL,
		}
	}

	if err := uc.intentRepo.Upsert(ctx, intent); err != nil {
		return nil, fmt.Errorf("failed to upsert intent: %w", err)
	}
	return intent, nil
}

// Status reports which onboarding steps have been persisted.
func (uc *UseCase) Status(ctx context.Context, userID string) (*OnboardingStatus, error) {
	status := &OnboardingStatus{}

	if _, err := uc.userRepo.GetByID(ctx, userID); err == nil {
		status.HasUser = true
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if _, err := uc.profileRepo.GetByUserID(ctx, userID); err == nil {
		status.HasProfile = true
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	if _, err := uc.intentRepo.GetByUserID(ctx, userID); err == nil {
		status.HasIntent = true
	} else if !errors.Is(err, domain.ErrIntentNotFound) {
		return nil, err
	}

	status.IsComplete = status.HasUser && status.HasProfile && status.HasIntent
	return status, nil
}

// Get returns the candidate-shaped bundle for one user.
func (uc *UseCase) Get(ctx context.Context, userID string) (*domain.Candidate, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		profile = &domain.Profile{UserID: userID}
	}

	bundle := &domain.Candidate{User: user.Public(), Profile: profile}

	intent, err := uc.intentRepo.GetByUserID(ctx, userID)
	if err == nil {
		bundle.Intent = intent
	} else if !errors.Is(err, domain.ErrIntentNotFound) {
		return nil, err
	}

	return bundle, nil
}

func (uc *UseCase) requireUser(ctx context.Context, userID string) error {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserRequired
		}
		return err
	}
	return nil
}
