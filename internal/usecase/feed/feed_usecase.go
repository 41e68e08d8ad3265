package feed

import (
	"context"
	"errors"
	"fmt"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/repository"
)

const defaultLimit = 50

// UseCase is the candidate selector: it produces the ordered list of users
// eligible to be shown to a requester, excluding the requester and anyone
// they have already decided on.
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

// FilterParams are request-scoped; every field is optional. Filters are
// set-membership or numeric-threshold predicates over the fetched list.
type FilterParams struct {
	MaxAge          int
	Seeking         []domain.Seeking
	Domains         []string
	Skills          []string
	Expertise       []string
	Stage           *domain.Stage
	ExperienceLevel *string
	InvestorType    *string
}

func (f *FilterParams) empty() bool {
	return f == nil || (f.MaxAge == 0 && len(f.Seeking) == 0 &&
		len(f.Domains) == 0 && len(f.Skills) == 0 && len(f.Expertise) == 0 &&
		f.Stage == nil && f.ExperienceLevel == nil && f.InvestorType == nil)
}

// Candidates returns up to limit eligible candidates for userID, newest
// user first. An exhausted feed is an empty list, not an error. The result
// is all-or-nothing: a cancelled context yields no partial list.
func (uc *UseCase) Candidates(ctx context.Context, userID string, limit int, filters *FilterParams) ([]*domain.Candidate, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidArgument)
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	users, err := uc.userRepo.ListCandidates(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	if len(users) == 0 {
		return []*domain.Candidate{}, nil
	}

	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	profiles, err := uc.profileRepo.GetByUserIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate profiles: %w", err)
	}
	intents, err := uc.intentRepo.GetByUserIDs(ctx, ids)
	if err != nil && !errors.Is(err, domain.ErrIntentNotFound) {
		return nil, fmt.Errorf("failed to load candidate intents: %w", err)
	}

	profileByUser := make(map[string]*domain.Profile, len(profiles))
	for _, p := range profiles {
		profileByUser[p.UserID] = p
	}
	intentByUser := make(map[string]*domain.Intent, len(intents))
	for _, i := range intents {
		intentByUser[i.UserID] = i
	}

	candidates := make([]*domain.Candidate, 0, len(users))
	for _, u := range users {
		profile, ok := profileByUser[u.ID]
		if !ok {
			// Candidate has not finished onboarding step 2; still shown,
			// with an empty profile, matching the source behavior.
			profile = &domain.Profile{UserID: u.ID}
		}
		candidates = append(candidates, &domain.Candidate{
			User:    u.Public(),
			Profile: profile,
			Intent:  intentByUser[u.ID],
		})
	}

	return Filter(candidates, filters), nil
}

// Filter applies the predicate set to an already-fetched candidate list.
// It is a pure function; ordering of the input is preserved.
func Filter(candidates []*domain.Candidate, f *FilterParams) []*domain.Candidate {
	if f.empty() {
		return candidates
	}
	out := make([]*domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if matches(c, f) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c *domain.Candidate, f *FilterParams) bool {
	if f.MaxAge > 0 && c.User.AgeBand.UpperBound() > f.MaxAge {
		return false
	}
	if len(f.Seeking) > 0 {
		if c.Intent == nil || !containsSeeking(f.Seeking, c.Intent.Seeking) {
			return false
		}
	}
	if len(f.Domains) > 0 && !intersects(c.Profile.Domains, f.Domains) {
		return false
	}
	if len(f.Skills) > 0 && !intersects(c.Profile.Skills, f.Skills) {
		return false
	}
	if len(f.Expertise) > 0 {
		if c.Intent == nil || !intersects(c.Intent.ExpertiseAreas, f.Expertise) {
			return false
		}
	}
	if f.Stage != nil {
		if c.Profile.Stage == nil || *c.Profile.Stage != *f.Stage {
			return false
		}
	}
	if f.ExperienceLevel != nil {
		if c.Intent == nil || c.Intent.ExperienceLevel == nil || *c.Intent.ExperienceLevel != *f.ExperienceLevel {
			return false
		}
	}
	if f.InvestorType != nil {
		if c.Intent == nil || c.Intent.Investor == nil || c.Intent.Investor.InvestmentType != *f.InvestorType {
			return false
		}
	}
	return true
}

func containsSeeking(set []domain.Seeking, s domain.Seeking) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
