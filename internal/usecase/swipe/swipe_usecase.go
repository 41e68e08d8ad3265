package swipe

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/infrastructure/gemini"
	"github.com/JSharma2K/cofounded/internal/infrastructure/realtime"
	"github.com/JSharma2K/cofounded/internal/repository"
)

// UseCase is the swipe ledger plus the match resolver. Recording a like
// checks reciprocity synchronously, so one request yields an authoritative
// matched-or-not answer.
type UseCase struct {
	swipeRepo    repository.SwipeRepository
	matchRepo    repository.MatchRepository
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	publisher    realtime.Publisher
	geminiClient *gemini.GeminiClient
}

func NewUseCase(
	swipeRepo repository.SwipeRepository,
	matchRepo repository.MatchRepository,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	publisher realtime.Publisher,
	geminiClient *gemini.GeminiClient,
) *UseCase {
	return &UseCase{
		swipeRepo:    swipeRepo,
		matchRepo:    matchRepo,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		publisher:    publisher,
		geminiClient: geminiClient,
	}
}

// Result is the outcome of recording one swipe. Match is non-nil exactly
// when this call completed a mutual like (or idempotently re-entered one).
type Result struct {
	Swipe *domain.Swipe `json:"swipe"`
	Match *domain.Match `json:"match"`
}

// LikeReceived is one entry of the likes-received view: who liked the user,
// with their public profile.
type LikeReceived struct {
	Swipe   *domain.Swipe      `json:"swipe"`
	User    *domain.PublicUser `json:"user"`
	Profile *domain.Profile    `json:"profile"`
}

// Record persists a directional decision. A repeated decision overwrites
// direction in place; a pass-to-like upgrade triggers the match check the
// same as a fresh like.
func (uc *UseCase) Record(ctx context.Context, swiperID, targetID string, direction domain.SwipeDirection) (*Result, error) {
	if swiperID == "" || targetID == "" {
		return nil, fmt.Errorf("%w: swiper and target are required", domain.ErrInvalidArgument)
	}
	if swiperID == targetID {
		return nil, domain.ErrCannotSwipeSelf
	}
	if !direction.IsValid() {
		return nil, domain.ErrInvalidDirection
	}

	if _, err := uc.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	swipe := &domain.Swipe{
		SwiperID:  swiperID,
		TargetID:  targetID,
		Direction: direction,
	}
	if err := uc.swipeRepo.Upsert(ctx, swipe); err != nil {
		return nil, fmt.Errorf("%w: failed to record swipe: %v", domain.ErrUnavailable, err)
	}

	result := &Result{Swipe: swipe}
	if direction != domain.DirectionLike {
		return result, nil
	}

	match, err := uc.resolveMatch(ctx, swiperID, targetID)
	if err != nil {
		return nil, err
	}
	result.Match = match
	return result, nil
}

// resolveMatch runs the mutual-like state machine for one like edge. The
// storage-level unique constraint on the canonical pair arbitrates the
// concurrent-mutual-like race; losing it means the match already exists and
// is returned as if this call created it.
func (uc *UseCase) resolveMatch(ctx context.Context, swiperID, targetID string) (*domain.Match, error) {
	reciprocal, err := uc.swipeRepo.HasLike(ctx, targetID, swiperID)
	if err != nil {
		return nil, fmt.Errorf("%w: reciprocity check failed: %v", domain.ErrUnavailable, err)
	}
	if !reciprocal {
		return nil, nil
	}

	match := &domain.Match{
		UserA:  swiperID,
		UserB:  targetID,
		Reason: domain.MatchReasonMutualLike,
	}
	err = uc.matchRepo.Create(ctx, match)
	if err == nil {
		uc.notifyMatch(ctx, match)
		go uc.enrichMatch(match)
		return match, nil
	}
	if !errors.Is(err, domain.ErrConflict) {
		return nil, fmt.Errorf("%w: failed to create match: %v", domain.ErrUnavailable, err)
	}

	// Lost the race (or re-entered an already-matched pair): one retry to
	// fetch the winning row, then give up as retryable.
	existing, err := uc.matchRepo.GetByUsers(ctx, swiperID, targetID)
	if err != nil {
		return nil, fmt.Errorf("%w: match exists but could not be read: %v", domain.ErrUnavailable, err)
	}
	return existing, nil
}

// notifyMatch signals both participants on their user topics. Delivery is
// fire-and-forget; the match row is already durable.
func (uc *UseCase) notifyMatch(ctx context.Context, match *domain.Match) {
	if uc.publisher == nil {
		return
	}
	event := realtime.Event{Type: "match_created", Payload: match}
	for _, userID := range []string{match.UserA, match.UserB} {
		if err := uc.publisher.Publish(ctx, realtime.UserTopic(userID), event); err != nil {
			log.Printf("swipe: failed to notify %s of match %d: %v", userID, match.ID, err)
		}
	}
}

// enrichMatch asks the model for intro suggestions and stores them on the
// match. Purely informational; any failure is logged and dropped.
func (uc *UseCase) enrichMatch(match *domain.Match) {
	if uc.geminiClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	profileA, err := uc.profileRepo.GetByUserID(ctx, match.UserA)
	if err != nil {
		return
	}
	profileB, err := uc.profileRepo.GetByUserID(ctx, match.UserB)
	if err != nil {
		return
	}

	intros, err := uc.geminiClient.GenerateIntros(ctx, profileA, profileB)
	if err != nil || len(intros) == 0 {
		return
	}
	if err := uc.matchRepo.UpdateIntros(ctx, match.ID, intros); err != nil {
		log.Printf("swipe: failed to store intros for match %d: %v", match.ID, err)
	}
}

// LikesReceived lists users who liked userID, with their public profile.
// Entries whose sender has since disappeared are skipped.
func (uc *UseCase) LikesReceived(ctx context.Context, userID string, limit, offset int) ([]*LikeReceived, error) {
	if limit <= 0 {
		limit = 20
	}
	likes, err := uc.swipeRepo.GetLikesReceived(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes received: %w", err)
	}

	out := make([]*LikeReceived, 0, len(likes))
	for _, like := range likes {
		user, err := uc.userRepo.GetByID(ctx, like.SwiperID)
		if err != nil {
			continue
		}
		profile, err := uc.profileRepo.GetByUserID(ctx, like.SwiperID)
		if err != nil {
			profile = &domain.Profile{UserID: like.SwiperID}
		}
		out = append(out, &LikeReceived{
			Swipe:   like,
			User:    user.Public(),
			Profile: profile,
		})
	}
	return out, nil
}
