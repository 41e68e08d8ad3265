package match

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/infrastructure/realtime"
	"github.com/JSharma2K/cofounded/internal/repository"
)

// UseCase serves the matches list and the per-match message history.
type UseCase struct {
	matchRepo   repository.MatchRepository
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	publisher   realtime.Publisher
}

func NewUseCase(
	matchRepo repository.MatchRepository,
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	publisher realtime.Publisher,
) *UseCase {
	return &UseCase{
		matchRepo:   matchRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		publisher:   publisher,
	}
}

// Participant is one side of a match as shown to the other side.
type Participant struct {
	User    *domain.PublicUser `json:"user"`
	Profile *domain.Profile    `json:"profile"`
}

// MatchWithUsers is a match enriched with both participants' public subset.
type MatchWithUsers struct {
	*domain.Match
	UserAData *Participant `json:"user_a_data,omitempty"`
	UserBData *Participant `json:"user_b_data,omitempty"`
}

// SendMessageRequest is the body of a message post.
type SendMessageRequest struct {
	Body        string   `json:"body" binding:"required,max=2000"`
	Attachments []string `json:"attachments" binding:"omitempty,max=5"`
}

// Matches lists the user's matches, newest first, with both participants'
// public profile subset resolved in two batched reads.
func (uc *UseCase) Matches(ctx context.Context, userID string) ([]*MatchWithUsers, error) {
	matches, err := uc.matchRepo.GetUserMatches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	if len(matches) == 0 {
		return []*MatchWithUsers{}, nil
	}

	idSet := make(map[string]bool)
	for _, m := range matches {
		idSet[m.UserA] = true
		idSet[m.UserB] = true
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load match users: %w", err)
	}
	profiles, err := uc.profileRepo.GetByUserIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load match profiles: %w", err)
	}

	userByID := make(map[string]*domain.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}
	profileByUser := make(map[string]*domain.Profile, len(profiles))
	for _, p := range profiles {
		profileByUser[p.UserID] = p
	}

	participant := func(id string) *Participant {
		u, ok := userByID[id]
		if !ok {
			return nil
		}
		profile, ok := profileByUser[id]
		if !ok {
			profile = &domain.Profile{UserID: id}
		}
		return &Participant{User: u.Public(), Profile: profile}
	}

	enriched := make([]*MatchWithUsers, 0, len(matches))
	for _, m := range matches {
		enriched = append(enriched, &MatchWithUsers{
			Match:     m,
			UserAData: participant(m.UserA),
			UserBData: participant(m.UserB),
		})
	}
	return enriched, nil
}

// Messages returns the match's message history in send order. The caller
// must be a participant.
func (uc *UseCase) Messages(ctx context.Context, userID string, matchID int64) ([]*domain.Message, error) {
	if err := uc.CheckParticipant(ctx, userID, matchID); err != nil {
		return nil, err
	}
	messages, err := uc.messageRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if messages == nil {
		messages = []*domain.Message{}
	}
	return messages, nil
}

// SendMessage persists the message and publishes it to the match topic.
// Publishing is fire-and-forget: the message is durable either way.
func (uc *UseCase) SendMessage(ctx context.Context, userID string, matchID int64, req *SendMessageRequest) (*domain.Message, error) {
	if req.Body == "" {
		return nil, fmt.Errorf("%w: message body is required", domain.ErrInvalidArgument)
	}
	if err := uc.CheckParticipant(ctx, userID, matchID); err != nil {
		return nil, err
	}

	message := &domain.Message{
		MatchID:     matchID,
		SenderID:    userID,
		Body:        req.Body,
		Attachments: req.Attachments,
	}
	if err := uc.messageRepo.Create(ctx, message); err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to store message: %v", domain.ErrUnavailable, err)
	}

	if uc.publisher != nil {
		event := realtime.Event{Type: "message_created", Payload: message}
		if err := uc.publisher.Publish(ctx, realtime.MatchTopic(matchID), event); err != nil {
			log.Printf("match: failed to publish message %d: %v", message.ID, err)
		}
	}
	return message, nil
}

// CheckParticipant verifies the match exists and the user is one of its two
// sides. Unknown match is NotFound; a stranger gets a participation error.
func (uc *UseCase) CheckParticipant(ctx context.Context, userID string, matchID int64) error {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return err
	}
	if !match.HasUser(userID) {
		return domain.ErrNotParticipant
	}
	return nil
}
