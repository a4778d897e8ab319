package service

import (
	"context"
	"errors"
	"fmt"

	"gotnext-backend/internal/database/models"
	"gotnext-backend/internal/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxPromotionAttempts bounds how often promoteNext moves on to the next
// reserve after losing a race for the oldest one
const maxPromotionAttempts = 3

// promotion is the player moved up from the standby list
type promotion struct {
	UserID uuid.UUID
	Name   string
}

func (p *promotion) sentence() string {
	if p.Name != "" {
		return fmt.Sprintf("Promoted %s from the standby list to the active roster.", p.Name)
	}
	return "Promoted the next player from the standby list."
}

func (p *promotion) apply(meta *RosterMeta) {
	userID := p.UserID
	meta.PromotedUserID = &userID
	if p.Name != "" {
		name := p.Name
		meta.PromotedName = &name
	}
}

// promoteNext fills one vacated active slot with the reserve that has waited
// longest, skipping exclude. Failures are logged and reported as no promotion;
// the write that freed the slot stays in place.
func (s *RosterService) promoteNext(ctx context.Context, session *models.GameSession, exclude *uuid.UUID) *promotion {
	log := logger.WithContext(ctx).WithField("session_id", session.ID.String())

	for attempt := 0; attempt < maxPromotionAttempts; attempt++ {
		active, err := s.signups.CountByStatus(ctx, session.ID, models.SignupStatusActive)
		if err != nil {
			log.WithError(err).Error("promotion: failed to count active signups")
			return nil
		}
		if active >= int64(session.MaxPlayers) {
			return nil
		}

		next, err := s.signups.OldestReserve(ctx, session.ID, exclude)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.WithError(err).Error("promotion: failed to load next reserve")
			}
			return nil
		}

		promoted, err := s.signups.PromoteIfReserve(ctx, next.ID, session.MaxPlayers, s.now())
		if err != nil {
			log.WithError(err).Error("promotion: failed to promote reserve")
			return nil
		}
		if !promoted {
			log.WithField("user_id", next.UserID.String()).Debug("promotion: reserve changed concurrently, retrying")
			continue
		}

		log.WithField("promoted_user_id", next.UserID.String()).Info("promoted reserve to active roster")
		return &promotion{UserID: next.UserID, Name: s.lookupName(ctx, next.UserID)}
	}
	return nil
}

// lookupName returns the display name of a user, or "" when it is unknown
// or cannot be loaded
func (s *RosterService) lookupName(ctx context.Context, userID uuid.UUID) string {
	names, err := s.profiles.GetNames(ctx, []uuid.UUID{userID})
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("failed to load profile name")
		return ""
	}
	return names[userID]
}

func withPromotion(message string, p *promotion, meta *RosterMeta) string {
	if p == nil {
		return message
	}
	p.apply(meta)
	return message + " " + p.sentence()
}
