package repository

import (
	"context"
	"errors"
	"time"

	"gotnext-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrInviteAccepted is returned by Accept when the invite was already used
	ErrInviteAccepted = errors.New("invite already accepted")
	// ErrInviteExpired is returned by Accept when the invite is past its expiry
	ErrInviteExpired = errors.New("invite expired")
)

// InviteRepository handles database operations for team invites
type InviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository creates a new invite repository
func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

// Create creates a new invite
func (r *InviteRepository) Create(ctx context.Context, invite *models.TeamInvite) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

// GetByID retrieves an invite by ID
func (r *InviteRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TeamInvite, error) {
	var invite models.TeamInvite
	err := r.db.WithContext(ctx).First(&invite, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

// GetByToken retrieves an invite by its token
func (r *InviteRepository) GetByToken(ctx context.Context, token string) (*models.TeamInvite, error) {
	var invite models.TeamInvite
	err := r.db.WithContext(ctx).First(&invite, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

// ListPendingByTeams retrieves the invites of several teams that have not
// been accepted, newest first. Expired invites are included so they can be
// cancelled.
func (r *InviteRepository) ListPendingByTeams(ctx context.Context, teamIDs []uuid.UUID) ([]models.TeamInvite, error) {
	var invites []models.TeamInvite
	if len(teamIDs) == 0 {
		return invites, nil
	}
	err := r.db.WithContext(ctx).
		Where("team_id IN ? AND accepted_at IS NULL", teamIDs).
		Order("created_at DESC").
		Order("id ASC").
		Find(&invites).Error
	if err != nil {
		return nil, err
	}
	return invites, nil
}

// Delete removes an invite
func (r *InviteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TeamInvite{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Accept adds the user to the invite's team and marks the invite used.
// An existing membership keeps its current role.
func (r *InviteRepository) Accept(ctx context.Context, invite *models.TeamInvite, userID uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.TeamInvite
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&current, "id = ?", invite.ID).Error; err != nil {
			return err
		}
		if current.AcceptedAt != nil {
			return ErrInviteAccepted
		}
		if current.IsExpired(at) {
			return ErrInviteExpired
		}

		member := &models.TeamMember{
			TeamID: current.TeamID,
			UserID: userID,
			Role:   current.Role,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(member).Error; err != nil {
			return err
		}

		if err := tx.Model(&current).Updates(map[string]interface{}{
			"accepted_by": userID,
			"accepted_at": at,
		}).Error; err != nil {
			return err
		}

		invite.AcceptedBy = &userID
		invite.AcceptedAt = &at
		return nil
	})
}
