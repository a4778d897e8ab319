package repository

import (
	"context"

	"gotnext-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for team members
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// GetMembership retrieves the membership of a user on a team
func (r *MembershipRepository) GetMembership(ctx context.Context, teamID, userID uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.WithContext(ctx).
		First(&member, "team_id = ? AND user_id = ?", teamID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByUserID retrieves every membership held by a user
func (r *MembershipRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// ListByTeams retrieves the members of several teams
func (r *MembershipRepository) ListByTeams(ctx context.Context, teamIDs []uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if len(teamIDs) == 0 {
		return members, nil
	}
	err := r.db.WithContext(ctx).
		Where("team_id IN ?", teamIDs).
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// UpdateRole changes the role of a member
func (r *MembershipRepository) UpdateRole(ctx context.Context, teamID, userID uuid.UUID, role models.TeamRole) error {
	result := r.db.WithContext(ctx).
		Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a member from a team
func (r *MembershipRepository) Delete(ctx context.Context, teamID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.TeamMember{}, "team_id = ? AND user_id = ?", teamID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByRole counts the members of a team holding a role
func (r *MembershipRepository) CountByRole(ctx context.Context, teamID uuid.UUID, role models.TeamRole) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.TeamMember{}).
		Where("team_id = ? AND role = ?", teamID, role).
		Count(&count).Error
	return count, err
}
