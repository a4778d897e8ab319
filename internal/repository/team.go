package repository

import (
	"context"

	"gotnext-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// CreateWithOwner creates a team and records its owner as the first member.
// A duplicate name for the same owner returns gorm.ErrDuplicatedKey.
func (r *TeamRepository) CreateWithOwner(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		owner := &models.TeamMember{
			TeamID: team.ID,
			UserID: team.OwnerID,
			Role:   models.TeamRoleOwner,
		}
		return tx.Create(owner).Error
	})
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByIDs retrieves teams by ID ordered by name
func (r *TeamRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	if len(ids) == 0 {
		return teams, nil
	}
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("name ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}
