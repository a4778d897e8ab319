package repository

import (
	"context"
	"time"

	"gotnext-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository handles database operations for game sessions
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// GetByID retrieves a game session by ID
func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.GameSession, error) {
	var session models.GameSession
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// CreateBatch inserts all sessions in one transaction; either every session
// of a series is stored or none is.
func (r *SessionRepository) CreateBatch(ctx context.Context, sessions []models.GameSession) error {
	if len(sessions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&sessions).Error
	})
}

// ListUpcomingByTeams retrieves sessions of the given teams that have not
// ended at from, ordered by start time
func (r *SessionRepository) ListUpcomingByTeams(ctx context.Context, teamIDs []uuid.UUID, from time.Time) ([]models.GameSession, error) {
	var sessions []models.GameSession
	if len(teamIDs) == 0 {
		return sessions, nil
	}
	err := r.db.WithContext(ctx).
		Where("team_id IN ? AND ends_at >= ?", teamIDs, from).
		Order("starts_at ASC").
		Order("id ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
