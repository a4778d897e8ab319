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

// ErrCapacityReached is returned by the strict roster writes when the
// active roster of the session is already full
var ErrCapacityReached = errors.New("active roster is full")

// SignupRepository handles database operations for game signups.
// Writes that depend on the active count lock the session row first, so
// concurrent writers for the same session are serialized.
type SignupRepository struct {
	db *gorm.DB
}

// NewSignupRepository creates a new signup repository
func NewSignupRepository(db *gorm.DB) *SignupRepository {
	return &SignupRepository{db: db}
}

// Get retrieves the signup of a user for a session
func (r *SignupRepository) Get(ctx context.Context, sessionID, userID uuid.UUID) (*models.GameSignup, error) {
	var signup models.GameSignup
	err := r.db.WithContext(ctx).
		First(&signup, "session_id = ? AND user_id = ?", sessionID, userID).Error
	if err != nil {
		return nil, err
	}
	return &signup, nil
}

// CountByStatus counts the signups of a session in a status
func (r *SignupRepository) CountByStatus(ctx context.Context, sessionID uuid.UUID, status models.SignupStatus) (int64, error) {
	return countByStatus(r.db.WithContext(ctx), sessionID, status)
}

// InsertOrWaitlist inserts a signup. An active request that finds the roster
// full is stored as reserve instead; the stored status is written back to signup.
func (r *SignupRepository) InsertOrWaitlist(ctx context.Context, signup *models.GameSignup, capacity int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockSession(tx, signup.SessionID); err != nil {
			return err
		}
		if signup.Status == models.SignupStatusActive {
			active, err := countByStatus(tx, signup.SessionID, models.SignupStatusActive)
			if err != nil {
				return err
			}
			if active >= int64(capacity) {
				signup.Status = models.SignupStatusReserve
				signup.PromotedAt = nil
			}
		}
		return tx.Create(signup).Error
	})
}

// InsertWithinCapacity inserts a signup, failing with ErrCapacityReached
// when an active insert would exceed capacity
func (r *SignupRepository) InsertWithinCapacity(ctx context.Context, signup *models.GameSignup, capacity int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockSession(tx, signup.SessionID); err != nil {
			return err
		}
		if signup.Status == models.SignupStatusActive {
			active, err := countByStatus(tx, signup.SessionID, models.SignupStatusActive)
			if err != nil {
				return err
			}
			if active >= int64(capacity) {
				return ErrCapacityReached
			}
		}
		return tx.Create(signup).Error
	})
}

// UpdateStatus sets the status of an existing signup
func (r *SignupRepository) UpdateStatus(ctx context.Context, sessionID, userID uuid.UUID, status models.SignupStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.GameSignup{}).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ActivateWithinCapacity moves a signup to the active roster, failing with
// ErrCapacityReached when the roster is full. Activating an already active
// signup is a no-op.
func (r *SignupRepository) ActivateWithinCapacity(ctx context.Context, sessionID, userID uuid.UUID, capacity int, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockSession(tx, sessionID); err != nil {
			return err
		}

		var signup models.GameSignup
		if err := tx.First(&signup, "session_id = ? AND user_id = ?", sessionID, userID).Error; err != nil {
			return err
		}
		if signup.Status == models.SignupStatusActive {
			return nil
		}

		active, err := countByStatus(tx, sessionID, models.SignupStatusActive)
		if err != nil {
			return err
		}
		if active >= int64(capacity) {
			return ErrCapacityReached
		}

		return tx.Model(&signup).Updates(map[string]interface{}{
			"status":      models.SignupStatusActive,
			"promoted_at": at,
		}).Error
	})
}

// Delete removes the signup of a user and returns the removed row.
// gorm.ErrRecordNotFound is returned when there was nothing to remove.
func (r *SignupRepository) Delete(ctx context.Context, sessionID, userID uuid.UUID) (*models.GameSignup, error) {
	var signups []models.GameSignup
	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		Delete(&signups)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 || len(signups) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &signups[0], nil
}

// OldestReserve retrieves the reserve signup that has waited longest,
// optionally skipping one user
func (r *SignupRepository) OldestReserve(ctx context.Context, sessionID uuid.UUID, exclude *uuid.UUID) (*models.GameSignup, error) {
	query := r.db.WithContext(ctx).
		Where("session_id = ? AND status = ?", sessionID, models.SignupStatusReserve)
	if exclude != nil {
		query = query.Where("user_id <> ?", *exclude)
	}

	var signup models.GameSignup
	err := query.Order("created_at ASC").Order("id ASC").First(&signup).Error
	if err != nil {
		return nil, err
	}
	return &signup, nil
}

// PromoteIfReserve flips a reserve signup to active while the session still
// has room. It takes the same session lock as the strict admin writes. It
// reports whether the row changed; a signup that is gone or no longer
// reserve, or a roster that filled up meanwhile, yields false.
func (r *SignupRepository) PromoteIfReserve(ctx context.Context, signupID uint64, capacity int, at time.Time) (bool, error) {
	promoted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var signup models.GameSignup
		err := tx.Select("id", "session_id").First(&signup, "id = ?", signupID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := lockSession(tx, signup.SessionID); err != nil {
			return err
		}

		active, err := countByStatus(tx, signup.SessionID, models.SignupStatusActive)
		if err != nil {
			return err
		}
		if active >= int64(capacity) {
			return nil
		}

		result := tx.Model(&models.GameSignup{}).
			Where("id = ? AND status = ?", signupID, models.SignupStatusReserve).
			Updates(map[string]interface{}{
				"status":      models.SignupStatusActive,
				"promoted_at": at,
			})
		if result.Error != nil {
			return result.Error
		}
		promoted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return promoted, nil
}

// ListBySessions retrieves the signups of several sessions in roster order
func (r *SignupRepository) ListBySessions(ctx context.Context, sessionIDs []uuid.UUID) ([]models.GameSignup, error) {
	var signups []models.GameSignup
	if len(sessionIDs) == 0 {
		return signups, nil
	}
	err := r.db.WithContext(ctx).
		Where("session_id IN ?", sessionIDs).
		Order("created_at ASC").
		Order("id ASC").
		Find(&signups).Error
	if err != nil {
		return nil, err
	}
	return signups, nil
}

func lockSession(tx *gorm.DB, sessionID uuid.UUID) error {
	var session models.GameSession
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&session, "id = ?", sessionID).Error
}

func countByStatus(db *gorm.DB, sessionID uuid.UUID, status models.SignupStatus) (int64, error) {
	var count int64
	err := db.Model(&models.GameSignup{}).
		Where("session_id = ? AND status = ?", sessionID, status).
		Count(&count).Error
	return count, err
}
