package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gotnext-backend/internal/config"
	"gotnext-backend/internal/database"
	"gotnext-backend/internal/database/models"
	"gotnext-backend/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ProfileData struct {
	ID       string `yaml:"id"`
	FullName string `yaml:"full_name"`
	Phone    string `yaml:"phone,omitempty"`
}

type TeamData struct {
	Name    string       `yaml:"name"`
	OwnerID string       `yaml:"owner_id"`
	Members []MemberData `yaml:"members,omitempty"`
}

type MemberData struct {
	UserID string `yaml:"user_id"`
	Role   string `yaml:"role"`
}

// SessionData places a game relative to the day the loader runs so the
// seeded games stay upcoming.
type SessionData struct {
	TeamName        string       `yaml:"team_name"`
	Title           string       `yaml:"title"`
	Location        string       `yaml:"location,omitempty"`
	Notes           string       `yaml:"notes,omitempty"`
	StartsInDays    int          `yaml:"starts_in_days"`
	StartTime       string       `yaml:"start_time"`
	DurationMinutes int          `yaml:"duration_minutes"`
	MaxPlayers      int          `yaml:"max_players"`
	Signups         []SignupData `yaml:"signups,omitempty"`
}

type SignupData struct {
	UserID string `yaml:"user_id"`
	Status string `yaml:"status"`
}

// File structures
type ProfilesFile struct {
	Profiles []ProfileData `yaml:"profiles"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type SessionsFile struct {
	Sessions []SessionData `yaml:"sessions"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data", time.Now()); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string, now time.Time) error {
	var profiles []ProfileData
	if err := walkYAML(dataDir, "profiles", func(file ProfilesFile) { profiles = append(profiles, file.Profiles...) }); err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	var teams []TeamData
	if err := walkYAML(dataDir, "teams", func(file TeamsFile) { teams = append(teams, file.Teams...) }); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	var sessions []SessionData
	if err := walkYAML(dataDir, "sessions", func(file SessionsFile) { sessions = append(sessions, file.Sessions...) }); err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}

	profileCreated := 0
	for _, profileData := range profiles {
		created, err := createProfile(db, profileData)
		if err != nil {
			return fmt.Errorf("failed to create profile %s: %w", profileData.ID, err)
		}
		if created {
			profileCreated++
		}
	}
	log.Printf("📋 Profiles: %d created, %d total", profileCreated, len(profiles))

	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	memberCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}

		for _, memberData := range teamData.Members {
			created, err := createMember(db, team, memberData)
			if err != nil {
				log.Printf("⚠️  Warning: failed to add member %s to %s: %v", memberData.UserID, teamData.Name, err)
				continue
			}
			if created {
				memberCreated++
			}
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))
	log.Printf("📋 Members: %d created", memberCreated)

	sessionCreated := 0
	for _, sessionData := range sessions {
		created, err := createSession(db, sessionData, teamMap, now)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create session %s: %v", sessionData.Title, err)
			continue
		}
		if created {
			sessionCreated++
		}
	}
	log.Printf("📋 Sessions: %d created, %d total", sessionCreated, len(sessions))

	return nil
}

// walkYAML decodes every .yaml file under dataDir whose path contains kind
func walkYAML[T any](dataDir, kind string, collect func(T)) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var file T
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		collect(file)
		return nil
	})
}

func createProfile(db *gorm.DB, profileData ProfileData) (bool, error) {
	id, err := uuid.Parse(profileData.ID)
	if err != nil {
		return false, fmt.Errorf("invalid profile id: %w", err)
	}

	var profile models.Profile
	err = db.Where("id = ?", id).First(&profile).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query profile: %w", err)
	}

	profile = models.Profile{ID: id, FullName: optional(profileData.FullName), Phone: optional(profileData.Phone)}
	if err := repository.NewProfileRepository(db).Upsert(context.Background(), &profile); err != nil {
		return false, fmt.Errorf("failed to create profile: %w", err)
	}
	return true, nil
}

// createTeam creates the team together with its owner membership
func createTeam(db *gorm.DB, teamData TeamData) (*models.Team, bool, error) {
	ownerID, err := uuid.Parse(teamData.OwnerID)
	if err != nil {
		return nil, false, fmt.Errorf("invalid owner id: %w", err)
	}

	var team models.Team
	err = db.Where("name = ? AND owner_id = ?", teamData.Name, ownerID).First(&team).Error
	if err == nil {
		return &team, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	team = models.Team{Name: teamData.Name, OwnerID: ownerID}
	if err := repository.NewTeamRepository(db).CreateWithOwner(context.Background(), &team); err != nil {
		return nil, false, fmt.Errorf("failed to create team: %w", err)
	}
	return &team, true, nil
}

func createMember(db *gorm.DB, team *models.Team, memberData MemberData) (bool, error) {
	userID, err := uuid.Parse(memberData.UserID)
	if err != nil {
		return false, fmt.Errorf("invalid user id: %w", err)
	}
	role := models.TeamRole(memberData.Role)
	if role == "" {
		role = models.TeamRolePlayer
	}
	if !role.IsValid() {
		return false, fmt.Errorf("invalid role %q", memberData.Role)
	}

	var member models.TeamMember
	err = db.Where("team_id = ? AND user_id = ?", team.ID, userID).First(&member).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query member: %w", err)
	}

	member = models.TeamMember{TeamID: team.ID, UserID: userID, Role: role}
	if err := db.Create(&member).Error; err != nil {
		return false, fmt.Errorf("failed to create member: %w", err)
	}
	return true, nil
}

func createSession(db *gorm.DB, sessionData SessionData, teamMap map[string]*models.Team, now time.Time) (bool, error) {
	team := teamMap[sessionData.TeamName]
	if team == nil {
		return false, fmt.Errorf("team %s not found for session %s", sessionData.TeamName, sessionData.Title)
	}

	clock, err := time.Parse("15:04", sessionData.StartTime)
	if err != nil {
		return false, fmt.Errorf("invalid start_time %q: %w", sessionData.StartTime, err)
	}
	day := now.AddDate(0, 0, sessionData.StartsInDays)
	startsAt := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
	duration := time.Duration(sessionData.DurationMinutes) * time.Minute
	if duration <= 0 {
		duration = 2 * time.Hour
	}

	var existing models.GameSession
	err = db.Where("team_id = ? AND title = ? AND starts_at = ?", team.ID, sessionData.Title, startsAt).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query session: %w", err)
	}

	session := models.GameSession{
		TeamID:      team.ID,
		Title:       sessionData.Title,
		Location:    optional(sessionData.Location),
		Description: optional(sessionData.Notes),
		StartsAt:    startsAt,
		EndsAt:      startsAt.Add(duration),
		MaxPlayers:  sessionData.MaxPlayers,
		CreatedBy:   team.OwnerID,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		// Signups are stamped in file order so the standby list keeps it
		for i, signupData := range sessionData.Signups {
			userID, err := uuid.Parse(signupData.UserID)
			if err != nil {
				return fmt.Errorf("invalid signup user id: %w", err)
			}
			status := models.SignupStatus(signupData.Status)
			if !status.IsValid() {
				return fmt.Errorf("invalid signup status %q", signupData.Status)
			}
			signup := models.GameSignup{
				SessionID: session.ID,
				UserID:    userID,
				Status:    status,
				CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
			}
			if err := tx.Create(&signup).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to create session: %w", err)
	}
	return true, nil
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
