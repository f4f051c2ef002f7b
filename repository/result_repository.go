package repository

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/chrinovic123/PsychoMetricBot/models"
)

// ResultRepository defines the interface for the archive of completed test
// reports. Unlike sessions, results survive a restart.
type ResultRepository interface {
	SaveResult(result *models.TestResult) (*models.TestResult, error)
	GetResultsByUserID(userID string) ([]models.TestResult, error)
}

type resultRepository struct {
	db *gorm.DB
}

// NewResultRepository creates a GORM-backed result archive.
func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

// SaveResult persists a completed report.
func (r *resultRepository) SaveResult(result *models.TestResult) (*models.TestResult, error) {
	if result.UserID == "" {
		log.Printf("ERROR: [ResultRepository] SaveResult: UserID cannot be empty.")
		return nil, errors.New("user ID cannot be empty")
	}
	if err := r.db.Create(result).Error; err != nil {
		log.Printf("ERROR: [ResultRepository] Failed to save result for userID %s (test %s): %v", result.UserID, result.TestID, err)
		return nil, fmt.Errorf("failed to save result for userID %s: %w", result.UserID, err)
	}
	log.Printf("INFO: [ResultRepository] Saved result ID %d for userID '%s' (test %s).", result.ID, result.UserID, result.TestID)
	return result, nil
}

// GetResultsByUserID returns the user's archived reports, newest first.
// A user with no archived reports yields an empty slice, not an error.
func (r *resultRepository) GetResultsByUserID(userID string) ([]models.TestResult, error) {
	if userID == "" {
		return nil, errors.New("user ID cannot be empty")
	}
	var results []models.TestResult
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&results).Error; err != nil {
		log.Printf("ERROR: [ResultRepository] Failed to fetch results for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to fetch results for userID %s: %w", userID, err)
	}
	return results, nil
}
