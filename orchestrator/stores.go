package orchestrator

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/srujandivakar/DCode/common/constants/status"
	"github.com/srujandivakar/DCode/common/db/models"
)

// Store contracts consumed by the execution core. The rest of the platform
// owns users and problems; this service only reads them and appends
// submissions.

type ProblemStore interface {
	GetProblem(ctx context.Context, id uint) (*models.Problem, error)
}

type SubmissionStore interface {
	// Create persists the submission, its per-case rows and, when markSolved
	// is set, the solved marker, all in one transaction.
	Create(ctx context.Context, submission *models.Submission, results []models.TestCaseResult, markSolved bool) error
	GetWithResults(ctx context.Context, id uint) (*models.Submission, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*models.Submission, error)
	HasAcceptedBetween(ctx context.Context, userID uint, start, end time.Time) (bool, error)
}

type UserStore interface {
	IsEmailVerified(ctx context.Context, userID uint) (bool, error)
	// IncrementStreak bumps the user's daily streak unless the last counted
	// submission already falls inside the given day window. Reports whether a
	// row was updated.
	IncrementStreak(ctx context.Context, userID uint, start, end, now time.Time) (bool, error)
	MaintainedUsers(ctx context.Context) ([]models.User, error)
	ResetStreak(ctx context.Context, userID uint) error
}

type Stores struct {
	Problems    ProblemStore
	Submissions SubmissionStore
	Users       UserStore
}

func NewGormStores(db *gorm.DB) Stores {
	return Stores{
		Problems:    &gormProblemStore{db},
		Submissions: &gormSubmissionStore{db},
		Users:       &gormUserStore{db},
	}
}

type gormProblemStore struct {
	db *gorm.DB
}

func (s *gormProblemStore) GetProblem(ctx context.Context, id uint) (*models.Problem, error) {
	problem := new(models.Problem)
	if err := s.db.WithContext(ctx).First(problem, id).Error; err != nil {
		return nil, err
	}
	return problem, nil
}

type gormSubmissionStore struct {
	db *gorm.DB
}

func (s *gormSubmissionStore) Create(
	ctx context.Context,
	submission *models.Submission,
	results []models.TestCaseResult,
	markSolved bool,
) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(submission).Error; err != nil {
			return err
		}
		for i := range results {
			results[i].SubmissionID = submission.ID
		}
		if len(results) > 0 {
			if err := tx.Create(&results).Error; err != nil {
				return err
			}
		}
		if markSolved {
			solved := &models.ProblemSolved{
				UserID:    submission.UserID,
				ProblemID: submission.ProblemID,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(solved).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *gormSubmissionStore) GetWithResults(ctx context.Context, id uint) (*models.Submission, error) {
	submission := new(models.Submission)
	err := s.db.WithContext(ctx).Preload("TestCaseResults").First(submission, id).Error
	if err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *gormSubmissionStore) FindByIdempotencyKey(ctx context.Context, key string) (*models.Submission, error) {
	submission := new(models.Submission)
	err := s.db.WithContext(ctx).
		Preload("TestCaseResults").
		Where("idempotency_key = ?", key).
		First(submission).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *gormSubmissionStore) HasAcceptedBetween(ctx context.Context, userID uint, start, end time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Submission{}).
		Where("user_id = ? AND status = ? AND created_at BETWEEN ? AND ?",
			userID, status.SubmissionAccepted, start, end).
		Count(&count).Error
	return count > 0, err
}

type gormUserStore struct {
	db *gorm.DB
}

func (s *gormUserStore) IsEmailVerified(ctx context.Context, userID uint) (bool, error) {
	user := new(models.User)
	if err := s.db.WithContext(ctx).First(user, userID).Error; err != nil {
		return false, err
	}
	return user.IsEmailVerified, nil
}

func (s *gormUserStore) IncrementStreak(ctx context.Context, userID uint, start, end, now time.Time) (bool, error) {
	// The window guard lives in the update itself so concurrent accepted
	// submissions on one day cannot double count.
	tx := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND (last_submission_date < ? OR last_submission_date > ? OR last_submission_date IS NULL)",
			userID, start, end).
		Updates(map[string]any{
			"daily_problem_streak": gorm.Expr("daily_problem_streak + 1"),
			"is_streak_maintained": true,
			"last_submission_date": now,
		})
	return tx.RowsAffected > 0, tx.Error
}

func (s *gormUserStore) MaintainedUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Where("is_streak_maintained = ?", true).Find(&users).Error
	return users, err
}

func (s *gormUserStore) ResetStreak(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"daily_problem_streak": 0,
			"is_streak_maintained": false,
		}).Error
}
