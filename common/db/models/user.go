package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email           string `gorm:"uniqueIndex" json:"email"`
	FullName        string `json:"fullName"`
	IsEmailVerified bool   `json:"isEmailVerified"`

	// Streak state. Mutated only by the streak updater and the stale-streak
	// sweep, never by request handlers directly.
	DailyProblemStreak int        `json:"dailyProblemStreak"`
	IsStreakMaintained bool       `json:"isStreakMaintained"`
	LastSubmissionDate *time.Time `json:"lastSubmissionDate"`
}
