package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// CaseStdouts keeps the raw stdout of every case of one submission, in case
// order. A nil entry means the case produced no output (e.g. compile error).
type CaseStdouts []*string

func (s CaseStdouts) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *CaseStdouts) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed while scanning CaseStdouts")
	}
	return json.Unmarshal(bytes, s)
}

func (s CaseStdouts) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql", "sqlite":
		return "JSON"
	case "postgres":
		return "JSONB"
	}
	return ""
}

type Submission struct {
	gorm.Model
	UserID    uint `gorm:"index" json:"userId"`
	ProblemID uint `gorm:"index" json:"problemId"`

	SourceCode string `json:"sourceCode"`
	Language   string `json:"language"`
	Stdin      string `json:"stdin"` // custom stdin lines joined with newlines

	Stdout CaseStdouts `gorm:"type:jsonb" json:"stdout"`
	// Presence flags only; full texts live in the per-case rows.
	StderrPresent        bool `json:"stderrPresent"`
	CompileOutputPresent bool `json:"compileOutputPresent"`

	Status string  `json:"status"`
	Memory *string `json:"memory"`
	Time   *string `json:"time"`

	// IdempotencyKey dedupes client retries of the same submit call.
	IdempotencyKey string `gorm:"uniqueIndex" json:"idempotencyKey"`

	TestCaseResults []TestCaseResult `json:"testCaseResults"`
}

type TestCaseResult struct {
	gorm.Model
	SubmissionID uint `gorm:"index" json:"submissionId"`

	TestCase int     `json:"testCase"` // 1-based, matches stored test case order
	Passed   bool    `json:"passed"`
	Stdout   *string `json:"stdout"`
	Expected string  `json:"expected"`

	Stderr        *string `json:"stderr"`
	CompileOutput *string `json:"compileOutput"`

	Status string  `json:"status"`
	Memory *string `json:"memory"`
	Time   *string `json:"time"`
}

// ProblemSolved marks that a user has at least one accepted submission for a
// problem. Insert-only; repeated acceptances are a no-op.
type ProblemSolved struct {
	gorm.Model
	UserID    uint `gorm:"uniqueIndex:idx_user_problem" json:"userId"`
	ProblemID uint `gorm:"uniqueIndex:idx_user_problem" json:"problemId"`
}
