package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xorcare/pointer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func fixtureDb(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Problem{}, &User{}, &Submission{}, &TestCaseResult{}, &ProblemSolved{}))
	return db
}

func TestProblemSerialization(t *testing.T) {
	db := fixtureDb(t)
	problem := Problem{
		Title:      "Two Sum",
		Difficulty: "Easy",
		TestCases: TestCases{
			{Input: "1 2", Output: "3"},
			{Input: "2 3", Output: "5"},
		},
		ReferenceSolutions: ReferenceSolutions{
			"Python": "print(sum(map(int, input().split())))",
		},
	}
	require.NoError(t, db.Create(&problem).Error)

	var loaded Problem
	require.NoError(t, db.First(&loaded, problem.ID).Error)
	require.Equal(t, problem.TestCases, loaded.TestCases)
	require.Equal(t, problem.ReferenceSolutions, loaded.ReferenceSolutions)
}

func TestSubmissionSerialization(t *testing.T) {
	db := fixtureDb(t)
	submission := Submission{
		UserID:         1,
		ProblemID:      2,
		SourceCode:     "print(3)",
		Language:       "Python",
		Stdout:         CaseStdouts{pointer.String("3\n"), nil},
		StderrPresent:  true,
		Status:         "Wrong Answer",
		Time:           pointer.String("0.100s"),
		IdempotencyKey: "key-1",
	}
	require.NoError(t, db.Create(&submission).Error)

	var loaded Submission
	require.NoError(t, db.First(&loaded, submission.ID).Error)
	require.Equal(t, submission.Stdout, loaded.Stdout)
	require.Equal(t, submission.Status, loaded.Status)
	require.NotNil(t, loaded.Time)
	require.Equal(t, "0.100s", *loaded.Time)
}

func TestSubmissionCaseRows(t *testing.T) {
	db := fixtureDb(t)
	submission := Submission{UserID: 1, ProblemID: 1, IdempotencyKey: "key-2"}
	require.NoError(t, db.Create(&submission).Error)

	rows := []TestCaseResult{
		{SubmissionID: submission.ID, TestCase: 1, Passed: true, Expected: "3", Status: "Accepted"},
		{SubmissionID: submission.ID, TestCase: 2, Passed: false, Expected: "5", Status: "Wrong Answer"},
	}
	require.NoError(t, db.Create(&rows).Error)

	var loaded Submission
	require.NoError(t, db.Preload("TestCaseResults").First(&loaded, submission.ID).Error)
	require.Len(t, loaded.TestCaseResults, 2)
	require.Equal(t, 1, loaded.TestCaseResults[0].TestCase)
	require.False(t, loaded.TestCaseResults[1].Passed)
}
