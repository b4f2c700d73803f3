package grading

import (
	"strings"

	"github.com/srujandivakar/DCode/common/connectors/judgeconn"
	"github.com/srujandivakar/DCode/common/constants/status"
	"github.com/srujandivakar/DCode/lib/units"
)

// CaseResult is the graded outcome of one test case.
type CaseResult struct {
	TestCase int  `json:"testCase"` // 1-based
	Passed   bool `json:"passed"`

	Stdout   *string `json:"stdout"`
	Expected string  `json:"expected"`

	Stderr        *string `json:"stderr"`
	CompileOutput *string `json:"compileOutput"`

	Status string  `json:"status"`
	Memory *string `json:"memory"`
	Time   *string `json:"time"`
}

// Compare grades a single case. Equality is byte-exact after trimming
// surrounding whitespace on both sides; a case with no stdout never passes,
// whatever the expected output is.
func Compare(testCase int, expected string, raw judgeconn.CaseStatus) CaseResult {
	passed := raw.Stdout != nil && strings.TrimSpace(*raw.Stdout) == strings.TrimSpace(expected)

	result := CaseResult{
		TestCase:      testCase,
		Passed:        passed,
		Stdout:        raw.Stdout,
		Expected:      expected,
		Stderr:        raw.Stderr,
		CompileOutput: raw.CompileOutput,
		Status:        raw.Status.Description,
	}
	if raw.Memory != nil {
		memory := units.MemoryKB(*raw.Memory)
		result.Memory = &memory
	}
	if raw.Time != nil {
		t := units.TimeSeconds(*raw.Time)
		result.Time = &t
	}
	return result
}

// AggregateResult is the overall verdict of one execution run.
type AggregateResult struct {
	Status string       `json:"status"`
	Cases  []CaseResult `json:"testCases"`

	AverageTime   *string `json:"time"`
	AverageMemory *string `json:"memory"`

	Stdouts              []*string `json:"stdout"`
	StderrPresent        bool      `json:"stderrPresent"`
	CompileOutputPresent bool      `json:"compileOutputPresent"`
}

// Aggregate combines case results in their original order. The verdict is
// Accepted only when every case of a non-empty run passed; compile and
// runtime failures surface per case, not as a distinct overall status.
func Aggregate(cases []CaseResult) AggregateResult {
	agg := AggregateResult{
		Status: status.SubmissionAccepted,
		Cases:  cases,
	}
	if len(cases) == 0 {
		agg.Status = status.SubmissionWrongAnswer
		return agg
	}

	times := make([]*string, 0, len(cases))
	memories := make([]*string, 0, len(cases))
	for _, c := range cases {
		if !c.Passed {
			agg.Status = status.SubmissionWrongAnswer
		}
		agg.Stdouts = append(agg.Stdouts, c.Stdout)
		if c.Stderr != nil {
			agg.StderrPresent = true
		}
		if c.CompileOutput != nil {
			agg.CompileOutputPresent = true
		}
		times = append(times, c.Time)
		memories = append(memories, c.Memory)
	}

	if avg := units.Average(times); avg != nil {
		t := units.TimeSeconds(*avg)
		agg.AverageTime = &t
	}
	if avg := units.Average(memories); avg != nil {
		m := *avg + " KB"
		agg.AverageMemory = &m
	}
	return agg
}
