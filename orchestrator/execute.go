package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/srujandivakar/DCode/common/connectors/judgeconn"
	"github.com/srujandivakar/DCode/common/constants/language"
	"github.com/srujandivakar/DCode/common/constants/status"
	"github.com/srujandivakar/DCode/common/db/models"
	"github.com/srujandivakar/DCode/lib/logger"
	"github.com/srujandivakar/DCode/orchestrator/grading"
)

type Mode string

const (
	ModeRun    Mode = "run"
	ModeSubmit Mode = "submit"
)

// Run mode grades against a preview of the stored test cases.
const runModeCaseLimit = 3

type Request struct {
	UserID    uint
	ProblemID uint
	Mode      Mode

	SourceCode string
	Language   string

	// Stdin carries extra custom inputs; honored only in run mode.
	Stdin []string

	// IdempotencyKey dedupes submit retries. Optional; a fresh key is
	// assigned when empty, which keeps the legacy one-row-per-call behavior.
	IdempotencyKey string
}

type Result struct {
	Aggregate grading.AggregateResult

	// Submission is set in submit mode only, re-fetched with its case rows.
	Submission *models.Submission
}

// Execute runs the full orchestration state machine. Any judge failure aborts
// the run with nothing persisted; a poll timeout is not a failure, it grades
// the unresolved cases as failed instead.
func (o *Orchestrator) Execute(ctx context.Context, req Request) (*Result, error) {
	langID, err := o.validate(&req)
	if err != nil {
		return nil, err
	}

	verified, err := o.stores.Users.IsEmailVerified(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d not found", ErrValidation, req.UserID)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !verified {
		return nil, ErrNotVerified
	}

	if req.Mode == ModeSubmit && req.IdempotencyKey != "" {
		existing, err := o.stores.Submissions.FindByIdempotencyKey(ctx, req.IdempotencyKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		if existing != nil {
			logger.Debug("submit retry with idempotency key %s, returning submission %d",
				req.IdempotencyKey, existing.ID)
			return &Result{Submission: existing}, nil
		}
	}

	problem, err := o.stores.Problems.GetProblem(ctx, req.ProblemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProblemNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	inputs, expected, err := o.buildCases(ctx, &req, langID, problem)
	if err != nil {
		return nil, err
	}

	statuses, err := o.judgeBatch(ctx, req.SourceCode, langID, inputs)
	if err != nil {
		return nil, err
	}

	results := make([]grading.CaseResult, 0, len(statuses))
	for i, s := range statuses {
		results = append(results, grading.Compare(i+1, expected[i], s))
	}
	agg := grading.Aggregate(results)

	o.collector.Executions.WithLabelValues(string(req.Mode)).Inc()

	if req.Mode == ModeRun {
		return &Result{Aggregate: agg}, nil
	}
	return o.persist(ctx, &req, agg)
}

func (o *Orchestrator) validate(req *Request) (int, error) {
	if req.Mode != ModeRun && req.Mode != ModeSubmit {
		return 0, fmt.Errorf("%w: invalid execution type %q", ErrValidation, req.Mode)
	}
	if req.SourceCode == "" {
		return 0, fmt.Errorf("%w: source code is required", ErrValidation)
	}
	langID, err := language.IDByName(req.Language)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if req.Mode == ModeSubmit {
		// Custom stdin is a run-mode feature.
		req.Stdin = nil
	}
	return langID, nil
}

// buildCases determines the effective input and expected-output arrays.
func (o *Orchestrator) buildCases(
	ctx context.Context,
	req *Request,
	langID int,
	problem *models.Problem,
) (inputs, expected []string, err error) {
	cases := problem.TestCases
	if req.Mode == ModeRun && len(cases) > runModeCaseLimit {
		cases = cases[:runModeCaseLimit]
	}
	if len(cases) == 0 {
		return nil, nil, fmt.Errorf("%w: problem %d has no test cases", ErrValidation, req.ProblemID)
	}

	for _, c := range cases {
		inputs = append(inputs, c.Input)
		expected = append(expected, c.Output)
	}

	if req.Mode == ModeRun && len(req.Stdin) > 0 {
		derived, err := o.deriveExpectedOutputs(ctx, req, langID, problem.ReferenceSolutions)
		if err != nil {
			return nil, nil, err
		}
		inputs = append(inputs, req.Stdin...)
		expected = append(expected, derived...)
	}

	return inputs, expected, nil
}

// judgeBatch submits one job per input and polls the batch to completion.
// Results come back in input order.
func (o *Orchestrator) judgeBatch(
	ctx context.Context,
	sourceCode string,
	langID int,
	inputs []string,
) ([]judgeconn.CaseStatus, error) {
	jobs := make([]judgeconn.Job, 0, len(inputs))
	for _, input := range inputs {
		jobs = append(jobs, judgeconn.Job{
			SourceCode: sourceCode,
			LanguageID: langID,
			Stdin:      input,
		})
	}

	tokens, err := o.judge.SubmitBatch(ctx, jobs)
	if err != nil {
		o.collector.JudgeErrors.Inc()
		return nil, fmt.Errorf("%w: %v", ErrJudgeUnavailable, err)
	}
	if len(tokens) != len(jobs) {
		o.collector.JudgeErrors.Inc()
		return nil, fmt.Errorf("%w: submitted %d jobs, got %d tokens", ErrJudgeUnavailable, len(jobs), len(tokens))
	}
	o.collector.JudgeJobsSubmitted.Add(float64(len(jobs)))

	statuses, err := o.poller.PollUntilDone(ctx, tokens)
	if err != nil {
		o.collector.JudgeErrors.Inc()
		return nil, fmt.Errorf("%w: %v", ErrJudgeUnavailable, err)
	}
	return statuses, nil
}

func (o *Orchestrator) persist(ctx context.Context, req *Request, agg grading.AggregateResult) (*Result, error) {
	key := req.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	}

	submission := &models.Submission{
		UserID:               req.UserID,
		ProblemID:            req.ProblemID,
		SourceCode:           req.SourceCode,
		Language:             req.Language,
		Stdin:                strings.Join(req.Stdin, "\n"),
		Stdout:               models.CaseStdouts(agg.Stdouts),
		StderrPresent:        agg.StderrPresent,
		CompileOutputPresent: agg.CompileOutputPresent,
		Status:               agg.Status,
		Memory:               agg.AverageMemory,
		Time:                 agg.AverageTime,
		IdempotencyKey:       key,
	}

	results := make([]models.TestCaseResult, 0, len(agg.Cases))
	for _, c := range agg.Cases {
		results = append(results, models.TestCaseResult{
			TestCase:      c.TestCase,
			Passed:        c.Passed,
			Stdout:        c.Stdout,
			Expected:      c.Expected,
			Stderr:        c.Stderr,
			CompileOutput: c.CompileOutput,
			Status:        c.Status,
			Memory:        c.Memory,
			Time:          c.Time,
		})
	}

	accepted := agg.Status == status.SubmissionAccepted
	if err := o.stores.Submissions.Create(ctx, submission, results, accepted); err != nil {
		// A concurrent retry with the same key may have won the insert race.
		if req.IdempotencyKey != "" {
			existing, findErr := o.stores.Submissions.FindByIdempotencyKey(ctx, req.IdempotencyKey)
			if findErr == nil && existing != nil {
				return &Result{Aggregate: agg, Submission: existing}, nil
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	o.collector.SubmissionsPersisted.WithLabelValues(agg.Status).Inc()

	if accepted {
		if err := o.streak.Update(ctx, req.UserID, o.now()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}

	persisted, err := o.stores.Submissions.GetWithResults(ctx, submission.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &Result{Aggregate: agg, Submission: persisted}, nil
}
