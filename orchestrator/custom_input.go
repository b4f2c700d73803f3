package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/srujandivakar/DCode/common/db/models"
	"github.com/srujandivakar/DCode/lib/logger"
)

// deriveExpectedOutputs runs the problem's reference solution against each
// custom stdin line through a nested submit+poll batch, producing the
// expected output for every custom input.
func (o *Orchestrator) deriveExpectedOutputs(
	ctx context.Context,
	req *Request,
	langID int,
	refSolutions models.ReferenceSolutions,
) ([]string, error) {
	code, ok := refSolutions[req.Language]
	if !ok || code == "" {
		return nil, fmt.Errorf("%w: no reference solution for language %s", ErrValidation, req.Language)
	}

	logger.Debug("deriving expected outputs for %d custom inputs, problem %d", len(req.Stdin), req.ProblemID)

	statuses, err := o.judgeBatch(ctx, code, langID, req.Stdin)
	if err != nil {
		return nil, err
	}

	outputs := make([]string, 0, len(statuses))
	for _, s := range statuses {
		if s.Stdout == nil {
			outputs = append(outputs, "")
			continue
		}
		// Only the first newline is stripped, matching how the platform has
		// always sanitized derived outputs.
		outputs = append(outputs, strings.Replace(*s.Stdout, "\n", "", 1))
	}
	return outputs, nil
}
