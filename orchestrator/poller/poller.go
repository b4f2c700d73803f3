package poller

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/srujandivakar/DCode/common/config"
	"github.com/srujandivakar/DCode/common/connectors/judgeconn"
	"github.com/srujandivakar/DCode/common/constants/status"
	"github.com/srujandivakar/DCode/common/metrics"
	"github.com/srujandivakar/DCode/lib/logger"
)

// Poller drives PollOnce to completion for a batch of tokens. It polls only
// the still-pending subset each round and backs off between rounds. Jobs that
// never resolve within the budget are reported with the synthetic timed-out
// status instead of failing the whole batch.
type Poller struct {
	judge     judgeconn.Client
	clock     Clock
	collector *metrics.Collector

	interval  time.Duration
	maxRounds int
	maxTime   time.Duration
}

func New(judge judgeconn.Client, clock Clock, cfg config.OrchestratorConfig, collector *metrics.Collector) *Poller {
	return &Poller{
		judge:     judge,
		clock:     clock,
		collector: collector,
		interval:  cfg.PollInterval,
		maxRounds: cfg.MaxPollRounds,
		maxTime:   cfg.MaxPollTime,
	}
}

// PollUntilDone returns one status per input token, in input order. The only
// error cases are judge transport failures and caller cancellation.
func (p *Poller) PollUntilDone(ctx context.Context, tokens []judgeconn.Token) ([]judgeconn.CaseStatus, error) {
	resolved := make(map[judgeconn.Token]judgeconn.CaseStatus, len(tokens))
	pending := make([]judgeconn.Token, len(tokens))
	copy(pending, tokens)

	deadline := p.clock.Now().Add(p.maxTime)

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.interval

	for round := 0; len(pending) > 0 && round < p.maxRounds; round++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		statuses, err := p.judge.PollOnce(ctx, pending)
		if err != nil {
			return nil, err
		}
		p.collector.PollRounds.Inc()

		stillPending := pending[:0]
		for _, token := range pending {
			s, ok := statuses[token]
			if ok && status.Terminal(s.Status.ID) {
				resolved[token] = s
			} else {
				stillPending = append(stillPending, token)
			}
		}
		pending = stillPending

		if len(pending) == 0 || !p.clock.Now().Before(deadline) {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-p.clock.After(bo.NextBackOff()):
		}
	}

	if len(pending) > 0 {
		logger.Warn("poll budget exhausted, %d of %d jobs unresolved", len(pending), len(tokens))
	}
	for _, token := range pending {
		p.collector.PollTimeouts.Inc()
		resolved[token] = judgeconn.CaseStatus{
			Token: token,
			Status: judgeconn.Status{
				ID:          status.TimedOut,
				Description: status.TimedOutDescription,
			},
		}
	}

	results := make([]judgeconn.CaseStatus, 0, len(tokens))
	for _, token := range tokens {
		results = append(results, resolved[token])
	}
	return results, nil
}
