package orchestrator

import (
	"time"

	"github.com/srujandivakar/DCode/common"
	"github.com/srujandivakar/DCode/common/config"
	"github.com/srujandivakar/DCode/common/connectors/judgeconn"
	"github.com/srujandivakar/DCode/common/metrics"
	"github.com/srujandivakar/DCode/lib/logger"
	"github.com/srujandivakar/DCode/orchestrator/poller"
	"github.com/srujandivakar/DCode/orchestrator/streak"
)

// Orchestrator coordinates one execution run: batch submit to the judge, poll
// to completion, grade, and in submit mode persist the outcome and update the
// daily streak.
type Orchestrator struct {
	cfg       config.OrchestratorConfig
	judge     judgeconn.Client
	poller    *poller.Poller
	stores    Stores
	streak    *streak.Updater
	collector *metrics.Collector

	now func() time.Time
}

func New(
	cfg config.OrchestratorConfig,
	judge judgeconn.Client,
	stores Stores,
	clock poller.Clock,
	collector *metrics.Collector,
) (*Orchestrator, error) {
	updater, err := streak.NewUpdater(stores.Submissions, stores.Users, cfg.Timezone, collector)
	if err != nil {
		return nil, err
	}
	return &Orchestrator{
		cfg:       cfg,
		judge:     judge,
		poller:    poller.New(judge, clock, cfg, collector),
		stores:    stores,
		streak:    updater,
		collector: collector,
		now:       time.Now,
	}, nil
}

// SetupOrchestrator wires the orchestrator into the platform: routes and the
// stale-streak sweep loop.
func SetupOrchestrator(p *common.Platform) (*Orchestrator, error) {
	o, err := New(
		p.Config.Orchestrator,
		p.JudgeConn,
		NewGormStores(p.DB),
		poller.RealClock(),
		p.Metrics,
	)
	if err != nil {
		return nil, err
	}

	p.Router.POST("/execute/:pid/:type", o.handleExecute)

	if p.Config.Orchestrator.StreakSweepInterval > 0 {
		p.AddProcess(func() { o.streakSweepLoop(p) })
	}

	return o, nil
}

func (o *Orchestrator) streakSweepLoop(p *common.Platform) {
	logger.Info("starting streak sweep loop")

	t := time.Tick(o.cfg.StreakSweepInterval)

	for {
		select {
		case <-p.StopCtx.Done():
			logger.Info("stopping streak sweep loop")
			return
		case <-t:
			if err := o.streak.ResetStale(p.StopCtx, o.now()); err != nil {
				logger.Error("streak sweep failed: %v", err)
			}
		}
	}
}
