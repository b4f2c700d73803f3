package common

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/srujandivakar/DCode/common/config"
	"github.com/srujandivakar/DCode/common/connectors/judgeconn"
	"github.com/srujandivakar/DCode/common/db"
	"github.com/srujandivakar/DCode/common/metrics"
	"github.com/srujandivakar/DCode/lib/logger"
)

// Platform holds everything the execution service shares: config, router, db,
// the judge connector and the metric collector. Request handling itself keeps
// no other cross-request state.
type Platform struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *gorm.DB
	Metrics *metrics.Collector

	JudgeConn *judgeconn.Connector

	processes []func()
	defers    []func()

	StopCtx  context.Context
	stopFunc context.CancelFunc
	stopWG   sync.WaitGroup
}

func InitPlatform(configPath string) *Platform {
	p := &Platform{
		Config:  config.ReadConfig(configPath),
		Metrics: metrics.NewCollector(),
	}
	logger.InitLogger(p.Config.Logger)

	p.InitServer()

	var err error
	p.DB, err = db.NewDB(p.Config.DB)
	if err != nil {
		logger.Panic("Can not set up db connection, error: %s", err.Error())
	}

	p.JudgeConn = judgeconn.NewConnector(p.Config.Judge)

	return p
}

func (p *Platform) AddProcess(f func()) {
	p.processes = append(p.processes, f)
}

func (p *Platform) AddDefer(f func()) {
	p.defers = append(p.defers, f)
}

func (p *Platform) Run() {
	var ctx context.Context
	var cancel context.CancelFunc
	ctx, p.stopFunc = context.WithCancel(context.Background())
	p.StopCtx, cancel = signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	for _, process := range p.processes {
		p.Go(process)
	}

	p.runServer()

	p.stopWG.Wait()

	for _, d := range p.defers {
		d()
	}
}

func (p *Platform) Go(f func()) {
	p.stopWG.Add(1)
	go p.runProcess(f)
}

func (p *Platform) runProcess(f func()) {
	defer func() {
		v := recover()
		if v != nil {
			logger.Error("One process got panic, shutting down all processes gracefully")
			p.stopFunc()
		}
		p.stopWG.Done()
	}()

	f()
}
