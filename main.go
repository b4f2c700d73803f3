package main

import (
	"os"

	"github.com/srujandivakar/DCode/common"
	"github.com/srujandivakar/DCode/lib/logger"
	"github.com/srujandivakar/DCode/orchestrator"
)

func main() {
	if len(os.Args) < 2 {
		panic("usage: dcode-exec <config path>")
	}
	p := common.InitPlatform(os.Args[1])
	if _, err := orchestrator.SetupOrchestrator(p); err != nil {
		logger.Panic("Can not set up orchestrator, error: %v", err)
	}
	p.Run()
}
