package common

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/srujandivakar/DCode/lib/logger"
)

func (p *Platform) InitServer() {
	gin.SetMode(gin.ReleaseMode)
	p.Router = gin.New()

	if logger.GetLevel() <= logger.LogLevelTrace {
		p.Router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
			Output: logger.CreateWriter(logger.LogLevelTrace, "Handler log:"),
		}))
	}
	p.Router.Use(gin.RecoveryWithWriter(
		logger.CreateWriter(logger.LogLevelError, "Panic in handler:"),
	))

	registry := prometheus.NewRegistry()
	p.Metrics.Register(registry)
	p.Router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	p.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func (p *Platform) runServer() {
	addr := ":" + strconv.Itoa(p.Config.Port)
	if p.Config.Host != nil {
		addr = *p.Config.Host + addr
	}
	logger.Info("Starting server at " + addr)
	server := http.Server{
		Addr:    addr,
		Handler: p.Router,
	}
	go func() {
		<-p.StopCtx.Done()
		logger.Info("Shutting down server")
		server.Shutdown(context.Background())
	}()
	server.ListenAndServe()
}
