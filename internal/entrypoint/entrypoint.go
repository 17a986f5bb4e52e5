package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/mrlokans/ankipkg/internal/config"
	"github.com/mrlokans/ankipkg/internal/tasks"
)

// Serve runs the export API until SIGINT/SIGTERM, then shuts down
// gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	if err := os.MkdirAll(cfg.Spool.Dir, 0o755); err != nil {
		log.Fatalf("Spool directory %s is not usable: %v", cfg.Spool.Dir, err)
	}

	cleaner := tasks.NewSpoolCleaner(cfg.Spool.Dir, cfg.Spool.Retention)
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Spool.CleanupSchedule, func() {
		if err := cleaner.Cleanup(); err != nil {
			log.Printf("Spool cleanup failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Invalid spool cleanup schedule %q: %v", cfg.Spool.CleanupSchedule, err)
	}
	scheduler.Start()

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
