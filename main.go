package main

import (
	"github.com/mrlokans/ankipkg/internal/config"
	"github.com/mrlokans/ankipkg/internal/entrypoint"
	"github.com/mrlokans/ankipkg/internal/http"
)

func main() {
	cfg := config.NewConfig()
	router := http.NewRouter(cfg.Spool.Dir)
	entrypoint.Serve(router, cfg)
}
