package app

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/you/vaultsvc/internal/config"
)

// Run builds the container and serves until the listener fails
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(context.Background(), cfg)
	if err != nil {
		return err
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return c.Router.Run(addr)
}
