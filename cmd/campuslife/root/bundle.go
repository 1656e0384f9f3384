package root

import (
	"os"

	"github.com/spf13/cobra"

	"campuslife/internal/config"
	"campuslife/internal/content"
)

// settings resolves the content directory and pacing from flags, falling
// back to the environment (and .env).
func settings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(".env")
	if err != nil {
		return config.Config{}, err
	}
	if dir, _ := cmd.Flags().GetString("content"); dir != "" {
		cfg.ContentDir = dir
	}
	return cfg, nil
}

func openBundle(cmd *cobra.Command) (*content.Bundle, config.Config, error) {
	cfg, err := settings(cmd)
	if err != nil {
		return nil, cfg, err
	}
	b, err := content.Load(os.DirFS(cfg.ContentDir))
	if err != nil {
		return nil, cfg, err
	}
	return b, cfg, nil
}
