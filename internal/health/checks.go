package health

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"

	"github.com/velvetglow/storefront/internal/config"
)

func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "catalog-source",
			Timeout:   3 * time.Second,
			SkipOnErr: true, // catalog load failures degrade to the fallback list
			Check:     catalogSourceCheck(&cfg.Catalog),
		},
	}

	switch cfg.Storage.Backend {
	case "redis":
		checks = append(checks, health.Config{
			Name:      "cart-storage",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		})
	default:
		checks = append(checks, health.Config{
			Name:      "cart-storage",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check:     fileStorageCheck(&cfg.Storage),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

func catalogSourceCheck(cfg *config.Catalog) func(ctx context.Context) error {
	return func(ctx context.Context) error {

		if strings.HasPrefix(cfg.Source, "http://") || strings.HasPrefix(cfg.Source, "https://") {

			req, err := http.NewRequestWithContext(ctx, http.MethodHead, cfg.Source, nil)
			if err != nil {
				return fmt.Errorf("failed to build catalog source request: %w", err)
			}

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return fmt.Errorf("failed to reach catalog source: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode >= http.StatusBadRequest {
				return fmt.Errorf("catalog source returned status %d", resp.StatusCode)
			}

			return nil
		}

		if _, err := os.Stat(cfg.Source); err != nil {
			return fmt.Errorf("catalog source file unavailable: %w", err)
		}

		return nil
	}
}

func fileStorageCheck(cfg *config.Storage) func(ctx context.Context) error {
	return func(ctx context.Context) error {

		info, err := os.Stat(cfg.Path)
		if err != nil {
			return fmt.Errorf("storage directory unavailable: %w", err)
		}

		if !info.IsDir() {
			return fmt.Errorf("storage path %s is not a directory", cfg.Path)
		}

		return nil
	}
}
