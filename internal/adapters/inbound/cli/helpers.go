package cli

import (
	"encoding/json"
	"fmt"

	"github.com/billfold/billfold/internal/adapters/outbound/config"
	"github.com/billfold/billfold/internal/adapters/outbound/sample"
	"github.com/billfold/billfold/internal/adapters/outbound/store"
	"github.com/billfold/billfold/internal/application"
	"github.com/billfold/billfold/internal/domain"
	"github.com/billfold/billfold/internal/logger"
	"github.com/spf13/cobra"
)

// buildService loads config, sets up logging, and wires the service over
// the file store. The --ledger flag wins over config and environment.
func buildService(cmd *cobra.Command) (*application.LedgerService, domain.AppConfig, error) {
	cfg, err := config.New().Load()
	if err != nil {
		return nil, domain.AppConfig{}, err
	}

	if path, _ := cmd.Flags().GetString("ledger"); path != "" {
		cfg.LedgerPath = path
	}
	if cfg.LedgerPath == "" {
		cfg.LedgerPath = store.DefaultPath()
	}

	if err := logger.Setup(cfg.LogLevel); err != nil {
		return nil, domain.AppConfig{}, fmt.Errorf("configuring logging: %w", err)
	}

	svc := application.NewLedgerService(store.New(cfg.LedgerPath), sample.New())
	return svc, cfg, nil
}

// parseQuery converts raw flag values into a validated domain query.
func parseQuery(status, search, sortField, sortOrder string) (domain.Query, error) {
	q := domain.DefaultQuery()
	var err error

	if status != "" {
		if q.Status, err = domain.ParseStatus(status); err != nil {
			return domain.Query{}, err
		}
	}
	if sortField != "" {
		if q.SortField, err = domain.ParseSortField(sortField); err != nil {
			return domain.Query{}, err
		}
	}
	if sortOrder != "" {
		if q.SortOrder, err = domain.ParseSortOrder(sortOrder); err != nil {
			return domain.Query{}, err
		}
	}
	q.Search = search
	return q, nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
