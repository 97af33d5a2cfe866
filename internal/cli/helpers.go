package cli

import (
	"arbeitszeit/internal/config"
	"arbeitszeit/internal/files"
	"arbeitszeit/internal/ledger"
)

// openLedger loads the config and the ledger it points at. Every command
// loads fresh state; nothing is cached between invocations.
func openLedger(manager *files.Manager) (*ledger.Ledger, error) {
	cfg, err := config.Load(manager)
	if err != nil {
		return nil, err
	}
	baseline, err := cfg.Baseline()
	if err != nil {
		return nil, err
	}
	return ledger.Open(cfg.LedgerPath(), baseline)
}

// timeArg extracts the optional HH:MM positional argument.
func timeArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
