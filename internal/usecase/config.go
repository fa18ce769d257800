package usecase

import (
	"os"
	"strconv"
)

const (
	defaultProjectPayoutHours   = 168
	defaultTaskPayoutHours      = 72
	defaultTransferBusinessDays = 3
	defaultCooldownHours        = 72
)

// PipelineConfig carries the payout timing knobs consumed by the derivation
// usecases. Values are read once at bootstrap and passed in explicitly; none
// of the calculators keep process-wide state.
type PipelineConfig struct {
	// ProjectPayoutHours is the waiting period between submitting hourly
	// project work and its payout eligibility.
	ProjectPayoutHours int
	// TaskPayoutHours is the same window for flat-fee task work.
	TaskPayoutHours int
	// TransferBusinessDays is the projected bank-transfer duration used when
	// a transfer email states no estimated arrival.
	TransferBusinessDays int
	// CooldownHours is the platform-imposed minimum interval between
	// successive payout requests.
	CooldownHours int
}

// DefaultPipelineConfig returns the stock timing constants.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		ProjectPayoutHours:   defaultProjectPayoutHours,
		TaskPayoutHours:      defaultTaskPayoutHours,
		TransferBusinessDays: defaultTransferBusinessDays,
		CooldownHours:        defaultCooldownHours,
	}
}

// PipelineConfigFromEnv reads the timing knobs from the environment,
// falling back to defaults for unset or unparseable values.
//
// Supported env vars:
//   - PROJECT_PAYOUT_HOURS (default: 168)
//   - TASK_PAYOUT_HOURS (default: 72)
//   - TRANSFER_BUSINESS_DAYS (default: 3)
//   - COOLDOWN_HOURS (default: 72)
func PipelineConfigFromEnv() PipelineConfig {
	return PipelineConfig{
		ProjectPayoutHours:   getenvInt("PROJECT_PAYOUT_HOURS", defaultProjectPayoutHours),
		TaskPayoutHours:      getenvInt("TASK_PAYOUT_HOURS", defaultTaskPayoutHours),
		TransferBusinessDays: getenvInt("TRANSFER_BUSINESS_DAYS", defaultTransferBusinessDays),
		CooldownHours:        getenvInt("COOLDOWN_HOURS", defaultCooldownHours),
	}
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
