package usecase

import "testing"

func TestPipelineConfigFromEnv(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		t.Setenv("PROJECT_PAYOUT_HOURS", "")
		t.Setenv("TASK_PAYOUT_HOURS", "")
		t.Setenv("TRANSFER_BUSINESS_DAYS", "")
		t.Setenv("COOLDOWN_HOURS", "")

		cfg := PipelineConfigFromEnv()
		if cfg != DefaultPipelineConfig() {
			t.Fatalf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv("PROJECT_PAYOUT_HOURS", "240")
		t.Setenv("TASK_PAYOUT_HOURS", "48")
		t.Setenv("TRANSFER_BUSINESS_DAYS", "5")
		t.Setenv("COOLDOWN_HOURS", "96")

		cfg := PipelineConfigFromEnv()
		if cfg.ProjectPayoutHours != 240 || cfg.TaskPayoutHours != 48 || cfg.TransferBusinessDays != 5 || cfg.CooldownHours != 96 {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("garbage and non-positive fall back to defaults", func(t *testing.T) {
		t.Setenv("PROJECT_PAYOUT_HOURS", "soon")
		t.Setenv("TASK_PAYOUT_HOURS", "-1")

		cfg := PipelineConfigFromEnv()
		if cfg.ProjectPayoutHours != defaultProjectPayoutHours || cfg.TaskPayoutHours != defaultTaskPayoutHours {
			t.Fatalf("expected defaults for bad values, got %+v", cfg)
		}
	})
}
