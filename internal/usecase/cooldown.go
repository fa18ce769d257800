package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"hours_tracker/internal/domain/entities"
)

// PayoutCooldown derives the countdown to the next payout-request
// eligibility from the most recent dataannotation event. With no payout on
// record the platform imposes no wait.
func (u *PipelineUseCase) PayoutCooldown(ctx context.Context) (entities.CooldownStatus, error) {
	events, err := u.events.List(ctx)
	if err != nil {
		log.Printf("[cooldown][usecase] listing payout events failed err=%v", err)
		return entities.CooldownStatus{}, err
	}
	status := payoutCooldown(events, u.cfg.CooldownHours, u.now().UTC())
	log.Printf("[cooldown][usecase] available=%t remaining=%q urgency=%s", status.Available, status.RemainingLabel, status.Urgency)
	return status, nil
}

func payoutCooldown(events []entities.PayoutEvent, cooldownHours int, now time.Time) entities.CooldownStatus {
	var last *entities.PayoutEvent
	for i := range events {
		e := events[i]
		if e.Source != entities.SourceDataAnnotation {
			continue
		}
		if last == nil || e.ReceivedAt.After(last.ReceivedAt) {
			last = &events[i]
		}
	}
	if last == nil {
		return entities.CooldownStatus{Available: true}
	}

	nextAvailable := last.ReceivedAt.Add(time.Duration(cooldownHours) * time.Hour)
	if !now.Before(nextAvailable) {
		return entities.CooldownStatus{Available: true}
	}

	remaining := nextAvailable.Sub(now)
	return entities.CooldownStatus{
		Available:      false,
		RemainingLabel: formatRemaining(remaining),
		Urgency:        cooldownUrgency(remaining),
	}
}

// formatRemaining renders a countdown as "{d}d {h}h {m}m", omitting leading
// zero units ("3h 10m", "45m").
func formatRemaining(remaining time.Duration) string {
	totalMinutes := int(remaining.Minutes())
	days := totalMinutes / (24 * 60)
	hours := (totalMinutes / 60) % 24
	minutes := totalMinutes % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// cooldownUrgency bands the countdown for display: the further eligibility
// is, the hotter the banner. Thresholds sit at 48h and 24h remaining.
func cooldownUrgency(remaining time.Duration) entities.Urgency {
	switch {
	case remaining > 48*time.Hour:
		return entities.UrgencyHigh
	case remaining > 24*time.Hour:
		return entities.UrgencyMedium
	default:
		return entities.UrgencyLow
	}
}
