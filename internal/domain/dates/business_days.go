// Package dates holds pure calendar arithmetic used by the payout pipeline.
package dates

import "time"

// AddBusinessDays returns start advanced by n business days, skipping
// Saturdays and Sundays. The start date itself is never counted, so adding
// one business day to a Friday lands on the following Monday. Non-positive n
// returns start unchanged.
func AddBusinessDays(start time.Time, n int) time.Time {
	d := start
	for added := 0; added < n; {
		d = d.AddDate(0, 0, 1)
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added++
		}
	}
	return d
}
