package rate

import "time"

// ComputeCostCents charges per started 24-hour block: days is the elapsed
// duration divided by 24h and rounded up (ceiling, not floor or round — a
// stay of 25h costs two days), with a minimum of one day for stays under 24h.
// Pure: the result depends only on its arguments.
func ComputeCostCents(enteredAt, now time.Time, dailyRateCents int64) int64 {
	elapsed := now.Sub(enteredAt)
	days := int64(elapsed / (24 * time.Hour))
	if elapsed%(24*time.Hour) > 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days * dailyRateCents
}
