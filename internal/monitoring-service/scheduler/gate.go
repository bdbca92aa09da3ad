package scheduler

import "time"

// IsDue reports whether an endpoint should be checked at now. An endpoint that
// was never checked is always due, a last check lying in the future never is.
func IsDue(lastCheck *time.Time, intervalSeconds int, now time.Time) bool {
	if lastCheck == nil {
		return true
	}
	elapsed := now.Sub(*lastCheck)
	if elapsed < 0 {
		return false
	}
	return int64(elapsed/time.Second) >= int64(intervalSeconds)
}
