package validators

import "time"

// IsClock valida "HH:MM" 24h.
func IsClock(hm string) bool {
	if len(hm) != 5 {
		return false
	}
	_, err := time.Parse("15:04", hm)
	return err == nil
}

// ClockBefore compara dois "HH:MM" já validados.
func ClockBefore(a, b string) bool {
	ta, errA := time.Parse("15:04", a)
	tb, errB := time.Parse("15:04", b)
	if errA != nil || errB != nil {
		return false
	}
	return ta.Before(tb)
}
