package schedule

import "time"

// Intervalo meio-aberto [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Overlaps é o predicado canônico de conflito: A.start < B.end && B.start < A.end.
// Intervalos que apenas se tocam (10:00/10:00) NÃO conflitam.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}
