package schedule

import (
	"time"

	"github.com/BruksfildServices01/booking-api/internal/models"
)

// ResolveWindow combina a data alvo com o expediente cadastrado para o dia
// da semana e devolve a janela de atendimento [start, end) em horário absoluto.
// ok=false significa fechado (sem registro, isOpen=false ou horários inválidos).
func ResolveWindow(day *models.WorkingDay, date time.Time) (Interval, bool) {
	if day == nil || !day.IsOpen || day.StartTime == "" || day.EndTime == "" {
		return Interval{}, false
	}

	start, okStart := combine(date, day.StartTime)
	end, okEnd := combine(date, day.EndTime)
	if !okStart || !okEnd {
		return Interval{}, false
	}

	window := NewInterval(start, end)
	if !window.IsValid() {
		return Interval{}, false
	}

	return window, true
}

// combine aplica um "HH:MM" sobre a data, preservando o location.
func combine(date time.Time, hm string) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), true
}
