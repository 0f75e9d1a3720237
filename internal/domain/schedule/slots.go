package schedule

import (
	"time"

	"github.com/BruksfildServices01/booking-api/internal/models"
)

// Passo fixo entre candidatos, independente da duração do serviço.
// Durações maiores que o passo geram slots sobrepostos de propósito:
// o filtro de conflito roda a cada consulta e resolve.
const SlotStep = 30 * time.Minute

// GenerateSlots produz os inícios candidatos dentro da janela.
// Invariante: todo slot emitido cabe inteiro na janela (t + duration <= end).
func GenerateSlots(window Interval, duration time.Duration) []time.Time {
	var slots []time.Time
	for cur := window.Start; !cur.Add(duration).After(window.End); cur = cur.Add(SlotStep) {
		slots = append(slots, cur)
	}
	return slots
}

// AbsenceInterval traduz uma ausência para intervalo de bloqueio.
// EndDate nulo = fechamento em aberto: bloqueia tudo a partir de StartDate.
func AbsenceInterval(a *models.Absence, horizon time.Time) Interval {
	if a.EndDate == nil {
		return NewInterval(a.StartDate, horizon)
	}
	return NewInterval(a.StartDate, *a.EndDate)
}

// FilterConflicts remove candidatos que conflitam com agendamentos
// CONFIRMED ou com ausências. Filtro consultivo: o commit revalida sempre.
func FilterConflicts(
	slots []time.Time,
	duration time.Duration,
	appointments []models.Appointment,
	absences []models.Absence,
) []time.Time {

	free := make([]time.Time, 0, len(slots))

	for _, s := range slots {
		slot := NewInterval(s, s.Add(duration))

		if slotBlocked(slot, appointments, absences) {
			continue
		}

		free = append(free, s)
	}

	return free
}

func slotBlocked(
	slot Interval,
	appointments []models.Appointment,
	absences []models.Absence,
) bool {

	for i := range absences {
		// horizonte distante o bastante para qualquer consulta de agenda
		horizon := slot.End.AddDate(100, 0, 0)
		if AbsenceInterval(&absences[i], horizon).Overlaps(slot) {
			return true
		}
	}

	for i := range appointments {
		ap := &appointments[i]
		if !Status(ap.Status).Blocks() {
			continue
		}
		if NewInterval(ap.StartAt, ap.EndAt).Overlaps(slot) {
			return true
		}
	}

	return false
}

// FormatSlots devolve os inícios como "HH:MM" 24h, na ordem de geração.
func FormatSlots(slots []time.Time) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Format("15:04"))
	}
	return out
}
