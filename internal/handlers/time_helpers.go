package handlers

import (
	"time"

	"github.com/BruksfildServices01/booking-api/internal/models"
	"github.com/BruksfildServices01/booking-api/internal/timezone"
)

// Todo timestamp entra e sai no timezone configurado do negócio;
// no banco fica o instante absoluto.

func locationFromBusiness(biz *models.Business) *time.Location {
	if biz != nil {
		return timezone.Location(biz.Timezone)
	}
	return time.UTC
}

func parseDateInBusiness(biz *models.Business, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromBusiness(biz),
	)
}
