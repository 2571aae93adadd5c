package schedule

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// Overlaps testa sobreposição de intervalos meio-abertos [start, end).
// Intervalos que apenas se tocam na borda não conflitam.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// ValidateInterval rejeita intervalos vazios ou invertidos.
func ValidateInterval(start, end time.Time) error {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return httperr.ErrBusiness("invalid_interval")
	}
	return nil
}
