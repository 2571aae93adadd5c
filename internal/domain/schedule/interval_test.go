package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{
			name:   "intervalos idênticos",
			aStart: at(10, 0), aEnd: at(11, 0),
			bStart: at(10, 0), bEnd: at(11, 0),
			want: true,
		},
		{
			name:   "sobreposição parcial no fim",
			aStart: at(10, 0), aEnd: at(11, 0),
			bStart: at(10, 30), bEnd: at(11, 30),
			want: true,
		},
		{
			name:   "um contém o outro",
			aStart: at(9, 0), aEnd: at(12, 0),
			bStart: at(10, 0), bEnd: at(11, 0),
			want: true,
		},
		{
			name:   "encostados na borda não conflitam",
			aStart: at(10, 0), aEnd: at(11, 0),
			bStart: at(11, 0), bEnd: at(12, 0),
			want: false,
		},
		{
			name:   "encostados na borda invertida",
			aStart: at(11, 0), aEnd: at(12, 0),
			bStart: at(10, 0), bEnd: at(11, 0),
			want: false,
		},
		{
			name:   "disjuntos",
			aStart: at(8, 0), aEnd: at(9, 0),
			bStart: at(14, 0), bEnd: at(15, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)

			// a relação é simétrica
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestValidateInterval(t *testing.T) {
	assert.NoError(t, ValidateInterval(at(10, 0), at(11, 0)))

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"fim antes do início", at(11, 0), at(10, 0)},
		{"intervalo vazio", at(10, 0), at(10, 0)},
		{"início zerado", time.Time{}, at(10, 0)},
		{"fim zerado", at(10, 0), time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInterval(tt.start, tt.end)
			code, ok := httperr.BusinessCode(err)
			assert.True(t, ok)
			assert.Equal(t, "invalid_interval", code)
		})
	}
}
