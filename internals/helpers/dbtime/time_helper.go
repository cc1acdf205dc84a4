// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"errors"
	"strings"
	"sync"
	"time"
)

const DefaultTimezone = "America/Argentina/Buenos_Aires"

var (
	locMu sync.RWMutex
	loc   *time.Location
)

// SetWorkshopTimezone dipanggil sekali saat startup (APP_TIMEZONE).
// Nama zona yang tidak valid → fallback ke DefaultTimezone, lalu UTC.
func SetWorkshopTimezone(name string) *time.Location {
	l, err := time.LoadLocation(strings.TrimSpace(name))
	if err != nil || strings.TrimSpace(name) == "" {
		if l, err = time.LoadLocation(DefaultTimezone); err != nil {
			l = time.UTC
		}
	}
	locMu.Lock()
	loc = l
	locMu.Unlock()
	return l
}

// WorkshopLocation zona waktu taller; default Buenos Aires.
func WorkshopLocation() *time.Location {
	locMu.RLock()
	l := loc
	locMu.RUnlock()
	if l != nil {
		return l
	}
	return SetWorkshopTimezone(DefaultTimezone)
}

// ToWorkshopTime mengonversi waktu (biasanya dari DB = UTC) ke zona taller.
func ToWorkshopTime(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(WorkshopLocation())
}

func NowInWorkshop() time.Time {
	return time.Now().In(WorkshopLocation())
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006",
}

var ErrInvalidDate = errors.New("fecha inválida")

// ParseDateInput menerima string mentah dari form. Layout tanpa zona
// ditafsirkan di zona taller.
func ParseDateInput(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, WorkshopLocation()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
