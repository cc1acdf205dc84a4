// Package schedule berisi aturan jadwal yang dipakai bersama oleh list siswa
// dan tampilan kalender: pencocokan nama hari, kode timetable, parsing jam,
// dan pengelompokan hari → slot jam.
package schedule

import (
	"strings"
	"time"
)

type WeekDay struct {
	Value   time.Weekday `json:"value"` // 0 = Minggu (Domingo) … 6 = Sabtu (Sábado)
	Label   string       `json:"label"`
	Aliases []string     `json:"-"`
}

// WeekDays urut tampilan: Lunes … Domingo. Alias sudah dalam bentuk SanitizeDay.
var WeekDays = []WeekDay{
	{Value: time.Monday, Label: "Lunes", Aliases: []string{"lunes", "lun", "mon"}},
	{Value: time.Tuesday, Label: "Martes", Aliases: []string{"martes", "mar", "tue"}},
	{Value: time.Wednesday, Label: "Miércoles", Aliases: []string{"miercoles", "mie", "wed"}},
	{Value: time.Thursday, Label: "Jueves", Aliases: []string{"jueves", "jue", "thu"}},
	{Value: time.Friday, Label: "Viernes", Aliases: []string{"viernes", "vie", "fri"}},
	{Value: time.Saturday, Label: "Sábado", Aliases: []string{"sabado", "sab", "sat"}},
	{Value: time.Sunday, Label: "Domingo", Aliases: []string{"domingo", "dom", "sun"}},
}

var accentReplacer = strings.NewReplacer(
	"á", "a",
	"é", "e",
	"í", "i",
	"ó", "o",
	"ú", "u",
)

// SanitizeDay: lowercase, buang aksen vokal Spanyol, trim.
func SanitizeDay(value string) string {
	return strings.TrimSpace(accentReplacer.Replace(strings.ToLower(value)))
}

// ParseDay mencocokkan teks bebas ke hari pertama yang salah satu aliasnya
// menjadi prefix input ("lunes por la tarde" → Lunes). false = tanpa hari.
func ParseDay(value string) (WeekDay, bool) {
	normalized := SanitizeDay(value)
	if normalized == "" {
		return WeekDay{}, false
	}
	for _, day := range WeekDays {
		for _, alias := range day.Aliases {
			if strings.HasPrefix(normalized, alias) {
				return day, true
			}
		}
	}
	return WeekDay{}, false
}

// DayRank: Lunes=0 … Domingo=6; ok=false untuk hari yang tidak dikenali.
func DayRank(value string) (int, bool) {
	day, ok := ParseDay(value)
	if !ok {
		return 0, false
	}
	return rankOf(day.Value), true
}

// WeekDayOf mengembalikan entri tabel untuk time.Weekday.
func WeekDayOf(w time.Weekday) WeekDay {
	return WeekDays[rankOf(w)]
}

func rankOf(w time.Weekday) int {
	return (int(w) + 6) % 7
}
