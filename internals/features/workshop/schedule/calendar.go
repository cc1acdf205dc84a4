package schedule

import (
	"sort"
	"strconv"
	"strings"
)

const (
	UnscheduledKey   = "unscheduled"
	UnscheduledLabel = "Sin día"
	NoTimeLabel      = "Sin horario"
)

// Entry satu item yang mau ditaruh di kalender. Day & Time teks bebas.
type Entry[T any] struct {
	Day  string
	Time string
	Item T
}

type Slot[T any] struct {
	Time    string `json:"time"`
	Minutes *int   `json:"minutes,omitempty"`
	Items   []T    `json:"items"`
}

type Day[T any] struct {
	Key   string    `json:"key"` // "0".."6" (time.Weekday) atau "unscheduled"
	Label string    `json:"label"`
	Slots []Slot[T] `json:"slots"`
}

type Calendar[T any] struct {
	Days  []Day[T] `json:"days"`
	Times []string `json:"times"`
}

// Count total item di semua bucket.
func (c Calendar[T]) Count() int {
	n := 0
	for _, d := range c.Days {
		for _, s := range d.Slots {
			n += len(s.Items)
		}
	}
	return n
}

// Group mengelompokkan entry: hari → slot jam → item. Tujuh hari selalu ada
// (Lunes … Domingo), bucket "unscheduled" ditambah di akhir hanya kalau dipakai.
// Tidak ada entry yang dibuang.
func Group[T any](entries []Entry[T]) Calendar[T] {
	buckets := make([]map[string][]T, len(WeekDays)+1)
	order := make([][]string, len(WeekDays)+1)
	unscheduled := len(WeekDays)

	for _, e := range entries {
		idx := unscheduled
		if day, ok := ParseDay(e.Day); ok {
			idx = rankOf(day.Value)
		}
		label := strings.TrimSpace(e.Time)
		if label == "" {
			label = NoTimeLabel
		}
		if buckets[idx] == nil {
			buckets[idx] = map[string][]T{}
		}
		if _, seen := buckets[idx][label]; !seen {
			order[idx] = append(order[idx], label)
		}
		buckets[idx][label] = append(buckets[idx][label], e.Item)
	}

	cal := Calendar[T]{Days: make([]Day[T], 0, len(WeekDays)+1)}
	allTimes := map[string]struct{}{}

	build := func(idx int, key, label string) Day[T] {
		labels := order[idx]
		SortTimeLabels(labels)
		d := Day[T]{Key: key, Label: label, Slots: make([]Slot[T], 0, len(labels))}
		for _, l := range labels {
			s := Slot[T]{Time: l, Items: buckets[idx][l]}
			if m, ok := ParseMinutes(l); ok {
				s.Minutes = &m
			}
			d.Slots = append(d.Slots, s)
			allTimes[l] = struct{}{}
		}
		return d
	}

	for i, wd := range WeekDays {
		cal.Days = append(cal.Days, build(i, strconv.Itoa(int(wd.Value)), wd.Label))
	}
	if len(order[unscheduled]) > 0 {
		cal.Days = append(cal.Days, build(unscheduled, UnscheduledKey, UnscheduledLabel))
	}

	cal.Times = make([]string, 0, len(allTimes))
	for t := range allTimes {
		cal.Times = append(cal.Times, t)
	}
	SortTimeLabels(cal.Times)
	return cal
}

// SortTimeLabels: menit naik, label tanpa jam di akhir, seri → leksikografis.
func SortTimeLabels(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		mi, oki := ParseMinutes(labels[i])
		mj, okj := ParseMinutes(labels[j])
		switch {
		case oki && okj && mi != mj:
			return mi < mj
		case oki != okj:
			return oki
		}
		return labels[i] < labels[j]
	})
}
