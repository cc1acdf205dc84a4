package dto

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"mdceramica_backend/internals/features/workshop/schedule"
)

// SortStudents mengurutkan in-place (stable): hari (Lunes..Domingo, tidak
// dikenali di akhir) → timetable (10:00, 16:00, 18:30, lainnya di akhir) →
// nama (collation es) → id.
func SortStudents(list []StudentResponse) {
	// collator tidak aman dipakai bersamaan, jadi dibuat per panggilan
	col := collate.New(language.Spanish)

	type key struct {
		day, slot int
	}
	keys := make([]key, len(list))
	for i := range list {
		keys[i] = key{day: dayRank(list[i].Day), slot: timetableRank(list[i].Timetable)}
	}

	idx := make([]int, len(list))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		if ka.day != kb.day {
			return ka.day < kb.day
		}
		if ka.slot != kb.slot {
			return ka.slot < kb.slot
		}
		sa, sb := &list[idx[a]], &list[idx[b]]
		if c := col.CompareString(sa.Name, sb.Name); c != 0 {
			return c < 0
		}
		if sa.Name != sb.Name {
			return sa.Name < sb.Name
		}
		return sa.ID.String() < sb.ID.String()
	})

	sorted := make([]StudentResponse, len(list))
	for i, j := range idx {
		sorted[i] = list[j]
	}
	copy(list, sorted)
}

const unranked = 1 << 30

func dayRank(day *string) int {
	if day == nil {
		return unranked
	}
	if r, ok := schedule.DayRank(*day); ok {
		return r
	}
	return unranked
}

func timetableRank(v *string) int {
	if v == nil {
		return unranked
	}
	if r, ok := schedule.TimetableRank(*v); ok {
		return r
	}
	return unranked
}
