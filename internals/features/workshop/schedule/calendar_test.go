package schedule

import (
	"reflect"
	"testing"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"10:00", 600, true},
		{"18:30", 1110, true},
		{"clase 9:5 hs", 545, true},
		{"10:305", 630, true}, // menit maksimal dua digit
		{"7:08", 428, true},
		{"de 16:00 a 18:00", 960, true},
		{"sin horario", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseMinutes(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseMinutes(%q) = %d,%v want %d,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSortTimeLabels(t *testing.T) {
	labels := []string{"sin horario", "18:30", "Sin horario", "9:00", "16:00"}
	SortTimeLabels(labels)
	want := []string{"9:00", "16:00", "18:30", "Sin horario", "sin horario"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("SortTimeLabels = %v, want %v", labels, want)
	}
}

func TestGroupMixedStudents(t *testing.T) {
	entries := []Entry[string]{
		{Day: "miercoles", Time: "10:00", Item: "student1"},
		{Day: "desconocido", Time: "", Item: "student2"},
	}
	cal := Group(entries)

	if len(cal.Days) != 8 {
		t.Fatalf("expected 7 weekdays + unscheduled, got %d", len(cal.Days))
	}
	wed := cal.Days[2]
	if wed.Label != "Miércoles" || len(wed.Slots) != 1 || wed.Slots[0].Time != "10:00" {
		t.Fatalf("unexpected wednesday bucket: %+v", wed)
	}
	if !reflect.DeepEqual(wed.Slots[0].Items, []string{"student1"}) {
		t.Errorf("wednesday items = %v", wed.Slots[0].Items)
	}

	last := cal.Days[len(cal.Days)-1]
	if last.Key != UnscheduledKey {
		t.Fatalf("last day key = %q, want unscheduled", last.Key)
	}
	if len(last.Slots) != 1 || last.Slots[0].Time != NoTimeLabel {
		t.Fatalf("unexpected unscheduled bucket: %+v", last)
	}
	if !reflect.DeepEqual(last.Slots[0].Items, []string{"student2"}) {
		t.Errorf("unscheduled items = %v", last.Slots[0].Items)
	}

	for i, d := range cal.Days[:7] {
		if i != 2 && len(d.Slots) != 0 {
			t.Errorf("day %s should be empty, got %+v", d.Label, d.Slots)
		}
	}
}

func TestGroupWithoutUnscheduled(t *testing.T) {
	cal := Group([]Entry[int]{{Day: "Lunes", Time: "16:00", Item: 1}})
	if len(cal.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(cal.Days))
	}
	if cal.Days[0].Key != "1" || cal.Days[6].Key != "0" {
		t.Errorf("unexpected day keys: first=%q last=%q", cal.Days[0].Key, cal.Days[6].Key)
	}
}

func TestGroupOrdersSlotsAndTimes(t *testing.T) {
	entries := []Entry[int]{
		{Day: "lunes", Time: "18:30", Item: 1},
		{Day: "lunes", Time: "a convenir", Item: 2},
		{Day: "lunes", Time: " 10:00 ", Item: 3},
		{Day: "lunes", Time: "10:00", Item: 4},
		{Day: "martes", Time: "clase 9:5 hs", Item: 5},
	}
	cal := Group(entries)

	var got []string
	for _, s := range cal.Days[0].Slots {
		got = append(got, s.Time)
	}
	if want := []string{"10:00", "18:30", "a convenir"}; !reflect.DeepEqual(got, want) {
		t.Errorf("monday slots = %v, want %v", got, want)
	}
	if items := cal.Days[0].Slots[0].Items; !reflect.DeepEqual(items, []int{3, 4}) {
		t.Errorf("10:00 items = %v, want [3 4]", items)
	}
	if m := cal.Days[0].Slots[2].Minutes; m != nil {
		t.Errorf("unparseable slot should have nil minutes, got %d", *m)
	}
	if want := []string{"clase 9:5 hs", "10:00", "18:30", "a convenir"}; !reflect.DeepEqual(cal.Times, want) {
		t.Errorf("times = %v, want %v", cal.Times, want)
	}
}

func TestGroupNeverDropsEntries(t *testing.T) {
	days := []string{"", "lunes", "xx", "Dom", "sábado", "   ", "jue 10hs", "martes"}
	times := []string{"", "10:00", "nope", "18:30", "  ", "7:45"}
	var entries []Entry[int]
	n := 0
	for _, d := range days {
		for _, tm := range times {
			entries = append(entries, Entry[int]{Day: d, Time: tm, Item: n})
			n++
		}
	}
	cal := Group(entries)
	if cal.Count() != len(entries) {
		t.Fatalf("grouped %d entries, want %d", cal.Count(), len(entries))
	}
	seen := make(map[int]bool, n)
	for _, d := range cal.Days {
		for _, s := range d.Slots {
			for _, it := range s.Items {
				if seen[it] {
					t.Errorf("item %d appears twice", it)
				}
				seen[it] = true
			}
		}
	}
}

func TestGroupEmpty(t *testing.T) {
	cal := Group[int](nil)
	if len(cal.Days) != 7 || cal.Count() != 0 || len(cal.Times) != 0 {
		t.Errorf("unexpected empty calendar: %+v", cal)
	}
}
