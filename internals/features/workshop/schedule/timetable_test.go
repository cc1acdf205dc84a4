package schedule

import "testing"

func TestTimetableRoundTrip(t *testing.T) {
	for _, value := range TimetableOrder {
		code, ok := EncodeTimetable(value)
		if !ok {
			t.Fatalf("EncodeTimetable(%q) not found", value)
		}
		back, ok := DecodeTimetable(code)
		if !ok || back != value {
			t.Errorf("decode(encode(%q)) = %q", value, back)
		}
	}
	for _, code := range []string{TimetableTen, TimetableSixteen, TimetableEighteen} {
		value, ok := DecodeTimetable(code)
		if !ok {
			t.Fatalf("DecodeTimetable(%q) not found", code)
		}
		back, ok := EncodeTimetable(value)
		if !ok || back != code {
			t.Errorf("encode(decode(%q)) = %q", code, back)
		}
	}
}

func TestTimetableUnknown(t *testing.T) {
	if v, ok := DecodeTimetable("NOON"); ok || v != "" {
		t.Errorf("DecodeTimetable(NOON) = %q,%v", v, ok)
	}
	if v, ok := DecodeTimetable(""); ok || v != "" {
		t.Errorf("DecodeTimetable(\"\") = %q,%v", v, ok)
	}
	if _, ok := EncodeTimetable("10:30"); ok {
		t.Error("EncodeTimetable(10:30) should not match")
	}
}

func TestTimetableRank(t *testing.T) {
	if r, ok := TimetableRank("18:30"); !ok || r != 2 {
		t.Errorf("TimetableRank(18:30) = %d,%v", r, ok)
	}
	if _, ok := TimetableRank("12:00"); ok {
		t.Error("TimetableRank(12:00) should be unranked")
	}
}
