package schedule

// Kode timetable yang disimpan di kolom student_timetable.
const (
	TimetableTen      = "TEN"
	TimetableSixteen  = "SIXTEEN"
	TimetableEighteen = "EIGHTEEN"
)

var timetableCodes = map[string]string{
	TimetableTen:      "10:00",
	TimetableSixteen:  "16:00",
	TimetableEighteen: "18:30",
}

// TimetableOrder juga menjadi urutan sort list siswa.
var TimetableOrder = []string{"10:00", "16:00", "18:30"}

// DecodeTimetable: kode DB → label tampilan. Kode kosong/asing → ("", false).
func DecodeTimetable(code string) (string, bool) {
	v, ok := timetableCodes[code]
	return v, ok
}

// EncodeTimetable: label tampilan → kode DB.
func EncodeTimetable(value string) (string, bool) {
	for code, v := range timetableCodes {
		if v == value {
			return code, true
		}
	}
	return "", false
}

// TimetableRank posisi label di TimetableOrder; ok=false untuk label asing.
func TimetableRank(value string) (int, bool) {
	for i, v := range TimetableOrder {
		if v == value {
			return i, true
		}
	}
	return 0, false
}
