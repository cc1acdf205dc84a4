package schedule

import (
	"regexp"
	"strconv"
)

var timeRegex = regexp.MustCompile(`(\d{1,2}):(\d{1,2})`)

// ParseMinutes mengambil pola H:MM pertama di teks dan mengembalikan menit sejak
// tengah malam ("clase 9:5 hs" → 545). ok=false kalau tidak ada pola jam.
func ParseMinutes(value string) (int, bool) {
	m := timeRegex.FindStringSubmatch(value)
	if m == nil {
		return 0, false
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes, true
}
