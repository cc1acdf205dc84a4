package dto

import (
	"github.com/google/uuid"

	"mdceramica_backend/internals/features/workshop/schedule"
	"mdceramica_backend/internals/helpers/dbtime"
)

type CalendarItem struct {
	StudentID      uuid.UUID  `json:"student_id"`
	Student        string     `json:"student"`
	ClassID        *uuid.UUID `json:"class_id,omitempty"`
	ClassName      string     `json:"class_name,omitempty"`
	ClassDateLabel string     `json:"class_date_label,omitempty"`
}

type CalendarResponse = schedule.Calendar[CalendarItem]

// CalendarEntries: siswa tanpa kelas → satu entry dari preferensi hari/jam;
// tiap kelas → satu entry, hari dari tanggal kelas kalau ada (jam dari
// tanggal kecuali 00:00), kalau tidak dari preferensi siswa.
func CalendarEntries(students []StudentResponse) []schedule.Entry[CalendarItem] {
	var entries []schedule.Entry[CalendarItem]
	for i := range students {
		s := &students[i]
		day := deref(s.Day)
		fallbackTime := deref(s.Timetable)

		if len(s.Classes) == 0 {
			entries = append(entries, schedule.Entry[CalendarItem]{
				Day:  day,
				Time: fallbackTime,
				Item: CalendarItem{StudentID: s.ID, Student: s.Name},
			})
			continue
		}

		for j := range s.Classes {
			c := &s.Classes[j]
			classID := c.ID
			e := schedule.Entry[CalendarItem]{
				Day:  day,
				Time: fallbackTime,
				Item: CalendarItem{
					StudentID: s.ID,
					Student:   s.Name,
					ClassID:   &classID,
					ClassName: c.ClassName,
				},
			}
			if c.ClassDay != nil {
				local := dbtime.ToWorkshopTime(*c.ClassDay)
				e.Day = schedule.WeekDayOf(local.Weekday()).Label
				if local.Hour() != 0 || local.Minute() != 0 {
					e.Time = local.Format("15:04")
				}
				e.Item.ClassDateLabel = local.Format("02/01/2006")
			}
			entries = append(entries, e)
		}
	}
	return entries
}

// BuildCalendar = CalendarEntries + schedule.Group.
func BuildCalendar(students []StudentResponse) CalendarResponse {
	return schedule.Group(CalendarEntries(students))
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
