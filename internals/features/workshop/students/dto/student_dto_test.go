package dto

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mdceramica_backend/internals/features/workshop/schedule"
	model "mdceramica_backend/internals/features/workshop/students/model"
	"mdceramica_backend/internals/helpers/dbtime"
)

func strPtr(s string) *string { return &s }

func TestCapitalizeName(t *testing.T) {
	tests := map[string]string{
		" ana ":      "Ana ",
		"ana":        "Ana",
		"Ana":        "Ana",
		"émilie":     "Émilie",
		"juan pablo": "Juan pablo",
		"   ":        "",
		"":           "",
		"\tñoño":     "Ñoño",
	}
	for in, want := range tests {
		if got := CapitalizeName(in); got != want {
			t.Errorf("CapitalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCreateStudentRequest(t *testing.T) {
	req := CreateStudentRequest{
		Name:      " ana ",
		Birthday:  strPtr("1990-05-17"),
		Telephone: strPtr("  "),
		Day:       strPtr(" Lunes "),
		Timetable: strPtr("16:00"),
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	m := req.ToModel()
	if m.StudentName != "Ana " {
		t.Errorf("name = %q", m.StudentName)
	}
	if m.StudentTelephone != nil {
		t.Errorf("blank telephone should be nil, got %q", *m.StudentTelephone)
	}
	if m.StudentDay == nil || *m.StudentDay != "Lunes" {
		t.Errorf("day = %v", m.StudentDay)
	}
	if m.StudentTimetable == nil || *m.StudentTimetable != schedule.TimetableSixteen {
		t.Errorf("timetable code = %v", m.StudentTimetable)
	}
	if m.StudentBirthday == nil || time.Time(*m.StudentBirthday).Format("2006-01-02") != "1990-05-17" {
		t.Errorf("birthday = %v", m.StudentBirthday)
	}

	bad := CreateStudentRequest{Name: "   "}
	bad.Normalize()
	if err := bad.Validate(); err == nil {
		t.Error("blank name should fail validation")
	}
	badDate := CreateStudentRequest{Name: "Eva", Birthday: strPtr("ayer")}
	badDate.Normalize()
	if err := badDate.Validate(); err == nil {
		t.Error("invalid birthday should fail validation")
	}
}

func TestUpdateStudentRequestApply(t *testing.T) {
	code := schedule.TimetableTen
	m := &model.StudentModel{
		StudentName:      "Ana",
		StudentTelephone: strPtr("555"),
		StudentTimetable: &code,
	}
	req := UpdateStudentRequest{
		Name:      strPtr("beatriz"),
		Telephone: strPtr(""),
		Timetable: strPtr("18:30"),
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		t.Fatal(err)
	}
	req.Apply(m)

	if m.StudentName != "Beatriz" {
		t.Errorf("name = %q", m.StudentName)
	}
	if m.StudentTelephone != nil {
		t.Error("telephone should be cleared")
	}
	if m.StudentTimetable == nil || *m.StudentTimetable != schedule.TimetableEighteen {
		t.Errorf("timetable = %v", m.StudentTimetable)
	}
}

func TestFromStudentModelFlattensClasses(t *testing.T) {
	badCode := "NOON"
	m := &model.StudentModel{
		StudentID:        uuid.New(),
		StudentName:      "Ana",
		StudentTimetable: &badCode,
		Months: []model.MonthModel{
			{MonthID: uuid.New(), MonthLabel: "Marzo", Classes: []model.ClassModel{
				{ClassID: uuid.New(), ClassName: "Torno", ClassPrice: decimal.NewFromInt(100)},
				{ClassID: uuid.New(), ClassName: "Esmaltado", ClassPrice: decimal.NewFromInt(50)},
			}},
			{MonthID: uuid.New(), MonthLabel: "Abril", Classes: []model.ClassModel{
				{ClassID: uuid.New(), ClassName: "Modelado", ClassPrice: decimal.NewFromInt(80)},
			}},
			{MonthID: uuid.New(), MonthLabel: "Mayo"},
		},
	}

	out := FromStudentModel(m)
	if out.Timetable != nil {
		t.Errorf("unknown timetable code should decode to nil, got %q", *out.Timetable)
	}
	if len(out.Months) != 3 || len(out.Classes) != 3 {
		t.Fatalf("months=%d classes=%d", len(out.Months), len(out.Classes))
	}
	var labels, names []string
	for _, c := range out.Classes {
		labels = append(labels, c.MonthLabel)
		names = append(names, c.ClassName)
	}
	if want := []string{"Marzo", "Marzo", "Abril"}; !reflect.DeepEqual(labels, want) {
		t.Errorf("month labels = %v", labels)
	}
	if want := []string{"Torno", "Esmaltado", "Modelado"}; !reflect.DeepEqual(names, want) {
		t.Errorf("class names = %v", names)
	}

	b, err := json.Marshal(out)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	_ = json.Unmarshal(b, &raw)
	if raw["timetable"] != nil {
		t.Errorf("timetable json = %v, want null", raw["timetable"])
	}
}

func TestFromStudentModelDecodesTimetable(t *testing.T) {
	code := schedule.TimetableEighteen
	out := FromStudentModel(&model.StudentModel{StudentName: "Ana", StudentTimetable: &code})
	if out.Timetable == nil || *out.Timetable != "18:30" {
		t.Errorf("timetable = %v", out.Timetable)
	}
	if out.Classes == nil || out.Months == nil {
		t.Error("empty collections should be non-nil slices")
	}
}

func student(name, day, timetable string) StudentResponse {
	s := StudentResponse{ID: uuid.New(), Name: name}
	if day != "" {
		s.Day = strPtr(day)
	}
	if timetable != "" {
		s.Timetable = strPtr(timetable)
	}
	return s
}

func names(list []StudentResponse) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.Name
	}
	return out
}

func TestSortStudents(t *testing.T) {
	list := []StudentResponse{
		student("Zoe", "", ""),
		student("Carla", "Martes", "10:00"),
		student("Bea", "Lunes", "18:30"),
		student("Ana", "Lunes", "16:00"),
		student("Dario", "feriado", "10:00"),
		student("Álvaro", "Lunes", "16:00"),
		student("Eva", "Lunes", ""),
		student("Fede", "domingo", "10:00"),
	}
	SortStudents(list)

	want := []string{"Álvaro", "Ana", "Bea", "Eva", "Carla", "Fede", "Dario", "Zoe"}
	if got := names(list); !reflect.DeepEqual(got, want) {
		t.Errorf("sorted = %v, want %v", got, want)
	}
}

func TestSortStudentsIdempotent(t *testing.T) {
	list := []StudentResponse{
		student("Luz", "mie", "18:30"),
		student("luz", "mie", "18:30"),
		student("Ana", "", "99:99"),
		student("Ana", "", "99:99"),
		student("Bruno", "sab", "10:00"),
	}
	SortStudents(list)
	first := append([]StudentResponse(nil), list...)
	SortStudents(list)
	if !reflect.DeepEqual(first, list) {
		t.Errorf("second sort changed order: %v → %v", names(first), names(list))
	}
}

func TestCalendarEntries(t *testing.T) {
	dbtime.SetWorkshopTimezone("UTC")
	defer dbtime.SetWorkshopTimezone(dbtime.DefaultTimezone)

	// 2024-03-06 adalah hari Rabu (Miércoles)
	withTime := time.Date(2024, 3, 6, 17, 0, 0, 0, time.UTC)
	midnight := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

	noClasses := student("Ana", "desconocido", "")
	withClasses := student("Bea", "Lunes", "10:00")
	withClasses.Classes = []ClassResponse{
		{ID: uuid.New(), ClassName: "Torno", ClassDay: &withTime},
		{ID: uuid.New(), ClassName: "Esmalte", ClassDay: &midnight},
		{ID: uuid.New(), ClassName: "Libre"},
	}

	cal := BuildCalendar([]StudentResponse{noClasses, withClasses})
	if cal.Count() != 4 {
		t.Fatalf("calendar holds %d entries, want 4", cal.Count())
	}

	byLabel := map[string]schedule.Day[CalendarItem]{}
	for _, d := range cal.Days {
		byLabel[d.Label] = d
	}
	if d := byLabel["Miércoles"]; len(d.Slots) != 1 || d.Slots[0].Time != "17:00" {
		t.Errorf("wednesday = %+v", d)
	}
	if d := byLabel["Viernes"]; len(d.Slots) != 1 || d.Slots[0].Time != "10:00" {
		t.Errorf("friday (midnight class falls back to timetable) = %+v", d)
	}
	if d := byLabel["Lunes"]; len(d.Slots) != 1 || d.Slots[0].Items[0].ClassName != "Libre" {
		t.Errorf("monday = %+v", d)
	}
	last := cal.Days[len(cal.Days)-1]
	if last.Key != schedule.UnscheduledKey || last.Slots[0].Time != schedule.NoTimeLabel {
		t.Errorf("unscheduled = %+v", last)
	}
	if last.Slots[0].Items[0].Student != "Ana" {
		t.Errorf("unscheduled student = %q", last.Slots[0].Items[0].Student)
	}
}
