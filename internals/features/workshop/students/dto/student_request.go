package dto

import (
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"gorm.io/datatypes"

	"mdceramica_backend/internals/features/workshop/schedule"
	model "mdceramica_backend/internals/features/workshop/students/model"
	"mdceramica_backend/internals/helpers/dbtime"
)

// CapitalizeName: spasi depan dibuang, huruf pertama di-uppercase, sisanya apa adanya.
// Nama kosong/spasi saja → "".
func CapitalizeName(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

/* =========================== CREATE =========================== */

type CreateStudentRequest struct {
	Name      string  `json:"name"      form:"name"      validate:"required,min=1,max=160"`
	Birthday  *string `json:"birthday"  form:"birthday"  validate:"omitempty"`
	Telephone *string `json:"telephone" form:"telephone" validate:"omitempty,max=40"`
	Day       *string `json:"day"       form:"day"       validate:"omitempty,max=60"`
	Timetable *string `json:"timetable" form:"timetable" validate:"omitempty,oneof=10:00 16:00 18:30"`
}

// Normalize tidak men-trim Name; kapitalisasi dilakukan di ToModel.
func (r *CreateStudentRequest) Normalize() {
	r.Birthday = trimOrNil(r.Birthday)
	r.Telephone = trimOrNil(r.Telephone)
	r.Day = trimOrNil(r.Day)
	r.Timetable = trimOrNil(r.Timetable)
}

func (r *CreateStudentRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name requerido")
	}
	if _, err := parseBirthday(r.Birthday); err != nil {
		return err
	}
	return nil
}

// ToModel dipanggil setelah Validate.
func (r *CreateStudentRequest) ToModel() *model.StudentModel {
	birthday, _ := parseBirthday(r.Birthday)
	m := &model.StudentModel{
		StudentName:      CapitalizeName(r.Name),
		StudentBirthday:  birthday,
		StudentTelephone: r.Telephone,
		StudentDay:       r.Day,
	}
	if r.Timetable != nil {
		if code, ok := schedule.EncodeTimetable(*r.Timetable); ok {
			m.StudentTimetable = &code
		}
	}
	return m
}

/* =========================== UPDATE =========================== */

// UpdateStudentRequest: field nil = tidak diubah. "" pada telephone/day/timetable = dikosongkan.
type UpdateStudentRequest struct {
	Name      *string `json:"name"      validate:"omitempty,min=1,max=160"`
	Birthday  *string `json:"birthday"  validate:"omitempty"`
	Telephone *string `json:"telephone" validate:"omitempty,max=40"`
	Day       *string `json:"day"       validate:"omitempty,max=60"`
	Timetable *string `json:"timetable" validate:"omitempty,oneof=10:00 16:00 18:30"`
}

func (r *UpdateStudentRequest) Normalize() {
	if r.Birthday != nil {
		s := strings.TrimSpace(*r.Birthday)
		r.Birthday = &s
	}
	for _, p := range []*string{r.Telephone, r.Day, r.Timetable} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}

func (r *UpdateStudentRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name no puede estar vacío")
	}
	if r.Birthday != nil && *r.Birthday != "" {
		if _, err := parseBirthday(r.Birthday); err != nil {
			return err
		}
	}
	return nil
}

// Apply menulis perubahan ke model existing.
func (r *UpdateStudentRequest) Apply(m *model.StudentModel) {
	if r.Name != nil {
		m.StudentName = CapitalizeName(*r.Name)
	}
	if r.Birthday != nil && *r.Birthday != "" {
		m.StudentBirthday, _ = parseBirthday(r.Birthday)
	}
	if r.Telephone != nil {
		m.StudentTelephone = nilIfEmpty(*r.Telephone)
	}
	if r.Day != nil {
		m.StudentDay = nilIfEmpty(*r.Day)
	}
	if r.Timetable != nil {
		m.StudentTimetable = nil
		if code, ok := schedule.EncodeTimetable(*r.Timetable); ok {
			m.StudentTimetable = &code
		}
	}
}

/* =========================== MONTH =========================== */

type CreateMonthRequest struct {
	Label string `json:"label" validate:"required,min=1,max=80"`
}

func (r *CreateMonthRequest) Normalize() {
	r.Label = strings.TrimSpace(r.Label)
}

/* =========================== helpers =========================== */

func parseBirthday(raw *string) (*datatypes.Date, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := dbtime.ParseDateInput(*raw)
	if err != nil {
		return nil, errors.New("birthday: fecha inválida")
	}
	d := datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
	return &d, nil
}

func trimOrNil(p *string) *string {
	if p == nil {
		return nil
	}
	return nilIfEmpty(strings.TrimSpace(*p))
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
