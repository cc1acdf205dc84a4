package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"mdceramica_backend/internals/features/workshop/schedule"
	model "mdceramica_backend/internals/features/workshop/students/model"
)

type ClassResponse struct {
	ID         uuid.UUID       `json:"id"`
	MonthID    uuid.UUID       `json:"month_id"`
	MonthLabel string          `json:"month_label,omitempty"`
	ClassName  string          `json:"class_name"`
	ClassDay   *time.Time      `json:"class_day,omitempty"`
	ClassPrice decimal.Decimal `json:"class_price"`
	ClassPaid  bool            `json:"class_paid"`
	Assistance bool            `json:"assistance"`

	OvenName      *string             `json:"oven_name,omitempty"`
	OvenPrice     decimal.NullDecimal `json:"oven_price"`
	OvenPaid      bool                `json:"oven_paid"`
	MaterialName  *string             `json:"material_name,omitempty"`
	MaterialPrice decimal.NullDecimal `json:"material_price"`
	MaterialPaid  bool                `json:"material_paid"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// diisi oleh ListClasses
	StudentID   *uuid.UUID `json:"student_id,omitempty"`
	StudentName string     `json:"student_name,omitempty"`
}

type MonthResponse struct {
	ID        uuid.UUID       `json:"id"`
	StudentID uuid.UUID       `json:"student_id"`
	Label     string          `json:"label"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Classes   []ClassResponse `json:"classes"`
}

type StudentResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Birthday  *datatypes.Date `json:"birthday"`
	Telephone *string         `json:"telephone"`
	Day       *string         `json:"day"`
	Timetable *string         `json:"timetable"` // label tampilan ("16:00"), null kalau kode tidak dikenal
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Months  []MonthResponse `json:"months"`
	Classes []ClassResponse `json:"classes"` // gabungan semua kelas dari semua bulan
}

func FromClassModel(m *model.ClassModel) ClassResponse {
	out := ClassResponse{
		ID:            m.ClassID,
		MonthID:       m.ClassMonthID,
		ClassName:     m.ClassName,
		ClassDay:      m.ClassDay,
		ClassPrice:    m.ClassPrice,
		ClassPaid:     m.ClassPaid,
		Assistance:    m.ClassAssistance,
		OvenName:      m.ClassOvenName,
		OvenPrice:     m.ClassOvenPrice,
		OvenPaid:      m.ClassOvenPaid,
		MaterialName:  m.ClassMaterialName,
		MaterialPrice: m.ClassMaterialPrice,
		MaterialPaid:  m.ClassMaterialPaid,
		CreatedAt:     m.ClassCreatedAt,
		UpdatedAt:     m.ClassUpdatedAt,
	}
	if m.Month != nil {
		out.MonthLabel = m.Month.MonthLabel
		if m.Month.Student != nil {
			sid := m.Month.Student.StudentID
			out.StudentID = &sid
			out.StudentName = m.Month.Student.StudentName
		}
	}
	return out
}

func FromMonthModel(m *model.MonthModel) MonthResponse {
	out := MonthResponse{
		ID:        m.MonthID,
		StudentID: m.MonthStudentID,
		Label:     m.MonthLabel,
		CreatedAt: m.MonthCreatedAt,
		UpdatedAt: m.MonthUpdatedAt,
		Classes:   make([]ClassResponse, 0, len(m.Classes)),
	}
	for i := range m.Classes {
		c := FromClassModel(&m.Classes[i])
		c.MonthLabel = m.MonthLabel
		out.Classes = append(out.Classes, c)
	}
	return out
}

// FromStudentModel: timetable kode → label, kelas semua bulan diratakan
// (urut bulan lalu urut kelas) dan diberi month_label.
func FromStudentModel(m *model.StudentModel) StudentResponse {
	out := StudentResponse{
		ID:        m.StudentID,
		Name:      m.StudentName,
		Birthday:  m.StudentBirthday,
		Telephone: m.StudentTelephone,
		Day:       m.StudentDay,
		CreatedAt: m.StudentCreatedAt,
		UpdatedAt: m.StudentUpdatedAt,
		Months:    make([]MonthResponse, 0, len(m.Months)),
		Classes:   []ClassResponse{},
	}
	if m.StudentTimetable != nil {
		if v, ok := schedule.DecodeTimetable(*m.StudentTimetable); ok {
			out.Timetable = &v
		}
	}
	for i := range m.Months {
		month := FromMonthModel(&m.Months[i])
		out.Months = append(out.Months, month)
		out.Classes = append(out.Classes, month.Classes...)
	}
	return out
}

func FromStudentModels(list []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromStudentModel(&list[i]))
	}
	return out
}
