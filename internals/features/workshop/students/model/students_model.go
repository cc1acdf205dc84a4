// models/students_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StudentModel merepresentasikan tabel `students`
type StudentModel struct {
	StudentID uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;primaryKey"`

	StudentName      string          `json:"student_name"                gorm:"column:student_name;type:varchar(160);not null"`
	StudentBirthday  *datatypes.Date `json:"student_birthday,omitempty"  gorm:"column:student_birthday;type:date"`
	StudentTelephone *string         `json:"student_telephone,omitempty" gorm:"column:student_telephone;type:varchar(40)"`

	// Preferensi (teks bebas untuk hari, kode enum untuk jam)
	StudentDay       *string `json:"student_day,omitempty"       gorm:"column:student_day;type:varchar(60)"`
	StudentTimetable *string `json:"student_timetable,omitempty" gorm:"column:student_timetable;type:varchar(16)"`

	StudentCreatedAt time.Time `json:"student_created_at" gorm:"column:student_created_at;autoCreateTime"`
	StudentUpdatedAt time.Time `json:"student_updated_at" gorm:"column:student_updated_at;autoUpdateTime"`

	Months []MonthModel `json:"months,omitempty" gorm:"foreignKey:MonthStudentID;references:StudentID"`
}

func (StudentModel) TableName() string {
	return "students"
}

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}

// MonthModel periode tagihan milik satu siswa (tabel `months`)
type MonthModel struct {
	MonthID        uuid.UUID `json:"month_id"         gorm:"column:month_id;type:uuid;primaryKey"`
	MonthStudentID uuid.UUID `json:"month_student_id" gorm:"column:month_student_id;type:uuid;not null;index"`
	MonthLabel     string    `json:"month_label"      gorm:"column:month_label;type:varchar(80);not null"`

	MonthCreatedAt time.Time `json:"month_created_at" gorm:"column:month_created_at;autoCreateTime"`
	MonthUpdatedAt time.Time `json:"month_updated_at" gorm:"column:month_updated_at;autoUpdateTime"`

	Classes []ClassModel  `json:"classes,omitempty" gorm:"foreignKey:ClassMonthID;references:MonthID"`
	Student *StudentModel `json:"student,omitempty" gorm:"foreignKey:MonthStudentID;references:StudentID"`
}

func (MonthModel) TableName() string {
	return "months"
}

func (m *MonthModel) BeforeCreate(tx *gorm.DB) error {
	if m.MonthID == uuid.Nil {
		m.MonthID = uuid.New()
	}
	return nil
}

// ClassModel satu sesi berbayar (tabel `classes`)
type ClassModel struct {
	ClassID      uuid.UUID `json:"class_id"       gorm:"column:class_id;type:uuid;primaryKey"`
	ClassMonthID uuid.UUID `json:"class_month_id" gorm:"column:class_month_id;type:uuid;not null;index"`

	ClassName       string          `json:"class_name"          gorm:"column:class_name;type:varchar(160);not null"`
	ClassDay        *time.Time      `json:"class_day,omitempty" gorm:"column:class_day"`
	ClassPrice      decimal.Decimal `json:"class_price"         gorm:"column:class_price;type:numeric(12,2);not null"`
	ClassPaid       bool            `json:"class_paid"          gorm:"column:class_paid;not null;default:false"`
	ClassAssistance bool            `json:"class_assistance"    gorm:"column:class_assistance;not null;default:false"`

	// Ekstra: horno
	ClassOvenName  *string             `json:"class_oven_name,omitempty" gorm:"column:class_oven_name;type:varchar(160)"`
	ClassOvenPrice decimal.NullDecimal `json:"class_oven_price"          gorm:"column:class_oven_price;type:numeric(12,2)"`
	ClassOvenPaid  bool                `json:"class_oven_paid"           gorm:"column:class_oven_paid;not null;default:false"`

	// Ekstra: material
	ClassMaterialName  *string             `json:"class_material_name,omitempty" gorm:"column:class_material_name;type:varchar(160)"`
	ClassMaterialPrice decimal.NullDecimal `json:"class_material_price"          gorm:"column:class_material_price;type:numeric(12,2)"`
	ClassMaterialPaid  bool                `json:"class_material_paid"           gorm:"column:class_material_paid;not null;default:false"`

	ClassCreatedAt time.Time `json:"class_created_at" gorm:"column:class_created_at;autoCreateTime"`
	ClassUpdatedAt time.Time `json:"class_updated_at" gorm:"column:class_updated_at;autoUpdateTime"`

	Month *MonthModel `json:"month,omitempty" gorm:"foreignKey:ClassMonthID;references:MonthID"`
}

func (ClassModel) TableName() string {
	return "classes"
}

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassID == uuid.Nil {
		m.ClassID = uuid.New()
	}
	return nil
}
