package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "mdceramica_backend/internals/features/workshop/students/model"
	"mdceramica_backend/internals/helpers/dbtime"
)

// ClassBaseRequest field bersama create & update. ClassPrice wajib dan menerima
// angka JSON maupun string angka ("1500.50").
type ClassBaseRequest struct {
	ClassName  string           `json:"class_name"  validate:"required,min=1,max=160"`
	Assistance *bool            `json:"assistance"`
	ClassPrice *decimal.Decimal `json:"class_price" validate:"required"`
	ClassDay   *string          `json:"class_day"`
	ClassPaid  *bool            `json:"class_paid"`

	OvenName  *string `json:"oven_name"  validate:"omitempty,max=160"`
	OvenPrice *string `json:"oven_price"`
	OvenPaid  *bool   `json:"oven_paid"`

	MaterialName  *string `json:"material_name"  validate:"omitempty,max=160"`
	MaterialPrice *string `json:"material_price"`
	MaterialPaid  *bool   `json:"material_paid"`
}

// Normalize hanya trim; "" tetap dikirim supaya update bisa mengosongkan
// tanggal & ekstra.
func (r *ClassBaseRequest) Normalize() {
	r.ClassName = strings.TrimSpace(r.ClassName)
	r.ClassDay = trimKeep(r.ClassDay)
	r.OvenName = trimKeep(r.OvenName)
	r.OvenPrice = trimKeep(r.OvenPrice)
	r.MaterialName = trimKeep(r.MaterialName)
	r.MaterialPrice = trimKeep(r.MaterialPrice)
}

func (r *ClassBaseRequest) Validate() error {
	if r.ClassName == "" {
		return errors.New("class_name requerido")
	}
	if r.ClassPrice == nil {
		return errors.New("class_price requerido")
	}
	if r.ClassPrice.IsNegative() {
		return errors.New("class_price debe ser >= 0")
	}
	if _, err := parseClassDay(r.ClassDay); err != nil {
		return err
	}
	if _, err := parseOptionalAmount("oven_price", r.OvenPrice); err != nil {
		return err
	}
	if _, err := parseOptionalAmount("material_price", r.MaterialPrice); err != nil {
		return err
	}
	return nil
}

/* =========================== CREATE =========================== */

type CreateClassRequest struct {
	MonthID uuid.UUID `json:"month_id" validate:"required"`
	ClassBaseRequest
}

func (r *CreateClassRequest) ToModel() *model.ClassModel {
	day, _ := parseClassDay(r.ClassDay)
	oven, _ := parseOptionalAmount("oven_price", r.OvenPrice)
	material, _ := parseOptionalAmount("material_price", r.MaterialPrice)
	return &model.ClassModel{
		ClassMonthID:       r.MonthID,
		ClassName:          r.ClassName,
		ClassDay:           day,
		ClassPrice:         priceOrZero(r.ClassPrice),
		ClassPaid:          boolOr(r.ClassPaid, false),
		ClassAssistance:    boolOr(r.Assistance, false),
		ClassOvenName:      trimOrNil(r.OvenName),
		ClassOvenPrice:     oven,
		ClassOvenPaid:      boolOr(r.OvenPaid, false),
		ClassMaterialName:  trimOrNil(r.MaterialName),
		ClassMaterialPrice: material,
		ClassMaterialPaid:  boolOr(r.MaterialPaid, false),
	}
}

/* =========================== UPDATE =========================== */

// UpdateClassRequest: nama & harga wajib; field nil = tidak diubah;
// tanggal/ekstra "" = dikosongkan.
type UpdateClassRequest struct {
	ClassBaseRequest
}

func (r *UpdateClassRequest) Apply(m *model.ClassModel) {
	m.ClassName = r.ClassName
	if r.ClassPrice != nil {
		m.ClassPrice = *r.ClassPrice
	}
	if r.ClassDay != nil {
		m.ClassDay, _ = parseClassDay(r.ClassDay)
	}
	m.ClassPaid = boolOr(r.ClassPaid, m.ClassPaid)
	m.ClassAssistance = boolOr(r.Assistance, m.ClassAssistance)

	if r.OvenName != nil {
		m.ClassOvenName = nilIfEmpty(*r.OvenName)
	}
	if r.OvenPrice != nil {
		m.ClassOvenPrice, _ = parseOptionalAmount("oven_price", r.OvenPrice)
	}
	m.ClassOvenPaid = boolOr(r.OvenPaid, m.ClassOvenPaid)

	if r.MaterialName != nil {
		m.ClassMaterialName = nilIfEmpty(*r.MaterialName)
	}
	if r.MaterialPrice != nil {
		m.ClassMaterialPrice, _ = parseOptionalAmount("material_price", r.MaterialPrice)
	}
	m.ClassMaterialPaid = boolOr(r.MaterialPaid, m.ClassMaterialPaid)
}

/* =========================== helpers =========================== */

func parseClassDay(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := dbtime.ParseDateInput(*raw)
	if err != nil {
		return nil, errors.New("class_day: fecha inválida")
	}
	return &t, nil
}

func parseOptionalAmount(field string, raw *string) (decimal.NullDecimal, error) {
	if raw == nil || *raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(*raw, ",", "."))
	if err != nil {
		return decimal.NullDecimal{}, errors.New(field + ": importe inválido")
	}
	if d.IsNegative() {
		return decimal.NullDecimal{}, errors.New(field + " debe ser >= 0")
	}
	return decimal.NewNullDecimal(d), nil
}

func trimKeep(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	return &s
}

func priceOrZero(p *decimal.Decimal) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return *p
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
