package students

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"mdceramica_backend/internals/features/workshop/students/dto"
	"mdceramica_backend/internals/features/workshop/students/service"
)

//go:embed data_students.json
var DemoData []byte

type ClassSeed struct {
	Name  string          `json:"class_name"`
	Price decimal.Decimal `json:"class_price"`
	Day   *string         `json:"class_day"`
	Paid  bool            `json:"class_paid"`
}

type MonthSeed struct {
	Label   string      `json:"label"`
	Classes []ClassSeed `json:"classes"`
}

type StudentSeed struct {
	dto.CreateStudentRequest
	Months []MonthSeed `json:"months"`
}

// SeedStudentsFromJSON membuat siswa yang namanya belum ada, lewat service
// (normalisasi sama seperti API). Mengembalikan jumlah siswa baru.
func SeedStudentsFromJSON(ctx context.Context, db *gorm.DB, raw []byte) (int, error) {
	var seeds []StudentSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return 0, fmt.Errorf("decode seed: %w", err)
	}

	svc := service.NewStudentService(db)
	existing, err := svc.List(ctx, "")
	if err != nil {
		return 0, err
	}
	have := make(map[string]bool, len(existing))
	for _, s := range existing {
		have[s.Name] = true
	}

	created := 0
	for i := range seeds {
		sd := &seeds[i]
		req := sd.CreateStudentRequest
		req.Normalize()
		if err := req.Validate(); err != nil {
			log.Printf("ℹ️ seed %q dilewati: %v", sd.Name, err)
			continue
		}
		if have[dto.CapitalizeName(req.Name)] {
			continue
		}

		st, err := svc.Create(ctx, &req)
		if err != nil {
			return created, err
		}
		created++

		for _, ms := range sd.Months {
			month, err := svc.AddMonth(ctx, st.ID, ms.Label)
			if err != nil {
				return created, err
			}
			for _, cs := range ms.Classes {
				paid := cs.Paid
				price := cs.Price
				creq := dto.CreateClassRequest{
					MonthID: month.ID,
					ClassBaseRequest: dto.ClassBaseRequest{
						ClassName:  cs.Name,
						ClassPrice: &price,
						ClassDay:   cs.Day,
						ClassPaid:  &paid,
					},
				}
				creq.Normalize()
				if err := creq.Validate(); err != nil {
					return created, fmt.Errorf("seed class %q: %w", cs.Name, err)
				}
				if _, err := svc.AddClass(ctx, st.ID, &creq); err != nil {
					return created, err
				}
			}
		}
	}
	return created, nil
}
