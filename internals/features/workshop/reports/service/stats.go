package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mdceramica_backend/internals/features/workshop/students/dto"
)

type Stats struct {
	TotalStudents int `json:"total_students"`
	TotalClasses  int `json:"total_classes"`
}

// ComputeStats total siswa & total kelas dari list (boleh hasil search).
func ComputeStats(students []dto.StudentResponse) Stats {
	out := Stats{TotalStudents: len(students)}
	for i := range students {
		out.TotalClasses += len(students[i].Classes)
	}
	return out
}

// StudentSummary hanya menghitung harga kelas; horno/material tidak ikut.
type StudentSummary struct {
	StudentID      uuid.UUID       `json:"student_id"`
	Name           string          `json:"name"`
	Classes        int             `json:"classes"`
	PaidClasses    int             `json:"paid_classes"`
	PendingClasses int             `json:"pending_classes"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	PendingAmount  decimal.Decimal `json:"pending_amount"`
}

func Summarize(s *dto.StudentResponse) StudentSummary {
	out := StudentSummary{
		StudentID:   s.ID,
		Name:        s.Name,
		Classes:     len(s.Classes),
		TotalAmount: decimal.Zero,
		PaidAmount:  decimal.Zero,
	}
	for _, c := range s.Classes {
		out.TotalAmount = out.TotalAmount.Add(c.ClassPrice)
		if c.ClassPaid {
			out.PaidClasses++
			out.PaidAmount = out.PaidAmount.Add(c.ClassPrice)
		}
	}
	out.PendingClasses = out.Classes - out.PaidClasses
	out.PendingAmount = out.TotalAmount.Sub(out.PaidAmount)
	return out
}
