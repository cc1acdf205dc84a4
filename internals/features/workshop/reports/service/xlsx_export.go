package service

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"mdceramica_backend/internals/features/workshop/students/dto"
	"mdceramica_backend/internals/helpers/dbtime"
)

const (
	SheetStudents = "Alumnos"
	SheetClasses  = "Clases"
)

var (
	studentHeader = []any{"Nombre", "Cumpleaños", "Teléfono", "Día", "Horario", "Clases"}
	classHeader   = []any{"Alumno", "Mes", "Clase", "Fecha", "Precio", "Pagada", "Asistencia", "Horno", "Precio horno", "Horno pagado", "Material", "Precio material", "Material pagado"}
)

// ExportWorkbook menulis workbook dua sheet (Alumnos, Clases) ke w.
// Urutan siswa = urutan list (sudah disortir oleh pemanggil).
func ExportWorkbook(w io.Writer, students []dto.StudentResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetStudents); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetClasses); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := writeRow(f, SheetStudents, 1, studentHeader); err != nil {
		return err
	}
	if err := writeRow(f, SheetClasses, 1, classHeader); err != nil {
		return err
	}
	for _, sh := range []struct {
		name string
		cols int
	}{{SheetStudents, len(studentHeader)}, {SheetClasses, len(classHeader)}} {
		last, _ := excelize.CoordinatesToCellName(sh.cols, 1)
		if err := f.SetCellStyle(sh.name, "A1", last, bold); err != nil {
			return err
		}
	}

	classRow := 2
	for i, s := range students {
		row := []any{
			s.Name,
			birthdayCell(s),
			strOrEmpty(s.Telephone),
			strOrEmpty(s.Day),
			strOrEmpty(s.Timetable),
			len(s.Classes),
		}
		if err := writeRow(f, SheetStudents, i+2, row); err != nil {
			return err
		}

		for _, c := range s.Classes {
			crow := []any{
				s.Name,
				c.MonthLabel,
				c.ClassName,
				classDayCell(c.ClassDay),
				c.ClassPrice.InexactFloat64(),
				siNo(c.ClassPaid),
				siNo(c.Assistance),
				strOrEmpty(c.OvenName),
				nullAmount(c.OvenPrice),
				siNo(c.OvenPaid),
				strOrEmpty(c.MaterialName),
				nullAmount(c.MaterialPrice),
				siNo(c.MaterialPaid),
			}
			if err := writeRow(f, SheetClasses, classRow, crow); err != nil {
				return err
			}
			classRow++
		}
	}

	_ = f.SetColWidth(SheetStudents, "A", "A", 28)
	_ = f.SetColWidth(SheetClasses, "A", "C", 22)

	_, err = f.WriteTo(w)
	return err
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("%s fila %d: %w", sheet, row, err)
	}
	return nil
}

func birthdayCell(s dto.StudentResponse) string {
	if s.Birthday == nil {
		return ""
	}
	return time.Time(*s.Birthday).Format("2006-01-02")
}

func classDayCell(t *time.Time) string {
	if t == nil {
		return ""
	}
	local := dbtime.ToWorkshopTime(*t)
	if local.Hour() == 0 && local.Minute() == 0 {
		return local.Format("02/01/2006")
	}
	return local.Format("02/01/2006 15:04")
}

func nullAmount(d decimal.NullDecimal) any {
	if !d.Valid {
		return ""
	}
	return d.Decimal.InexactFloat64()
}

func siNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
