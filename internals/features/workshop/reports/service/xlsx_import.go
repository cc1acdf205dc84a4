package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"mdceramica_backend/internals/features/workshop/schedule"
	"mdceramica_backend/internals/features/workshop/students/dto"
	"mdceramica_backend/internals/helpers/dbtime"
)

var ErrEmptyWorkbook = errors.New("el archivo no tiene hojas")

// StudentCreator dipenuhi oleh students/service.StudentService.
type StudentCreator interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
}

type RowIssue struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportResult struct {
	Created  int        `json:"created"`
	Skipped  int        `json:"skipped"`
	Issues   []RowIssue `json:"issues"`
	Students []string   `json:"students"`
}

// Kolom sheet pertama (baris 1 = header): Nombre, Cumpleaños, Teléfono, Día, Horario.
const (
	colName = iota
	colBirthday
	colTelephone
	colDay
	colTimetable
)

// ParsedRow satu baris valid, siap dibuat.
type ParsedRow struct {
	Row int
	Req dto.CreateStudentRequest
}

type ParseResult struct {
	Rows    []ParsedRow
	Issues  []RowIssue
	Skipped int
}

// ParseStudentRows membaca sheet pertama menjadi request create.
// Baris tanpa nama dilewati; masalah per baris dikumpulkan, tidak menggagalkan semuanya.
func ParseStudentRows(r io.Reader) (*ParseResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el archivo: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[WARN] close workbook: %v", err)
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrEmptyWorkbook
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("hoja %s: %w", sheet, err)
	}

	res := &ParseResult{}
	for i, row := range rows {
		if i == 0 || blankRow(row) {
			continue
		}
		rowNum := i + 1
		name := cell(row, colName)
		if strings.TrimSpace(name) == "" {
			res.Skipped++
			res.Issues = append(res.Issues, RowIssue{Row: rowNum, Message: "fila sin nombre"})
			continue
		}

		req := dto.CreateStudentRequest{
			Name:      name,
			Telephone: optional(cell(row, colTelephone)),
			Day:       optional(cell(row, colDay)),
		}
		if raw := strings.TrimSpace(cell(row, colBirthday)); raw != "" {
			if iso, ok := excelDate(raw); ok {
				req.Birthday = &iso
			} else {
				res.Issues = append(res.Issues, RowIssue{Row: rowNum, Message: "cumpleaños inválido, se omite"})
			}
		}
		if raw := strings.TrimSpace(cell(row, colTimetable)); raw != "" {
			if v, ok := excelTime(raw); ok {
				req.Timetable = &v
			} else {
				res.Issues = append(res.Issues, RowIssue{Row: rowNum, Message: fmt.Sprintf("horario %q desconocido, se omite", raw)})
			}
		}
		req.Normalize()
		if err := req.Validate(); err != nil {
			res.Skipped++
			res.Issues = append(res.Issues, RowIssue{Row: rowNum, Message: err.Error()})
			continue
		}
		res.Rows = append(res.Rows, ParsedRow{Row: rowNum, Req: req})
	}
	return res, nil
}

// ImportStudents = ParseStudentRows + Create per baris.
func ImportStudents(ctx context.Context, svc StudentCreator, r io.Reader) (*ImportResult, error) {
	parsed, err := ParseStudentRows(r)
	if err != nil {
		return nil, err
	}
	res := &ImportResult{
		Skipped:  parsed.Skipped,
		Issues:   append([]RowIssue{}, parsed.Issues...),
		Students: []string{},
	}
	for i := range parsed.Rows {
		pr := &parsed.Rows[i]
		created, err := svc.Create(ctx, &pr.Req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			res.Skipped++
			res.Issues = append(res.Issues, RowIssue{Row: pr.Row, Message: err.Error()})
			continue
		}
		res.Created++
		res.Students = append(res.Students, created.Name)
	}
	return res, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// excelDate: serial Excel (angka) atau teks tanggal → "2006-01-02".
func excelDate(raw string) (string, bool) {
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return "", false
		}
		return t.Format("2006-01-02"), true
	}
	t, err := dbtime.ParseDateInput(raw)
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// excelTime: "16:00" atau pecahan hari Excel (0.6666…) → label timetable.
func excelTime(raw string) (string, bool) {
	if frac, err := strconv.ParseFloat(raw, 64); err == nil && frac >= 0 && frac < 1 {
		mins := int(math.Round(frac * 24 * 60))
		raw = fmt.Sprintf("%02d:%02d", mins/60, mins%60)
	}
	if _, ok := schedule.EncodeTimetable(raw); ok {
		return raw, true
	}
	// "9:00" / "16:0" dst: normalisasi lewat menit
	if m, ok := schedule.ParseMinutes(raw); ok {
		norm := fmt.Sprintf("%02d:%02d", m/60, m%60)
		if _, ok := schedule.EncodeTimetable(norm); ok {
			return norm, true
		}
	}
	return "", false
}
