package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mdceramica_backend/internals/features/workshop/students/dto"
	model "mdceramica_backend/internals/features/workshop/students/model"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrMonthNotFound   = errors.New("month not found for student")
	ErrClassNotFound   = errors.New("class not found")
)

type StudentService struct {
	DB *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{DB: db}
}

func withTree(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Months", func(db *gorm.DB) *gorm.DB {
			return db.Order("month_created_at ASC, month_id ASC")
		}).
		Preload("Months.Classes", func(db *gorm.DB) *gorm.DB {
			return db.Order("class_created_at ASC, class_id ASC")
		})
}

/* ============================ LIST ============================ */

// List mengembalikan siswa (termasuk bulan & kelas) yang sudah dinormalisasi
// dan diurutkan. search = substring nama, case-insensitive.
func (s *StudentService) List(ctx context.Context, search string) ([]dto.StudentResponse, error) {
	q := withTree(s.DB.WithContext(ctx).Model(&model.StudentModel{}))
	if term := strings.TrimSpace(search); term != "" {
		q = q.Where("LOWER(student_name) LIKE ?", "%"+strings.ToLower(term)+"%")
	}

	var rows []model.StudentModel
	if err := q.Order("student_created_at ASC, student_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := dto.FromStudentModels(rows)
	dto.SortStudents(out)
	return out, nil
}

func (s *StudentService) Get(ctx context.Context, id uuid.UUID) (*dto.StudentResponse, error) {
	m, err := s.load(s.DB.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	out := dto.FromStudentModel(m)
	return &out, nil
}

func (s *StudentService) load(tx *gorm.DB, id uuid.UUID) (*model.StudentModel, error) {
	var m model.StudentModel
	if err := withTree(tx).First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrStudentNotFound, id)
		}
		return nil, err
	}
	return &m, nil
}

/* ============================ CREATE / UPDATE ============================ */

func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	m := req.ToModel()
	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return nil, err
	}
	out := dto.FromStudentModel(m)
	return &out, nil
}

func (s *StudentService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	var out dto.StudentResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.StudentModel
		if err := tx.First(&existing, "student_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrStudentNotFound, id)
			}
			return err
		}

		req.Apply(&existing)

		if err := tx.Model(&existing).Select(
			"student_name", "student_birthday", "student_telephone",
			"student_day", "student_timetable", "student_updated_at",
		).Updates(&existing).Error; err != nil {
			return err
		}

		reloaded, err := s.load(tx, id)
		if err != nil {
			return err
		}
		out = dto.FromStudentModel(reloaded)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

/* ============================ DELETE (cascade) ============================ */

// Delete menghapus kelas → bulan → siswa dalam satu transaksi; gagal di
// langkah mana pun = tidak ada yang terhapus.
func (s *StudentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		monthIDs := tx.Model(&model.MonthModel{}).Select("month_id").Where("month_student_id = ?", id)

		if err := tx.Where("class_month_id IN (?)", monthIDs).Delete(&model.ClassModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("month_student_id = ?", id).Delete(&model.MonthModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("student_id = ?", id).Delete(&model.StudentModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", ErrStudentNotFound, id)
		}
		return nil
	})
}

/* ============================ MONTHS ============================ */

func (s *StudentService) AddMonth(ctx context.Context, studentID uuid.UUID, label string) (*dto.MonthResponse, error) {
	db := s.DB.WithContext(ctx)
	if err := s.ensureStudent(db, studentID); err != nil {
		return nil, err
	}
	m := &model.MonthModel{MonthStudentID: studentID, MonthLabel: strings.TrimSpace(label)}
	if err := db.Omit(clause.Associations).Create(m).Error; err != nil {
		return nil, err
	}
	out := dto.FromMonthModel(m)
	return &out, nil
}

// EnsureMonth idempotent: kembalikan bulan berlabel sama kalau sudah ada.
// created=true kalau baru dibuat.
func (s *StudentService) EnsureMonth(ctx context.Context, studentID uuid.UUID, label string) (month *model.MonthModel, created bool, err error) {
	label = strings.TrimSpace(label)
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ensureStudent(tx, studentID); err != nil {
			return err
		}
		var existing model.MonthModel
		err := tx.Where("month_student_id = ? AND month_label = ?", studentID, label).First(&existing).Error
		if err == nil {
			month = &existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		m := &model.MonthModel{MonthStudentID: studentID, MonthLabel: label}
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return err
		}
		month, created = m, true
		return nil
	})
	return month, created, err
}

func (s *StudentService) ensureStudent(tx *gorm.DB, id uuid.UUID) error {
	var count int64
	if err := tx.Model(&model.StudentModel{}).Where("student_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: %s", ErrStudentNotFound, id)
	}
	return nil
}

/* ============================ CLASSES ============================ */

// AddClass: bulan harus milik siswa. Mengembalikan siswa yang sudah dimuat ulang.
func (s *StudentService) AddClass(ctx context.Context, studentID uuid.UUID, req *dto.CreateClassRequest) (*dto.StudentResponse, error) {
	var out dto.StudentResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var month model.MonthModel
		if err := tx.Where("month_id = ? AND month_student_id = ?", req.MonthID, studentID).First(&month).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: month=%s student=%s", ErrMonthNotFound, req.MonthID, studentID)
			}
			return err
		}

		if err := tx.Omit(clause.Associations).Create(req.ToModel()).Error; err != nil {
			return err
		}

		reloaded, err := s.load(tx, studentID)
		if err != nil {
			return err
		}
		out = dto.FromStudentModel(reloaded)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StudentService) UpdateClass(ctx context.Context, classID uuid.UUID, req *dto.UpdateClassRequest) (*dto.ClassResponse, error) {
	var out dto.ClassResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.ClassModel
		if err := tx.First(&existing, "class_id = ?", classID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrClassNotFound, classID)
			}
			return err
		}

		req.Apply(&existing)

		if err := tx.Omit(clause.Associations).Save(&existing).Error; err != nil {
			return err
		}
		out = dto.FromClassModel(&existing)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StudentService) DeleteClass(ctx context.Context, classID uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("class_id = ?", classID).Delete(&model.ClassModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrClassNotFound, classID)
	}
	return nil
}

// ListClasses semua kelas (terbaru dulu) + label bulan + nama siswa.
func (s *StudentService) ListClasses(ctx context.Context) ([]dto.ClassResponse, error) {
	var rows []model.ClassModel
	if err := s.DB.WithContext(ctx).
		Preload("Month").
		Preload("Month.Student").
		Order("class_created_at DESC, class_id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]dto.ClassResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromClassModel(&rows[i]))
	}
	return out, nil
}

// StudentIDs dipakai job bulanan.
func (s *StudentService) StudentIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).Model(&model.StudentModel{}).Order("student_created_at ASC").Pluck("student_id", &ids).Error
	return ids, err
}
