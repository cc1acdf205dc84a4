package database

import (
	"log"

	"gorm.io/gorm"

	studentModel "mdceramica_backend/internals/features/workshop/students/model"
)

// Migrate membuat/menyesuaikan tabel students → months → classes.
func Migrate(db *gorm.DB) error {
	log.Println("[INFO] AutoMigrate students, months, classes...")
	return db.AutoMigrate(
		&studentModel.StudentModel{},
		&studentModel.MonthModel{},
		&studentModel.ClassModel{},
	)
}
