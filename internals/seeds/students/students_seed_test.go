package students

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "mdceramica_backend/internals/features/workshop/students/model"
)

func TestSeedDemoDataIsIdempotent(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatal(err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()
	if err := db.AutoMigrate(&model.StudentModel{}, &model.MonthModel{}, &model.ClassModel{}); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	n, err := SeedStudentsFromJSON(ctx, db, DemoData)
	if err != nil || n != 4 {
		t.Fatalf("first seed n=%d err=%v", n, err)
	}
	n, err = SeedStudentsFromJSON(ctx, db, DemoData)
	if err != nil || n != 0 {
		t.Fatalf("second seed n=%d err=%v", n, err)
	}

	var classes int64
	db.Model(&model.ClassModel{}).Count(&classes)
	if classes != 3 {
		t.Errorf("classes = %d, want 3", classes)
	}
	var lucia model.StudentModel
	if err := db.First(&lucia, "student_name = ?", "Lucía").Error; err != nil {
		t.Errorf("capitalized name not stored: %v", err)
	}
}

func TestSeedRejectsBadJSON(t *testing.T) {
	if _, err := SeedStudentsFromJSON(context.Background(), nil, []byte("{")); err == nil {
		t.Error("expected decode error")
	}
}
