package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mdceramica_backend/internals/features/workshop/students/dto"
	model "mdceramica_backend/internals/features/workshop/students/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&model.StudentModel{}, &model.MonthModel{}, &model.ClassModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func mustCreate(t *testing.T, svc *StudentService, req dto.CreateStudentRequest) *dto.StudentResponse {
	t.Helper()
	req.Normalize()
	if err := req.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	out, err := svc.Create(context.Background(), &req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return out
}

func mustAddClass(t *testing.T, svc *StudentService, studentID, monthID uuid.UUID, name string, price int64) *dto.StudentResponse {
	t.Helper()
	req := dto.CreateClassRequest{
		MonthID:          monthID,
		ClassBaseRequest: dto.ClassBaseRequest{ClassName: name, ClassPrice: decPtr(fmt.Sprint(price))},
	}
	req.Normalize()
	out, err := svc.AddClass(context.Background(), studentID, &req)
	if err != nil {
		t.Fatalf("add class: %v", err)
	}
	return out
}

func TestCreateAndGet(t *testing.T) {
	svc := NewStudentService(openTestDB(t))
	ctx := context.Background()

	created := mustCreate(t, svc, dto.CreateStudentRequest{
		Name:      "ana",
		Birthday:  strPtr("1990-05-17"),
		Day:       strPtr("Lunes"),
		Timetable: strPtr("16:00"),
	})
	if created.Name != "Ana" {
		t.Errorf("name = %q", created.Name)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Timetable == nil || *got.Timetable != "16:00" {
		t.Errorf("timetable = %v", got.Timetable)
	}
	if got.Birthday == nil {
		t.Error("birthday lost")
	}

	if _, err := svc.Get(ctx, uuid.New()); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("unknown id err = %v", err)
	}
}

func TestListSortsAndSearches(t *testing.T) {
	svc := NewStudentService(openTestDB(t))
	ctx := context.Background()

	mustCreate(t, svc, dto.CreateStudentRequest{Name: "zoe"})
	mustCreate(t, svc, dto.CreateStudentRequest{Name: "bea", Day: strPtr("Martes"), Timetable: strPtr("10:00")})
	mustCreate(t, svc, dto.CreateStudentRequest{Name: "carla", Day: strPtr("lunes"), Timetable: strPtr("18:30")})
	mustCreate(t, svc, dto.CreateStudentRequest{Name: "ana", Day: strPtr("Lunes"), Timetable: strPtr("18:30")})

	list, err := svc.List(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, s := range list {
		got = append(got, s.Name)
	}
	want := []string{"Ana", "Carla", "Bea", "Zoe"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("order = %v, want %v", got, want)
	}

	found, err := svc.List(ctx, "AR")
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 1 || found[0].Name != "Carla" {
		t.Errorf("search = %+v", found)
	}
}

func TestUpdateStudent(t *testing.T) {
	svc := NewStudentService(openTestDB(t))
	ctx := context.Background()
	s := mustCreate(t, svc, dto.CreateStudentRequest{Name: "ana", Telephone: strPtr("555"), Timetable: strPtr("10:00")})

	req := dto.UpdateStudentRequest{Name: strPtr("beatriz"), Telephone: strPtr("")}
	req.Normalize()
	out, err := svc.Update(ctx, s.ID, &req)
	if err != nil {
		t.Fatal(err)
	}
	if out.Name != "Beatriz" || out.Telephone != nil {
		t.Errorf("updated = %+v", out)
	}
	if out.Timetable == nil || *out.Timetable != "10:00" {
		t.Errorf("untouched timetable changed: %v", out.Timetable)
	}

	if _, err := svc.Update(ctx, uuid.New(), &req); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("unknown id err = %v", err)
	}
}

func TestDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	svc := NewStudentService(db)
	ctx := context.Background()

	keep := mustCreate(t, svc, dto.CreateStudentRequest{Name: "otra"})
	keepMonth, err := svc.AddMonth(ctx, keep.ID, "Marzo")
	if err != nil {
		t.Fatal(err)
	}
	mustAddClass(t, svc, keep.ID, keepMonth.ID, "Torno", 10)

	s := mustCreate(t, svc, dto.CreateStudentRequest{Name: "ana"})
	month, err := svc.AddMonth(ctx, s.ID, "Marzo")
	if err != nil {
		t.Fatal(err)
	}
	mustAddClass(t, svc, s.ID, month.ID, "Torno", 100)
	withTwo := mustAddClass(t, svc, s.ID, month.ID, "Esmaltado", 50)
	if len(withTwo.Classes) != 2 {
		t.Fatalf("classes before delete = %d", len(withTwo.Classes))
	}

	if err := svc.Delete(ctx, s.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(ctx, s.ID); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("get after delete err = %v", err)
	}

	var months, classes int64
	db.Model(&model.MonthModel{}).Count(&months)
	db.Model(&model.ClassModel{}).Count(&classes)
	if months != 1 || classes != 1 {
		t.Errorf("remaining months=%d classes=%d, want 1/1", months, classes)
	}

	if err := svc.Delete(ctx, s.ID); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("second delete err = %v", err)
	}
}

func TestAddClassRequiresOwnMonth(t *testing.T) {
	svc := NewStudentService(openTestDB(t))
	ctx := context.Background()

	a := mustCreate(t, svc, dto.CreateStudentRequest{Name: "ana"})
	b := mustCreate(t, svc, dto.CreateStudentRequest{Name: "bea"})
	monthB, err := svc.AddMonth(ctx, b.ID, "Abril")
	if err != nil {
		t.Fatal(err)
	}

	req := dto.CreateClassRequest{MonthID: monthB.ID, ClassBaseRequest: dto.ClassBaseRequest{ClassName: "Torno"}}
	if _, err := svc.AddClass(ctx, a.ID, &req); !errors.Is(err, ErrMonthNotFound) {
		t.Errorf("foreign month err = %v", err)
	}
	if _, err := svc.AddMonth(ctx, uuid.New(), "Abril"); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("month for unknown student err = %v", err)
	}
}

func TestClassLifecycle(t *testing.T) {
	svc := NewStudentService(openTestDB(t))
	ctx := context.Background()

	s := mustCreate(t, svc, dto.CreateStudentRequest{Name: "ana"})
	month, err := svc.AddMonth(ctx, s.ID, "Mayo")
	if err != nil {
		t.Fatal(err)
	}
	out := mustAddClass(t, svc, s.ID, month.ID, "Torno", 100)
	classID := out.Classes[0].ID
	if out.Classes[0].MonthLabel != "Mayo" {
		t.Errorf("month label = %q", out.Classes[0].MonthLabel)
	}

	paid := true
	upd := dto.UpdateClassRequest{ClassBaseRequest: dto.ClassBaseRequest{
		ClassName:  "Torno avanzado",
		ClassPrice: decPtr("120.50"),
		ClassPaid:  &paid,
		OvenPrice:  strPtr("30"),
	}}
	upd.Normalize()
	updated, err := svc.UpdateClass(ctx, classID, &upd)
	if err != nil {
		t.Fatal(err)
	}
	if updated.ClassName != "Torno avanzado" || !updated.ClassPaid || !updated.OvenPrice.Valid {
		t.Errorf("updated = %+v", updated)
	}

	all, err := svc.ListClasses(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].StudentName != "Ana" || all[0].MonthLabel != "Mayo" {
		t.Errorf("list classes = %+v", all)
	}
	if !all[0].ClassPrice.Equal(decimal.RequireFromString("120.5")) {
		t.Errorf("price = %s", all[0].ClassPrice)
	}

	if err := svc.DeleteClass(ctx, classID); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteClass(ctx, classID); !errors.Is(err, ErrClassNotFound) {
		t.Errorf("second delete err = %v", err)
	}
	if _, err := svc.UpdateClass(ctx, classID, &upd); !errors.Is(err, ErrClassNotFound) {
		t.Errorf("update deleted class err = %v", err)
	}
}

func TestEnsureMonthIsIdempotent(t *testing.T) {
	svc := NewStudentService(openTestDB(t))
	ctx := context.Background()
	s := mustCreate(t, svc, dto.CreateStudentRequest{Name: "ana"})

	first, created, err := svc.EnsureMonth(ctx, s.ID, "Octubre 2026")
	if err != nil || !created {
		t.Fatalf("first ensure created=%v err=%v", created, err)
	}
	second, created, err := svc.EnsureMonth(ctx, s.ID, " Octubre 2026 ")
	if err != nil || created {
		t.Fatalf("second ensure created=%v err=%v", created, err)
	}
	if first.MonthID != second.MonthID {
		t.Error("ensure returned a different month")
	}

	ids, err := svc.StudentIDs(ctx)
	if err != nil || len(ids) != 1 || ids[0] != s.ID {
		t.Errorf("student ids = %v err=%v", ids, err)
	}
}
