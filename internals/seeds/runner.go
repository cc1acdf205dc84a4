package seeds

import (
	"context"
	"log"

	"gorm.io/gorm"

	students "mdceramica_backend/internals/seeds/students"
)

// RunAllSeeds data demo (SEED_DEMO=true). Aman dijalankan berulang.
func RunAllSeeds(ctx context.Context, db *gorm.DB) {
	//* Students + months + classes
	if n, err := students.SeedStudentsFromJSON(ctx, db, students.DemoData); err != nil {
		log.Printf("[ERROR] seed students: %v", err)
	} else {
		log.Printf("[INFO] seed students: %d baru", n)
	}
}
