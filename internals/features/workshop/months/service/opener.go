package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	model "mdceramica_backend/internals/features/workshop/students/model"
	"mdceramica_backend/internals/helpers/dbtime"
)

const DefaultSchedule = "5 0 1 * *"

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthLabel: "Octubre 2026" (zona waktu workshop).
func MonthLabel(t time.Time) string {
	local := dbtime.ToWorkshopTime(t)
	return fmt.Sprintf("%s %d", monthNames[local.Month()-1], local.Year())
}

// MonthStore dipenuhi oleh students/service.StudentService.
type MonthStore interface {
	StudentIDs(ctx context.Context) ([]uuid.UUID, error)
	EnsureMonth(ctx context.Context, studentID uuid.UUID, label string) (*model.MonthModel, bool, error)
}

type Invalidator interface {
	Invalidate(ctx context.Context)
}

type OpenResult struct {
	Label   string
	Created int
	Existed int
	Failed  int
}

type Opener struct {
	Store MonthStore
	Cache Invalidator
	Now   func() time.Time
}

func NewOpener(store MonthStore, cache Invalidator) *Opener {
	return &Opener{Store: store, Cache: cache, Now: time.Now}
}

// Run memastikan setiap siswa punya bulan berlabel periode sekarang.
// Gagal per siswa dicatat dan dilanjutkan.
func (o *Opener) Run(ctx context.Context) (OpenResult, error) {
	res := OpenResult{Label: MonthLabel(o.Now())}

	ids, err := o.Store.StudentIDs(ctx)
	if err != nil {
		return res, err
	}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		_, created, err := o.Store.EnsureMonth(ctx, id, res.Label)
		switch {
		case err != nil:
			res.Failed++
			log.Printf("[CRON] ensure month %q untuk %s gagal: %v", res.Label, id, err)
		case created:
			res.Created++
		default:
			res.Existed++
		}
	}
	if res.Created > 0 && o.Cache != nil {
		o.Cache.Invalidate(ctx)
	}
	return res, nil
}

// Start menjadwalkan Run dengan cron (5 field) di zona waktu workshop.
// Pemanggil wajib Stop() saat shutdown.
func (o *Opener) Start(schedule string) (*cron.Cron, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	c := cron.New(
		cron.WithLocation(dbtime.WorkshopLocation()),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		res, err := o.Run(ctx)
		if err != nil {
			log.Printf("[CRON] month opener error: %v", err)
			return
		}
		log.Printf("[CRON] month opener %q: created=%d existed=%d failed=%d", res.Label, res.Created, res.Existed, res.Failed)
	})
	if err != nil {
		return nil, fmt.Errorf("cron schedule %q: %w", schedule, err)
	}
	c.Start()
	log.Printf("[CRON] month opener terjadwal %q (%s)", schedule, dbtime.WorkshopLocation())
	return c, nil
}
