package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"mdceramica_backend/internals/cache"
	"mdceramica_backend/internals/configs"
	database "mdceramica_backend/internals/databases"
	monthService "mdceramica_backend/internals/features/workshop/months/service"
	studentService "mdceramica_backend/internals/features/workshop/students/service"
	helper "mdceramica_backend/internals/helpers"
	"mdceramica_backend/internals/helpers/dbtime"
	middlewares "mdceramica_backend/internals/middlewares"
	routes "mdceramica_backend/internals/route"
	"mdceramica_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	dbtime.SetWorkshopTimezone(configs.AppTimezone)

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		DisableStartupMessage: true,
		BodyLimit:             6 << 20, // import xlsx
		ProxyHeader:           configs.GetEnv("PROXY_HEADER"),
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + migrate
	db, err := database.ConnectDB(configs.DatabaseDSN())
	if err != nil {
		log.Fatalf("❌ DB connect: %v", err)
	}
	database.TunePool(db)
	if configs.GetEnvBool("DB_AUTO_MIGRATE", true) {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("❌ migrate: %v", err)
		}
	}
	if configs.GetEnvBool("SEED_DEMO", false) {
		seeds.RunAllSeeds(context.Background(), db)
	}
	database.WarmUp(db)

	// 🧠 cache opsional
	respCache := cache.New(context.Background(), cache.Options{
		Addr:     configs.GetEnv("REDIS_ADDR"),
		Password: configs.GetEnv("REDIS_PASSWORD"),
		DB:       configs.GetEnvInt("REDIS_DB", 0),
		TTL:      time.Duration(configs.GetEnvInt("CACHE_TTL_SECONDS", 60)) * time.Second,
	})

	// ⏱ monthly opener setelah DB siap
	var stopCron func()
	if configs.GetEnvBool("MONTH_OPENER_ENABLED", true) {
		opener := monthService.NewOpener(studentService.NewStudentService(db), respCache)
		c, err := opener.Start(configs.GetEnv("MONTH_OPENER_CRON", monthService.DefaultSchedule))
		if err != nil {
			log.Fatalf("❌ month opener: %v", err)
		}
		stopCron = func() { <-c.Stop().Done() }
	}

	// ✅ Routes
	routes.SetupRoutes(app, db, respCache)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: http → cron → pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if stopCron != nil {
		stopCron()
	}
	database.Close(db)
}
