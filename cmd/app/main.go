package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"warehouse/cmd"
	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustConnectDB(configs)
	mustPrepareSchema(db, configs)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateSummaryReportQueryHandler(),
		configs.OccupancyJobSpec,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		WarehouseAisles:  goDotEnvIntVariable("WAREHOUSE_AISLES", catalog.DefaultGridConfig().Aisles),
		WarehouseShelves: goDotEnvIntVariable("WAREHOUSE_SHELVES", catalog.DefaultGridConfig().Shelves),
		OccupancyJobSpec: goDotEnvVariableWithDefault("OCCUPANCY_JOB_SPEC", "0 * * * * *"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvVariableWithDefault(key, fallback string) string {
	if value := goDotEnvVariable(key); value != "" {
		return value
	}
	return fallback
}

func goDotEnvIntVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func mustPrepareSchema(db *gorm.DB, configs cmd.Config) {
	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	grid := catalog.GridConfig{Aisles: configs.WarehouseAisles, Shelves: configs.WarehouseShelves}
	if err := postgres.SeedCatalog(context.Background(), db, grid); err != nil {
		log.Fatalf("Error seeding catalog: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateRegisterParcelCommandHandler(),
		app.CreateUpdateParcelStatusCommandHandler(),
		app.CreateFindParcelQueryHandler(),
		app.CreateSummaryReportQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
