package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"ordering/cmd"
	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/adapters/out/postgres/invoicerepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/productrepo"
	"ordering/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateSchema(gormDB)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	jobManager := startJobs(app, configs)
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		StaleOrderTTLMinutes: goDotEnvIntVariable("STALE_ORDER_TTL_MINUTES"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s as integer", key)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func migrateSchema(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&productrepo.ProductDTO{},
		&customerrepo.CustomerDTO{},
		&invoicerepo.InvoiceDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
}

func startJobs(app cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		time.Duration(configs.StaleOrderTTLMinutes)*time.Minute,
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateSetProductAvailabilityCommandHandler(),
		app.CreateSaveInvoiceCommandHandler(),
		app.CreateDeleteInvoiceCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetAvailableProductsQueryHandler(),
		app.CreateGetInvoiceQueryHandler(),
		app.CreateGetAllInvoicesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
