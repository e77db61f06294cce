package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"pastelstand/cmd"
	httpadapter "pastelstand/internal/adapters/in/http"
	"pastelstand/internal/adapters/out/postgres/customerrepo"
	"pastelstand/internal/adapters/out/postgres/flavorrepo"
	"pastelstand/internal/adapters/out/postgres/orderrepo"
	"pastelstand/internal/core/application/usecases/commands"
	"pastelstand/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	createDbIfNotExists(configs)
	gormDB := mustConnectGorm(configs)
	migrateTables(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	if configs.SeedDefaultFlavors {
		seedDefaultFlavors(&app)
	}

	jobManager := jobs.NewJobManager(app.CreateGetDailyReportQueryHandler(), slog.Default())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		SeedDefaultFlavors: goDotEnvBool("SEED_DEFAULT_FLAVORS"),
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

func goDotEnvBool(key string) bool {
	value, err := strconv.ParseBool(goDotEnvVariable(key))
	if err != nil {
		return false
	}
	return value
}

// createDbIfNotExists connects to the maintenance database and creates the
// application database when a fresh postgres instance is pointed at.
func createDbIfNotExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if _, err = db.Exec(fmt.Sprintf(`CREATE DATABASE %q`, configs.DBName)); err != nil {
			log.Fatalf("Failed to create database %s: %v", configs.DBName, err)
		}
	}
}

func mustConnectGorm(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateTables(gormDB *gorm.DB) {
	// Referenced tables first so foreign keys can be created.
	err := gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&flavorrepo.FlavorDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusHistoryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// seedDefaultFlavors upserts the stand's standard catalog so a fresh
// deployment is immediately usable. Existing flavors keep their stock.
func seedDefaultFlavors(app *cmd.CompositionRoot) {
	specs := []commands.FlavorSpec{
		{Name: "Carne", Description: "Pastel de carne moída temperada", AvailableQuantity: 50, Price: decimal.NewFromFloat(12.90)},
		{Name: "Queijo", Description: "Pastel de queijo mussarela", AvailableQuantity: 50, Price: decimal.NewFromFloat(10.90)},
		{Name: "Frango com Catupiry", Description: "Pastel de frango desfiado com catupiry", AvailableQuantity: 50, Price: decimal.NewFromFloat(11.90)},
		{Name: "Chocolate", Description: "Pastel doce de chocolate", AvailableQuantity: 50, Price: decimal.NewFromFloat(10.00)},
	}

	upsertCmd, err := commands.NewUpsertFlavorsCommand(specs)
	if err != nil {
		log.Fatalf("Failed to build flavor seed command: %v", err)
	}

	handler := app.CreateUpsertFlavorsCommandHandler()
	if _, err = handler.Handle(context.Background(), upsertCmd); err != nil {
		log.Fatalf("Failed to seed default flavors: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateRegisterCustomerCommandHandler(),
		app.CreateConfirmCustomerCommandHandler(),
		app.CreateUpsertFlavorsCommandHandler(),
		app.CreateUpdateFlavorCommandHandler(),
		app.CreateUpdateFlavorInventoryCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateAdvanceOrderItemCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetCustomerQueryHandler(),
		app.CreateGetAllFlavorsQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
		app.CreateGetOrderHistoryQueryHandler(),
		app.CreateGetDailyReportQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
