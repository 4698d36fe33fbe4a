package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	custodyrepo "github.com/maag070208/AXZY-PARK-API/custody/repository"
	custodysvc "github.com/maag070208/AXZY-PARK-API/custody/service"
	entryrepo "github.com/maag070208/AXZY-PARK-API/entry/repository"
	entrysvc "github.com/maag070208/AXZY-PARK-API/entry/service"
	exitrepo "github.com/maag070208/AXZY-PARK-API/exits/repository"
	exitsvc "github.com/maag070208/AXZY-PARK-API/exits/service"
	api "github.com/maag070208/AXZY-PARK-API/handler"
	locationrepo "github.com/maag070208/AXZY-PARK-API/location/repository"
	locationsvc "github.com/maag070208/AXZY-PARK-API/location/service"
	"github.com/maag070208/AXZY-PARK-API/middleware"
	"github.com/maag070208/AXZY-PARK-API/monitor"
	"github.com/maag070208/AXZY-PARK-API/pkg/logger"
	raterepo "github.com/maag070208/AXZY-PARK-API/rate/repository"
	ratesvc "github.com/maag070208/AXZY-PARK-API/rate/service"
	"github.com/maag070208/AXZY-PARK-API/realtime"
	userrepo "github.com/maag070208/AXZY-PARK-API/user/repository"
	usersvc "github.com/maag070208/AXZY-PARK-API/user/service"
)

func main() {
	cfg := loadConfig()

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger)

	db := setupDatabase(cfg, logger.Named(baseLogger, "db"))

	hub := realtime.NewHub(logger.Named(baseLogger, "realtime"))

	// repositories
	locRepo := locationrepo.NewGormLocationRepo(db)
	rateRepo := raterepo.NewGormRateRepo(db)
	entRepo := entryrepo.NewGormEntryRepo(db)
	cusRepo := custodyrepo.NewGormCustodyRepo(db)
	exRepo := exitrepo.NewGormExitRepo(db)
	usrRepo := userrepo.NewGormUserRepo(db)

	// services
	locService := locationsvc.NewLocationService(locRepo)
	rateService := ratesvc.NewRateService(rateRepo)
	entryService := entrysvc.NewEntryService(entRepo)
	exitService := exitsvc.NewExitService(exRepo, entRepo, rateService, hub)
	custodyService := custodysvc.NewCustodyService(cusRepo, entRepo, exitService, hub)
	userService := usersvc.NewUserService(usrRepo)

	mon := monitor.New(cusRepo, locRepo, entRepo, hub, cfg.StaleAssignmentAfter, logger.Named(baseLogger, "monitor"))
	mon.Start()
	defer mon.Stop()

	// handlers
	entryHandler := api.NewEntryHandler(entryService, hub)
	assignmentHandler := api.NewAssignmentHandler(custodyService)
	exitHandler := api.NewExitHandler(exitService)
	locationHandler := api.NewLocationHandler(locService)
	vehicleTypeHandler := api.NewVehicleTypeHandler(rateService)
	configHandler := api.NewConfigHandler(rateService)
	userHandler := api.NewUserHandler(userService)
	wsHandler := api.NewWSHandler(hub)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger.Named(baseLogger, "http")))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/entries", entryHandler.CreateEntry())
		v1.GET("/entries", entryHandler.ListActiveEntries())
		v1.GET("/entries/:id", entryHandler.GetEntry())
		v1.POST("/entries/:id/cancel", entryHandler.CancelEntry())
		v1.DELETE("/entries/:id", entryHandler.DeleteEntry())
		v1.GET("/users/:userId/entries", entryHandler.ListUserEntries())
		v1.GET("/users/:userId/entries/last", entryHandler.LastUserEntry())

		v1.POST("/assignments", assignmentHandler.CreateAssignment())
		v1.GET("/assignments", assignmentHandler.ListAssignments())
		v1.GET("/assignments/:id", assignmentHandler.GetAssignment())
		v1.POST("/assignments/:id/finish", assignmentHandler.FinishAssignment())
		v1.GET("/entries/:id/assignments/active", assignmentHandler.ActiveAssignmentForEntry())
		v1.GET("/entries/:id/movements", assignmentHandler.EntryMovements())

		v1.POST("/exits", exitHandler.CreateExit())
		v1.GET("/exits", exitHandler.ListExits())
		v1.GET("/entries/:id/exit", exitHandler.ExitForEntry())

		v1.POST("/locations", locationHandler.CreateLocation())
		v1.GET("/locations", locationHandler.ListLocations())
		v1.GET("/locations/:id", locationHandler.GetLocation())
		v1.POST("/locations/:id/release", locationHandler.ReleaseLocation())

		v1.GET("/vehicle-types", vehicleTypeHandler.ListVehicleTypes())
		v1.POST("/vehicle-types", vehicleTypeHandler.CreateVehicleType())
		v1.PUT("/vehicle-types/:id", vehicleTypeHandler.UpdateVehicleType())
		v1.DELETE("/vehicle-types/:id", vehicleTypeHandler.DeleteVehicleType())

		v1.GET("/config", configHandler.GetSettings())
		v1.PUT("/config", configHandler.UpdateSettings())

		v1.POST("/users", userHandler.RegisterUser())
		v1.GET("/users", userHandler.ListUsers())
		v1.GET("/users/operators", userHandler.ListOperators())
		v1.GET("/users/:userId", userHandler.GetUser())

		v1.GET("/ws/dashboard", wsHandler.DashboardSocket())
	}

	baseLogger.Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		baseLogger.Fatal("server stopped", zap.Error(err))
	}
}
