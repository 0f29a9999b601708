package main

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	authrepo "github.com/atmaprakash0998/rental-app-backend/auth/repository"
	authsvc "github.com/atmaprakash0998/rental-app-backend/auth/service"
	challanrepo "github.com/atmaprakash0998/rental-app-backend/challan/repository"
	challansvc "github.com/atmaprakash0998/rental-app-backend/challan/service"
	"github.com/atmaprakash0998/rental-app-backend/document"
	docrepo "github.com/atmaprakash0998/rental-app-backend/document/repository"
	docsvc "github.com/atmaprakash0998/rental-app-backend/document/service"
	api "github.com/atmaprakash0998/rental-app-backend/handler"
	"github.com/atmaprakash0998/rental-app-backend/metrics"
	"github.com/atmaprakash0998/rental-app-backend/middleware"
	paymentrepo "github.com/atmaprakash0998/rental-app-backend/payment/repository"
	paymentsvc "github.com/atmaprakash0998/rental-app-backend/payment/service"
	"github.com/atmaprakash0998/rental-app-backend/permission"
	"github.com/atmaprakash0998/rental-app-backend/realtime"
	"github.com/atmaprakash0998/rental-app-backend/setting"
	settingrepo "github.com/atmaprakash0998/rental-app-backend/setting/repository"
	settingsvc "github.com/atmaprakash0998/rental-app-backend/setting/service"
	vehiclerepo "github.com/atmaprakash0998/rental-app-backend/vehicle/repository"
	vehiclesvc "github.com/atmaprakash0998/rental-app-backend/vehicle/service"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	secret := envOr("JWT_SECRET", "dev-insecure-secret-change-me")
	db := setupDatabase()

	store, err := document.NewStore(envOr("UPLOAD_DIR", "uploads/documents"))
	if err != nil {
		logrus.WithError(err).Fatal("failed to prepare upload directory")
	}

	// redis is optional; without REDIS_ADDR the settings cache is a no-op
	var redisClient *redis.Client
	if addr := envOr("REDIS_ADDR", ""); addr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: addr})
	}

	hub := realtime.NewHub()

	authRepo := authrepo.NewGormAuthRepo(db)
	authService := authsvc.NewAuthService(authRepo, secret)
	authHandler := api.NewAuthHandler(authService)

	docRepo := docrepo.NewGormDocumentRepo(db)
	docService := docsvc.NewDocumentService(docRepo, store)
	docHandler := api.NewDocumentHandler(docService)

	vehicleRepo := vehiclerepo.NewGormVehicleRepo(db)
	vehicleService := vehiclesvc.NewVehicleService(vehicleRepo, docService, hub)
	vehicleHandler := api.NewVehicleHandler(vehicleService)

	paymentRepo := paymentrepo.NewGormPaymentRepo(db)
	paymentService := paymentsvc.NewPaymentService(paymentRepo)
	paymentHandler := api.NewPaymentHandler(paymentService)

	challanRepo := challanrepo.NewGormChallanRepo(db)
	challanService := challansvc.NewChallanService(challanRepo)
	challanHandler := api.NewChallanHandler(challanService)

	settingRepo := settingrepo.NewGormSettingRepo(db)
	settingService := settingsvc.NewSettingService(settingRepo, setting.NewCache(redisClient))
	settingHandler := api.NewSettingHandler(settingService)

	wsHandler := api.NewWsHandler(hub)

	r := gin.New()
	r.Use(gin.Recovery(), gin.Logger(), metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/greeting", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": "Welcome to the rental app"})
		})

		v1.POST("/auth/register", authHandler.Register())
		v1.POST("/auth/login", authHandler.Login(permission.RoleUser))
		v1.POST("/auth/owner/login", authHandler.Login(permission.RoleOwner))
		v1.POST("/auth/admin/login", authHandler.Login(permission.RoleAdmin))
	}

	authed := v1.Group("")
	authed.Use(middleware.RequireAuth(secret, authRepo))
	{
		authed.GET("/auth/me", authHandler.Me())
		authed.PUT("/auth/profile", authHandler.UpdateProfile())
		authed.PUT("/auth/change-password", authHandler.ChangePassword())

		authed.GET("/vehicles", vehicleHandler.ListVehicles())
		authed.GET("/documents/me", docHandler.MyDocuments())
		authed.POST("/documents/me", docHandler.UploadMyDocuments())
		authed.POST("/payments", paymentHandler.RecordPayment())
		authed.GET("/payments", paymentHandler.MyPayments())
		authed.GET("/settings/keys", settingHandler.GetByKeys())

		authed.GET("/ws/owner", middleware.RequireRoles(permission.RoleOwner, permission.RoleAdmin), wsHandler.OwnerSocket())
	}

	owners := authed.Group("")
	owners.Use(middleware.RequireRoles(permission.RoleOwner, permission.RoleAdmin))
	{
		owners.GET("/vehicles/get-owner-vehicles", vehicleHandler.OwnerVehicles())
		owners.POST("/vehicles/create-vehicle", middleware.RequirePermission(permission.VehicleCreate), vehicleHandler.CreateVehicle())
		owners.PUT("/vehicles/update-vehicle/:vehicle_id", middleware.RequirePermission(permission.VehicleUpdate), vehicleHandler.UpdateVehicle())
		owners.DELETE("/vehicles/delete-vehicle/:vehicle_id", middleware.RequirePermission(permission.VehicleDelete), vehicleHandler.DeleteVehicle())
		owners.GET("/documents/vehicle/:vehicle_id", docHandler.VehicleDocuments())
	}

	admins := authed.Group("")
	admins.Use(middleware.RequireRoles(permission.RoleAdmin))
	{
		admins.GET("/vehicles/:vehicle_id", vehicleHandler.GetVehicle())
		admins.PUT("/documents/:document_id/verify", docHandler.VerifyDocument())
		admins.PUT("/payments/:payment_id/status", middleware.RequirePermission(permission.PaymentUpdate), paymentHandler.UpdateStatus())
		admins.POST("/challans", challanHandler.CreateChallan())
		admins.GET("/challans/:entity_type/:entity_id", challanHandler.EntityChallans())
		admins.PUT("/challans/:challan_id/pay", challanHandler.MarkPaid())
		admins.GET("/settings", settingHandler.GetAll())
		admins.POST("/settings", settingHandler.CreateSetting())
		admins.PUT("/settings/:setting_id", settingHandler.UpdateSetting())
		admins.DELETE("/settings/:setting_id", settingHandler.DeleteSetting())
	}

	addr := ":" + envOr("PORT", "8080")
	if err := r.Run(addr); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
