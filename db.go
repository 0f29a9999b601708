package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/atmaprakash0998/rental-app-backend/entity"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupDatabase() *gorm.DB {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		envOr("MYSQL_USER", "root"),
		envOr("MYSQL_PASSWORD", "1109"),
		envOr("MYSQL_HOST", "localhost"),
		envOr("MYSQL_PORT", "3306"),
		envOr("MYSQL_DB", "rental_app"),
	)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect database")
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Vehicle{},
		&entity.UserVehicle{},
		&entity.Document{},
		&entity.MediaDocumentUrl{},
		&entity.MediaDocument{},
		&entity.Payment{},
		&entity.UserPayment{},
		&entity.Challan{},
		&entity.Setting{},
	); err != nil {
		logrus.WithError(err).Fatal("failed to run migrations")
	}
	return db
}
