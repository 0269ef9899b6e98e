// Package db opens the database connection and runs migrations.
package db

import (
	"fmt"
	"log"
	"os"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "expensepro_backend/internal/feature/auth/adapters"
	authentity "expensepro_backend/internal/feature/auth/domain/entity"
	txentity "expensepro_backend/internal/feature/transactions/domain/entity"
)

// OpenDB connects to MySQL using the DB_* environment variables. Without
// DB_HOST it falls back to a local SQLite file for development.
func OpenDB() *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	host := os.Getenv("DB_HOST")
	if host != "" {
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASSWORD")
		port := os.Getenv("DB_PORT")
		name := os.Getenv("DB_NAME")
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			user, pass, host, port, name)
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{})
	} else {
		log.Println("[INFO] DB_HOST not set; using local SQLite file ./expensepro.db")
		db, err = gorm.Open(sqlite.Open("./expensepro.db"), &gorm.Config{})
	}
	if err != nil {
		panic("failed to connect database")
	}

	if err := db.AutoMigrate(
		&authentity.User{},
		&txentity.Transaction{},
		&authadapters.EmailLogModel{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
