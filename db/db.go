package db

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the shared connection handle. Tests swap it for an in-memory
// sqlite database.
var DB *gorm.DB

// Init opens the Postgres connection from DATABASE_URL. Migrations run
// separately via Migrate.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment directly")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	DB = conn
	log.Println("database connection established")
}
