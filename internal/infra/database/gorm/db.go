package gorm

import (
	"fmt"
	"log"

	"sqs-bundle/internal/domain/entity"
	"sqs-bundle/pkg/resource"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var Db *gorm.DB

func init() {
	host := resource.GetString("app.db.host")
	port := resource.GetString("app.db.port")
	password := resource.GetString("app.db.password")
	username := resource.GetString("app.db.username")
	database := resource.GetString("app.db.database")
	schema := resource.GetString("app.db.schema")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		host, username, password, database, port, schema)

	var err error
	Db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Fail to connect database: %v", err)
	}

	if err = Db.AutoMigrate(&entity.Order{}); err != nil {
		log.Fatalf("Fail to migrate database: %v", err)
	}
}
