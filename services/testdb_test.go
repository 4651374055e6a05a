package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"hostal-backend/config"
	"hostal-backend/models"
	"hostal-backend/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

// setupDB opens a fresh in-memory database per test and migrates the schema.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustClient(t *testing.T, db *gorm.DB, name, document, email string) *models.Client {
	t.Helper()
	client := &models.Client{Name: name, Document: document, Email: email, Phone: "0990000000"}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("create client: %v", err)
	}
	return client
}

func mustRoom(t *testing.T, db *gorm.DB, roomType string, status models.RoomStatus, price float64) *models.Room {
	t.Helper()
	room := &models.Room{Type: roomType, Status: status, Price: price}
	if err := db.Create(room).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}
	return room
}

// day returns today+offset formatted as YYYY-MM-DD.
func day(offset int) string {
	return utils.Today().AddDate(0, 0, offset).Format(utils.DateLayout)
}

func roomStatus(t *testing.T, db *gorm.DB, id uint) models.RoomStatus {
	t.Helper()
	var room models.Room
	if err := db.First(&room, id).Error; err != nil {
		t.Fatalf("reload room: %v", err)
	}
	return room.Status
}
