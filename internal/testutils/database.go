package testutils

import (
	"fmt"
	"testing"

	"github.com/SergSukh/api-yamdb-33-all/internal/database"
	"github.com/SergSukh/api-yamdb-33-all/internal/model"
	dbPkg "github.com/SergSukh/api-yamdb-33-all/packages/database"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupTestDB opens a private in-memory SQLite database with every table
// migrated, installs it as database.DB and closes it when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := dbPkg.InitSqlite(&dbPkg.SqliteConfig{
		ServiceName: "yamdb-test",
		Path:        dsn,
		LogLevel:    "silent",
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := model.InitTable(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	database.DB = db
	t.Cleanup(func() {
		database.DB = nil
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return db
}

// SetupTestRedis starts an in-process Redis and returns a client for it.
func SetupTestRedis(t *testing.T) (*dbPkg.RedisClient, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &dbPkg.RedisClient{Client: client}, mr
}
