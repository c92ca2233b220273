package database

import (
	"context"
	"fmt"
	"path/filepath"
	"server/config"
	"server/internal/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test database initialization and core functionality

func TestNew_InvalidConfig(t *testing.T) {
	invalidConfig := config.Config{
		DatabaseDbPath:       "",
		DatabaseCacheAddress: "",
		DatabaseCachePort:    0,
	}

	_, err := New(invalidConfig)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database path is empty")
}

func TestInitializeSQLiteDB_Success(t *testing.T) {
	db := &DB{
		log: logger.New("test"),
	}

	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	testConfig := config.Config{
		DatabaseDbPath: dbPath,
	}

	err := db.initializeSQLiteDB(&gorm.Config{}, testConfig)
	assert.NoError(t, err)
	assert.NotNil(t, db.SQL)

	// Verify database file was created
	assert.FileExists(t, dbPath)

	if db.SQL != nil {
		sqlDB, _ := db.SQL.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	}
}

func TestInitializeSQLiteDB_EmptyPath(t *testing.T) {
	db := &DB{
		log: logger.New("test"),
	}

	testConfig := config.Config{
		DatabaseDbPath: "",
	}

	err := db.initializeSQLiteDB(&gorm.Config{}, testConfig)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database path is empty")
}

func TestInitializeSQLiteDB_InMemory(t *testing.T) {
	db := &DB{
		log: logger.New("test"),
	}

	testConfig := config.Config{
		DatabaseDbPath: ":memory:",
	}

	err := db.initializeSQLiteDB(&gorm.Config{}, testConfig)
	assert.NoError(t, err)
	assert.NotNil(t, db.SQL)

	sqlDB, err := db.SQL.DB()
	assert.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())

	_ = sqlDB.Close()
}

func TestInitializeDB_ConfigurationCheck(t *testing.T) {
	db := &DB{
		log: logger.New("test"),
	}

	testConfig := config.Config{
		DatabaseDbPath: ":memory:",
	}

	err := db.initializeDB(testConfig)
	assert.NoError(t, err)
	assert.NotNil(t, db.SQL)

	if db.SQL != nil {
		sqlDB, _ := db.SQL.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	}
}

func TestClose_WithSQLDB(t *testing.T) {
	db := &DB{
		log: logger.New("test"),
	}

	testConfig := config.Config{
		DatabaseDbPath: ":memory:",
	}

	err := db.initializeSQLiteDB(&gorm.Config{}, testConfig)
	require.NoError(t, err)

	err = db.Close()
	assert.NoError(t, err)
}

func TestClose_WithNilSQL(t *testing.T) {
	db := &DB{
		log: logger.New("test"),
		SQL: nil,
	}

	// Should not panic with nil SQL
	err := db.Close()
	assert.NoError(t, err)
}

func TestSQLWithContext(t *testing.T) {
	db := &DB{
		log: logger.New("test"),
	}

	testConfig := config.Config{
		DatabaseDbPath: ":memory:",
	}

	err := db.initializeSQLiteDB(&gorm.Config{}, testConfig)
	require.NoError(t, err)

	ctx := context.Background()
	gormDB := db.SQLWithContext(ctx)

	assert.NotNil(t, gormDB)
	assert.NotEqual(t, db.SQL, gormDB) // Should be different instance with context

	if db.SQL != nil {
		sqlDB, _ := db.SQL.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	}
}

func TestTXDefer_Success(t *testing.T) {
	db := &DB{
		log: logger.New("test"),
	}

	testConfig := config.Config{
		DatabaseDbPath: ":memory:",
	}

	err := db.initializeSQLiteDB(&gorm.Config{}, testConfig)
	require.NoError(t, err)

	err = db.SQL.Exec("CREATE TABLE test_table (id INTEGER PRIMARY KEY, name TEXT)").Error
	require.NoError(t, err)

	tx := db.SQL.Begin()
	assert.NoError(t, tx.Error)

	err = tx.Exec("INSERT INTO test_table (name) VALUES (?)", "test").Error
	assert.NoError(t, err)

	TXDefer(tx, db.log)

	// Verify data was committed
	var count int64
	err = db.SQL.Model(&struct{}{}).Table("test_table").Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	sqlDB, _ := db.SQL.DB()
	_ = sqlDB.Close()
}

func TestTXDefer_WithTransactionError(t *testing.T) {
	db := &DB{
		log: logger.New("test"),
	}

	testConfig := config.Config{
		DatabaseDbPath: ":memory:",
	}

	err := db.initializeSQLiteDB(&gorm.Config{}, testConfig)
	require.NoError(t, err)

	tx := db.SQL.Begin()
	assert.NoError(t, tx.Error)

	// Force an error on the transaction
	tx.Error = fmt.Errorf("simulated transaction error")

	// Should roll back without panicking
	TXDefer(tx, db.log)

	sqlDB, _ := db.SQL.DB()
	_ = sqlDB.Close()
}

func TestInitializeCacheDB_MissingConfig(t *testing.T) {
	db := &DB{
		log: logger.New("test"),
	}

	invalidConfig := config.Config{
		DatabaseCacheAddress: "",
		DatabaseCachePort:    6379,
	}

	err := db.initializeCacheDB(invalidConfig)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cache address is empty")

	invalidConfig2 := config.Config{
		DatabaseCacheAddress: "localhost",
		DatabaseCachePort:    0,
	}

	err = db.initializeCacheDB(invalidConfig2)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cache address is empty")
}

// Cache builder behavior without a running cache: every operation is a
// visible no-op on a nil client.

func TestCacheBuilder_NilClient_Set(t *testing.T) {
	err := NewCacheBuilder(nil, "test-key").
		WithStruct(map[string]string{"a": "b"}).
		WithTTL(30 * time.Minute).
		Set()
	assert.NoError(t, err)
}

func TestCacheBuilder_NilClient_Get(t *testing.T) {
	var dest map[string]string
	found, err := NewCacheBuilder(nil, "test-key").Get(&dest)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, dest)
}

func TestCacheBuilder_NilClient_Delete(t *testing.T) {
	err := NewCacheBuilder(nil, "test-key").Delete()
	assert.NoError(t, err)
}

func TestCacheBuilder_ContextCarries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A nil client never touches the context, even when cancelled.
	err := NewCacheBuilder(nil, "test-key").WithContext(ctx).Set()
	assert.NoError(t, err)
}
