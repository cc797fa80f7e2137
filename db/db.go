package db

import (
	"context"
	"fmt"
	"time"

	"github.com/AliAlSubhi98/CodelineChallenge/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

var DB *gorm.DB

type User struct {
	ID            int       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name          string    `gorm:"size:255" json:"name"`
	LastLoginDate time.Time `json:"last_login_date"`
}

type MeasurementResult struct {
	ID               int    `gorm:"column:measurement_result_id;primaryKey;autoIncrement" json:"id"`
	MeasurementValue string `gorm:"size:255" json:"measurement_value"`
	ResultValue      string `gorm:"size:255" json:"result_value"`
}

type UserActivity struct {
	Datetime            time.Time         `gorm:"column:datetime" json:"datetime"`
	UserID              int               `json:"user_id"`
	User                User              `gorm:"foreignKey:UserID" json:"-"`
	Username            string            `gorm:"size:255" json:"username"`
	MeasurementValue    string            `gorm:"size:255" json:"measurement_value"`
	MeasurementResultID int               `json:"measurement_result_id"`
	MeasurementResult   MeasurementResult `gorm:"foreignKey:MeasurementResultID;references:ID" json:"-"`
}

func (User) TableName() string              { return "user_table" }
func (MeasurementResult) TableName() string { return "measurement_result_table" }
func (UserActivity) TableName() string      { return "user_activity_table" }

// Open connects with the dialector selected by cfg.DBDriver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlserver":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s", cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		dialector = sqlserver.Open(dsn)
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s", cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return gorm.Open(dialector, &gorm.Config{})
}

// Migrate creates the user, measurement result and user activity tables when
// they do not exist yet.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&User{}, &MeasurementResult{}, &UserActivity{}); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}
	return nil
}

func Init(cfg *config.Config) error {
	gdb, err := Open(cfg)
	if err != nil {
		return err
	}
	if err := Migrate(gdb); err != nil {
		return err
	}
	DB = gdb
	return nil
}

// StoreMeasurementResult records one conversion in its own transaction.
func StoreMeasurementResult(ctx context.Context, gdb *gorm.DB, value, result string) (MeasurementResult, error) {
	r := MeasurementResult{MeasurementValue: value, ResultValue: result}
	err := gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&r).Error
	})
	if err != nil {
		return MeasurementResult{}, fmt.Errorf("store measurement result: %w", err)
	}
	return r, nil
}

// ListMeasurementResults returns at most limit results, newest first.
func ListMeasurementResults(ctx context.Context, gdb *gorm.DB, limit int) ([]MeasurementResult, error) {
	var results []MeasurementResult
	if err := gdb.WithContext(ctx).Order("measurement_result_id desc").Limit(limit).Find(&results).Error; err != nil {
		return nil, fmt.Errorf("list measurement results: %w", err)
	}
	return results, nil
}
