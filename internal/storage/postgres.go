package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Thecodingpm/calories-counterr/internal/config"
	"github.com/Thecodingpm/calories-counterr/internal/logger"
)

// collectionRow holds one whole serialized collection per row, preserving
// the load/save-whole-collection contract on a durable server store.
type collectionRow struct {
	Key  string `gorm:"primaryKey;size:255"`
	Data []byte
}

func (collectionRow) TableName() string {
	return "collections"
}

// PostgresStore backs the collection store with a single-table Postgres
// schema through GORM.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore connects to PostgreSQL and migrates the schema.
func NewPostgresStore(cfg config.DBConfig) (*PostgresStore, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database connection established and migrations completed")
	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var row collectionRow
	err := p.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.Data, true, nil
}

func (p *PostgresStore) Save(ctx context.Context, key string, data []byte) error {
	row := collectionRow{Key: key, Data: data}
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}

func (p *PostgresStore) Delete(ctx context.Context, key string) error {
	return p.db.WithContext(ctx).Delete(&collectionRow{}, "key = ?", key).Error
}
