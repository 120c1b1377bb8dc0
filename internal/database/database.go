package database

import (
	"context"
	"fmt"
	"time"

	"duty-roster-backend/internal/database/models"
	apperrors "duty-roster-backend/internal/errors"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Initialize opens a Postgres connection and creates the roster schema.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(withDefaults(opts).LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return Configure(db, opts)
}

// Configure applies pool settings to an open connection and migrates the schema
func Configure(db *gorm.DB, opts *Options) (*gorm.DB, error) {
	opts = withDefaults(opts)
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate {
		if err := db.AutoMigrate(&models.RosterDocument{}); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}
	return db, nil
}

func withDefaults(opts *Options) *Options {
	out := Options{}
	if opts != nil {
		out = *opts
	}
	if out.LogLevel == 0 {
		out.LogLevel = logger.Error
	}
	if out.MaxOpenConns == 0 {
		out.MaxOpenConns = 20
	}
	if out.MaxIdleConns == 0 {
		out.MaxIdleConns = 10
	}
	if out.ConnMaxLifetime == 0 {
		out.ConnMaxLifetime = 30 * time.Minute
	}
	if out.ConnMaxIdleTime == 0 {
		out.ConnMaxIdleTime = 10 * time.Minute
	}
	return &out
}

// RedisOptions configures the snapshot fan-out connection
type RedisOptions struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

// InitializeRedis connects to Redis and verifies the connection with PING
func InitializeRedis(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	if opts.Addr == "" {
		return nil, apperrors.ErrRedisNotConfigured
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: opts.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}
	return client, nil
}
