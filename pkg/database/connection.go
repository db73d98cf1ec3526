// pkg/database/connection.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/thedrumepic/med/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connection defaults
const (
	DefaultConnectTimeout  = 10 * time.Second
	DefaultMaxPoolSize     = 25
	DefaultMinPoolSize     = 0
	DefaultMaxConnIdleTime = 5 * time.Minute
)

type Config struct {
	URL    string
	DBName string

	// Connection pool settings (optional)
	ConnectTimeout  time.Duration
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
}

// DefaultConfig returns a database configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		URL:             "mongodb://localhost:27017",
		DBName:          "medovik",
		ConnectTimeout:  DefaultConnectTimeout,
		MaxPoolSize:     DefaultMaxPoolSize,
		MinPoolSize:     DefaultMinPoolSize,
		MaxConnIdleTime: DefaultMaxConnIdleTime,
	}
}

// DB owns the MongoDB client and the application database handle. It is
// created once at process start and closed at shutdown; repositories
// borrow collections from it and never manage the connection themselves.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
	config   Config
}

// NewConnection establishes a MongoDB connection with the given configuration
func NewConnection(config Config, log *logger.Logger) (*DB, error) {
	if config.ConnectTimeout <= 0 {
		config.ConnectTimeout = DefaultConnectTimeout
	}
	if config.MaxPoolSize == 0 {
		config.MaxPoolSize = DefaultMaxPoolSize
	}
	if config.MaxConnIdleTime <= 0 {
		config.MaxConnIdleTime = DefaultMaxConnIdleTime
	}

	opts := options.Client().
		ApplyURI(config.URL).
		SetMaxPoolSize(config.MaxPoolSize).
		SetMinPoolSize(config.MinPoolSize).
		SetMaxConnIdleTime(config.MaxConnIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), config.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Error("Failed to connect to MongoDB", "error", err, "url", config.URL)
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	db := &DB{
		client:   client,
		database: client.Database(config.DBName),
		logger:   log.WithComponent("database"),
		config:   config,
	}

	db.logger.Info("MongoDB client configured",
		"db_name", config.DBName,
		"max_pool_size", config.MaxPoolSize)

	return db, nil
}

// HealthCheck pings the primary to verify the connection is alive
func (db *DB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, db.config.ConnectTimeout)
	defer cancel()

	if err := db.client.Ping(ctx, readpref.Primary()); err != nil {
		db.logger.Error("MongoDB health check failed", "error", err)
		return fmt.Errorf("mongodb ping failed: %w", err)
	}
	return nil
}

// Collection returns a handle to the named collection in the application database
func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

// Close disconnects the client and releases pooled connections
func (db *DB) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, db.config.ConnectTimeout)
	defer cancel()

	if err := db.client.Disconnect(ctx); err != nil {
		db.logger.Error("Failed to disconnect MongoDB client", "error", err)
		return err
	}

	db.logger.Info("MongoDB connection closed")
	return nil
}
