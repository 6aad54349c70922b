package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gotask_backend/config"
	"gotask_backend/internal/logger"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	clientErr  error
)

// GetInstance returns the process-wide MongoDB client, connecting on first
// use. The connect is single-flight: concurrent callers during a cold start
// all block on the same sync.Once and observe one client or one error.
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	clientOnce.Do(func() {
		client, clientErr = connect(c)
	})
	return client, clientErr
}

func connect(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("database connection URI is empty")
	}

	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetMaxPoolSize(50).
		SetMinPoolSize(10).
		SetConnectTimeout(5 * time.Second).
		SetSocketTimeout(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cl, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	if err := cl.Ping(ctxPing, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.GetAppLogger().Info("Successfully connected to MongoDB")
	return cl, nil
}

// CloseInstance disconnects the shared client. Only used on shutdown.
func CloseInstance(cl *mongo.Client) error {
	if cl == nil {
		return nil
	}
	if err := cl.Disconnect(context.TODO()); err != nil {
		logger.GetAppLogger().WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	logger.GetAppLogger().Info("Disconnected from MongoDB")
	return nil
}
