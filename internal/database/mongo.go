package repository

import (
	"MentorMarket/internal/config"
	"MentorMarket/internal/lib/sl"
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mentorsCollection = "mentors"

// MongoDB holds one connected client for the lifetime of the process; the
// driver pools connections across concurrent requests.
type MongoDB struct {
	client   *mongo.Client
	database string
	timeout  time.Duration
	log      *slog.Logger
}

func NewMongoClient(conf *config.Config, logger *slog.Logger) (*MongoDB, error) {
	if !conf.Mongo.Enabled {
		return nil, nil
	}
	connectionUri := fmt.Sprintf("mongodb://%s:%s", conf.Mongo.Host, conf.Mongo.Port)
	clientOptions := options.Client().ApplyURI(connectionUri)
	if conf.Mongo.User != "" {
		clientOptions.SetAuth(options.Credential{
			Username:   conf.Mongo.User,
			Password:   conf.Mongo.Password,
			AuthSource: conf.Mongo.Database,
		})
	}

	timeout := time.Duration(conf.Mongo.Timeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	m := NewMongoDB(client, conf.Mongo.Database, logger)
	m.timeout = timeout
	if err = m.ensureIndexes(ctx); err != nil {
		m.log.Warn("create indexes", sl.Err(err))
	}
	return m, nil
}

// NewMongoDB wraps an already connected client.
func NewMongoDB(client *mongo.Client, database string, logger *slog.Logger) *MongoDB {
	return &MongoDB{
		client:   client,
		database: database,
		timeout:  10 * time.Second,
		log:      logger.With(sl.Module("mongodb")),
	}
}

func connect(ctx context.Context, clientOptions *options.ClientOptions) (*mongo.Client, error) {
	// embedded documents in opaque fields decode as maps so they render as JSON objects
	clientOptions.SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	connection, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect error: %w", err)
	}
	if err = connection.Ping(ctx, nil); err != nil {
		_ = connection.Disconnect(ctx)
		return nil, fmt.Errorf("mongodb ping error: %w", err)
	}
	return connection, nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoDB) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongodb ping error: %w", err)
	}
	return nil
}

func (m *MongoDB) collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

// withTimeout bounds a store call when the caller supplied no deadline.
func (m *MongoDB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, m.timeout)
}

func (m *MongoDB) ensureIndexes(ctx context.Context) error {
	collection := m.collection(mentorsCollection)
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("mongodb index error: %w", err)
	}
	return nil
}
