package mongodb

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/villagef/splot-ani-server/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
)

const pingTimeout = 5 * time.Second

// Store owns the process-wide MongoDB client. The driver keeps its own
// connection pool and re-dials dropped connections; Store only records
// whether the last health check reached the primary.
type Store struct {
	client  *mongo.Client
	db      *mongo.Database
	healthy atomic.Bool
}

func ConnectToMongoDB(ctx context.Context, cfg config.MongoDBConfig) (*Store, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMonitor(otelmongo.NewMonitor())

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	store := &Store{client: client, db: client.Database(cfg.Database)}

	if err := store.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	store.healthy.Store(true)
	log.Info().Str("component", "ConnectToMongoDB").Str("database", cfg.Database).Msg("connected to mongodb")

	return store, nil
}

func (s *Store) Database() *mongo.Database {
	return s.db
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	return s.client.Ping(ctx, readpref.Primary())
}

// CheckHealth pings the store and logs when its availability changes.
func (s *Store) CheckHealth(ctx context.Context) error {
	err := s.Ping(ctx)
	healthy := err == nil

	if previous := s.healthy.Swap(healthy); previous != healthy {
		if healthy {
			log.Info().Str("component", "CheckHealth").Msg("mongodb is reachable again")
		} else {
			log.Error().Err(err).Str("component", "CheckHealth").Msg("mongodb is unreachable")
		}
	}

	return err
}

func (s *Store) Healthy() bool {
	return s.healthy.Load()
}

func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
