package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	kdb "github.com/recordbin/recordbin/pkg/db"
	kmgrec "github.com/recordbin/recordbin/pkg/db/mongodb/records"
	xe "github.com/recordbin/recordbin/pkg/errors"
)

type recordDBMongo struct {
	client  *mongo.Client
	records kdb.RecordInterface
}

type Config struct {
	Database   string
	Collection string
}

func DefaultConfig() Config {
	return Config{
		Database:   "recordbin",
		Collection: "records",
	}
}

type Option func(*Config) *Config

func WithDatabase(name string) Option {
	return func(c *Config) *Config {
		c.Database = name
		return c
	}
}

func WithCollection(name string) Option {
	return func(c *Config) *Config {
		c.Collection = name
		return c
	}
}

// New prepares a client for the document store at uri.
//
// The client connects lazily, as document-store clients conventionally do:
// a malformed uri fails here, but network-level failure is deferred to the
// first insert or scan. The client pools connections internally and is safe
// for concurrent use.
func New(ctx context.Context, uri string, opts ...Option) (kdb.RecordDatabase, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, xe.Wrap(err)
	}

	c := DefaultConfig()
	for _, opt := range opts {
		c = *opt(&c)
	}

	coll := client.Database(c.Database).Collection(c.Collection)

	return &recordDBMongo{
		client:  client,
		records: kmgrec.New(coll),
	}, nil
}

func (m *recordDBMongo) Records() kdb.RecordInterface {
	return m.records
}

func (m *recordDBMongo) Close() error {
	return m.client.Disconnect(context.Background())
}
