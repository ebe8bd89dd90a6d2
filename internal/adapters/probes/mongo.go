package probes

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/jsamuelsen11/go-health-aggregator/internal/domain/health"
	"github.com/jsamuelsen11/go-health-aggregator/internal/ports"
)

var _ ports.Probe = (*MongoProbe)(nil)

// MongoPinger is the subset of *mongo.Client used by MongoProbe.
type MongoPinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// MongoProbe checks a MongoDB deployment by pinging the primary.
type MongoProbe struct {
	name   string
	client MongoPinger
}

// NewMongoProbe creates a probe named "mongodb".
func NewMongoProbe(client MongoPinger) *MongoProbe {
	return &MongoProbe{name: "mongodb", client: client}
}

// NewMongoClient creates a MongoDB client for uri. The driver connects in
// the background; no server needs to be reachable for this to succeed.
// serverSelection bounds how long a ping waits for a suitable server.
func NewMongoClient(uri string, serverSelection time.Duration) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(uri)
	if serverSelection > 0 {
		opts.SetServerSelectionTimeout(serverSelection)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	return client, nil
}

// Call implements ports.Probe.
func (p *MongoProbe) Call(ctx context.Context) (health.Response, error) {
	if err := p.client.Ping(ctx, readpref.Primary()); err != nil {
		return health.Named(p.name).Down().WithData(keyError, err.Error()).Build(), nil
	}
	return health.Up(p.name), nil
}
