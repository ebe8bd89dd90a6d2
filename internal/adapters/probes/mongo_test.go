package probes_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/jsamuelsen11/go-health-aggregator/internal/adapters/probes"
	"github.com/jsamuelsen11/go-health-aggregator/internal/domain/health"
)

type fakeMongo struct {
	err error
	rp  *readpref.ReadPref
}

func (f *fakeMongo) Ping(_ context.Context, rp *readpref.ReadPref) error {
	f.rp = rp
	return f.err
}

func TestMongoProbe_Up(t *testing.T) {
	t.Parallel()

	fake := &fakeMongo{}
	resp, err := probes.NewMongoProbe(fake).Call(context.Background())
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	if resp.Name != "mongodb" || resp.Status != health.StatusUp {
		t.Errorf("response = %+v, want UP mongodb", resp)
	}
	if resp.Data.Len() != 0 {
		t.Errorf("data = %v, want none", resp.Data.Keys())
	}
	if fake.rp == nil || fake.rp.Mode() != readpref.PrimaryMode {
		t.Error("ping must target the primary")
	}
}

func TestMongoProbe_PingFailure(t *testing.T) {
	t.Parallel()

	resp, err := probes.NewMongoProbe(&fakeMongo{err: errors.New("server selection timeout")}).
		Call(context.Background())
	if err != nil {
		t.Fatalf("Call() error = %v, want DOWN response instead", err)
	}

	if resp.Status != health.StatusDown {
		t.Errorf("Status = %q, want DOWN", resp.Status)
	}
	if msg, _ := resp.Data.Get("error"); msg != "server selection timeout" {
		t.Errorf("error = %q", msg)
	}
}

func TestMongoProbe_UnreachableServer(t *testing.T) {
	t.Parallel()

	client, err := probes.NewMongoClient("mongodb://127.0.0.1:1", 100*time.Millisecond)
	if err != nil {
		t.Fatalf("NewMongoClient() error = %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	resp, err := probes.NewMongoProbe(client).Call(context.Background())
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if resp.Status != health.StatusDown {
		t.Errorf("Status = %q, want DOWN for unreachable server", resp.Status)
	}
}

func TestNewMongoClient_InvalidURI(t *testing.T) {
	t.Parallel()

	if _, err := probes.NewMongoClient("not-a-uri", 0); err == nil {
		t.Error("NewMongoClient() error = nil, want error for invalid URI")
	}
}
