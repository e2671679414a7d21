package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"

	mongorepo "github.com/ArowuTest/ticket-ledger/internal/repositories/mongodb"
	"github.com/ArowuTest/ticket-ledger/pkg/mongodb"
)

// TestDatabase is a MongoDB container with the ledger's indexes in place
type TestDatabase struct {
	Container *tcmongo.MongoDBContainer
	Client    *mongodb.Client
	DB        *mongo.Database
	URI       string
}

// SetupTestDatabase starts a MongoDB container for t and tears it down when t finishes
func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()
	ctx := context.Background()

	labels := map[string]string{
		"test":      "ticket-ledger-repository",
		"test-name": t.Name(),
		"timestamp": time.Now().Format("20060102-150405"),
		"cleanup":   "auto",
	}

	container, err := tcmongo.Run(ctx, "mongo:6", testcontainers.WithLabels(labels))
	require.NoError(t, err)

	testDB := &TestDatabase{Container: container}
	t.Cleanup(func() {
		testDB.cleanup(t)
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongodb.NewClient(ctx, uri, 30*time.Second)
	require.NoError(t, err)
	testDB.Client = client
	testDB.URI = uri
	testDB.DB = client.Database("ticket_ledger_test")

	require.NoError(t, mongorepo.EnsureIndexes(ctx, testDB.DB))
	return testDB
}

func (td *TestDatabase) cleanup(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if td.Client != nil {
		if err := td.Client.Disconnect(ctx); err != nil {
			t.Logf("Warning: failed to disconnect from test database: %v", err)
		}
	}
	if td.Container != nil {
		if err := td.Container.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate test container: %v", err)
		}
	}
}
