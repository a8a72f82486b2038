// test/e2e/e2e_test.go
package e2e

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agreement-workers/internal/agreement/catalog"
	"agreement-workers/internal/agreement/wizard"
	"agreement-workers/internal/common/logger"

	advancewizard "agreement-workers/internal/workers/agreement/advance-wizard"
	startwizard "agreement-workers/internal/workers/agreement/start-wizard"
)

// Requires a running Zeebe broker and Redis; set E2E_TEST=true to run.
//
//	E2E_TEST=true go test ./test/e2e/...
func requireE2E(t *testing.T) {
	t.Helper()
	if os.Getenv("E2E_TEST") != "true" {
		t.Skip("skipping e2e test; set E2E_TEST=true to run")
	}
}

func brokerAddress() string {
	if addr := os.Getenv("ZEEBE_ADDRESS"); addr != "" {
		return addr
	}
	return "localhost:26500"
}

func redisAddress() string {
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

func TestBrokerConnectivity(t *testing.T) {
	requireE2E(t)

	client, err := zbc.NewClient(&zbc.ClientConfig{
		GatewayAddress:         brokerAddress(),
		UsePlaintextConnection: true,
	})
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	topology, err := client.NewTopologyCommand().Send(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, topology.GetBrokers())
}

// Drives a full rental wizard against a real Redis: start, select, advance,
// and confirm completion through the shared store.
func TestWizardFlowAgainstRedis(t *testing.T) {
	requireE2E(t)

	redisClient := redis.NewClient(&redis.Options{Addr: redisAddress()})
	defer redisClient.Close()

	ctx := context.Background()
	require.NoError(t, redisClient.Ping(ctx).Err())

	store := wizard.NewStore(redisClient, 5*time.Minute)
	log := logger.NewTestLogger(t)

	start := startwizard.NewHandler(
		&startwizard.Config{Timeout: 10 * time.Second, SessionTTL: 5 * time.Minute},
		store, log,
	)
	advance := advancewizard.NewHandler(
		&advancewizard.Config{Timeout: 10 * time.Second},
		store, catalog.Default(), log,
	)

	started, err := start.Execute(ctx, &startwizard.Input{PropertyID: "e2e-prop", ListingType: "rent"})
	require.NoError(t, err)
	defer store.Delete(ctx, started.SessionID)

	for _, input := range []*advancewizard.Input{
		{SessionID: started.SessionID, Action: advancewizard.ActionSelectTemplate, TemplateID: catalog.TemplateStandard},
		{SessionID: started.SessionID, Action: advancewizard.ActionNext},
		{SessionID: started.SessionID, Action: advancewizard.ActionSelectDuration, DurationMonths: 6},
	} {
		_, err := advance.Execute(ctx, input)
		require.NoError(t, err)
	}

	final, err := advance.Execute(ctx, &advancewizard.Input{
		SessionID: started.SessionID,
		Action:    advancewizard.ActionNext,
	})
	require.NoError(t, err)
	assert.True(t, final.Complete)
	assert.Equal(t, "preview", final.StepName)
}
