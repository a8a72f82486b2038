// internal/workers/agreement/start-wizard/handler_test.go
package startwizard

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"agreement-workers/internal/agreement/wizard"
	"agreement-workers/internal/common/logger"
	"agreement-workers/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		Timeout:    10 * time.Second,
		SessionTTL: 30 * time.Minute,
	}
}

func createTestHandler(t *testing.T) (*Handler, *wizard.Store) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := wizard.NewStore(client, 30*time.Minute)
	handler := NewHandler(createTestConfig(), store, logger.NewTestLogger(t))
	return handler, store
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	tests := []struct {
		name           string
		input          *Input
		expectedFamily string
	}{
		{
			name:           "buy listing starts purchase wizard",
			input:          &Input{PropertyID: "prop-1", ListingType: models.ListingTypeBuy},
			expectedFamily: models.FamilyPurchase,
		},
		{
			name:           "rent listing starts rental wizard",
			input:          &Input{PropertyID: "prop-2", ListingType: models.ListingTypeRent},
			expectedFamily: models.FamilyRental,
		},
		{
			name:           "pg listing starts rental wizard",
			input:          &Input{PropertyID: "prop-3", ListingType: models.ListingTypePG},
			expectedFamily: models.FamilyRental,
		},
		{
			name:           "unknown listing defaults to rental wizard",
			input:          &Input{PropertyID: "prop-4", ListingType: "lease-to-own"},
			expectedFamily: models.FamilyRental,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, store := createTestHandler(t)
			ctx := context.Background()

			output, err := handler.Execute(ctx, tt.input)

			require.NoError(t, err)
			require.NotNil(t, output)
			assert.Equal(t, tt.expectedFamily, output.Family)
			assert.Equal(t, 1, output.Step)
			assert.Equal(t, "template-selection", output.StepName)
			assert.Regexp(t, regexp.MustCompile(`^\d{8}$`), output.ReferenceNumber)
			assert.False(t, output.AnchorDate.IsZero())

			// Session is persisted and readable under the returned id.
			session, err := store.Get(ctx, output.SessionID)
			require.NoError(t, err)
			assert.Equal(t, tt.input.PropertyID, session.PropertyID)
			assert.Equal(t, tt.expectedFamily, session.Family)
			assert.Equal(t, output.ReferenceNumber, session.ReferenceNumber)
		})
	}
}

func TestHandler_Execute_SessionIDsAreUnique(t *testing.T) {
	handler, _ := createTestHandler(t)
	ctx := context.Background()

	first, err := handler.Execute(ctx, &Input{PropertyID: "prop-1", ListingType: models.ListingTypeRent})
	require.NoError(t, err)
	second, err := handler.Execute(ctx, &Input{PropertyID: "prop-1", ListingType: models.ListingTypeRent})
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestHandler_Execute_MissingProperty(t *testing.T) {
	handler, _ := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{ListingType: models.ListingTypeRent})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Nil(t, output)
}

func TestHandler_Execute_StoreFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := wizard.NewStore(client, 30*time.Minute)
	handler := NewHandler(createTestConfig(), store, logger.NewTestLogger(t))

	mr.Close()

	output, err := handler.Execute(context.Background(), &Input{PropertyID: "prop-1", ListingType: models.ListingTypeRent})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrSessionStoreFailed))
	assert.Nil(t, output)
}
