// internal/workers/data-access/fetch-property/handler_test.go
package fetchproperty

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"agreement-workers/internal/common/logger"
	"agreement-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		Timeout:  10 * time.Second,
		CacheTTL: 5 * time.Minute,
	}
}

func createTestHandler(t *testing.T, db *sql.DB, redisClient *redis.Client, config *Config) *Handler {
	if config == nil {
		config = createTestConfig()
	}
	testLog := logger.NewTestLogger(t)
	return NewHandler(config, db, redisClient, testLog)
}

func snapshotColumns() []string {
	return []string{
		"id", "title", "description", "price", "listing_type", "property_type",
		"address", "city", "state", "pincode",
		"bedrooms", "bathrooms", "carpet_area", "furnishing", "floor_number",
		"owner_name", "owner_phone", "owner_email", "owner_company",
	}
}

func createProperty(id, listingType string) *models.Property {
	return &models.Property{
		ID:           id,
		Title:        "Green Acres 3BHK",
		Description:  "Spacious apartment near the lake",
		Price:        45000,
		ListingType:  listingType,
		PropertyType: "residential",
		Location: models.Location{
			Address: "14 Lake Road",
			City:    "Pune",
			State:   "Maharashtra",
			Pincode: "411001",
		},
		Specifications: models.Specifications{
			Bedrooms:    3,
			Bathrooms:   2,
			CarpetArea:  "1450 sqft",
			Furnishing:  "semi-furnished",
			FloorNumber: "4",
		},
		Owner: models.Owner{
			Name:  "Ramesh Patil",
			Phone: "+91 98200 11122",
			Email: "ramesh@example.com",
		},
	}
}

func addSnapshotRow(rows *sqlmock.Rows, p *models.Property) *sqlmock.Rows {
	return rows.AddRow(
		p.ID, p.Title, p.Description, p.Price, p.ListingType, p.PropertyType,
		p.Location.Address, p.Location.City, p.Location.State, p.Location.Pincode,
		p.Specifications.Bedrooms, p.Specifications.Bathrooms,
		p.Specifications.CarpetArea, p.Specifications.Furnishing, p.Specifications.FloorNumber,
		p.Owner.Name, p.Owner.Phone, p.Owner.Email, p.Owner.CompanyName,
	)
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	tests := []struct {
		name           string
		listingType    string
		expectedFamily string
	}{
		{name: "rent listing maps to rental family", listingType: models.ListingTypeRent, expectedFamily: models.FamilyRental},
		{name: "buy listing maps to purchase family", listingType: models.ListingTypeBuy, expectedFamily: models.FamilyPurchase},
		{name: "pg listing maps to rental family", listingType: models.ListingTypePG, expectedFamily: models.FamilyRental},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			redisClient, redisMock := redismock.NewClientMock()
			ctx := context.Background()

			property := createProperty("prop-123", tt.listingType)
			cacheKey := "property:snapshot:prop-123"

			redisMock.ExpectGet(cacheKey).RedisNil()

			rows := addSnapshotRow(sqlmock.NewRows(snapshotColumns()), property)
			mock.ExpectQuery(`SELECT id, title, COALESCE\(description, ''\), price, listing_type, property_type`).
				WithArgs("prop-123").
				WillReturnRows(rows)

			cachedData, _ := json.Marshal(property)
			redisMock.ExpectSet(cacheKey, cachedData, 5*time.Minute).SetVal("OK")

			handler := createTestHandler(t, db, redisClient, nil)
			output, err := handler.Execute(ctx, &Input{PropertyID: "prop-123"})

			assert.NoError(t, err)
			require.NotNil(t, output)
			assert.Equal(t, tt.expectedFamily, output.Family)
			assert.Equal(t, "Green Acres 3BHK", output.Property.Title)
			assert.Equal(t, "Pune", output.Property.Location.City)

			assert.NoError(t, mock.ExpectationsWereMet())
			assert.NoError(t, redisMock.ExpectationsWereMet())
		})
	}
}

func TestHandler_Execute_SparseRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	redisClient, redisMock := redismock.NewClientMock()
	ctx := context.Background()

	// A listing with only the mandatory columns filled. The optional columns
	// come back coalesced to zero values instead of failing the scan.
	property := &models.Property{
		ID:           "sparse-prop",
		Title:        "Plot 7, Sector 12",
		Price:        2500000,
		ListingType:  models.ListingTypeBuy,
		PropertyType: "plot",
	}
	cacheKey := "property:snapshot:sparse-prop"

	redisMock.ExpectGet(cacheKey).RedisNil()

	rows := addSnapshotRow(sqlmock.NewRows(snapshotColumns()), property)
	mock.ExpectQuery(`SELECT id, title, COALESCE\(description, ''\), price, listing_type, property_type`).
		WithArgs("sparse-prop").
		WillReturnRows(rows)

	cachedData, _ := json.Marshal(property)
	redisMock.ExpectSet(cacheKey, cachedData, 5*time.Minute).SetVal("OK")

	handler := createTestHandler(t, db, redisClient, nil)
	output, err := handler.Execute(ctx, &Input{PropertyID: "sparse-prop"})

	assert.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, models.FamilyPurchase, output.Family)
	assert.Empty(t, output.Property.Description)
	assert.Empty(t, output.Property.Location.Address)
	assert.Empty(t, output.Property.Owner.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_Execute_CacheHit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	redisClient, redisMock := redismock.NewClientMock()
	ctx := context.Background()

	property := createProperty("cached-prop", models.ListingTypeRent)
	cachedData, _ := json.Marshal(property)

	redisMock.ExpectGet("property:snapshot:cached-prop").SetVal(string(cachedData))

	handler := createTestHandler(t, db, redisClient, nil)
	output, err := handler.Execute(ctx, &Input{PropertyID: "cached-prop"})

	assert.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, models.FamilyRental, output.Family)
	assert.Equal(t, "Green Acres 3BHK", output.Property.Title)

	// Database was never queried on a cache hit.
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name          string
		propertyID    string
		mockDBError   error
		expectedError error
	}{
		{
			name:          "property not found",
			propertyID:    "missing-prop",
			mockDBError:   sql.ErrNoRows,
			expectedError: ErrPropertyNotFound,
		},
		{
			name:          "database error is retryable snapshot failure",
			propertyID:    "db-error-prop",
			mockDBError:   errors.New("connection failed"),
			expectedError: ErrSnapshotQueryFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			redisClient, redisMock := redismock.NewClientMock()
			ctx := context.Background()

			redisMock.ExpectGet("property:snapshot:" + tt.propertyID).RedisNil()

			mock.ExpectQuery(`SELECT id, title, COALESCE\(description, ''\), price, listing_type, property_type`).
				WithArgs(tt.propertyID).
				WillReturnError(tt.mockDBError)

			handler := createTestHandler(t, db, redisClient, nil)
			output, err := handler.Execute(ctx, &Input{PropertyID: tt.propertyID})

			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.expectedError))
			assert.Nil(t, output)

			assert.NoError(t, mock.ExpectationsWereMet())
			assert.NoError(t, redisMock.ExpectationsWereMet())
		})
	}
}

func TestHandler_Execute_EmptyPropertyID(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	redisClient, _ := redismock.NewClientMock()

	handler := createTestHandler(t, db, redisClient, nil)
	output, err := handler.Execute(context.Background(), &Input{PropertyID: ""})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrPropertyNotFound))
	assert.Nil(t, output)
}
