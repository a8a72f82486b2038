// internal/workers/data-access/fetch-property/service.go
package fetchproperty

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"agreement-workers/internal/models"
)

const propertySnapshotQuery = `SELECT id, title, COALESCE(description, ''), price, listing_type, property_type,
	COALESCE(address, ''), COALESCE(city, ''), COALESCE(state, ''), COALESCE(pincode, ''),
	COALESCE(bedrooms, 0), COALESCE(bathrooms, 0),
	COALESCE(carpet_area, ''), COALESCE(furnishing, ''), COALESCE(floor_number, ''),
	COALESCE(owner_name, ''), COALESCE(owner_phone, ''), COALESCE(owner_email, ''), COALESCE(owner_company, '')
	FROM properties WHERE id = $1`

// fetchSnapshot reads the full property snapshot row. All columns the
// renderer might need are captured in one query so the document never
// depends on live listing state afterwards. Optional columns are coalesced
// to zero values so a sparse marketplace row still yields a snapshot; the
// renderer substitutes placeholders for anything missing.
func fetchSnapshot(ctx context.Context, db *sql.DB, propertyID string) (*models.Property, error) {
	var p models.Property
	err := db.QueryRowContext(ctx, propertySnapshotQuery, propertyID).Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.ListingType, &p.PropertyType,
		&p.Location.Address, &p.Location.City, &p.Location.State, &p.Location.Pincode,
		&p.Specifications.Bedrooms, &p.Specifications.Bathrooms,
		&p.Specifications.CarpetArea, &p.Specifications.Furnishing, &p.Specifications.FloorNumber,
		&p.Owner.Name, &p.Owner.Phone, &p.Owner.Email, &p.Owner.CompanyName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrSnapshotQueryFailed, err)
	}
	return &p, nil
}
