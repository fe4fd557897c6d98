package readstore

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const findHotelByIDSQL = `
SELECT id, name, address, star, description
FROM hotels
WHERE id = $1
`

const hotelNightlyRateSQL = `
SELECT nightly_rate
FROM hotels
WHERE id = $1
`

type HotelReadStore struct {
	db db.DBTX
}

func NewHotelReadStore(dbtx db.DBTX) *HotelReadStore {
	return &HotelReadStore{db: dbtx}
}

func (h *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HotelInfoView, error) {
	var view queries.HotelInfoView
	err := h.db.QueryRow(ctx, findHotelByIDSQL, id).Scan(
		&view.ID,
		&view.Name,
		&view.Address,
		&view.Star,
		&view.Description,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}

	return &view, nil
}

func (h *HotelReadStore) NightlyRate(ctx context.Context, hotelID uuid.UUID) (int64, error) {
	var rate int64
	err := h.db.QueryRow(ctx, hotelNightlyRateSQL, hotelID).Scan(&rate)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to load hotel nightly rate", err)
	}

	return rate, nil
}
