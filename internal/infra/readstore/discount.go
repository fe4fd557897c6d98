package readstore

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const findAllDiscountsSQL = `
SELECT id, name, description, point_required, percent_off
FROM discounts
ORDER BY point_required, name
`

const findDiscountByIDSQL = `
SELECT id, name, description, point_required, percent_off
FROM discounts
WHERE id = $1
`

const findRedemptionByIDSQL = `
SELECT ud.id, ud.user_id, ud.discount_id, ud.amount, ud.is_used,
       d.name, d.percent_off, d.point_required
FROM user_discounts ud
JOIN discounts d ON d.id = ud.discount_id
WHERE ud.id = $1
`

const findRedemptionsByUserSQL = `
SELECT ud.id, ud.discount_id, ud.amount, ud.is_used,
       d.name, d.percent_off, d.point_required
FROM user_discounts ud
JOIN discounts d ON d.id = ud.discount_id
WHERE ud.user_id = $1
ORDER BY d.point_required, d.name
`

type DiscountReadStore struct {
	db db.DBTX
}

func NewDiscountReadStore(dbtx db.DBTX) *DiscountReadStore {
	return &DiscountReadStore{db: dbtx}
}

func (d *DiscountReadStore) FindAll(ctx context.Context) ([]*queries.DiscountView, error) {
	rows, err := d.db.Query(ctx, findAllDiscountsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discounts", err)
	}
	defer rows.Close()

	result := make([]*queries.DiscountView, 0)
	for rows.Next() {
		var view queries.DiscountView
		if err := rows.Scan(&view.ID, &view.Name, &view.Description, &view.PointRequired, &view.PercentOff); err != nil {
			return nil, infra.WrapRepoErr("failed to scan discount", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate discounts", err)
	}

	return result, nil
}

func (d *DiscountReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DiscountView, error) {
	var view queries.DiscountView
	err := d.db.QueryRow(ctx, findDiscountByIDSQL, id).Scan(
		&view.ID,
		&view.Name,
		&view.Description,
		&view.PointRequired,
		&view.PercentOff,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find discount by ID", err)
	}

	return &view, nil
}

type RedemptionReadStore struct {
	db db.DBTX
}

func NewRedemptionReadStore(dbtx db.DBTX) *RedemptionReadStore {
	return &RedemptionReadStore{db: dbtx}
}

func (r *RedemptionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RedemptionView, uuid.UUID, error) {
	var (
		view    queries.RedemptionView
		ownerID uuid.UUID
	)
	err := r.db.QueryRow(ctx, findRedemptionByIDSQL, id).Scan(
		&view.ID,
		&ownerID,
		&view.DiscountID,
		&view.Amount,
		&view.IsUsed,
		&view.DiscountName,
		&view.PercentOff,
		&view.PointRequired,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, uuid.Nil, infra.WrapRepoErr("redemption not found", err, infra.KindNotFound)
		}
		return nil, uuid.Nil, infra.WrapRepoErr("failed to find redemption by ID", err)
	}

	return &view, ownerID, nil
}

func (r *RedemptionReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.RedemptionView, error) {
	rows, err := r.db.Query(ctx, findRedemptionsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user redemptions", err)
	}
	defer rows.Close()

	result := make([]*queries.RedemptionView, 0)
	for rows.Next() {
		var view queries.RedemptionView
		if err := rows.Scan(
			&view.ID,
			&view.DiscountID,
			&view.Amount,
			&view.IsUsed,
			&view.DiscountName,
			&view.PercentOff,
			&view.PointRequired,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan redemption", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate redemptions", err)
	}

	return result, nil
}
