package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/pickbotics/storefront/internal/domains/routes/domain"
	"github.com/pickbotics/storefront/internal/domains/routes/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists route plans in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&routeRecord{})
	}
	return repo
}

// routeRecord stores one plan row per bot leg. The waypoint list is a JSON
// column; rows for an order are replaced wholesale on each planning run.
type routeRecord struct {
	ID        int64         `gorm:"primaryKey;column:id"`
	OrderID   int64         `gorm:"column:order_id;index:idx_routes_order"`
	RouteName string        `gorm:"column:route_name"`
	Waypoints []domain.Cell `gorm:"column:waypoints;type:jsonb;serializer:json"`
	CreatedAt time.Time     `gorm:"column:created_at"`
}

func (routeRecord) TableName() string { return "routes" }

func (r *Repository) Replace(ctx context.Context, orderID int64, plans []*domain.Plan) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	records := make([]routeRecord, 0, len(plans))
	for _, plan := range plans {
		records = append(records, routeRecord{
			OrderID:   orderID,
			RouteName: plan.RouteName,
			Waypoints: plan.Path,
		})
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&routeRecord{}, "order_id = ?", orderID).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID int64) ([]*domain.Plan, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []routeRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records, "order_id = ?", orderID).Error; err != nil {
		return nil, err
	}
	plans := make([]*domain.Plan, 0, len(records))
	for _, record := range records {
		plans = append(plans, &domain.Plan{
			OrderID:   record.OrderID,
			RouteName: record.RouteName,
			Path:      record.Waypoints,
		})
	}
	return plans, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres route repository not configured")
	}
	return nil
}
