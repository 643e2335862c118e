package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/pickbotics/storefront/internal/domains/orders/domain"
	"github.com/pickbotics/storefront/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{})
	}
	return repo
}

// orderRecord flattens order lines into parallel arrays; ProductIDs[i]
// pairs with Quantities[i]. Orders are immutable once placed, so the
// denormalized shape never needs partial updates.
type orderRecord struct {
	ID         int64         `gorm:"primaryKey;column:id"`
	ProductIDs pq.Int64Array `gorm:"column:product_ids;type:bigint[];index:idx_orders_products,type:gin"`
	Quantities pq.Int64Array `gorm:"column:quantities;type:bigint[]"`
	CreatedAt  time.Time     `gorm:"column:created_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return fromRecord(record)
}

func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	list := make([]*domain.Order, 0, len(records))
	for _, record := range records {
		order, err := fromRecord(record)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}
	return list, nil
}

func (r *Repository) ContainsProduct(ctx context.Context, productID int64) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Where("? = ANY(product_ids)", productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	record := orderRecord{
		ID:         order.ID,
		ProductIDs: make(pq.Int64Array, 0, len(order.Lines)),
		Quantities: make(pq.Int64Array, 0, len(order.Lines)),
		CreatedAt:  order.CreatedAt,
	}
	for _, line := range order.Lines {
		record.ProductIDs = append(record.ProductIDs, line.ProductID)
		record.Quantities = append(record.Quantities, int64(line.Quantity))
	}
	return record
}

func fromRecord(record orderRecord) (*domain.Order, error) {
	if len(record.ProductIDs) != len(record.Quantities) {
		return nil, fmt.Errorf("order %d has mismatched line arrays", record.ID)
	}
	order := &domain.Order{
		ID:        record.ID,
		Lines:     make([]domain.OrderLine, 0, len(record.ProductIDs)),
		CreatedAt: record.CreatedAt,
	}
	for i, productID := range record.ProductIDs {
		order.Lines = append(order.Lines, domain.OrderLine{
			ProductID: productID,
			Quantity:  int(record.Quantities[i]),
		})
	}
	return order, nil
}
