package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&orderRecord{},
		&routeRecord{},
		&userRecord{},
		&sessionRecord{},
	)
}

// Product schema mirrors the catalog Postgres adapter.
type productRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"column:name;uniqueIndex"`
	Quantity  int       `gorm:"column:quantity"`
	Price     float64   `gorm:"column:price"`
	LocationX int       `gorm:"column:location_x;uniqueIndex:idx_products_cell"`
	LocationY int       `gorm:"column:location_y;uniqueIndex:idx_products_cell"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at;index"`
}

func (productRecord) TableName() string { return "products" }

// Order schema mirrors the orders Postgres adapter: lines flattened into
// parallel arrays.
type orderRecord struct {
	ID         int64         `gorm:"primaryKey;column:id"`
	ProductIDs pq.Int64Array `gorm:"column:product_ids;type:bigint[];index:idx_orders_products,type:gin"`
	Quantities pq.Int64Array `gorm:"column:quantities;type:bigint[]"`
	CreatedAt  time.Time     `gorm:"column:created_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

// Route schema mirrors the routes Postgres adapter.
type routeRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	OrderID   int64     `gorm:"column:order_id;index:idx_routes_order"`
	RouteName string    `gorm:"column:route_name"`
	Waypoints string    `gorm:"column:waypoints;type:jsonb"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (routeRecord) TableName() string { return "routes" }

// User schema mirrors the users Postgres adapter.
type userRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	Username  string    `gorm:"column:username;uniqueIndex"`
	Password  string    `gorm:"column:password_hash"`
	Role      string    `gorm:"column:role"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userRecord) TableName() string { return "users" }

// Session schema mirrors the users session store.
type sessionRecord struct {
	Token     string     `gorm:"primaryKey;column:token;size:512"`
	Username  string     `gorm:"column:username;index"`
	ExpiresAt *time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time  `gorm:"column:created_at;index"`
	UpdatedAt time.Time  `gorm:"column:updated_at;index"`
}

func (sessionRecord) TableName() string { return "user_sessions" }
