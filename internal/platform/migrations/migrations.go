package migrations

import (
	"encoding/json"
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
		&orderRecord{},
	)
}

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID           string          `gorm:"primaryKey;column:id;type:uuid"`
	Seq          int64           `gorm:"column:seq;autoIncrement;uniqueIndex"`
	RestaurantID string          `gorm:"column:restaurant_id;index:idx_orders_restaurant"`
	Items        json.RawMessage `gorm:"column:items;type:jsonb"`
	ItemNames    pq.StringArray  `gorm:"column:item_names;type:text[]"`
	Note         string          `gorm:"column:note"`
	Status       string          `gorm:"column:status;type:varchar(32);index"`
	TotalCents   int64           `gorm:"column:total_cents"`
	CreatedAt    time.Time       `gorm:"column:created_at;index"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "restaurant_orders" }
