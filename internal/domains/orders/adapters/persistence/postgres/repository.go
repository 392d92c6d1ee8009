package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"restaurant-orders/internal/domains/orders/domain"
	"restaurant-orders/internal/domains/orders/ports"
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

// orderRecord maps the order aggregate to a relational table. Seq
// preserves creation order per restaurant; ItemNames is a denormalized
// text[] column for ad-hoc reporting queries.
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

// Create inserts a new order.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record, err := toRecord(order)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an order by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
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
	return record.toDomain()
}

// ListByRestaurant returns the restaurant's orders in creation order.
func (r *Repository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("seq ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		order, err := records[i].toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// UpdateStatus overwrites the status of an existing order.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) (orderRecord, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return orderRecord{}, err
	}
	names := make(pq.StringArray, 0, len(order.Items))
	for _, item := range order.Items {
		names = append(names, item.Name)
	}
	return orderRecord{
		ID:           order.ID,
		RestaurantID: order.RestaurantID,
		Items:        items,
		ItemNames:    names,
		Note:         order.Note,
		Status:       string(order.Status),
		TotalCents:   order.TotalCents(),
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}, nil
}

func (r orderRecord) toDomain() (*domain.Order, error) {
	var items []domain.LineItem
	if len(r.Items) > 0 {
		if err := json.Unmarshal(r.Items, &items); err != nil {
			return nil, err
		}
	}
	return &domain.Order{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		Items:        items,
		Note:         r.Note,
		Status:       domain.Status(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}, nil
}
