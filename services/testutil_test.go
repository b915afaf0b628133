package services

import (
	"fmt"
	"testing"

	"github.com/hectorDev2/macao-comanda/entity"
	"github.com/hectorDev2/macao-comanda/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database per test. The named
// shared-cache DSN keeps the schema visible across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Menu{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Payment{},
		&entity.TillSession{},
	))
	return db
}

func seedMenu(t *testing.T, db *gorm.DB) []entity.Menu {
	t.Helper()

	items := []entity.Menu{
		{Name: "Sopa de casa", Category: "entradas", Price: dec("12.00"), Active: true, RequiresKitchen: true},
		{Name: "Churrasco", Category: "parrilla", Price: dec("45.00"), Active: true, RequiresKitchen: true},
		{Name: "Maíz morado (vaso)", Category: "refrescos", Price: dec("6.00"), Active: true},
		{Name: "Plato retirado", Category: "parrilla", Price: dec("40.00"), Active: false},
	}
	for i := range items {
		require.NoError(t, db.Create(&items[i]).Error)
	}
	return items
}

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

// recordPublisher captures feed events for assertions.
type recordPublisher struct {
	events []Event
}

func (p *recordPublisher) Publish(e Event) { p.events = append(p.events, e) }

func (p *recordPublisher) types() []string {
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func newOrderService(t *testing.T, db *gorm.DB, feed EventPublisher) *OrderService {
	t.Helper()
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewMenuRepository(db),
		feed,
	)
}

func newPaymentService(t *testing.T, db *gorm.DB, feed EventPublisher) *PaymentService {
	t.Helper()
	return NewPaymentService(
		db,
		repository.NewPaymentRepository(db),
		repository.NewOrderRepository(db),
		feed,
	)
}

func newTillService(t *testing.T, db *gorm.DB, feed EventPublisher) *TillService {
	t.Helper()
	return NewTillService(
		db,
		repository.NewTillRepository(db),
		repository.NewPaymentRepository(db),
		repository.NewOrderRepository(db),
		feed,
	)
}
