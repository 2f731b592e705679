package services

import (
	"testing"

	"github.com/asher5712/LittleLemonAPI/entity"
	"github.com/asher5712/LittleLemonAPI/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.UserRole{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, roles ...entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{Username: username, Email: username + "@littlelemon.test", Password: "x"}
	require.NoError(t, db.Create(user).Error)
	for _, role := range roles {
		require.NoError(t, db.Create(&entity.UserRole{UserID: user.ID, Role: role}).Error)
	}
	return user
}

func seedMenuItem(t *testing.T, db *gorm.DB, title, price string) *entity.MenuItem {
	t.Helper()

	category := &entity.Category{Slug: "mains", Title: "Mains"}
	require.NoError(t, db.FirstOrCreate(category, entity.Category{Slug: "mains"}).Error)

	item := &entity.MenuItem{
		Title:      title,
		Price:      decimal.RequireFromString(price),
		CategoryID: category.ID,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewUserRepository(db),
	)
}

func actorFor(user *entity.User, roles ...entity.Role) entity.Actor {
	return entity.Actor{ID: user.ID, Roles: roles}
}
