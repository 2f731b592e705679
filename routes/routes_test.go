package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/asher5712/LittleLemonAPI/configs"
	"github.com/asher5712/LittleLemonAPI/entity"
	"github.com/asher5712/LittleLemonAPI/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *configs.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	router := gin.New()
	RegisterRoutes(router, db, cfg)

	return &testEnv{router: router, db: db, cfg: cfg}
}

func (e *testEnv) seedUser(t *testing.T, username string, roles ...entity.Role) *entity.User {
	t.Helper()
	user := &entity.User{Username: username, Email: username + "@littlelemon.test", Password: "x"}
	require.NoError(t, e.db.Create(user).Error)
	for _, role := range roles {
		require.NoError(t, e.db.Create(&entity.UserRole{UserID: user.ID, Role: role}).Error)
	}
	return user
}

func (e *testEnv) seedMenuItem(t *testing.T, title, price string) *entity.MenuItem {
	t.Helper()
	category := &entity.Category{Slug: "mains", Title: "Mains"}
	require.NoError(t, e.db.FirstOrCreate(category, entity.Category{Slug: "mains"}).Error)
	item := &entity.MenuItem{
		Title:      title,
		Price:      decimal.RequireFromString(price),
		CategoryID: category.ID,
	}
	require.NoError(t, e.db.Create(item).Error)
	return item
}

func (e *testEnv) token(t *testing.T, user *entity.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user.ID, e.cfg.JWTSecret, e.cfg.JWTTTL)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestMenuItems_OpenReadManagerWrite(t *testing.T) {
	env := newTestEnv(t)
	env.seedMenuItem(t, "Bruschetta", "10.00")
	customer := env.seedUser(t, "alice")
	manager := env.seedUser(t, "mary", entity.RoleManager)

	rec := env.do(t, http.MethodGet, "/menu-items", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code, "menu list is open to anonymous readers")

	payload := gin.H{"title": "Greek Salad", "price": "12.50", "categoryId": 1}

	rec = env.do(t, http.MethodPost, "/menu-items", "", payload)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/menu-items", env.token(t, customer), payload)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPost, "/menu-items", env.token(t, manager), payload)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGroupMembership(t *testing.T) {
	env := newTestEnv(t)
	manager := env.seedUser(t, "mary", entity.RoleManager)
	customer := env.seedUser(t, "alice")
	mtoken := env.token(t, manager)

	rec := env.do(t, http.MethodGet, "/groups/manager/users", env.token(t, customer), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPost, "/groups/delivery-crew/users", mtoken, gin.H{"username": "alice"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/groups/delivery-crew/users", mtoken, gin.H{"username": "alice"})
	assert.Equal(t, http.StatusIMUsed, rec.Code, "second add reports already-present")

	rec = env.do(t, http.MethodPost, "/groups/manager/users", mtoken, gin.H{"username": "nobody"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// removing a user who is not a member still succeeds
	rec = env.do(t, http.MethodDelete, "/groups/manager/users/"+itoa(customer.ID), mtoken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodDelete, "/groups/manager/users/999", mtoken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutFlow(t *testing.T) {
	env := newTestEnv(t)
	item := env.seedMenuItem(t, "Bruschetta", "10.00")
	customer := env.seedUser(t, "alice")
	manager := env.seedUser(t, "mary", entity.RoleManager)
	ctoken := env.token(t, customer)

	// staff cannot place orders
	rec := env.do(t, http.MethodPost, "/orders", env.token(t, manager), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// empty cart checkout is a designed no-content success
	rec = env.do(t, http.MethodPost, "/orders", ctoken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodPost, "/cart/menu-items", ctoken,
		gin.H{"menuItemId": item.ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, rec.Code)

	// duplicate line conflicts
	rec = env.do(t, http.MethodPost, "/cart/menu-items", ctoken,
		gin.H{"menuItemId": item.ID, "quantity": 1})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodPost, "/orders", ctoken, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data entity.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, created.Data.Total.Equal(decimal.RequireFromString("20.00")),
		"order total %s", created.Data.Total)
	require.Len(t, created.Data.OrderItems, 1)

	// cart drained by checkout
	rec = env.do(t, http.MethodGet, "/cart/menu-items", ctoken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cart struct {
		Data []entity.CartItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Empty(t, cart.Data)
}

func TestOrderReadsAreScoped(t *testing.T) {
	env := newTestEnv(t)
	item := env.seedMenuItem(t, "Bruschetta", "10.00")
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	atoken := env.token(t, alice)

	rec := env.do(t, http.MethodPost, "/cart/menu-items", atoken,
		gin.H{"menuItemId": item.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = env.do(t, http.MethodPost, "/orders", atoken, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data entity.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	orderPath := "/orders/" + itoa(created.Data.ID)

	rec = env.do(t, http.MethodGet, orderPath, atoken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// another customer's order id reads as missing, not forbidden
	rec = env.do(t, http.MethodGet, orderPath, env.token(t, bob), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, orderPath, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
