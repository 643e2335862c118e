package storefrontserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	catalogmemory "github.com/pickbotics/storefront/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/pickbotics/storefront/internal/domains/catalog/application"
	ordersinventory "github.com/pickbotics/storefront/internal/domains/orders/adapters/inventory"
	ordersmemory "github.com/pickbotics/storefront/internal/domains/orders/adapters/memory"
	ordersapp "github.com/pickbotics/storefront/internal/domains/orders/application"
	routesmemory "github.com/pickbotics/storefront/internal/domains/routes/adapters/memory"
	"github.com/pickbotics/storefront/internal/domains/routes/adapters/orderpicks"
	routesapp "github.com/pickbotics/storefront/internal/domains/routes/application"
	routesdomain "github.com/pickbotics/storefront/internal/domains/routes/domain"
	usersmemory "github.com/pickbotics/storefront/internal/domains/users/adapters/memory"
	usersapp "github.com/pickbotics/storefront/internal/domains/users/application"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	productRepo := catalogmemory.NewRepository()
	orderRepo := ordersmemory.NewRepository()

	orderService := ordersapp.NewService(orderRepo, ordersinventory.NewCatalogInventory(productRepo))
	productService := catalogapp.NewService(productRepo, orderService)
	routeService := routesapp.NewService(
		routesmemory.NewRepository(),
		orderpicks.NewResolver(orderRepo, productRepo),
		routesdomain.DefaultFleet(),
	)
	userService := usersapp.NewService(usersmemory.NewRepository(), usersmemory.NewSessionStore())

	handlers := ApiHandleFunctions{
		ProductsAPI: NewProductsAPI(productService),
		OrdersAPI:   NewOrdersAPI(orderService),
		RoutesAPI:   NewRoutesAPI(routeService),
		AuthAPI:     NewAuthAPI(userService),
	}
	router := gin.New()
	return NewRouterWithGinEngine(router, handlers)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createProduct(t *testing.T, router *gin.Engine, name string, quantity int, x, y int) int64 {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/products", map[string]any{
		"name":     name,
		"quantity": quantity,
		"price":    1.25,
		"location": map[string]int{"x": x, "y": y},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	return created.ID
}

func TestPlaceOrderThenFetchRoutes(t *testing.T) {
	router := newTestRouter(t)
	milkID := createProduct(t, router, "Milk", 10, 2, 3)

	rec := doJSON(t, router, http.MethodPost, "/orders", map[string]any{
		"items": []map[string]any{{"productId": milkID, "quantity": 2}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var placement struct {
		Status  string `json:"status"`
		OrderID int64  `json:"orderId"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &placement))
	require.Equal(t, "SUCCESS", placement.Status)
	require.Equal(t, "Order ready! Please collect it at the desk", placement.Message)
	require.NotZero(t, placement.OrderID)

	rec = doJSON(t, router, http.MethodGet, "/routes?orderId=1&collectInParallel=false", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var routes []struct {
		OrderID          int64   `json:"orderId"`
		RouteName        string  `json:"routeName"`
		VisitedLocations [][]int `json:"visitedLocations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &routes))
	require.Len(t, routes, 1)
	require.Equal(t, "Milk", routes[0].RouteName)
	require.Equal(t, [][]int{
		{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {2, 3},
		{1, 3}, {0, 3}, {0, 2}, {0, 1}, {0, 0},
	}, routes[0].VisitedLocations)
}

func TestPlaceOrderShortageConflict(t *testing.T) {
	router := newTestRouter(t)
	milkID := createProduct(t, router, "Milk", 3, 2, 3)

	rec := doJSON(t, router, http.MethodPost, "/orders", map[string]any{
		"items": []map[string]any{{"productId": milkID, "quantity": 5}},
	})
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	var placement struct {
		Status       string `json:"status"`
		Message      string `json:"message"`
		MissingItems []struct {
			ProductName string `json:"productName"`
			Requested   int    `json:"requested"`
			Available   int    `json:"available"`
		} `json:"missingItems"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &placement))
	require.Equal(t, "FAIL", placement.Status)
	require.Equal(t, "Insufficient availability", placement.Message)
	require.Len(t, placement.MissingItems, 1)
	require.Equal(t, "Milk", placement.MissingItems[0].ProductName)
	require.Equal(t, 5, placement.MissingItems[0].Requested)
	require.Equal(t, 3, placement.MissingItems[0].Available)
}

func TestCreateProductAtDepotRejected(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/products", map[string]any{
		"name":     "Milk",
		"quantity": 5,
		"price":    1.25,
		"location": map[string]int{"x": 0, "y": 0},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var fields map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	require.Equal(t, "Location can't be {0:0}", fields["location"])
}

func TestRoutesForUnknownOrder(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/routes?orderId=42&collectInParallel=false", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Order with id 42 not found", rec.Body.String())
}

func TestRoutesRejectsMalformedQuery(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/routes?orderId=abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var fields map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	require.Equal(t, "Invalid order ID", fields["invalid"])
}

func TestAuthRegisterLoginLogout(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register", map[string]string{
		"username": "picker",
		"password": "secret",
		"role":     "USER",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/auth/login", map[string]string{
		"username": "picker",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var session struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	require.NotEmpty(t, session.Token)
	require.Equal(t, "picker", session.User.Username)
	require.Equal(t, "USER", session.User.Role)

	rec = doJSON(t, router, http.MethodPost, "/auth/logout", map[string]string{
		"username": "picker",
	})
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/login", map[string]string{
		"username": "ghost",
		"password": "nope",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var fields map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	require.Equal(t, "Invalid username or password", fields["authentication"])
}
