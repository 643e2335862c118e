// Package storefrontserver exposes the warehouse HTTP API: catalog CRUD,
// order placement, route planning, and auth.
package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every API endpoint.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// Routes is a map of defined API endpoints.
type Routes map[string][]Route

// ApiHandleFunctions groups the handler implementations by API section.
type ApiHandleFunctions struct {
	ProductsAPI ProductsAPI
	OrdersAPI   OrdersAPI
	RoutesAPI   RoutesAPI
	AuthAPI     AuthAPI
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the API routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, routes := range getRoutes(handleFunctions) {
		for _, route := range routes {
			if route.HandlerFunc == nil {
				route.HandlerFunc = defaultHandleFunc
			}
			switch route.Method {
			case http.MethodGet:
				router.GET(route.Pattern, route.HandlerFunc)
			case http.MethodPost:
				router.POST(route.Pattern, route.HandlerFunc)
			case http.MethodPut:
				router.PUT(route.Pattern, route.HandlerFunc)
			case http.MethodDelete:
				router.DELETE(route.Pattern, route.HandlerFunc)
			}
		}
	}
	return router
}

// defaultHandleFunc handles unimplemented routes.
func defaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		"ProductsAPI": {
			{
				Name:        "GetProducts",
				Method:      http.MethodGet,
				Pattern:     "/products",
				HandlerFunc: handleFunctions.ProductsAPI.GetProducts,
			},
			{
				Name:        "CreateProduct",
				Method:      http.MethodPost,
				Pattern:     "/products",
				HandlerFunc: handleFunctions.ProductsAPI.CreateProduct,
			},
			{
				Name:        "UpdateProduct",
				Method:      http.MethodPut,
				Pattern:     "/products/:productId",
				HandlerFunc: handleFunctions.ProductsAPI.UpdateProduct,
			},
			{
				Name:        "DeleteProduct",
				Method:      http.MethodDelete,
				Pattern:     "/products/:productId",
				HandlerFunc: handleFunctions.ProductsAPI.DeleteProduct,
			},
		},
		"OrdersAPI": {
			{
				Name:        "PlaceOrder",
				Method:      http.MethodPost,
				Pattern:     "/orders",
				HandlerFunc: handleFunctions.OrdersAPI.PlaceOrder,
			},
			{
				Name:        "GetOrder",
				Method:      http.MethodGet,
				Pattern:     "/orders/:orderId",
				HandlerFunc: handleFunctions.OrdersAPI.GetOrder,
			},
		},
		"RoutesAPI": {
			{
				Name:        "GetRoutes",
				Method:      http.MethodGet,
				Pattern:     "/routes",
				HandlerFunc: handleFunctions.RoutesAPI.GetRoutes,
			},
		},
		"AuthAPI": {
			{
				Name:        "Register",
				Method:      http.MethodPost,
				Pattern:     "/auth/register",
				HandlerFunc: handleFunctions.AuthAPI.Register,
			},
			{
				Name:        "Login",
				Method:      http.MethodPost,
				Pattern:     "/auth/login",
				HandlerFunc: handleFunctions.AuthAPI.Login,
			},
			{
				Name:        "Logout",
				Method:      http.MethodPost,
				Pattern:     "/auth/logout",
				HandlerFunc: handleFunctions.AuthAPI.Logout,
			},
		},
	}
}
