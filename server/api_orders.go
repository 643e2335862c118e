package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordermapper "github.com/pickbotics/storefront/internal/domains/orders/adapters/http/mapper"
	ordersdomain "github.com/pickbotics/storefront/internal/domains/orders/domain"
	ordersports "github.com/pickbotics/storefront/internal/domains/orders/ports"
)

// OrdersAPI wires HTTP transport with the orders bounded context.
type OrdersAPI struct {
	service ordersports.Service
}

// NewOrdersAPI creates an OrdersAPI backed by the provided service.
func NewOrdersAPI(service ordersports.Service) OrdersAPI {
	return OrdersAPI{service: service}
}

// Post /orders
// Place an order. Confirmed orders answer 201 with a SUCCESS body; stock
// shortfalls answer 409 with a FAIL body listing every missing item.
func (api *OrdersAPI) PlaceOrder(c *gin.Context) {
	var payload ordermapper.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	placement, err := api.service.PlaceOrder(c.Request.Context(), ordermapper.ToLines(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusCreated
	if placement.Status == ordersdomain.StatusFail {
		status = http.StatusConflict
	}
	c.JSON(status, ordermapper.FromPlacement(placement))
}

// Get /orders/:orderId
// Fetch a stored order
func (api *OrdersAPI) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomain(order))
}
