package storefrontserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	routemapper "github.com/pickbotics/storefront/internal/domains/routes/adapters/http/mapper"
	routesports "github.com/pickbotics/storefront/internal/domains/routes/ports"
	apierrors "github.com/pickbotics/storefront/internal/shared/errors"
)

// RoutesAPI wires HTTP transport with the routes bounded context.
type RoutesAPI struct {
	service routesports.Service
}

// NewRoutesAPI creates a RoutesAPI backed by the provided service.
func NewRoutesAPI(service routesports.Service) RoutesAPI {
	return RoutesAPI{service: service}
}

// Get /routes?orderId=&collectInParallel=
// Plan the bot routes for an order and return them. Unknown order ids
// answer 404 with a plain-text body clients surface verbatim.
func (api *RoutesAPI) GetRoutes(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Query("orderId"), 10, 64)
	if err != nil {
		apierrors.Respond(c, apierrors.Single(apierrors.FieldInvalid, "Invalid order ID"))
		return
	}
	parallel, err := strconv.ParseBool(c.DefaultQuery("collectInParallel", "false"))
	if err != nil {
		apierrors.Respond(c, apierrors.Single(apierrors.FieldInvalid, "Invalid collectInParallel flag"))
		return
	}

	plans, err := api.service.Routes(c.Request.Context(), orderID, parallel)
	if err != nil {
		if errors.Is(err, routesports.ErrOrderNotFound) {
			c.String(http.StatusNotFound, fmt.Sprintf("Order with id %d not found", orderID))
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, routemapper.FromDomainList(plans))
}
