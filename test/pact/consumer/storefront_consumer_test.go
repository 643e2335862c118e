//go:build pact
// +build pact

package consumer_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	pacttest "github.com/pickbotics/storefront/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"

	"github.com/pickbotics/storefront/internal/clients/http/warehouse"
)

func TestStorefrontContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")
	productMatcher := matchers.Map{
		"id":       matchers.Like(pacttest.MilkProductID),
		"name":     matchers.Like("Milk"),
		"quantity": matchers.Like(10),
		"price":    matchers.Like(1.50),
		"location": matchers.Map{
			"x": matchers.Like(2),
			"y": matchers.Like(3),
		},
	}
	routeMatcher := matchers.Map{
		"orderId":          matchers.Like(pacttest.ExistingOrderID),
		"routeName":        matchers.Like("Milk"),
		"visitedLocations": matchers.EachLike([]int{0, 0}, 2),
	}

	pact.AddInteraction().
		Given(pacttest.StateCatalogSeeded).
		UponReceiving("a request for the product catalog").
		WithRequest("GET", "/products").
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.EachLike(productMatcher, 1))
		})

	pact.AddInteraction().
		Given(pacttest.StateStockReady).
		UponReceiving("an order that the warehouse can fulfil").
		WithRequest("POST", "/orders", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{
				"items": matchers.EachLike(matchers.Map{
					"productId": matchers.Like(pacttest.MilkProductID),
					"quantity":  matchers.Like(2),
				}, 1),
			})
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"status":  matchers.S("SUCCESS"),
				"orderId": matchers.Like(pacttest.ExistingOrderID),
				"message": matchers.S(pacttest.OrderConfirmedMessage),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateMilkShort).
		UponReceiving("an order that exceeds the available stock").
		WithRequest("POST", "/orders", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{
				"items": matchers.EachLike(matchers.Map{
					"productId": matchers.Like(pacttest.MilkProductID),
					"quantity":  matchers.Like(99),
				}, 1),
			})
		}).
		WillRespondWith(http.StatusConflict, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"status":  matchers.S("FAIL"),
				"message": matchers.S(pacttest.OrderRejectedMessage),
				"missingItems": matchers.EachLike(matchers.Map{
					"productName": matchers.Like("Milk"),
					"requested":   matchers.Like(99),
					"available":   matchers.Like(10),
				}, 1),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateOrderExists).
		UponReceiving("a request for the routes of an existing order").
		WithRequest("GET", "/routes", func(b *pactconsumer.V2RequestBuilder) {
			b.Query("orderId", matchers.S(fmt.Sprintf("%d", pacttest.ExistingOrderID)))
			b.Query("collectInParallel", matchers.S("false"))
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.EachLike(routeMatcher, 1))
		})

	pact.AddInteraction().
		Given(pacttest.StateOrderMissing).
		UponReceiving("a request for the routes of an unknown order").
		WithRequest("GET", "/routes", func(b *pactconsumer.V2RequestBuilder) {
			b.Query("orderId", matchers.S(fmt.Sprintf("%d", pacttest.MissingOrderID)))
			b.Query("collectInParallel", matchers.S("false"))
		}).
		WillRespondWith(http.StatusNotFound, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("text/plain; charset=utf-8"))
			b.Body("text/plain; charset=utf-8", []byte(fmt.Sprintf("Order with id %d not found", pacttest.MissingOrderID)))
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		host := config.Host
		if host == "" {
			host = "localhost"
		}
		client, err := warehouse.NewClient(fmt.Sprintf("http://%s:%d", host, config.Port))
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		products, err := client.FetchProducts(ctx)
		if err != nil {
			return fmt.Errorf("fetch products: %w", err)
		}
		if len(products) == 0 {
			return errors.New("expected at least one product")
		}

		accepted, err := client.SubmitOrder(ctx, []warehouse.OrderItem{{ProductID: pacttest.MilkProductID, Quantity: 2}})
		if err != nil {
			return fmt.Errorf("submit order: %w", err)
		}
		if _, ok := accepted.Confirmation(); !ok {
			return errors.New("expected the order to be confirmed")
		}

		rejected, err := client.SubmitOrder(ctx, []warehouse.OrderItem{{ProductID: pacttest.MilkProductID, Quantity: 99}})
		if err != nil {
			return fmt.Errorf("submit oversized order: %w", err)
		}
		rejection, ok := rejected.Rejection()
		if !ok {
			return errors.New("expected the oversized order to be rejected")
		}
		if len(rejection.MissingItems) == 0 {
			return errors.New("expected the rejection to carry missing items")
		}

		plans, err := client.FetchRoutes(ctx, pacttest.ExistingOrderID, warehouse.SingleBot)
		if err != nil {
			return fmt.Errorf("fetch routes: %w", err)
		}
		if len(plans) == 0 {
			return errors.New("expected at least one route plan")
		}

		if _, err := client.FetchRoutes(ctx, pacttest.MissingOrderID, warehouse.SingleBot); err == nil {
			return fmt.Errorf("expected an error for order %d", pacttest.MissingOrderID)
		} else {
			var fetchErr *warehouse.RouteFetchError
			if !errors.As(err, &fetchErr) {
				return fmt.Errorf("expected a route fetch error for the missing order, got %v", err)
			}
			if !strings.Contains(fetchErr.UserMessage(), "not found") {
				return fmt.Errorf("expected the server's body text, got %q", fetchErr.UserMessage())
			}
		}

		return nil
	})
	require.NoError(t, err)
}
