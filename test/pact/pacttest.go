//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "storefront-api"
	ConsumerName = "storefront-terminal"

	StateCatalogSeeded = "catalog products seeded"
	StateStockReady    = "stock available for every product"
	StateMilkShort     = "milk stock exhausted"
	StateOrderExists   = "order with id 301 exists"
	StateOrderMissing  = "no order with id 999"
)

const (
	MilkProductID  int64 = 1
	BreadProductID int64 = 2

	ExistingOrderID int64 = 301
	MissingOrderID  int64 = 999
)

const (
	OrderConfirmedMessage = "Order ready! Please collect it at the desk"
	OrderRejectedMessage  = "Insufficient availability"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the storefront consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleProductPayload provides stable catalog data for pact interactions.
func ExampleProductPayload() map[string]any {
	return map[string]any{
		"id":       MilkProductID,
		"name":     "Milk",
		"quantity": 10,
		"price":    1.50,
		"location": map[string]any{"x": 2, "y": 3},
	}
}

// ExampleRoutePayload provides a stable single-bot route for pact interactions.
func ExampleRoutePayload() map[string]any {
	return map[string]any{
		"orderId":   ExistingOrderID,
		"routeName": "Milk",
		"visitedLocations": [][]int{
			{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {2, 3},
			{1, 3}, {0, 3}, {0, 2}, {0, 1}, {0, 0},
		},
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
