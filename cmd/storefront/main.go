package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pickbotics/storefront/internal/clients/http/warehouse"
	"github.com/pickbotics/storefront/internal/storefront"
)

const requestTimeout = 10 * time.Second

func main() {
	baseURL := os.Getenv("WAREHOUSE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	client, err := warehouse.NewClient(baseURL)
	if err != nil {
		log.Fatalf("invalid WAREHOUSE_URL: %v", err)
	}
	session := storefront.NewSession(client)

	fmt.Printf("Connected to warehouse at %s\n", baseURL)
	fmt.Println("Commands: list | add <productId> <quantity> | cart | order | routes [parallel] | help | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "list":
			listProducts(session)
		case "add":
			addToCart(session, fields[1:])
		case "cart":
			showCart(session)
		case "order":
			submitOrder(session)
		case "routes":
			showRoutes(session, fields[1:])
		case "help":
			fmt.Println("Commands: list | add <productId> <quantity> | cart | order | routes [parallel] | help | quit")
		case "quit", "exit":
			return
		default:
			fmt.Printf("Unknown command %q, type help for the list\n", fields[0])
		}
	}
}

func listProducts(session *storefront.Session) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	products, err := session.LoadCatalog(ctx)
	if err != nil {
		printError(err)
		return
	}
	if len(products) == 0 {
		fmt.Println("No products available")
		return
	}
	for _, p := range products {
		fmt.Printf("  %d. %s  qty=%d  price=%.2f  at (%d,%d)\n",
			p.ID, p.Name, p.Quantity, p.Price, p.Location.X, p.Location.Y)
	}
}

func addToCart(session *storefront.Session, args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: add <productId> <quantity>")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Product id must be a number")
		return
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Println("Quantity must be a number")
		return
	}
	session.SetQuantity(id, qty)
	if qty <= 0 {
		fmt.Printf("Removed product %d from the cart\n", id)
		return
	}
	fmt.Printf("Cart: product %d x%d\n", id, qty)
}

func showCart(session *storefront.Session) {
	selections := session.Selections()
	if len(selections) == 0 {
		fmt.Println("Cart is empty")
		return
	}
	for id, qty := range selections {
		fmt.Printf("  product %d x%d\n", id, qty)
	}
}

func submitOrder(session *storefront.Session) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	result, err := session.SubmitOrder(ctx)
	if err != nil {
		printError(err)
		return
	}
	if confirmation, ok := result.Confirmation(); ok {
		fmt.Printf("%s (order %d)\n", confirmation.Message, confirmation.OrderID)
		return
	}
	if rejection, ok := result.Rejection(); ok {
		for _, line := range storefront.FormatRejection(rejection) {
			fmt.Println(line)
		}
	}
}

func showRoutes(session *storefront.Session, args []string) {
	mode := warehouse.SingleBot
	if len(args) > 0 && args[0] == "parallel" {
		mode = warehouse.ParallelBots
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	plans, err := session.FetchRoutes(ctx, mode)
	if err != nil {
		printError(err)
		return
	}
	for _, line := range storefront.FormatRoutes(plans) {
		fmt.Println(line)
	}
}

func printError(err error) {
	fmt.Println(storefront.FormatError(err))
}
