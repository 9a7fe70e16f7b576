package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/fjod/go_shop/internal/catalog"
	"github.com/fjod/go_shop/internal/checkout"
	"github.com/fjod/go_shop/internal/domain"
	"github.com/fjod/go_shop/internal/report"
	"github.com/fjod/go_shop/internal/shipping"
)

func main() {
	// Logger
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	_ = godotenv.Load()
	rate := decimalEnv("SHIPPING_RATE_PER_KG", shipping.DefaultRatePerKg)
	balance := decimalEnv("OPENING_BALANCE", 10000)
	log.Info().
		Str("rate_per_kg", rate.String()).
		Str("opening_balance", balance.String()).
		Msg("starting shop demo")

	store := catalog.NewMemoryStore()
	seed(store)

	customer := domain.NewCustomer("Abdulrahman Shalan", balance)
	cart := domain.NewCart()

	reporter := report.NewConsoleReporter(log.Logger)
	svc := checkout.NewService(shipping.NewCalculator(rate), reporter)

	runScenarios(store, svc, customer, cart)
}

// Sample products matching the original demo data
func seed(store *catalog.MemoryStore) {
	products := []*domain.Product{
		domain.NewPerishable("Cheese", decimal.NewFromInt(100), 5, time.Now().AddDate(0, 0, 3), 0.2),
		domain.NewPerishable("Biscuits", decimal.NewFromInt(150), 2, time.Now().AddDate(0, 0, 5), 0.7),
		domain.NewPhysical("TV", decimal.NewFromInt(5000), 3, 10),
		domain.NewDigital("Mobile Card", decimal.NewFromInt(50), 20),
	}
	for _, p := range products {
		if err := store.Add(p); err != nil {
			log.Fatal().Err(err).Str("product", p.Name).Msg("failed to seed catalog")
		}
	}
	for _, p := range store.List() {
		log.Info().
			Str("product", p.Name).
			Str("kind", p.Kind.String()).
			Str("price", p.Price.String()).
			Int("stock", p.Stock()).
			Msg("seeded")
	}
}

func runScenarios(store catalog.Store, svc *checkout.Service, customer *domain.Customer, cart *domain.Cart) {
	// Mixed cart: two perishables plus a digital card, checks out fine.
	if err := func() error {
		if err := addFromCatalog(store, cart, "Cheese", 2); err != nil {
			return err
		}
		if err := addFromCatalog(store, cart, "Biscuits", 1); err != nil {
			return err
		}
		if err := addFromCatalog(store, cart, "Mobile Card", 1); err != nil {
			return err
		}
		_, err := svc.Checkout(customer, cart)
		return err
	}(); err != nil {
		log.Error().Err(err).Msg("scenario failed")
	}

	// Three TVs cost more than the wallet holds.
	if err := func() error {
		if err := addFromCatalog(store, cart, "TV", 3); err != nil {
			return err
		}
		_, err := svc.Checkout(customer, cart)
		return err
	}(); err != nil {
		log.Error().Err(err).Msg("scenario failed")
		cart.Clear()
	}

	// Asking for more cheese than is left in stock.
	if err := func() error {
		if err := addFromCatalog(store, cart, "Cheese", 20); err != nil {
			return err
		}
		_, err := svc.Checkout(customer, cart)
		return err
	}(); err != nil {
		log.Error().Err(err).Msg("scenario failed")
		cart.Clear()
	}

	// Checking out with nothing in the cart.
	if _, err := svc.Checkout(customer, cart); err != nil {
		log.Error().Err(err).Msg("scenario failed")
	}

	// Yogurt that expired two days ago never makes it into the cart.
	if err := func() error {
		expired := domain.NewPerishable("Old Yogurt", decimal.NewFromInt(30), 1, time.Now().AddDate(0, 0, -2), 0.2)
		if err := cart.Add(expired, 1); err != nil {
			return err
		}
		_, err := svc.Checkout(customer, cart)
		return err
	}(); err != nil {
		log.Error().Err(err).Msg("scenario failed")
	}
}

func addFromCatalog(store catalog.Store, cart *domain.Cart, name string, qty int) error {
	p, err := store.Get(name)
	if err != nil {
		return err
	}
	return cart.Add(p, qty)
}

func decimalEnv(key string, def int64) decimal.Decimal {
	v := os.Getenv(key)
	if v == "" {
		return decimal.NewFromInt(def)
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		log.Fatal().Err(err).Str("key", key).Msg("invalid decimal in environment")
	}
	return d
}
