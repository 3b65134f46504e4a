// Package handler implements the HTTP handlers for the SkyRoute records API.
// All handlers are methods on Server. Methods are split into area-specific
// files (customer.go, destination.go, sale.go) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/skyroute/skyroute/internal/domain"
)

// CustomerServicer defines the business operations the customer handlers
// depend on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the database or service layer.
type CustomerServicer interface {
	Register(ctx context.Context, name, surname, address, email, nationalID, phone string) (domain.Customer, error)
	Get(ctx context.Context, nationalID string) (domain.Customer, error)
	List(ctx context.Context) ([]domain.CustomerListing, error)
	Update(ctx context.Context, nationalID, field, value string) (domain.Customer, error)
	Deactivate(ctx context.Context, nationalID string) error
	Delete(ctx context.Context, nationalID string) error
}

// DestinationServicer defines the business operations the destination
// handlers depend on.
type DestinationServicer interface {
	Register(ctx context.Context, cityName, province, country string, baseCost float64) (domain.DestinationView, error)
	List(ctx context.Context) ([]domain.DestinationView, error)
	Update(ctx context.Context, id uuid.UUID, field, value string) (domain.DestinationView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SaleServicer defines the business operations the sales handlers depend on.
type SaleServicer interface {
	ListDestinations(ctx context.Context) ([]domain.DestinationView, error)
	Purchase(ctx context.Context, nationalID string, destinationID uuid.UUID, ticketCount int) (domain.Sale, error)
	ListActive(ctx context.Context, nationalID string) ([]domain.Sale, error)
	List(ctx context.Context, nationalID, statusFilter string) ([]domain.Sale, error)
	Cancel(ctx context.Context, nationalID string, saleID uuid.UUID, reason string) error
}

// Server holds all HTTP handlers for the records API.
type Server struct {
	customers    CustomerServicer
	destinations DestinationServicer
	sales        SaleServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(customers CustomerServicer, destinations DestinationServicer, sales SaleServicer) *Server {
	return &Server{customers: customers, destinations: destinations, sales: sales}
}

// Routes returns the chi router for the full API surface.
// Middleware is applied by the caller (cmd/api) so tests can mount the bare
// routes.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", s.CreateCustomer)
		r.Get("/", s.ListCustomers)
		r.Get("/{nationalID}", s.GetCustomer)
		r.Patch("/{nationalID}", s.UpdateCustomer)
		r.Post("/{nationalID}/deactivate", s.DeactivateCustomer)
		r.Delete("/{nationalID}", s.DeleteCustomer)
	})

	r.Route("/destinations", func(r chi.Router) {
		r.Post("/", s.CreateDestination)
		r.Get("/", s.ListDestinations)
		r.Patch("/{id}", s.UpdateDestination)
		r.Delete("/{id}", s.DeleteDestination)
	})

	r.Route("/sales", func(r chi.Router) {
		r.Post("/", s.CreateSale)
		r.Get("/", s.ListSales)
		r.Post("/{id}/cancel", s.CancelSale)
	})

	return r
}
