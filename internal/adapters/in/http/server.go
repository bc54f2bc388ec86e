// Package http exposes the application over a JSON REST API. Handlers bind
// and validate the request, build a command or query for the authenticated
// principal, and translate the result onto the wire; all business decisions
// stay in the application core.
package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"
)

// Handlers bundles everything the server dispatches to.
type Handlers struct {
	Auth *auth.Service

	CreateOrder   commands.CreateOrderCommandHandler
	UpdateOrder   commands.UpdateOrderCommandHandler
	DeleteOrder   commands.DeleteOrderCommandHandler
	AddOrderEvent commands.AddOrderEventCommandHandler

	CreateRoute commands.CreateRouteCommandHandler
	UpdateRoute commands.UpdateRouteCommandHandler

	CreateCarrier commands.CreateCarrierCommandHandler
	UpdateCarrier commands.UpdateCarrierCommandHandler
	DeleteCarrier commands.DeleteCarrierCommandHandler

	CreateCustomer         commands.CreateCustomerCommandHandler
	UpdateCustomer         commands.UpdateCustomerCommandHandler
	DeleteCustomer         commands.DeleteCustomerCommandHandler
	ChangeCustomerPassword commands.ChangeCustomerPasswordCommandHandler

	CreateUser commands.CreateUserCommandHandler
	UpdateUser commands.UpdateUserCommandHandler
	DeleteUser commands.DeleteUserCommandHandler

	CreateSheet   commands.CreateSheetCommandHandler
	UpdateSheet   commands.UpdateSheetCommandHandler
	DeleteSheet   commands.DeleteSheetCommandHandler
	AssignSheet   commands.AssignSheetCommandHandler
	UnassignSheet commands.UnassignSheetCommandHandler

	GetAllOrders      queries.GetAllOrdersQueryHandler
	GetOrderByID      queries.GetOrderByIDQueryHandler
	GetOrderEvents    queries.GetOrderEventsQueryHandler
	GetCustomerOrders queries.GetCustomerOrdersQueryHandler

	GetAllRoutes      queries.GetAllRoutesQueryHandler
	GetRouteByID      queries.GetRouteByIDQueryHandler
	GetCustomerRoutes queries.GetCustomerRoutesQueryHandler

	GetAllCarriers queries.GetAllCarriersQueryHandler
	GetCarrierByID queries.GetCarrierByIDQueryHandler

	GetAllCustomers queries.GetAllCustomersQueryHandler
	GetCustomerByID queries.GetCustomerByIDQueryHandler

	GetAllUsers queries.GetAllUsersQueryHandler
	GetUserByID queries.GetUserByIDQueryHandler

	GetAllSheets        queries.GetAllSheetsQueryHandler
	GetSheetByID        queries.GetSheetByIDQueryHandler
	GetSheetAssignments queries.GetSheetAssignmentsQueryHandler
	GetCustomerSheets   queries.GetCustomerSheetsQueryHandler
}

// Server wires the REST routes to the application handlers.
type Server struct {
	handlers Handlers
	verifier ports.TokenVerifier
	logger   *slog.Logger
}

// NewServer creates the HTTP server facade.
func NewServer(handlers Handlers, verifier ports.TokenVerifier, logger *slog.Logger) *Server {
	return &Server{handlers: handlers, verifier: verifier, logger: logger}
}

// RegisterRoutes mounts all API routes on the echo instance. The two login
// endpoints are public; everything else sits behind the bearer middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.POST("/api/login", s.staffLogin)
	e.POST("/api/customers/login", s.customerLogin)

	api := e.Group("/api", BearerAuth(s.verifier))

	api.GET("/orders", s.getAllOrders)
	api.POST("/orders", s.createOrder)
	api.GET("/orders/:id", s.getOrderByID)
	api.PUT("/orders/:id", s.updateOrder)
	api.DELETE("/orders/:id", s.deleteOrder)
	api.GET("/orders/:id/events", s.getOrderEvents)
	api.POST("/orders/:id/events", s.addOrderEvent)

	api.GET("/routes", s.getAllRoutes)
	api.POST("/routes", s.createRoute)
	api.GET("/routes/:id", s.getRouteByID)
	api.PUT("/routes/:id", s.updateRoute)

	api.GET("/carriers", s.getAllCarriers)
	api.POST("/carriers", s.createCarrier)
	api.GET("/carriers/:id", s.getCarrierByID)
	api.PUT("/carriers/:id", s.updateCarrier)
	api.DELETE("/carriers/:id", s.deleteCarrier)

	api.GET("/customers", s.getAllCustomers)
	api.POST("/customers", s.createCustomer)
	api.GET("/customers/:id", s.getCustomerByID)
	api.PUT("/customers/:id", s.updateCustomer)
	api.DELETE("/customers/:id", s.deleteCustomer)
	api.PUT("/customers/:id/password", s.changeCustomerPassword)
	api.GET("/customers/:id/orders", s.getCustomerOrders)
	api.GET("/customers/:id/routes", s.getCustomerRoutes)
	api.GET("/customers/:id/sheets", s.getCustomerSheets)

	api.GET("/users", s.getAllUsers)
	api.POST("/users", s.createUser)
	api.GET("/users/:id", s.getUserByID)
	api.PUT("/users/:id", s.updateUser)
	api.DELETE("/users/:id", s.deleteUser)

	api.GET("/sheets", s.getAllSheets)
	api.POST("/sheets", s.createSheet)
	api.GET("/sheets/:id", s.getSheetByID)
	api.PUT("/sheets/:id", s.updateSheet)
	api.DELETE("/sheets/:id", s.deleteSheet)
	api.GET("/sheets/:id/assignments", s.getSheetAssignments)
	api.POST("/sheets/:id/assign", s.assignSheet)
	api.DELETE("/sheets/:id/assign", s.unassignSheet)
}
