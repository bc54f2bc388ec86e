package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"gorm.io/gorm"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/jwtauth"
	"logistics/internal/adapters/out/mail"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/customerrepo"
	"logistics/internal/adapters/out/postgres/userrepo"
	"logistics/internal/core/application/auth"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	tokenService *jwtauth.TokenService
	hasher       jwtauth.BcryptHasher
	mailer       *mail.SMTPMailer
	logger       *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	ttl, err := time.ParseDuration(config.JWTTTL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("parse JWT_TTL: %w", err)
	}

	tokenService, err := jwtauth.NewTokenService(config.JWTSecret, ttl)
	if err != nil {
		return CompositionRoot{}, err
	}

	bcryptCost, err := strconv.Atoi(config.BcryptCost)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("parse BCRYPT_COST: %w", err)
	}

	smtpPort, err := strconv.Atoi(config.SMTPPort)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("parse SMTP_PORT: %w", err)
	}

	mailer, err := mail.NewSMTPMailer(mail.Config{
		Host:     config.SMTPHost,
		Port:     smtpPort,
		Username: config.SMTPUsername,
		Password: config.SMTPPassword,
		From:     config.SMTPFrom,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokenService: tokenService,
		hasher:       jwtauth.NewBcryptHasher(bcryptCost),
		mailer:       mailer,
		logger:       logger,
	}, nil
}

func (c *CompositionRoot) TokenVerifier() ports.TokenVerifier {
	return c.tokenService
}

func (c *CompositionRoot) CreateAuthService() (*auth.Service, error) {
	return auth.NewService(
		userrepo.NewGormUserRepository(c.gormDB),
		customerrepo.NewGormCustomerRepository(c.gormDB),
		c.hasher,
		c.tokenService,
	)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddOrderEventCommandHandler() commands.AddOrderEventCommandHandler {
	return commands.NewAddOrderEventCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	return commands.NewCreateRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRouteCommandHandler() commands.UpdateRouteCommandHandler {
	return commands.NewUpdateRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateCreateCarrierCommandHandler() commands.CreateCarrierCommandHandler {
	return commands.NewCreateCarrierCommandHandler(c.carrierUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCarrierCommandHandler() commands.UpdateCarrierCommandHandler {
	return commands.NewUpdateCarrierCommandHandler(c.carrierUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCarrierCommandHandler() commands.DeleteCarrierCommandHandler {
	return commands.NewDeleteCarrierCommandHandler(c.carrierUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory(), c.hasher, c.mailer, c.logger)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateChangeCustomerPasswordCommandHandler() commands.ChangeCustomerPasswordCommandHandler {
	return commands.NewChangeCustomerPasswordCommandHandler(c.customerUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.staffUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	return commands.NewUpdateUserCommandHandler(c.staffUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateCreateSheetCommandHandler() commands.CreateSheetCommandHandler {
	return commands.NewCreateSheetCommandHandler(c.sheetUoWFactory())
}

func (c *CompositionRoot) CreateUpdateSheetCommandHandler() commands.UpdateSheetCommandHandler {
	return commands.NewUpdateSheetCommandHandler(c.sheetUoWFactory())
}

func (c *CompositionRoot) CreateDeleteSheetCommandHandler() commands.DeleteSheetCommandHandler {
	return commands.NewDeleteSheetCommandHandler(c.sheetUoWFactory())
}

func (c *CompositionRoot) CreateAssignSheetCommandHandler() commands.AssignSheetCommandHandler {
	return commands.NewAssignSheetCommandHandler(c.sheetUoWFactory())
}

func (c *CompositionRoot) CreateUnassignSheetCommandHandler() commands.UnassignSheetCommandHandler {
	return commands.NewUnassignSheetCommandHandler(c.sheetUoWFactory())
}

// CreateHandlers assembles the full dispatch table for the HTTP server.
func (c *CompositionRoot) CreateHandlers() (httpin.Handlers, error) {
	authService, err := c.CreateAuthService()
	if err != nil {
		return httpin.Handlers{}, err
	}

	return httpin.Handlers{
		Auth: authService,

		CreateOrder:   c.CreateCreateOrderCommandHandler(),
		UpdateOrder:   c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:   c.CreateDeleteOrderCommandHandler(),
		AddOrderEvent: c.CreateAddOrderEventCommandHandler(),

		CreateRoute: c.CreateCreateRouteCommandHandler(),
		UpdateRoute: c.CreateUpdateRouteCommandHandler(),

		CreateCarrier: c.CreateCreateCarrierCommandHandler(),
		UpdateCarrier: c.CreateUpdateCarrierCommandHandler(),
		DeleteCarrier: c.CreateDeleteCarrierCommandHandler(),

		CreateCustomer:         c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer:         c.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer:         c.CreateDeleteCustomerCommandHandler(),
		ChangeCustomerPassword: c.CreateChangeCustomerPasswordCommandHandler(),

		CreateUser: c.CreateCreateUserCommandHandler(),
		UpdateUser: c.CreateUpdateUserCommandHandler(),
		DeleteUser: c.CreateDeleteUserCommandHandler(),

		CreateSheet:   c.CreateCreateSheetCommandHandler(),
		UpdateSheet:   c.CreateUpdateSheetCommandHandler(),
		DeleteSheet:   c.CreateDeleteSheetCommandHandler(),
		AssignSheet:   c.CreateAssignSheetCommandHandler(),
		UnassignSheet: c.CreateUnassignSheetCommandHandler(),

		GetAllOrders:      queries.NewGetAllOrdersQueryHandler(c.gormDB),
		GetOrderByID:      queries.NewGetOrderByIDQueryHandler(c.gormDB),
		GetOrderEvents:    queries.NewGetOrderEventsQueryHandler(c.gormDB),
		GetCustomerOrders: queries.NewGetCustomerOrdersQueryHandler(c.gormDB),

		GetAllRoutes:      queries.NewGetAllRoutesQueryHandler(c.gormDB),
		GetRouteByID:      queries.NewGetRouteByIDQueryHandler(c.gormDB),
		GetCustomerRoutes: queries.NewGetCustomerRoutesQueryHandler(c.gormDB),

		GetAllCarriers: queries.NewGetAllCarriersQueryHandler(c.gormDB),
		GetCarrierByID: queries.NewGetCarrierByIDQueryHandler(c.gormDB),

		GetAllCustomers: queries.NewGetAllCustomersQueryHandler(c.gormDB),
		GetCustomerByID: queries.NewGetCustomerByIDQueryHandler(c.gormDB),

		GetAllUsers: queries.NewGetAllUsersQueryHandler(c.gormDB),
		GetUserByID: queries.NewGetUserByIDQueryHandler(c.gormDB),

		GetAllSheets:        queries.NewGetAllSheetsQueryHandler(c.gormDB),
		GetSheetByID:        queries.NewGetSheetByIDQueryHandler(c.gormDB),
		GetSheetAssignments: queries.NewGetSheetAssignmentsQueryHandler(c.gormDB),
		GetCustomerSheets:   queries.NewGetCustomerSheetsQueryHandler(c.gormDB),
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) carrierUoWFactory() commands.CarrierUoWFactory {
	return FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) staffUoWFactory() commands.StaffUoWFactory {
	return FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) sheetUoWFactory() commands.SheetUoWFactory {
	return FuncSheetUoWFactory(func() commands.SheetUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncSheetUoWFactory func() commands.SheetUoW

func (f FuncSheetUoWFactory) Create() commands.SheetUoW {
	return f()
}
