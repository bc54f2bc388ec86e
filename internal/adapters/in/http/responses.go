package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/sheet"
	"logistics/internal/core/domain/model/staff"
)

// errNoPrincipal stops a handler after requireActor has already written the
// TOKEN_MISSING response. The response is committed, so echo's error handler
// leaves it alone.
var errNoPrincipal = errors.New("no principal in request context")

// requireActor pulls the authenticated principal from the context. Routes are
// mounted behind BearerAuth, so a miss means a wiring bug rather than a bad
// request; it is still answered as missing credentials.
func requireActor(c echo.Context) (principal.Principal, error) {
	actor, ok := actorFrom(c)
	if !ok {
		_ = c.JSON(http.StatusUnauthorized, echo.Map{"code": "TOKEN_MISSING"})
		return principal.Principal{}, errNoPrincipal
	}
	return actor, nil
}

// pathID parses the :id path parameter as a UUID.
func pathID(c echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param("id"))
}

type orderResponse struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	UserID       string    `json:"user_id"`
	TrackingCode string    `json:"tracking_code"`
	Description  string    `json:"description"`
	State        string    `json:"state"`
	CreatedAt    time.Time `json:"created_at"`
}

func toOrderResponse(o *order.Order) orderResponse {
	return orderResponse{
		ID:           o.ID().String(),
		CustomerID:   o.CustomerID().String(),
		UserID:       o.UserID().String(),
		TrackingCode: o.TrackingCode(),
		Description:  o.Description(),
		State:        o.State(),
		CreatedAt:    o.CreatedAt(),
	}
}

type eventResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	EventType string    `json:"event_type"`
	Note      *string   `json:"note"`
	Date      time.Time `json:"date"`
}

func toEventResponse(e *order.Event) eventResponse {
	return eventResponse{
		ID:        e.ID().String(),
		OrderID:   e.OrderID().String(),
		UserID:    e.UserID().String(),
		EventType: e.EventType(),
		Note:      e.Note(),
		Date:      e.Date(),
	}
}

type routeResponse struct {
	ID                    string    `json:"id"`
	OrderID               string    `json:"order_id"`
	CarrierID             string    `json:"carrier_id"`
	SourceAddress         string    `json:"source_address"`
	DestinationAddress    string    `json:"destination_address"`
	DepartureDate         time.Time `json:"departure_date"`
	EstimatedDeliveryDate time.Time `json:"estimated_delivery_date"`
	Comment               string    `json:"comment"`
	Cost                  *float64  `json:"cost"`
	CreatedAt             time.Time `json:"created_at"`
}

func toRouteResponse(r *route.Route) routeResponse {
	return routeResponse{
		ID:                    r.ID().String(),
		OrderID:               r.OrderID().String(),
		CarrierID:             r.CarrierID().String(),
		SourceAddress:         r.SourceAddress(),
		DestinationAddress:    r.DestinationAddress(),
		DepartureDate:         r.DepartureDate(),
		EstimatedDeliveryDate: r.EstimatedDeliveryDate(),
		Comment:               r.Comment(),
		Cost:                  r.Cost(),
		CreatedAt:             r.CreatedAt(),
	}
}

type carrierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

func toCarrierResponse(cr *carrier.Carrier) carrierResponse {
	return carrierResponse{
		ID:        cr.ID().String(),
		Name:      cr.Name(),
		Contact:   cr.Contact(),
		State:     cr.State(),
		CreatedAt: cr.CreatedAt(),
	}
}

type customerResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Status     string    `json:"status"`
	FirstLogin bool      `json:"first_login"`
	CreatedAt  time.Time `json:"created_at"`
}

func toCustomerResponse(cu *customer.Customer) customerResponse {
	return customerResponse{
		ID:         cu.ID().String(),
		Name:       cu.Name(),
		Email:      cu.Email(),
		Phone:      cu.Phone(),
		Status:     cu.Status(),
		FirstLogin: cu.FirstLogin(),
		CreatedAt:  cu.CreatedAt(),
	}
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *staff.User) userResponse {
	return userResponse{
		ID:        u.ID().String(),
		Name:      u.Name(),
		Email:     u.Email(),
		Phone:     u.Phone(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}

type sheetResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

func toSheetResponse(sh *sheet.Sheet) sheetResponse {
	return sheetResponse{
		ID:         sh.ID().String(),
		Name:       sh.Name(),
		URL:        sh.URL(),
		UploadedBy: sh.UploadedBy().String(),
		CreatedAt:  sh.CreatedAt(),
	}
}
