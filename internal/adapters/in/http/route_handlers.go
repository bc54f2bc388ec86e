package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
)

type createRouteRequest struct {
	OrderID               string    `json:"order_id" validate:"required,uuid"`
	CarrierID             string    `json:"carrier_id" validate:"required,uuid"`
	SourceAddress         string    `json:"source_address" validate:"required"`
	DestinationAddress    string    `json:"destination_address" validate:"required"`
	DepartureDate         time.Time `json:"departure_date" validate:"required"`
	EstimatedDeliveryDate time.Time `json:"estimated_delivery_date" validate:"required"`
	Comment               string    `json:"comment"`
	Cost                  *float64  `json:"cost"`
}

type updateRouteRequest struct {
	DestinationAddress    *string    `json:"destination_address"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date"`
	Comment               *string    `json:"comment"`
	Cost                  *float64   `json:"cost"`
}

func (s *Server) getAllRoutes(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetAllRoutesQuery(actor)
	if err != nil {
		return s.writeError(c, err)
	}

	routes, err := s.handlers.GetAllRoutes.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, routes)
}

func (s *Server) getRouteByID(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetRouteByIDQuery(id, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.GetRouteByID.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) createRoute(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req createRouteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return s.writeError(c, err)
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return s.writeError(c, err)
	}
	carrierID, err := kernel.UUIDFromString(req.CarrierID)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCreateRouteCommand(
		orderID,
		carrierID,
		req.SourceAddress,
		req.DestinationAddress,
		req.DepartureDate,
		req.EstimatedDeliveryDate,
		req.Comment,
		req.Cost,
		actor,
	)
	if err != nil {
		return s.writeError(c, err)
	}

	created, err := s.handlers.CreateRoute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toRouteResponse(created))
}

func (s *Server) updateRoute(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req updateRouteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	cmd, err := commands.NewUpdateRouteCommand(
		id,
		req.DestinationAddress,
		req.EstimatedDeliveryDate,
		req.Comment,
		req.Cost,
		actor,
	)
	if err != nil {
		return s.writeError(c, err)
	}

	updated, err := s.handlers.UpdateRoute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, toRouteResponse(updated))
}

func (s *Server) getCustomerRoutes(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetCustomerRoutesQuery(id, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.GetCustomerRoutes.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
