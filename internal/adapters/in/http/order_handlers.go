package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
)

type createOrderRequest struct {
	CustomerID   string `json:"customer_id" validate:"required,uuid"`
	TrackingCode string `json:"tracking_code" validate:"required"`
	Description  string `json:"description"`
}

type updateOrderRequest struct {
	State       *string `json:"state"`
	Description *string `json:"description"`
}

type addOrderEventRequest struct {
	EventType string  `json:"event_type" validate:"required"`
	Note      *string `json:"note"`
}

func (s *Server) getAllOrders(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetAllOrdersQuery(actor)
	if err != nil {
		return s.writeError(c, err)
	}

	orders, err := s.handlers.GetAllOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (s *Server) getOrderByID(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetOrderByIDQuery(id, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.GetOrderByID.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) getOrderEvents(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetOrderEventsQuery(id, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.GetOrderEvents.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) createOrder(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return s.writeError(c, err)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, req.TrackingCode, req.Description, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toOrderResponse(created))
}

func (s *Server) updateOrder(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	cmd, err := commands.NewUpdateOrderCommand(id, req.State, req.Description, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	updated, err := s.handlers.UpdateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderResponse(updated))
}

func (s *Server) addOrderEvent(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req addOrderEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewAddOrderEventCommand(id, req.EventType, req.Note, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	event, err := s.handlers.AddOrderEvent.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toEventResponse(event))
}

func (s *Server) deleteOrder(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	if err := s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) getCustomerOrders(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(id, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.GetCustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
