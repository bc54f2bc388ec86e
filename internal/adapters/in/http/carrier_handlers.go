package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
)

type createCarrierRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact"`
}

type updateCarrierRequest struct {
	Name    *string `json:"name"`
	Contact *string `json:"contact"`
	State   *string `json:"state"`
}

func (s *Server) getAllCarriers(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetAllCarriersQuery(actor)
	if err != nil {
		return s.writeError(c, err)
	}

	carriers, err := s.handlers.GetAllCarriers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, carriers)
}

func (s *Server) getCarrierByID(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetCarrierByIDQuery(id, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.GetCarrierByID.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) createCarrier(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req createCarrierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCreateCarrierCommand(req.Name, req.Contact, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	created, err := s.handlers.CreateCarrier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toCarrierResponse(created))
}

func (s *Server) updateCarrier(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req updateCarrierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	cmd, err := commands.NewUpdateCarrierCommand(id, req.Name, req.Contact, req.State, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	updated, err := s.handlers.UpdateCarrier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, toCarrierResponse(updated))
}

func (s *Server) deleteCarrier(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewDeleteCarrierCommand(id, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	if err := s.handlers.DeleteCarrier.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
