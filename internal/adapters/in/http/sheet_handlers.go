package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
)

type createSheetRequest struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
}

type updateSheetRequest struct {
	Name *string `json:"name"`
	URL  *string `json:"url"`
}

type assignSheetRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
}

func (s *Server) getAllSheets(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetAllSheetsQuery(actor)
	if err != nil {
		return s.writeError(c, err)
	}

	sheets, err := s.handlers.GetAllSheets.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, sheets)
}

func (s *Server) getSheetByID(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetSheetByIDQuery(id, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.GetSheetByID.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) createSheet(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req createSheetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCreateSheetCommand(req.Name, req.URL, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	created, err := s.handlers.CreateSheet.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toSheetResponse(created))
}

func (s *Server) updateSheet(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req updateSheetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	cmd, err := commands.NewUpdateSheetCommand(id, req.Name, req.URL, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	updated, err := s.handlers.UpdateSheet.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, toSheetResponse(updated))
}

func (s *Server) deleteSheet(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewDeleteSheetCommand(id, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	if err := s.handlers.DeleteSheet.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) getSheetAssignments(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetSheetAssignmentsQuery(id, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.GetSheetAssignments.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) assignSheet(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	sheetID, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req assignSheetRequest
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

	cmd, err := commands.NewAssignSheetCommand(customerID, sheetID, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	if err := s.handlers.AssignSheet.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) unassignSheet(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	sheetID, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req assignSheetRequest
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

	cmd, err := commands.NewUnassignSheetCommand(customerID, sheetID, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	if err := s.handlers.UnassignSheet.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
