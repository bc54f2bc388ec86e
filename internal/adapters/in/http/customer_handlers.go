package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
)

type createCustomerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type updateCustomerRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Status *string `json:"status"`
}

type changePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required"`
}

func (s *Server) getAllCustomers(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetAllCustomersQuery(actor)
	if err != nil {
		return s.writeError(c, err)
	}

	customers, err := s.handlers.GetAllCustomers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, customers)
}

func (s *Server) getCustomerByID(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetCustomerByIDQuery(id, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.GetCustomerByID.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) createCustomer(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCreateCustomerCommand(req.Name, req.Email, req.Phone, req.Password, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	created, err := s.handlers.CreateCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toCustomerResponse(created))
}

func (s *Server) updateCustomer(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, req.Name, req.Email, req.Phone, req.Status, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	updated, err := s.handlers.UpdateCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, toCustomerResponse(updated))
}

func (s *Server) deleteCustomer(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewDeleteCustomerCommand(id, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	if err := s.handlers.DeleteCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) changeCustomerPassword(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewChangeCustomerPasswordCommand(id, req.NewPassword, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	if err := s.handlers.ChangeCustomerPassword.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) getCustomerSheets(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetCustomerSheetsQuery(id, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.GetCustomerSheets.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
