package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/principal"
)

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

func (s *Server) getAllUsers(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetAllUsersQuery(actor)
	if err != nil {
		return s.writeError(c, err)
	}

	users, err := s.handlers.GetAllUsers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, users)
}

func (s *Server) getUserByID(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetUserByIDQuery(id, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.GetUserByID.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) createUser(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return s.writeError(c, err)
	}

	role, err := principal.RoleFromString(req.Role)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCreateUserCommand(req.Name, req.Email, req.Phone, req.Password, role, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	created, err := s.handlers.CreateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toUserResponse(created))
}

func (s *Server) updateUser(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	var role *principal.Role
	if req.Role != nil {
		parsed, err := principal.RoleFromString(*req.Role)
		if err != nil {
			return s.writeError(c, err)
		}
		role = &parsed
	}

	cmd, err := commands.NewUpdateUserCommand(id, req.Name, req.Email, req.Phone, req.Password, role, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	updated, err := s.handlers.UpdateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, toUserResponse(updated))
}

func (s *Server) deleteUser(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewDeleteUserCommand(id, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	if err := s.handlers.DeleteUser.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
