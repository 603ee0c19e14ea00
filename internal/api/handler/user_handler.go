package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crediya/auth-service/internal/api/metrics"
	"github.com/crediya/auth-service/internal/core/ports"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	authService ports.AuthService
	userService ports.UserService
}

func NewUserHandler(authService ports.AuthService, userService ports.UserService) *UserHandler {
	return &UserHandler{authService: authService, userService: userService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User registration details"
// @Success      201   {object}  response
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Security     BearerAuth
// @Router       /api/v1/users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.toDomain(), req.Password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()

	return respond(c, http.StatusCreated, "user created successfully", toUserResponse(user))
}

// GetByDocument looks up a user by document number.
//
// @Summary      Get a user by document number
// @Tags         users
// @Produce      json
// @Param        document  path      string  true  "Document number"
// @Success      200       {object}  response
// @Failure      404       {object}  map[string]any
// @Security     BearerAuth
// @Router       /api/v1/users/{document} [get]
func (h *UserHandler) GetByDocument(c echo.Context) error {
	if _, err := ctxSubject(c); err != nil {
		return err
	}

	user, err := h.userService.GetByDocument(c.Request().Context(), c.Param("document"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "query successful", toUserResponse(user))
}
