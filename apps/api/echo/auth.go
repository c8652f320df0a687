package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/colegio/core/auth"
	"github.com/trezcool/colegio/core/school"
)

type (
	authApi struct {
		svc *auth.Service
	}

	// LoginResponse carries the authenticated user; there is no session token.
	LoginResponse struct {
		User school.User `json:"user"`
	}
)

func registerAuthAPI(g *echo.Group, svc *auth.Service) {
	api := authApi{svc: svc}
	g.POST("/login", api.login)
}

func (api *authApi) login(ctx echo.Context) error {
	var data auth.LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	usr, err := api.svc.Authenticate(data)
	if err != nil {
		return errors.Wrap(err, "authenticating")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{User: usr})
}
