package controllers

import (
	"errors"
	"net/http"

	"github.com/shalabia/storefront/app/services"
	"github.com/shalabia/storefront/pkg/bind"
	"github.com/shalabia/storefront/pkg/logger"
	"github.com/shalabia/storefront/pkg/response"
)

// AuthController serves the sign-up / sign-in / sign-out flows.
type AuthController struct {
	identity *services.IdentityService
}

func NewAuthController(identity *services.IdentityService) *AuthController {
	return &AuthController{identity: identity}
}

type credentialsInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// statusFor maps an identity error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, services.ErrUnknownEmail):
		return http.StatusNotFound
	case errors.Is(err, services.ErrWrongPassword):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrBadEmail),
		errors.Is(err, services.ErrMissingName),
		errors.Is(err, services.ErrShortName),
		errors.Is(err, services.ErrShortPassword):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var in credentialsInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	session, token, err := c.identity.SignUp(in.Name, in.Email, in.Password)
	if err != nil {
		response.Error(w, statusFor(err), err.Error())
		return
	}

	logger.WithCtx(r.Context()).Info("account created", "email", session.Email)
	response.Created(w, map[string]interface{}{
		"user":  session,
		"token": token,
	})
}

func (c *AuthController) Signin(w http.ResponseWriter, r *http.Request) {
	var in credentialsInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	session, token, err := c.identity.SignIn(in.Email, in.Password)
	if err != nil {
		response.Error(w, statusFor(err), err.Error())
		return
	}

	logger.WithCtx(r.Context()).Info("signed in", "email", session.Email)
	response.Success(w, map[string]interface{}{
		"user":  session,
		"token": token,
	})
}

func (c *AuthController) Signout(w http.ResponseWriter, r *http.Request) {
	if err := c.identity.SignOut(); err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not sign out")
		return
	}
	response.Success(w, map[string]string{"status": "signed out"})
}

// Me returns the current signed-in identity.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := c.identity.Current()
	if !ok {
		response.Unauthorized(w)
		return
	}
	response.Success(w, session)
}
