package http

import (
	"net/http"

	"adwallet/pkg/response"
	"adwallet/services/auth/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Register a new user with username, email and password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authUseCase.RegisterUser(req.Username, req.Email, req.Password)
	if err != nil {
		if err.Error() == "user already exists" {
			response.Error(c, http.StatusBadRequest, "User already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Created(c, "User created successfully", user)
}

// Login godoc
// @Summary      Login user
// @Description  Authenticate a user and return an access/refresh token pair
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authUseCase.LoginUser(req.Email, req.Password)
	if err != nil {
		switch err.Error() {
		case "user not found":
			response.Error(c, http.StatusNotFound, "User not found")
		case "invalid credentials":
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			response.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.OK(c, "Login successful", result)
}

// RefreshToken godoc
// @Summary      Refresh token pair
// @Description  Exchange a valid refresh token for a new access/refresh pair
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body RefreshRequest true "Refresh token"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /users/refresh-token [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Refresh token is required")
		return
	}

	pair, err := h.authUseCase.RefreshUserTokens(req.RefreshToken)
	if err != nil {
		response.Error(c, http.StatusForbidden, "Invalid or expired refresh token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Token refreshed successfully",
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}
