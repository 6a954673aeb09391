package http

import (
	"net/http"

	"adwallet/pkg/response"
	"adwallet/services/auth/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAdminHandler(authUseCase usecase.AuthUseCase) *AdminHandler {
	return &AdminHandler{
		authUseCase: authUseCase,
	}
}

// Register godoc
// @Summary      Register a new admin
// @Description  Register a new admin with username, email and password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /admin/register [post]
func (h *AdminHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	admin, err := h.authUseCase.RegisterAdmin(req.Username, req.Email, req.Password)
	if err != nil {
		if err.Error() == "admin already exists" {
			response.Error(c, http.StatusConflict, "Admin already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.OK(c, "Admin created successfully", admin)
}

// Login godoc
// @Summary      Login admin
// @Description  Authenticate an admin and return an access/refresh token pair
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authUseCase.LoginAdmin(req.Email, req.Password)
	if err != nil {
		if err.Error() == "invalid email or password" {
			response.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.OK(c, "Login successful", result)
}

// RefreshToken godoc
// @Summary      Refresh admin token pair
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body RefreshRequest true "Refresh token"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  response.Response
// @Router       /admin/refresh-token [post]
func (h *AdminHandler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Refresh token is required")
		return
	}

	pair, err := h.authUseCase.RefreshAdminTokens(req.RefreshToken)
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
