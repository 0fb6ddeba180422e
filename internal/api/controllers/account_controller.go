package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solotrip/internal/models/request_models"
	"solotrip/internal/services"
	"solotrip/pkg/logger"
	"solotrip/pkg/middleware"
	"solotrip/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
	log            *logger.Logger
}

func NewAccountController(accountService services.AccountServiceInterface, log *logger.Logger) *AccountController {
	return &AccountController{
		accountService: accountService,
		log:            log,
	}
}

// Register godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, a.log, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, resp, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, a.log, err)
		return
	}

	utils.RespondSuccess(c, resp, "Login successful")
}

// Logout godoc
// @Summary Revoke the presented token
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/auth/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	if err := a.accountService.Logout(c.Request.Context(), c.GetString(middleware.ContextToken)); err != nil {
		utils.HandleServiceError(c, a.log, err)
		return
	}

	utils.RespondSuccess(c, nil, "Logged out")
}
