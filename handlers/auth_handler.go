package handlers

import (
	"net/http"

	"armust-news-cms/helper"
	"armust-news-cms/models"
	"armust-news-cms/services"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves both auth surfaces: contributor sign-up/sign-in
// and the staff register/login pair.
type AuthHandler struct {
	accountService services.AccountService
	authService    services.AuthService
	httpHelper     *helper.HTTPHelper
}

func NewAuthHandler(accountService services.AccountService, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		accountService: accountService,
		authService:    authService,
		httpHelper:     &helper.HTTPHelper{},
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	journalist, err := h.accountService.SignUp(req)
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, journalist)
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.accountService.SignIn(req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) CheckEmail(c *gin.Context) {
	var req models.CheckEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accountService.EmailAvailable(req.Email); err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "email is available"})
}

func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req models.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accountService.SendSignupOTP(req.Email); err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accountService.VerifySignupOTP(req.Email, req.Code); err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP verified"})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accountService.ForgotPassword(req.Email); err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password reset link sent"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accountService.ResetPassword(req); err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password reset successfully"})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	journalistID, _ := c.Get("journalist_id")

	journalist, err := h.accountService.GetByID(journalistID.(uint))
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, journalist)
}

func (h *AuthHandler) Dashboard(c *gin.Context) {
	journalistID, _ := c.Get("journalist_id")

	stats, err := h.accountService.Dashboard(journalistID.(uint))
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AuthHandler) InviteArtist(c *gin.Context) {
	journalistID, _ := c.Get("journalist_id")

	var req models.InviteArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accountService.InviteArtist(journalistID.(uint), req); err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "invitation sent"})
}

// Staff endpoints.

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authService.Register(req)
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, _ := c.Get("user_id")

	user, err := h.authService.GetUserByID(userID.(uint))
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
