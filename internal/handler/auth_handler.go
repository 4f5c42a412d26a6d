package handler

import (
	"net/http"

	"batalla/backend/internal/config"
	"batalla/backend/internal/models"
	"batalla/backend/internal/service"
	"batalla/backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"testuser"`
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// VerifyTokenInput carries a raw token to validate.
type VerifyTokenInput struct {
	Token string `json:"token" binding:"required"`
}

// TokenResponse defines the structure of a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}

// UserResponse defines the structure for a user's own profile.
type UserResponse struct {
	ID       uint    `json:"id" example:"1"`
	Username string  `json:"username" example:"testuser"`
	Email    string  `json:"email" example:"test@example.com"`
	Avatar   *string `json:"avatar,omitempty"`
}

// ForgotPasswordInput carries the email requesting a reset code.
type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email" example:"test@example.com"`
}

// ResetPasswordInput trades a reset code for a new password.
type ResetPasswordInput struct {
	Code        string `json:"code" binding:"required" example:"123456"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// ForgotPasswordResponse is always a generic success; Code is only populated
// when the server runs without a mail notifier.
type ForgotPasswordResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func newUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Avatar:   user.Avatar,
	}
}

// endregion

// AuthHandler serves registration, login, token verification and the
// password-reset flow.
type AuthHandler struct {
	users  *service.UserService
	resets *service.ResetService
	tokens *token.Service
	cfg    *config.Config
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(users *service.UserService, resets *service.ResetService, tokens *token.Service, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, resets: resets, tokens: tokens, cfg: cfg}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a new account and returns its public profile.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Email or username already taken"
// @Failure      422  {object}  ErrorResponse "Invalid username characters"
// @Failure      500  {object}  ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Register(input.Username, input.Email, input.Password)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// Login godoc
// @Summary      Log in a user
// @Description  Authenticates with email and password and returns a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid email or password"
// @Failure      500  {object}  ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Authenticate(input.Email, input.Password)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	accessToken, err := h.tokens.Issue(user.Email, h.cfg.TokenTTL())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: accessToken, TokenType: "bearer"})
}

// VerifyToken godoc
// @Summary      Verify a token
// @Description  Checks a bearer token and returns the email it was issued to.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body VerifyTokenInput true "Token"
// @Success      200  {object}  map[string]string "{"email": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse "Invalid token"
// @Router       /verify-token [post]
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	var input VerifyTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email, err := h.tokens.Validate(input.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": email})
}

// GetMe godoc
// @Summary      Get current user's profile
// @Description  Retrieves the profile of the authenticated user.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	user, err := h.users.FindByID(currentUserID(c))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// ForgotPassword godoc
// @Summary      Request a password reset code
// @Description  Sends a reset code to the account's email. The response is the
// @Description  same whether or not the account exists.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body ForgotPasswordInput true "Account email"
// @Success      200  {object}  ForgotPasswordResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var input ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code, err := h.resets.RequestReset(input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process reset request"})
		return
	}

	c.JSON(http.StatusOK, ForgotPasswordResponse{
		Message: "If the account exists, a reset code has been sent",
		Code:    code,
	})
}

// ResetPassword godoc
// @Summary      Reset a password with a code
// @Description  Sets a new password for the account holding the given reset code.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body ResetPasswordInput true "Code and new password"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse "Invalid or expired code"
// @Failure      500  {object}  ErrorResponse
// @Router       /reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var input ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.resets.ResetPassword(input.Code, input.NewPassword); err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset"})
}
