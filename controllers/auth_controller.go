package controllers

import (
	"time"

	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/middleware"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/arjun-099/DukaanDesk/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Name            string `json:"name"`
}

// RegistrationData represents the pending registration stored in the cookie
// session until the OTP is verified. No user row exists before that.
type RegistrationData struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	OTP        string `json:"otp"`
	OTPExpires int64  `json:"otp_expires"`
}

// RegisterUser starts registration by emailing an OTP
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Registration failed - invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", "Please check your input data and ensure all required fields are provided correctly.")
		return
	}

	utils.LogInfo("Registration attempt for email: %s", req.Email)

	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.LogError("Registration failed - invalid email: %s - %s", req.Email, msg)
		utils.BadRequest(c, "Invalid email", msg)
		return
	}

	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.LogError("Registration failed - weak password for: %s", req.Email)
		utils.BadRequest(c, "Invalid password", msg)
		return
	}

	if req.Password != req.ConfirmPassword {
		utils.LogError("Registration failed - passwords do not match for: %s", req.Email)
		utils.BadRequest(c, "Passwords do not match", "Password and confirm password must be the same.")
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.LogError("Registration failed - email already registered: %s", req.Email)
		utils.BadRequest(c, "Email already registered", nil)
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Registration failed - could not hash password: %v", err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	otp := utils.GenerateOTP()
	data := RegistrationData{
		Email:      req.Email,
		Password:   hashedPassword,
		Name:       req.Name,
		OTP:        otp,
		OTPExpires: time.Now().Add(15 * time.Minute).Unix(),
	}

	session := sessions.Default(c)
	session.Set("registration", data)
	if err := session.Save(); err != nil {
		utils.LogError("Registration failed - could not save session: %v", err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	if err := utils.SendOTP(req.Email, otp); err != nil {
		utils.LogError("Registration failed - could not send OTP to %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to send verification email", nil)
		return
	}

	utils.LogInfo("Registration OTP sent to %s", req.Email)
	utils.Success(c, "OTP sent to your email", gin.H{
		"email": req.Email,
	})
}

// VerifyOTPRequest represents the OTP verification request body
type VerifyOTPRequest struct {
	OTP string `json:"otp" binding:"required"`
}

// VerifyOTP completes registration by creating the user
func VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("OTP verification failed - invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", "Please provide OTP")
		return
	}

	session := sessions.Default(c)
	dataVal := session.Get("registration")
	if dataVal == nil {
		utils.LogError("OTP verification failed - no pending registration")
		utils.BadRequest(c, "No pending registration", "Please register first")
		return
	}

	data, ok := dataVal.(RegistrationData)
	if !ok {
		utils.LogError("OTP verification failed - malformed session data")
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	if time.Now().Unix() > data.OTPExpires {
		utils.LogError("OTP verification failed - OTP expired for: %s", data.Email)
		utils.BadRequest(c, "OTP expired", "Please register again")
		return
	}

	if req.OTP != data.OTP {
		utils.LogError("OTP verification failed - wrong OTP for: %s", data.Email)
		utils.BadRequest(c, "Invalid OTP", nil)
		return
	}

	user := models.User{
		Email:      data.Email,
		Password:   data.Password,
		Name:       data.Name,
		IsVerified: true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("OTP verification failed - could not create user %s: %v", data.Email, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	session.Delete("registration")
	if err := session.Save(); err != nil {
		utils.LogError("Failed to clear registration session: %v", err)
	}

	utils.LogInfo("User registered successfully: %s", user.Email)
	utils.Created(c, "Registration complete", gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// issueSession creates a session row for the user and sets the cookie.
// Returns the signed token.
func issueSession(c *gin.Context, user *models.User) (string, error) {
	tokenString, err := utils.GenerateSessionToken(user.ID, user.Email)
	if err != nil {
		return "", err
	}

	session := models.Session{
		Token:     tokenString,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(utils.SessionDuration),
	}
	if err := config.DB.Create(&session).Error; err != nil {
		return "", err
	}

	c.SetCookie(middleware.SessionCookieName, tokenString, int(utils.SessionDuration.Seconds()), "/", "", false, true)
	return tokenString, nil
}

// LoginUser handles dashboard login
func LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Login failed - invalid request format: %v", err)
		utils.BadRequest(c, "Invalid email or password", nil)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("Login failed - user not found: %s", req.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Login failed - wrong password for: %s", req.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	user.LastLoginAt = time.Now()
	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Failed to update last login time for: %s", req.Email)
	}

	tokenString, err := issueSession(c, &user)
	if err != nil {
		utils.LogError("Login failed - could not issue session for %s: %v", req.Email, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	utils.LogInfo("User logged in successfully: %s", req.Email)
	utils.Success(c, "Login successful", gin.H{
		"token": tokenString,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// LogoutUser revokes the current session
func LogoutUser(c *gin.Context) {
	sessionVal, exists := c.Get("session")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	session, ok := sessionVal.(models.Session)
	if !ok {
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	if err := config.DB.Delete(&models.Session{}, session.ID).Error; err != nil {
		utils.LogError("Logout failed - could not delete session %d: %v", session.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)

	utils.LogInfo("User %d logged out", session.UserID)
	utils.Success(c, "Logged out successfully", nil)
}
