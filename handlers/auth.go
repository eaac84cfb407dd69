package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/invoice_backend/middlewares"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(r gin.IRouter, api *API) {
	grp := r.Group("/auth")
	grp.POST("/register", registerHandler(api))
	grp.POST("/login", loginHandler(api))
	grp.POST("/refresh", refreshHandler(api))
	grp.POST("/logout", logoutHandler(api))
	grp.GET("/profile", middlewares.RequireAuth(), profileHandler(api))
	grp.POST("/request-password-reset", requestPasswordResetHandler(api))
	grp.POST("/reset-password", resetPasswordHandler(api))
	grp.GET("/verify-email", verifyEmailHandler(api))
}

func sessionKey(refreshToken string) string {
	return "Session:" + refreshToken
}

// parseSessionValue splits the "userType:userId" mirror value.
func parseSessionValue(v string) (string, uint, bool) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return "", 0, false
	}
	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return "", 0, false
	}
	return parts[0], uint(id), true
}

// issueTokenPair creates the JWT access token plus an opaque refresh
// token backed by a sessions row. The refresh token is mirrored into
// redis with a matching TTL so revocation checks stay cheap.
func (api *API) issueTokenPair(c *gin.Context, userId uint, email, userType string) (string, string, error) {
	accessToken, err := utils.JwtGenerate([]byte(api.Cfg.JwtSecret), userId, email, userType, api.Cfg.AccessTokenLifespan)
	if err != nil {
		return "", "", err
	}

	refreshToken := uuid.NewString()
	session := models.Session{
		UserId:       userId,
		UserType:     userType,
		RefreshToken: refreshToken,
		DeviceInfo:   c.Request.UserAgent(),
		IpAddress:    c.ClientIP(),
		ExpiresAt:    time.Now().Add(api.Cfg.RefreshTokenLifespan),
	}
	if err := api.Store.DB().WithContext(c.Request.Context()).Create(&session).Error; err != nil {
		return "", "", err
	}

	// Best effort; redis being down only slows down refresh lookups.
	_ = api.Cache.SetValue(c.Request.Context(), sessionKey(refreshToken),
		fmt.Sprintf("%s:%d", userType, userId), api.Cfg.RefreshTokenLifespan)

	return accessToken, refreshToken, nil
}

func registerHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required,min=8"`
			FullName string `json:"fullName" binding:"required"`
			Phone    string `json:"phone"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		if req.Phone != "" {
			if err := utils.ValidatePhoneNumber(req.Phone, api.Cfg.DefaultRegion); err != nil {
				badRequest(c, "invalid phone number")
				return
			}
		}

		db := api.Store.DB().WithContext(c.Request.Context())

		var count int64
		db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
		if count == 0 {
			db.Model(&models.SubUser{}).Where("email = ?", req.Email).Count(&count)
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "User already exists"})
			return
		}

		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			api.internalError(c, "auth", "Register", req.Email, err)
			return
		}

		user := models.User{
			Email:             req.Email,
			PasswordHash:      string(hash),
			FullName:          req.FullName,
			Phone:             req.Phone,
			VerificationToken: uuid.NewString(),
			IsActive:          true,
		}
		if err := db.Create(&user).Error; err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"success": false, "message": "User already exists"})
				return
			}
			api.internalError(c, "auth", "Register", req.Email, err)
			return
		}

		// Delivery of the verification mail is owned by a separate
		// notification service; we only record the token here.
		api.Log.WithFields(logrus.Fields{
			"module": "auth",
			"userId": user.ID,
		}).Info("verification token issued")

		accessToken, refreshToken, err := api.issueTokenPair(c, user.ID, user.Email, models.UserTypeMain)
		if err != nil {
			api.internalError(c, "auth", "Register", user.Email, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":      true,
			"message":      "Account created",
			"user":         user,
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		})
	}
}

func loginHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
			UserType string `json:"userType"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		db := api.Store.DB().WithContext(c.Request.Context())

		if req.UserType == models.UserTypeSub {
			var sub models.SubUser
			err := db.Where("email = ?", req.Email).First(&sub).Error
			if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && utils.ComparePassword(sub.PasswordHash, req.Password) != nil) {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
				return
			}
			if err != nil {
				api.internalError(c, "auth", "Login", req.Email, err)
				return
			}
			if !sub.IsActive {
				c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Account disabled"})
				return
			}

			accessToken, refreshToken, err := api.issueTokenPair(c, sub.ID, sub.Email, models.UserTypeSub)
			if err != nil {
				api.internalError(c, "auth", "Login", sub.Email, err)
				return
			}

			c.JSON(http.StatusOK, gin.H{
				"success":      true,
				"userType":     models.UserTypeSub,
				"user":         sub,
				"accessToken":  accessToken,
				"refreshToken": refreshToken,
			})
			return
		}

		var user models.User
		err := db.Where("email = ?", req.Email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && utils.ComparePassword(user.PasswordHash, req.Password) != nil) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		if err != nil {
			api.internalError(c, "auth", "Login", req.Email, err)
			return
		}
		if !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Account disabled"})
			return
		}

		accessToken, refreshToken, err := api.issueTokenPair(c, user.ID, user.Email, models.UserTypeMain)
		if err != nil {
			api.internalError(c, "auth", "Login", user.Email, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"userType":     models.UserTypeMain,
			"user":         user,
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		})
	}
}

func refreshHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			RefreshToken string `json:"refreshToken" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		db := api.Store.DB().WithContext(c.Request.Context())

		// Fast path: the redis mirror carries the same TTL as the
		// session row, so a hit proves the grant is still live. A miss
		// is inconclusive (redis may be cold) and falls back to the
		// sessions table.
		var userType string
		var userId uint
		if cached, hit, _ := api.Cache.GetValue(c.Request.Context(), sessionKey(req.RefreshToken)); hit {
			if ut, id, ok := parseSessionValue(cached); ok {
				userType, userId = ut, id
			}
		}
		if userType == "" {
			var session models.Session
			err := db.Where("refresh_token = ?", req.RefreshToken).First(&session).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid refresh token"})
				return
			}
			if err != nil {
				api.internalError(c, "auth", "Refresh", nil, err)
				return
			}
			if session.Expired(time.Now()) {
				db.Delete(&session)
				_ = api.Cache.RemoveKey(c.Request.Context(), sessionKey(req.RefreshToken))
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Session expired"})
				return
			}
			userType, userId = session.UserType, session.UserId
		}

		var email string
		if userType == models.UserTypeSub {
			var sub models.SubUser
			if err := db.First(&sub, userId).Error; err != nil || !sub.IsActive {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Account unavailable"})
				return
			}
			email = sub.Email
		} else {
			var user models.User
			if err := db.First(&user, userId).Error; err != nil || !user.IsActive {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Account unavailable"})
				return
			}
			email = user.Email
		}

		accessToken, err := utils.JwtGenerate([]byte(api.Cfg.JwtSecret), userId, email, userType, api.Cfg.AccessTokenLifespan)
		if err != nil {
			api.internalError(c, "auth", "Refresh", userId, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "accessToken": accessToken})
	}
}

func logoutHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			RefreshToken string `json:"refreshToken" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		db := api.Store.DB().WithContext(c.Request.Context())
		db.Where("refresh_token = ?", req.RefreshToken).Delete(&models.Session{})
		_ = api.Cache.RemoveKey(c.Request.Context(), sessionKey(req.RefreshToken))

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
	}
}

func profileHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middlewares.ActorFromContext(c.Request.Context())
		db := api.Store.DB().WithContext(c.Request.Context())

		if actor.UserType == models.UserTypeSub {
			var sub models.SubUser
			if err := db.First(&sub, actor.UserId).Error; err != nil {
				api.internalError(c, "auth", "Profile", actor.UserId, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "userType": models.UserTypeSub, "user": sub})
			return
		}

		var user models.User
		if err := db.First(&user, actor.UserId).Error; err != nil {
			api.internalError(c, "auth", "Profile", actor.UserId, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "userType": models.UserTypeMain, "user": user})
	}
}

func requestPasswordResetHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		db := api.Store.DB().WithContext(c.Request.Context())

		var user models.User
		err := db.Where("email = ?", req.Email).First(&user).Error
		if err == nil {
			user.ResetToken = uuid.NewString()
			user.ResetTokenExpires = time.Now().Add(api.Cfg.ResetTokenLifespan)
			if err := db.Save(&user).Error; err != nil {
				api.internalError(c, "auth", "RequestPasswordReset", user.ID, err)
				return
			}
			api.Log.WithFields(logrus.Fields{
				"module": "auth",
				"userId": user.ID,
			}).Info("password reset token issued")
		}

		// The response is identical whether or not the account exists.
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "If that account exists, a reset link has been sent",
		})
	}
}

func resetPasswordHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Token       string `json:"token" binding:"required"`
			NewPassword string `json:"newPassword" binding:"required,min=8"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		db := api.Store.DB().WithContext(c.Request.Context())

		var user models.User
		err := db.Where("reset_token = ?", req.Token).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && time.Now().After(user.ResetTokenExpires)) {
			badRequest(c, "Invalid or expired reset token")
			return
		}
		if err != nil {
			api.internalError(c, "auth", "ResetPassword", nil, err)
			return
		}

		hash, err := utils.HashPassword(req.NewPassword)
		if err != nil {
			api.internalError(c, "auth", "ResetPassword", user.ID, err)
			return
		}

		user.PasswordHash = string(hash)
		user.ResetToken = ""
		user.ResetTokenExpires = time.Time{}
		if err := db.Save(&user).Error; err != nil {
			api.internalError(c, "auth", "ResetPassword", user.ID, err)
			return
		}

		api.revokeSessions(c, user.ID, models.UserTypeMain)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated"})
	}
}

// revokeSessions drops every refresh grant for one account, DB rows and
// redis mirrors both.
func (api *API) revokeSessions(c *gin.Context, userId uint, userType string) {
	db := api.Store.DB().WithContext(c.Request.Context())

	var sessions []models.Session
	db.Where("user_id = ? AND user_type = ?", userId, userType).Find(&sessions)
	keys := make([]string, 0, len(sessions))
	for _, s := range sessions {
		keys = append(keys, sessionKey(s.RefreshToken))
	}
	_ = api.Cache.RemoveKey(c.Request.Context(), keys...)
	db.Where("user_id = ? AND user_type = ?", userId, userType).Delete(&models.Session{})
}

func verifyEmailHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			badRequest(c, "token is required")
			return
		}

		db := api.Store.DB().WithContext(c.Request.Context())

		var user models.User
		err := db.Where("verification_token = ?", token).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			badRequest(c, "Invalid verification token")
			return
		}
		if err != nil {
			api.internalError(c, "auth", "VerifyEmail", nil, err)
			return
		}

		user.EmailVerified = true
		user.VerificationToken = ""
		if err := db.Save(&user).Error; err != nil {
			api.internalError(c, "auth", "VerifyEmail", user.ID, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email verified"})
	}
}
