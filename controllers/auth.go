package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"beautybook-backend/config"
	"beautybook-backend/models"
	"beautybook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Password     string `json:"password" binding:"required,min=8"`
	Role         string `json:"role" binding:"required,oneof=CUSTOMER BUSINESS_OWNER"`
	BusinessName string `json:"businessName"` // required for BUSINESS_OWNER
	Slug         string `json:"slug"`         // derived from businessName when empty
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

var errSlugTaken = errors.New("slug already taken")

// controllers/auth.go
func Register(c *gin.Context) {
	var input RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	slug := input.Slug
	if input.Role == utils.RoleBusinessOwner {
		if input.BusinessName == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "businessName is required for business owners")
			return
		}
		if slug == "" {
			slug = utils.Slugify(input.BusinessName)
		}
		if !utils.ValidateSlug(slug) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid slug")
			return
		}
	}

	// Check if email already exists
	var existingUser models.User
	result := config.DB.Where("email = ?", input.Email).First(&existingUser)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	newUser := models.User{
		Email:    input.Email,
		Phone:    input.Phone,
		Name:     input.Name,
		Password: input.Password, // Hashed in BeforeCreate hook
		Role:     input.Role,
		IsActive: true,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}

		if input.Role == utils.RoleBusinessOwner {
			var taken int64
			if err := tx.Model(&models.Business{}).Where("slug = ?", slug).Count(&taken).Error; err != nil {
				return err
			}
			if taken > 0 {
				return errSlugTaken
			}
			business := models.Business{
				OwnerID:  newUser.ID,
				Name:     input.BusinessName,
				Slug:     slug,
				Phone:    input.Phone,
				IsActive: true,
			}
			if err := tx.Create(&business).Error; err != nil {
				return err
			}
		}

		verification := models.VerificationToken{
			UserID:    newUser.ID,
			Token:     uuid.NewString(),
			ExpiresAt: time.Now().Add(48 * time.Hour),
		}
		if err := tx.Create(&verification).Error; err != nil {
			return err
		}
		// Email delivery is handled by an external collaborator.
		utils.GetLogger().Info("Verification token issued",
			zap.String("email", newUser.Email), zap.String("token", verification.Token))
		return nil
	})
	if err != nil {
		if errors.Is(err, errSlugTaken) {
			utils.RespondWithError(c, http.StatusConflict, "Slug already taken")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	token, err := utils.GenerateToken(newUser.ID.String(), newUser.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.SetCookie("token", token, 24*3600, "/", "", true, true)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":    newUser.ID,
			"email": newUser.Email,
			"name":  newUser.Name,
			"role":  newUser.Role,
		},
	})
}

func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	email := strings.TrimSpace(input.Email)

	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	c.SetCookie("token", token, 24*3600, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

func Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":            user.ID,
			"email":         user.Email,
			"name":          user.Name,
			"phone":         user.Phone,
			"role":          user.Role,
			"emailVerified": user.EmailVerified,
		},
	})
}

// VerifyEmail consumes a single-use verification token. The token row is
// hard-deleted whether it verified the user or had already expired.
func VerifyEmail(c *gin.Context) {
	raw := c.Query("token")
	if raw == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing token")
		return
	}

	var token models.VerificationToken
	if err := config.DB.Where("token = ?", raw).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Token not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if time.Now().After(token.ExpiresAt) {
		config.DB.Delete(&token)
		utils.RespondWithError(c, http.StatusBadRequest, "Token expired")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", token.UserID).
			Update("email_verified", true).Error; err != nil {
			return err
		}
		return tx.Delete(&token).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to verify email")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified"})
}
