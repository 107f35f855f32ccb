// controllers/payment.go
package controllers

import (
	"net/http"
	"strconv"

	"beautybook-backend/config"
	"beautybook-backend/models"
	"beautybook-backend/services"
	"beautybook-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StartOnboarding ensures a connected payment account exists for the
// business and returns a single-use onboarding link.
func StartOnboarding(c *gin.Context) {
	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	var owner models.User
	if err := config.DB.First(&owner, "id = ?", business.OwnerID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	accountID, err := services.EnsureStripeAccount(config.DB, business, owner.Email)
	if err != nil {
		utils.GetLogger().Error("Failed to ensure payment account", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Payment provider error")
		return
	}

	base := config.AppConfig.FrontendURL
	url, err := services.OnboardingLink(accountID,
		base+"/dashboard/payments?onboarding=refresh",
		base+"/dashboard/payments?onboarding=success")
	if err != nil {
		utils.GetLogger().Error("Failed to create onboarding link", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Payment provider error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// GetPayoutPortal returns a login link to the payout dashboard for an
// onboarded business.
func GetPayoutPortal(c *gin.Context) {
	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	if business.StripeAccountID == "" || !business.OnboardingComplete {
		utils.RespondWithError(c, http.StatusBadRequest, "Payment onboarding not completed")
		return
	}

	url, err := services.DashboardLink(business.StripeAccountID)
	if err != nil {
		utils.GetLogger().Error("Failed to create dashboard link", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Payment provider error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// OnboardingCallback handles the payment provider's return redirect and
// forwards to the UI with a success/error flag.
func OnboardingCallback(c *gin.Context) {
	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	base := config.AppConfig.FrontendURL

	if c.Query("status") != "success" {
		c.Redirect(http.StatusFound, base+"/dashboard/payments?onboarding=error")
		return
	}

	if err := config.DB.Model(business).Update("onboarding_complete", true).Error; err != nil {
		c.Redirect(http.StatusFound, base+"/dashboard/payments?onboarding=error")
		return
	}

	c.Redirect(http.StatusFound, base+"/dashboard/payments?onboarding=success")
}

// PreviewFees returns the fee breakdown for a decimal amount.
func PreviewFees(c *gin.Context) {
	raw := c.Query("amount")
	if raw == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "amount is required")
		return
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid amount")
		return
	}

	c.JSON(http.StatusOK, services.CalculateFees(amount))
}
