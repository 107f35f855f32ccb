// services/payment.go
package services

import (
	"fmt"

	"beautybook-backend/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/account"
	"github.com/stripe/stripe-go/v76/accountlink"
	"github.com/stripe/stripe-go/v76/loginlink"
	"gorm.io/gorm"
)

// EnsureStripeAccount returns the business's Express account id, creating
// the account on first use and persisting the reference.
func EnsureStripeAccount(db *gorm.DB, biz *models.Business, ownerEmail string) (string, error) {
	if biz.StripeAccountID != "" {
		return biz.StripeAccountID, nil
	}

	params := &stripe.AccountParams{
		Type:  stripe.String(string(stripe.AccountTypeExpress)),
		Email: stripe.String(ownerEmail),
		BusinessProfile: &stripe.AccountBusinessProfileParams{
			Name: stripe.String(biz.Name),
		},
	}
	acct, err := account.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create connected account: %w", err)
	}

	if err := db.Model(biz).Update("stripe_account_id", acct.ID).Error; err != nil {
		return "", fmt.Errorf("failed to store connected account: %w", err)
	}
	biz.StripeAccountID = acct.ID
	return acct.ID, nil
}

// OnboardingLink creates a single-use account link for Express onboarding.
func OnboardingLink(accountID, refreshURL, returnURL string) (string, error) {
	link, err := accountlink.New(&stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create onboarding link: %w", err)
	}
	return link.URL, nil
}

// DashboardLink creates a login link to the Express payout dashboard.
func DashboardLink(accountID string) (string, error) {
	link, err := loginlink.New(&stripe.LoginLinkParams{
		Account: stripe.String(accountID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create dashboard link: %w", err)
	}
	return link.URL, nil
}
