package api

import (
	"html/template"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/crowdconsole/crowdfund/internal/db"
	"github.com/crowdconsole/crowdfund/internal/services"
)

type Handler struct {
	db                 *gorm.DB
	secretKey          []byte
	location           *time.Location
	cookieSecure       bool
	baseURL            string
	maxTargetAmount    int64
	activationRequired bool
	templates          map[string]*template.Template

	repositories    *db.Repositories
	authService     *services.AuthService
	projectService  *services.ProjectService
	donationService *services.DonationService
	mailService     *services.MailService
}

type credentialsInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	// Checkboxes post "on", so the raw value is parsed by hand.
	RememberMe string `json:"remember_me" form:"remember_me"`
}

type registerInput struct {
	FirstName       string `json:"first_name" form:"first_name"`
	LastName        string `json:"last_name" form:"last_name"`
	Email           string `json:"email" form:"email"`
	MobilePhone     string `json:"mobile_phone" form:"mobile_phone"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type projectFormInput struct {
	Title        string `json:"title" form:"title"`
	Details      string `json:"details" form:"details"`
	TargetAmount string `json:"target_amount" form:"target_amount"`
	StartDate    string `json:"start_date" form:"start_date"`
	EndDate      string `json:"end_date" form:"end_date"`
}

type donationFormInput struct {
	Amount     string `json:"amount" form:"amount"`
	DonorName  string `json:"donor_name" form:"donor_name"`
	DonorEmail string `json:"donor_email" form:"donor_email"`
}

type FlashPayload struct {
	AuthError     string `json:"auth_error,omitempty"`
	FormError     string `json:"form_error,omitempty"`
	Success       string `json:"success,omitempty"`
	LoginEmail    string `json:"login_email,omitempty"`
	RegisterEmail string `json:"register_email,omitempty"`
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
	activationTokenTTL   = 48 * time.Hour

	recentDonationsLimit = 10
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// activationClaims bind the token to the account's active flag, so the
// link stops verifying the moment activation flips it.
type activationClaims struct {
	UserID        uint   `json:"uid"`
	Purpose       string `json:"purpose"`
	AccountActive bool   `json:"act"`
	jwt.RegisteredClaims
}

const activationTokenPurpose = "activate"
