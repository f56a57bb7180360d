package services

import (
	"errors"
	"strings"
	"time"

	"github.com/crowdconsole/crowdfund/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account not activated")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	MarkActive(userID uint) error
}

type AuthService struct {
	users              AuthUserRepository
	activationRequired bool
}

func NewAuthService(users AuthUserRepository, activationRequired bool) *AuthService {
	return &AuthService{users: users, activationRequired: activationRequired}
}

func (service *AuthService) ActivationRequired() bool {
	return service.activationRequired
}

type RegistrationInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	MobilePhone     string
}

// Register validates the input, hashes the password and creates the
// account. With activation required the user starts inactive and must
// follow the emailed activation link before logging in.
func (service *AuthService) Register(input RegistrationInput, now time.Time) (*models.User, error) {
	email := NormalizeAuthEmail(input.Email)
	if email == "" {
		return nil, fieldError("email", "Enter a valid email address.")
	}
	if err := ValidateMobilePhone(input.MobilePhone); err != nil {
		return nil, err
	}
	if err := ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}
	if input.Password != input.ConfirmPassword {
		return nil, fieldError("confirm_password", "Passwords do not match.")
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		MobilePhone:  strings.TrimSpace(input.MobilePhone),
		IsActive:     !service.activationRequired,
		CreatedAt:    now,
	}
	if err := service.users.Create(&user); err != nil {
		// Unique index violation on a concurrent registration.
		return nil, ErrDuplicateEmail
	}
	return &user, nil
}

// Authenticate resolves login attempts. Unknown accounts and wrong
// passwords collapse into ErrInvalidCredentials so callers cannot probe
// which addresses are registered; ErrAccountInactive is only returned
// once the password has verified.
func (service *AuthService) Authenticate(emailRaw string, passwordRaw string) (*models.User, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}
	return &user, nil
}

// Activate flips the account active. Token verification happens at the
// HTTP layer; by the time this runs the caller has proven control of the
// registration email.
func (service *AuthService) Activate(userID uint) (*models.User, error) {
	if err := service.users.MarkActive(userID); err != nil {
		return nil, err
	}
	user, err := service.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
