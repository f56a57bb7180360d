package api

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/crowdconsole/crowdfund/internal/models"
)

// Activate consumes the emailed activation link. The token is bound to
// the account's active flag, so a second visit after a successful
// activation fails verification.
func (handler *Handler) Activate(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("uid"), 10, 64)
	if err != nil {
		return handler.respondActivationFailure(c)
	}

	user, err := handler.authService.FindByID(uint(userID))
	if err != nil {
		return handler.respondActivationFailure(c)
	}

	claims, err := handler.parseActivationToken(c.Params("token"))
	if err != nil || claims.UserID != user.ID || claims.AccountActive != user.IsActive {
		return handler.respondActivationFailure(c)
	}

	activated, err := handler.authService.Activate(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to activate account")
	}
	if err := handler.setAuthCookie(c, activated, false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	setFlashCookie(c, FlashPayload{Success: "Your account has been activated!"})
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (handler *Handler) respondActivationFailure(c *fiber.Ctx) error {
	if acceptsJSON(c) {
		return apiError(c, fiber.StatusBadRequest, "activation link is invalid")
	}
	setFlashCookie(c, FlashPayload{AuthError: "Activation link is invalid!"})
	return c.Redirect("/register", fiber.StatusSeeOther)
}

func (handler *Handler) buildActivationToken(user *models.User, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = activationTokenTTL
	}
	now := time.Now()

	claims := activationClaims{
		UserID:        user.ID,
		Purpose:       activationTokenPurpose,
		AccountActive: user.IsActive,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) parseActivationToken(raw string) (*activationClaims, error) {
	claims := &activationClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid activation token")
	}
	if claims.Purpose != activationTokenPurpose {
		return nil, errors.New("wrong token purpose")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, errors.New("activation token expired")
	}
	return claims, nil
}

func (handler *Handler) activationURL(userID uint, token string) string {
	return fmt.Sprintf("%s/activate/%d/%s", handler.baseURL, userID, token)
}
