package services

import (
	"log"

	"github.com/crowdconsole/crowdfund/internal/models"
)

// MailService delivers account mail through a console backend: messages
// are written to the process log instead of an SMTP relay. The deployment
// reads activation links from stdout.
type MailService struct {
	logger *log.Logger
}

func NewMailService(logger *log.Logger) *MailService {
	if logger == nil {
		logger = log.Default()
	}
	return &MailService{logger: logger}
}

func (service *MailService) SendActivationEmail(user *models.User, activationURL string) {
	service.logger.Printf(
		"To: %s\nSubject: Activate Your Account\n\nHello %s,\n\nPlease activate your account by visiting:\n%s\n",
		user.Email,
		user.FullName(),
		activationURL,
	)
}
