package api

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"github.com/crowdconsole/crowdfund/internal/config"
)

func NewHandler(database *gorm.DB, cfg config.Config, templateDir string) (*Handler, error) {
	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	funcMap := template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"formatAmount": func(value int64) string {
			return fmt.Sprintf("%d EGP", value)
		},
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"login",
		"register",
		"project_list",
		"project_detail",
		"project_form",
		"my_projects",
	}
	for _, page := range pages {
		templatePath := filepath.Join(templateDir, page+".html")
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			templatePath,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	handler := &Handler{
		db:                 database,
		secretKey:          []byte(cfg.SecretKey),
		location:           location,
		cookieSecure:       cfg.CookieSecure,
		baseURL:            cfg.BaseURL,
		maxTargetAmount:    cfg.MaxTargetAmount,
		activationRequired: cfg.ActivationRequired,
		templates:          templates,
	}
	return handler.withDependencies(database), nil
}
