package configs

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
)

// GoogleOAuthConfig login ve takvim erişimi için OAuth2 yapılandırmasını kurar.
// Calendar scope'u davetli senkronizasyonu için gereklidir.
func GoogleOAuthConfig(cfg *Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
			calendar.CalendarScope,
		},
		Endpoint: google.Endpoint,
	}
}
