package models

import (
	"strings"
	"time"
)

// Application is a registered API client. Only the salted hash of its secret
// is ever persisted; the raw secret is returned to the caller once at
// registration time and never stored or logged.
type Application struct {
	ApplicationID   uint      `gorm:"primaryKey" json:"applicationId"`
	ApplicationName string    `json:"applicationName"`
	ClientID        string    `gorm:"uniqueIndex;not null" json:"clientId"`
	SecretSalt      string    `gorm:"not null" json:"-"`
	SecretHash      string    `gorm:"not null" json:"-"`
	Scopes          string    `json:"scopes"` // Comma-separated list: "read,write,delete"
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Application) TableName() string {
	return "applications"
}

// ScopeList splits the comma-delimited Scopes column into trimmed tags,
// dropping empty entries.
func (a *Application) ScopeList() []string {
	if a.Scopes == "" {
		return nil
	}
	parts := strings.Split(a.Scopes, ",")
	scopes := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			scopes = append(scopes, p)
		}
	}
	return scopes
}
