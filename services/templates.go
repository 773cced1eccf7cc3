package services

import (
	"embed"
	"errors"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// ErrDelivery marks a failure on the email leg, after the record was already
// durably stored. Handlers still report it as a generic failure; the typed
// error keeps the two legs distinguishable internally.
var ErrDelivery = errors.New("email delivery failed")

func parseTemplate(name string) (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/"+name)
}
