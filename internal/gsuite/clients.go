// Package gsuite constructs the authorized Google Sheets and Calendar
// clients used as the system of record for appointments and call logs.
package gsuite

import (
	"context"
	"errors"
	"fmt"
	"os"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// Well-known service account key filenames checked when
// GOOGLE_CREDENTIALS_FILE is not set.
var fallbackCredentialFiles = []string{
	"derm-voice-agent-04e08d6adce7.json",
	"credentials.json",
}

// ErrNoCredentials is returned when no service account key file can be resolved.
var ErrNoCredentials = errors.New("gsuite: no Google credentials file found; set GOOGLE_CREDENTIALS_FILE or place credentials.json in the working directory")

// Clients bundles the authorized service handles. Construct once at startup
// and pass down explicitly; the underlying services are safe for concurrent use.
type Clients struct {
	Sheets   *sheets.Service
	Calendar *calendar.Service
}

// ResolveCredentialsFile returns the path of the service account key file to
// use: the configured path if set, otherwise the first existing well-known
// filename in the working directory.
func ResolveCredentialsFile(configured string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err != nil {
			return "", fmt.Errorf("gsuite: credentials file not found: %s", configured)
		}
		return configured, nil
	}
	for _, name := range fallbackCredentialFiles {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}
	return "", ErrNoCredentials
}

// NewClients authorizes Sheets and Calendar services from the resolved
// service account key file.
func NewClients(ctx context.Context, credentialsFile string) (*Clients, error) {
	path, err := ResolveCredentialsFile(credentialsFile)
	if err != nil {
		return nil, err
	}

	sheetsSvc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(path),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("gsuite: failed to create Sheets service: %w", err)
	}

	calendarSvc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(path),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("gsuite: failed to create Calendar service: %w", err)
	}

	return &Clients{Sheets: sheetsSvc, Calendar: calendarSvc}, nil
}
