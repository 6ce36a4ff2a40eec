package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.Timezone != "America/Chicago" {
		t.Fatalf("expected default timezone, got %s", cfg.Timezone)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected allow-all CORS default, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.AppointmentsSheetID != "" {
		t.Fatalf("expected empty appointments sheet id, got %s", cfg.AppointmentsSheetID)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CALLS_SHEET_ID", "calls-sheet")
	t.Setenv("APPOINTMENTS_SHEET_ID", "appt-sheet")
	t.Setenv("APPOINTMENTS_CALENDAR_ID", "cal@group.calendar.google.com")
	t.Setenv("TIMEZONE", "America/New_York")
	t.Setenv("GOOGLE_CREDENTIALS_FILE", "/etc/derm/sa.json")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://voiceflow.example, https://widget.example")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.CallsSheetID != "calls-sheet" {
		t.Fatalf("expected calls sheet override, got %s", cfg.CallsSheetID)
	}
	if cfg.AppointmentsSheetID != "appt-sheet" {
		t.Fatalf("expected appointments sheet override, got %s", cfg.AppointmentsSheetID)
	}
	if cfg.AppointmentsCalendarID != "cal@group.calendar.google.com" {
		t.Fatalf("expected calendar override, got %s", cfg.AppointmentsCalendarID)
	}
	if cfg.Timezone != "America/New_York" {
		t.Fatalf("expected timezone override, got %s", cfg.Timezone)
	}
	if cfg.GoogleCredentialsFile != "/etc/derm/sa.json" {
		t.Fatalf("expected credentials file override, got %s", cfg.GoogleCredentialsFile)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://widget.example" {
		t.Fatalf("expected two CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
}
