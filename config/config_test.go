package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	configContent := `
server:
  port: 9090
minio:
  endpoint: "localhost:9000"
  access_key: "minioadmin"
  secret_key: "minioadmin"
  bucket: "test-bucket"
  use_ssl: false
  expire_days: 14
pdftext:
  api_url: "https://pdftext.test"
  api_token: "test-token"
  timeout_seconds: 30
auth:
  jwt_secret: "test-secret"
  token_expire_hours: 48
log:
  level: "debug"
  format: "json"
store:
  max_analyses: 50
users:
  - username: "testuser"
    password: "testpass"
    tenant: "testtenant"
`
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString(configContent); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Minio.Endpoint != "localhost:9000" {
		t.Errorf("Expected endpoint localhost:9000, got %s", cfg.Minio.Endpoint)
	}
	if cfg.Minio.ExpireDays != 14 {
		t.Errorf("Expected expire_days 14, got %d", cfg.Minio.ExpireDays)
	}
	if cfg.PDFText.APIURL != "https://pdftext.test" {
		t.Errorf("Expected pdftext api_url https://pdftext.test, got %s", cfg.PDFText.APIURL)
	}
	if cfg.PDFText.TimeoutSeconds != 30 {
		t.Errorf("Expected timeout_seconds 30, got %d", cfg.PDFText.TimeoutSeconds)
	}
	if cfg.Auth.TokenExpireHours != 48 {
		t.Errorf("Expected token_expire_hours 48, got %d", cfg.Auth.TokenExpireHours)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Expected log format json, got %s", cfg.Log.Format)
	}
	if cfg.Store.MaxAnalyses != 50 {
		t.Errorf("Expected max_analyses 50, got %d", cfg.Store.MaxAnalyses)
	}
	if len(cfg.Users) != 1 {
		t.Fatalf("Expected 1 user, got %d", len(cfg.Users))
	}
	if cfg.Users[0].Username != "testuser" {
		t.Errorf("Expected username testuser, got %s", cfg.Users[0].Username)
	}
}

func TestLoadDefaults(t *testing.T) {
	configContent := `
auth:
  jwt_secret: "secret"
`
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString(configContent); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Minio.ExpireDays != 7 {
		t.Errorf("Expected default expire_days 7, got %d", cfg.Minio.ExpireDays)
	}
	if cfg.PDFText.TimeoutSeconds != 60 {
		t.Errorf("Expected default timeout_seconds 60, got %d", cfg.PDFText.TimeoutSeconds)
	}
	if cfg.Auth.TokenExpireHours != 24 {
		t.Errorf("Expected default token_expire_hours 24, got %d", cfg.Auth.TokenExpireHours)
	}
	if cfg.Store.MaxAnalyses != 100 {
		t.Errorf("Expected default max_analyses 100, got %d", cfg.Store.MaxAnalyses)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestFindUser(t *testing.T) {
	cfg := &Config{
		Users: []User{
			{Username: "alice", Password: "pw1", Tenant: "acme"},
			{Username: "bob", Password: "pw2", Tenant: "globex"},
		},
	}

	user := cfg.FindUser("bob")
	if user == nil {
		t.Fatal("Expected to find user bob")
	}
	if user.Tenant != "globex" {
		t.Errorf("Expected tenant globex, got %s", user.Tenant)
	}

	if cfg.FindUser("nobody") != nil {
		t.Error("Expected nil for unknown user")
	}
}
