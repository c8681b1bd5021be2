package configs

import (
	"os"
	"testing"
)

// setupTestEnv sets up required environment variables for config unmarshaling
func setupTestEnv() {
	os.Setenv("APP_DEBUG", "false")
	os.Setenv("APP_ENV", "test")
	os.Setenv("APP_PORT", "8080")
	os.Setenv("DYNAMO_REGION", "us-east-1")
	os.Setenv("DYNAMO_ENDPOINT", "")
	os.Setenv("DYNAMO_TABLE", "todos-test")
}

// cleanupTestEnv cleans up environment variables after tests
func cleanupTestEnv() {
	os.Unsetenv("APP_DEBUG")
	os.Unsetenv("APP_ENV")
	os.Unsetenv("APP_PORT")
	os.Unsetenv("DYNAMO_REGION")
	os.Unsetenv("DYNAMO_ENDPOINT")
	os.Unsetenv("DYNAMO_TABLE")
}

// TestDynamoStructFieldsUnmarshal tests that Dynamo struct fields are properly unmarshaled from config
func TestDynamoStructFieldsUnmarshal(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("DYNAMO_REGION", "eu-west-1")
	os.Setenv("DYNAMO_TABLE", "todos-custom")

	// Initialize config - using relative path from configs directory
	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Dynamo.Region != "eu-west-1" {
		t.Errorf("Expected Dynamo.Region to be eu-west-1, got %s", cfg.Dynamo.Region)
	}

	if cfg.Dynamo.Table != "todos-custom" {
		t.Errorf("Expected Dynamo.Table to be todos-custom, got %s", cfg.Dynamo.Table)
	}
}

// TestDynamoEndpointDefaultsToEmpty tests that an unset endpoint stays empty,
// which selects the real AWS endpoint rather than a local table
func TestDynamoEndpointDefaultsToEmpty(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Dynamo.Endpoint != "" {
		t.Errorf("Expected Dynamo.Endpoint to be empty, got %s", cfg.Dynamo.Endpoint)
	}
}

// TestAppConfigAccess tests config access via configs.GetViper().App
func TestAppConfigAccess(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("APP_PORT", "9090")

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.App.Port != "9090" {
		t.Errorf("Expected App.Port to be 9090, got %s", cfg.App.Port)
	}

	if cfg.App.Env != "test" {
		t.Errorf("Expected App.Env to be test, got %s", cfg.App.Env)
	}
}
