package integration_test

import (
	"log"
	"os"
	"sync"
	"testing"

	"movieblend_backend/test/helpers"
)

// Глобальные переменные для общего состояния
var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer возвращает тестовый сервер (создает при первом вызове)
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		os.Setenv("SERVER_PORT", "4001")
		os.Setenv("SERVER_ENV", "test")
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "my_super_secret_key_for_tests_12345")
		}

		log.Println("--- [GetTestServer] Initializing test server... ---")
		globalTestServer = helpers.NewTestServer(t)
		log.Println("--- [GetTestServer] Test server ready ---")
	})
	if globalTestServer == nil {
		t.Skip("DATABASE_URL is not set, skipping integration tests")
	}
	return globalTestServer
}

// TestMain только для глобальной очистки
func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		log.Println("--- [TestMain] Cleaning up... ---")
		globalTestServer.Close()
	}

	os.Exit(code)
}
