package service_test

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"shift-planning-backend/internal/testutils"
)

// TestMain runs before all service tests and ensures Docker cleanup
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Service tests interrupted, cleaning up Docker containers...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	testutils.CleanupSharedContainer()
	os.Exit(code)
}
