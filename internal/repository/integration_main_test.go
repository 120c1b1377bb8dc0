//go:build integration
// +build integration

package repository

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"duty-roster-backend/internal/testutils"
)

// TestMain purges the shared Postgres container after the integration run, interrupted or not
func TestMain(m *testing.M) {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupted
		log.Println("integration run interrupted, purging postgres container")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
