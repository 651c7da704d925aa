package service

import (
	"fmt"
	"os"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	dataDir string
}

// NewSystemService creates a new SystemService
func NewSystemService(dataDir string) *SystemService {
	return &SystemService{
		dataDir: dataDir,
	}
}

// CheckHealth checks that the portfolio data directory is accessible,
// creating it if it does not exist yet.
func (s *SystemService) CheckHealth() error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("data directory inaccessible: %w", err)
	}
	return nil
}

// CheckVersion returns the application version string.
func (s *SystemService) CheckVersion() string {
	return version.Version
}
