//go:build tools

package tools

// Pins the mock generator version. Run: go run github.com/vektra/mockery/v2
// from the repository root to regenerate pkg/media/mocks.
import (
	_ "github.com/vektra/mockery/v2"
)
