// Package testutil provides utilities for testing zat components.
//
// Key components:
//   - TestRepo: declarative builder for template repositories on an
//     afero filesystem (in memory by default)
//   - Variable helpers producing variable file JSON
//   - Assertions on generated output
//
// All test data should be defined inline, not in external files.
package testutil
