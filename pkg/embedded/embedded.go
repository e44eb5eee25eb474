// Package embedded provides embedded static assets for the application.
package embedded

import (
	_ "embed"
)

// Geography is the default country table: every country label a fund
// provider is known to publish, with its region and market classification.
//
//go:embed geography.json
var Geography []byte
