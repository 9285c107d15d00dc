//go:build tools

// Package tools is never built; it exists only to pin developer tool
// dependencies in go.mod so `go mod tidy` doesn't drop them. Kind's
// String() method (internal/kind_string.go) is generated by stringer.
package tools

import (
	_ "golang.org/x/tools/cmd/stringer"
)
