//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They keep mockgen, invoked through
// `go generate`, tracked in go.mod / go.sum.
package payroll_lab

import (
	_ "go.uber.org/mock/mockgen"
)
