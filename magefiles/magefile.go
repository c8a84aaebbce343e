//go:build mage

// Package main provides build targets for the go-enum module using Mage.
//
// Usage:
//
//	mage test      Run all tests with the race detector
//	mage bench     Run benchmarks
//	mage lint      Run golangci-lint
//	mage coverage  Run tests with coverage and print the summary
//	mage clean     Remove generated artifacts
package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/sh"
)

const coverProfile = "coverage.out"

// Test runs all tests with the race detector enabled.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Bench runs the benchmarks.
func Bench() error {
	return sh.RunV("go", "test", "-bench=.", "-benchmem", "-run=^$", "./...")
}

// Lint runs golangci-lint over the module.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Coverage runs the tests with coverage and prints the per-function summary.
func Coverage() error {
	if err := sh.RunV("go", "test", "-coverprofile="+coverProfile, "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func="+coverProfile)
}

// Clean removes generated artifacts.
func Clean() error {
	if err := os.Remove(coverProfile); err != nil && !os.IsNotExist(err) {
		return err
	}
	fmt.Println("clean")
	return nil
}
