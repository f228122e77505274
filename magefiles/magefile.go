// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

// Package main provides build targets for the masthead project using Mage.
//
// Usage:
//
//	mage build          Compile masthead binary to bin/
//	mage demo           Build and run the demonstration report
//	mage test:all       Run all tests
//	mage test:unit      Run all tests with the race detector
//	mage test:property  Run property tests with more rapid checks
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install masthead to GOPATH/bin
//	mage stats          Print Go LOC counts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "masthead"
	binaryDir  = "bin"
	cmdDir     = "./cmd/masthead"
)

// Build compiles the masthead binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Demo builds the binary and prints the demonstration report.
func Demo() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName), "demo")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
