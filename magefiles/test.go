// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets (all, unit, property).
type Test mg.Namespace

// All runs all tests.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Unit runs all tests with the race detector and default rapid settings.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Property runs the rapid property tests with a larger number of checks.
func (Test) Property() error {
	return sh.RunV(binGo, "test", "-run", "Property", "./pkg/types/...", "-rapid.checks=10000")
}
