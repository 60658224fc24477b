//go:build mage

package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/dkoosis/wiggle"
	binPath    = "./bin/wiggle"
)

// Default target - build the binary
var Default = Build

// Build builds the wiggle binary with version information
func Build() error {
	date := time.Now().UTC().Format(time.RFC3339)
	ldflags := fmt.Sprintf("-s -w -X '%[1]s/internal/version.Version=%[2]s' -X '%[1]s/internal/version.CommitHash=%[3]s' -X '%[1]s/internal/version.BuildDate=%[4]s'",
		modulePath, gitVersion(), gitCommit(), date)

	fmt.Println("Building wiggle...")
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, "./cmd/wiggle"); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	fmt.Printf("Built: %s\n", binPath)
	return nil
}

// Install installs wiggle into GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", "./cmd/wiggle")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("./bin")
}

// QA runs formatting, vet, lint and tests
func QA() {
	mg.SerialDeps(Lint.Format, Lint.Vet, Lint.Golangci, Test.All)
}

// Lint namespace for linting commands
type Lint mg.Namespace

// Format checks code formatting
func (Lint) Format() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("files need formatting:\n%s", out)
	}
	return nil
}

// Vet runs go vet
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Golangci runs golangci-lint if it is installed
func (Lint) Golangci() error {
	err := sh.RunV("golangci-lint", "run", "--timeout=5m", "./...")
	if isCommandNotFound(err) {
		fmt.Fprintln(os.Stderr, "golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
		return nil
	}
	return err
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs tests with race detector
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

// Demo plays a short shm animation
func Demo() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "wiggle", "shm", "-I", "200", "--no-usage")
}

func isCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, exec.ErrNotFound) || strings.Contains(err.Error(), "executable file not found")
}

func gitVersion() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(out)
}

func gitCommit() string {
	out, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(out)
}
