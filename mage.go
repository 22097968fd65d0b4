//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput                 = "gen"
	sqliteRatingsFileLocation = "rating.sqlite"
	ratingBin                 = "./bin/courtrating"
	configPath                = "configs/rating.toml"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
	jetTool      = toolsBinDir + "jet"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds the courtrating binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", ratingBin, "./cmd/courtrating")
}

// Run rates the configured season once
func Run() error {
	mg.Deps(Build)
	return sh.Run(ratingBin, "-config", configPath)
}

// Serve serves the latest stored snapshot
func Serve() error {
	mg.Deps(Build)
	return sh.Run(ratingBin, "-config", configPath, "-serve")
}

// GenJet regenerates the query builders from a migrated snapshot database
func GenJet() error {
	mg.Deps(buildJetTool)
	if _, err := os.Stat(sqliteRatingsFileLocation); err != nil {
		return err
	}
	return sh.Run(jetTool, "-source", "sqlite", "-dsn", sqliteRatingsFileLocation, "-path", jetOutput)
}

func buildJetTool() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-modfile", toolsModfile, "-o", jetTool, "github.com/go-jet/jet/v2/cmd/jet")
}

func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return sh.Run(
		"go", "build",
		"-modfile", toolsModfile,
		"-o", lintTool,
		"github.com/golangci/golangci-lint/cmd/golangci-lint",
	)
}

// Test runs the unit tests with the race detector
func Test() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "test", "-race", "./...")
}
