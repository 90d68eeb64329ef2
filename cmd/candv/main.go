package main

import (
	"fmt"
	"os"

	"github.com/o3bvv/candv/lib/generator"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "generate":
		if err := runGenerate(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "clean":
		if err := runClean(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("candv version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`candv - constants and values code generator

Usage:
  candv <command> [arguments]

Commands:
  generate [paths]      Generate containers from *.candv.yaml files
  clean [paths]         Remove generated files (*_candv.go)
  version               Print version
  help                  Show this help

Options for generate:
  --dry-run             Show what would be generated without writing files

Examples:
  candv generate ./...                  Generate for all definition files
  candv generate ./constants            Generate for a specific directory
  candv generate colors.candv.yaml      Generate for a single file
  candv generate --dry-run ./...        Preview generation
  candv clean ./...                     Remove all generated files`)
}

func runGenerate(args []string) error {
	var dryRun bool
	var paths []string

	for _, arg := range args {
		if arg == "--dry-run" {
			dryRun = true
		} else {
			paths = append(paths, arg)
		}
	}

	if len(paths) == 0 {
		paths = []string{"./..."}
	}

	gen := generator.New(generator.Options{
		DryRun: dryRun,
	})

	return gen.Generate(paths...)
}

func runClean(args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{"./..."}
	}

	gen := generator.New(generator.Options{})
	return gen.Clean(paths...)
}
