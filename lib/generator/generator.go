// Package generator turns YAML constant definitions into Go source declaring
// candv containers.
//
// Definition files are named *.candv.yaml; each produces a sibling
// *_candv.go file. The cmd/candv CLI is a thin wrapper over this package.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefinitionsSuffix is the file name suffix of definition files.
const DefinitionsSuffix = ".candv.yaml"

// GeneratedSuffix is the file name suffix of generated files.
const GeneratedSuffix = "_candv.go"

// Options configures the generator.
type Options struct {
	DryRun bool
}

// Generator generates candv container declarations.
type Generator struct {
	opts Options
}

// New creates a new generator.
func New(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Generate generates code for every definitions file found under the given
// paths. A path may be a definitions file, a directory, or a directory with
// a /... suffix for recursive walking.
func (g *Generator) Generate(paths ...string) error {
	files, err := g.findDefinitions(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found", DefinitionsSuffix)
	}

	for _, file := range files {
		if err := g.generateFile(file); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	return nil
}

// Clean removes generated files under the given paths.
func (g *Generator) Clean(paths ...string) error {
	for _, path := range paths {
		root := strings.TrimSuffix(path, "/...")
		if root == "" {
			root = "."
		}

		err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return skipDir(p, info)
			}
			if strings.HasSuffix(p, GeneratedSuffix) {
				fmt.Printf("removing %s\n", p)
				return os.Remove(p)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// findDefinitions resolves paths to definition files.
func (g *Generator) findDefinitions(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		recursive := strings.HasSuffix(path, "/...")
		root := strings.TrimSuffix(path, "/...")
		if root == "" || root == "." {
			root = "."
		}

		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if !strings.HasSuffix(root, DefinitionsSuffix) {
				return nil, fmt.Errorf("%s is not a %s file", root, DefinitionsSuffix)
			}
			files = append(files, root)
			continue
		}

		err = filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if p != root && !recursive {
					return filepath.SkipDir
				}
				return skipDir(p, info)
			}
			if strings.HasSuffix(p, DefinitionsSuffix) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// skipDir filters hidden directories, vendor, and testdata during walks.
func skipDir(path string, info os.FileInfo) error {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") && base != "." {
		return filepath.SkipDir
	}
	if base == "vendor" || base == "testdata" {
		return filepath.SkipDir
	}
	return nil
}

// generateFile renders one definitions file into its sibling generated file.
func (g *Generator) generateFile(path string) error {
	defs, err := LoadDefinitions(path)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(path), DefinitionsSuffix)
	outputFile := filepath.Join(filepath.Dir(path), base+GeneratedSuffix)

	fmt.Printf("generating %s\n", outputFile)
	if g.opts.DryRun {
		return nil
	}

	code, err := render(defs)
	if err != nil {
		return err
	}
	return os.WriteFile(outputFile, code, 0644)
}
