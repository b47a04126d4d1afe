package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"
	"mibk.dev/yangfmt/modelfile"
	"mibk.dev/yangfmt/yang"
)

func main() {
	log.SetPrefix("yangfmt: ")
	log.SetFlags(0)
	cli.MainContext(context.Background(), MainCommand())
}

// loadBundle loads files, preceded by the dependencies their projects
// declare, and returns the options to print them with.
func loadBundle(files []string) (*modelfile.Bundle, yang.Options, error) {
	b := modelfile.NewBundle()
	opts := defaultOptions
	loaded := map[string]bool{}

	add := func(path string) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if loaded[abs] {
			return nil
		}
		loaded[abs] = true
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return b.Add(path, data)
	}

	for i, filename := range files {
		proj, err := findProject(filepath.Dir(filename))
		if err != nil {
			return nil, 0, err
		}
		if i == 0 {
			opts = proj.options(opts)
		}
		if proj != nil {
			for _, dep := range proj.Deps {
				if err := add(filepath.Join(proj.dir, dep)); err != nil {
					return nil, 0, err
				}
			}
		}
		if err := add(filename); err != nil {
			return nil, 0, err
		}
	}
	return b, opts, nil
}
