package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"mibk.dev/yangfmt/yang"
)

var defaultOptions yang.Options

func init() {
	opts := strings.Split(os.Getenv("YANGFMT"), ",")
	for _, opt := range opts {
		switch opt = strings.TrimSpace(opt); opt {
		default:
			if !setOption(&defaultOptions, opt) {
				log.Printf("yangfmt: Unknown option %q", opt)
			}
		case "base":
		case "":
			defaultOptions = yang.Standard
		}
	}
}

func setOption(opts *yang.Options, name string) bool {
	switch name {
	case "compact":
		*opts |= yang.CompactTypes
	case "spacing":
		*opts |= yang.TextSpacing
	case "color":
		*opts |= yang.Colorize
	default:
		return false
	}
	return true
}

const projectFile = ".yangfmt.yaml"

// A project is described by the project file found in the directory
// of a model file or in one of its parents.
type project struct {
	dir string

	// Options are added to the default options.
	Options []string `yaml:"options"`

	// Deps lists model files, relative to the project directory,
	// that are loaded before the model files of the project.
	Deps []string `yaml:"deps"`
}

var projectCache = map[string]*project{}

// findProject returns the project dir belongs to, or nil.
func findProject(dir string) (*project, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	for d := dir; ; {
		if p, ok := projectCache[d]; ok {
			projectCache[dir] = p
			return p, nil
		}

		data, err := os.ReadFile(filepath.Join(d, projectFile))
		if os.IsNotExist(err) {
			parent := filepath.Dir(d)
			if parent != d {
				d = parent
				continue
			}
			// Root.
			projectCache[dir] = nil
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		p := &project{dir: d}
		if err := yaml.UnmarshalWithOptions(data, p, yaml.DisallowUnknownField()); err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Join(d, projectFile), err)
		}
		for _, opt := range p.Options {
			if !setOption(new(yang.Options), opt) {
				return nil, fmt.Errorf("%s: unknown option %q", filepath.Join(d, projectFile), opt)
			}
		}
		projectCache[d] = p
		projectCache[dir] = p
		return p, nil
	}
}

// options returns base with the project options added.
func (p *project) options(base yang.Options) yang.Options {
	if p == nil {
		return base
	}
	for _, opt := range p.Options {
		setOption(&base, opt)
	}
	return base
}
