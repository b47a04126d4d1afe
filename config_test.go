package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"mibk.dev/yangfmt/yang"
)

func TestSetOption(t *testing.T) {
	var opts yang.Options
	for _, name := range []string{"compact", "spacing", "color"} {
		if !setOption(&opts, name) {
			t.Errorf("option %q not recognized", name)
		}
	}
	if want := yang.CompactTypes | yang.TextSpacing | yang.Colorize; opts != want {
		t.Errorf("got options %b, want %b", opts, want)
	}
	if setOption(&opts, "align") {
		t.Errorf("unknown option accepted")
	}
}

const typesModel = `
modules:
- name: types
  namespace: urn:types
  prefix: t
  typedefs:
  - name: word
    type: string
`

const mainModel = `
modules:
- name: main
  namespace: urn:main
  prefix: m
  imports:
  - module: types
    prefix: t
  nodes:
  - leaf: w
    type: "t:word"
`

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFindProject(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		projectFile:         "options: [spacing]\ndeps: [types.yaml]\n",
		"models/main.yaml":  mainModel,
		"types.yaml":        typesModel,
		"models/x/dummy.md": "",
	})

	for _, sub := range []string{"", "models", "models/x"} {
		p, err := findProject(filepath.Join(dir, sub))
		if err != nil {
			t.Fatalf("%q: %v", sub, err)
		}
		if p == nil || p.dir != dir {
			t.Fatalf("%q: got project %+v, want one in %s", sub, p, dir)
		}
		if diff := cmp.Diff(p.Deps, []string{"types.yaml"}); diff != "" {
			t.Errorf("%q: deps (-got +want)\n%s", sub, diff)
		}
	}

	p, _ := findProject(dir)
	if got := p.options(yang.Standard); got != yang.Standard|yang.TextSpacing {
		t.Errorf("got options %b", got)
	}
	var none *project
	if got := none.options(yang.Standard); got != yang.Standard {
		t.Errorf("nil project changed options to %b", got)
	}
}

func TestFindProjectErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"unknown option", "options: [align]\n", `unknown option "align"`},
		{"unknown field", "dependencies: [a.yaml]\n", "dependencies"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFiles(t, dir, map[string]string{projectFile: tt.data})
			_, err := findProject(dir)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got err %v, want one mentioning %s", err, tt.wantErr)
			}
		})
	}
}

func TestLoadBundle(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		projectFile:        "options: [spacing]\ndeps: [types.yaml]\n",
		"types.yaml":       typesModel,
		"models/main.yaml": mainModel,
	})

	// The dependency is named explicitly too; it must not be loaded twice.
	files := []string{
		filepath.Join(dir, "models/main.yaml"),
		filepath.Join(dir, "types.yaml"),
	}
	b, opts, err := loadBundle(files)
	if err != nil {
		t.Fatal(err)
	}
	if b.Main().Name != "main" {
		t.Errorf("main module = %s, want main", b.Main().Name)
	}
	if b.Module("types") == nil {
		t.Errorf("dependency not loaded")
	}
	if opts&yang.TextSpacing == 0 {
		t.Errorf("project options not applied: %b", opts)
	}
}
