package main_test

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mibk.dev/yangfmt/format"
	"mibk.dev/yangfmt/yang"
	"rsc.io/diff"
)

var rewriteGolden = flag.Bool("f", false, "write golden files")

func TestFmt(t *testing.T) {
	files, err := filepath.Glob("testdata/*.yaml")
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range files {
		test := strings.TrimSuffix(name, ".yaml")
		t.Run(test, func(t *testing.T) {
			testFmt(t, name)
		})
	}
}

func testFmt(t *testing.T, filename string) {
	t.Helper()
	input, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}

	goldenName := strings.TrimSuffix(filename, ".yaml") + ".golden"
	golden, _ := os.ReadFile(goldenName)

	t.Log(filename)
	t.Log(goldenName)

	opts := yang.Standard
	firstLine, _, _ := strings.Cut(string(input), "\n")
	if _, cfg, ok := strings.Cut(firstLine, "# yangfmt:"); ok {
		for _, opt := range strings.Split(cfg, ",") {
			switch strings.TrimSpace(opt) {
			case "base":
				opts = 0
			case "compact":
				opts |= yang.CompactTypes
			case "spacing":
				opts |= yang.TextSpacing
			default:
				t.Fatalf("unknown option %q", opt)
			}
		}
	}

	buf := new(bytes.Buffer)
	if err := format.Pipe(filename, buf, bytes.NewReader(input), "", opts); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got := buf.Bytes()

	if *rewriteGolden {
		os.WriteFile(goldenName, got, 0o644)
		return
	}

	if !bytes.Equal(got, golden) {
		diff := diff.Format(string(got), string(golden))
		t.Errorf("lines don't match (-got +want)\n%s", diff)
	}
}
