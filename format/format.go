package format

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"mibk.dev/yangfmt/modelfile"
	"mibk.dev/yangfmt/schema"
	"mibk.dev/yangfmt/yang"
)

// Pipe reads a YAML model file from in, loads it, and writes the YANG
// text of the named module to out. If module is empty, the first module
// of the file is printed. The output can be slightly tweaked using
// opts. (See [yang.Options].) The filename argument is used to set the
// “filename” in error messages.
func Pipe(filename string, out io.Writer, in io.Reader, module string, opts yang.Options) error {
	src, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	b, err := modelfile.Load(filename, src)
	if err != nil {
		return err
	}
	return Print(out, b, module, opts)
}

// Print writes the YANG text of the named module of b to out,
// or of b's main module if module is empty.
func Print(out io.Writer, b *modelfile.Bundle, module string, opts yang.Options) error {
	m, err := pick(b, module)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := yang.Fprint(&buf, m, opts); err != nil {
		return err
	}

	if opts&yang.Colorize == 0 {
		// Text arguments are printed as they are, so a stray quote
		// in a description yields text YANG tools cannot read back.
		if err := checkSyntax(m.Name, buf.Bytes()); err != nil {
			log.Println("WARN:", err)
		}
	}

	_, err = out.Write(buf.Bytes())
	return err
}

func pick(b *modelfile.Bundle, module string) (*schema.Module, error) {
	if module == "" {
		return b.Main(), nil
	}
	m := b.Module(module)
	if m == nil {
		return nil, fmt.Errorf("module %q not found", module)
	}
	return m, nil
}
