package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"mibk.dev/yangfmt/format"
	"mibk.dev/yangfmt/token"
	"mibk.dev/yangfmt/yang"
)

type MainConfig struct {
	Main *cli.Command
}

type PrintConfig struct {
	Module  string `cli:"name=m aliases=module desc='module to print (default: first module of the last file)'"`
	Color   bool   `cli:"name=color desc='highlight keywords, identifiers and strings'"`
	Spacing bool   `cli:"name=spacing desc='follow text blocks by an empty line'"`

	Out      string
	CloseOut func() error

	Print *cli.Command
}

type DiffConfig struct {
	Module string `cli:"name=m aliases=module desc='module to compare (default: first module of the model file)'"`

	Diff *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	return cli.NewCommandAt(&cfg.Main, "yangfmt").
		WithSynopsis("yangfmt command [opts]").
		WithDescription("yangfmt prints the YANG modules described by YAML model files.").
		WithRun(func(cc *cli.Context, args []string) error {
			return yangfmtMain(cfg, cc, args)
		}).
		WithSubs(
			PrintCommand(),
			DiffCommand())
}

func PrintCommand() *cli.Command {
	cfg := &PrintConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Print, "print").
		WithAliases("p").
		WithSynopsis("print [-m module] [-color] [-spacing] [-o file] [files]").
		WithDescription("print a module as YANG; files are read in order so later ones may import earlier ones").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return printMain(cfg, cc, args)
		})
}

func DiffCommand() *cli.Command {
	cfg := &DiffConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-m module] model.yaml expected.yang").
		WithDescription("compare the printed module with a YANG file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diffMain(cfg, cc, args)
		})
}

func yangfmtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func printMain(cfg *PrintConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Print.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return format.Pipe("<stdin>", cc.Out, os.Stdin, cfg.Module, cfg.options(cc.Out, defaultOptions))
	}
	b, opts, err := loadBundle(args)
	if err != nil {
		return err
	}
	return format.Print(cc.Out, b, cfg.Module, cfg.options(cc.Out, opts))
}

// options adds the options given on the command line to base.
// Unless -color is given either way, the output is highlighted
// when it goes to a terminal.
func (cfg *PrintConfig) options(w io.Writer, base yang.Options) yang.Options {
	opts := base
	if cfg.Spacing {
		opts |= yang.TextSpacing
	}
	if cfg.Color {
		return opts | yang.Colorize
	}
	for _, opt := range cfg.Print.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return opts &^ yang.Colorize
		}
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		opts |= yang.Colorize
	}
	return opts
}

func (cfg *PrintConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func diffMain(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires a model file and a YANG file", cli.ErrUsage)
	}

	b, opts, err := loadBundle(args[:1])
	if err != nil {
		return err
	}
	var got bytes.Buffer
	if err := format.Print(&got, b, cfg.Module, opts&^yang.Colorize); err != nil {
		return err
	}
	want, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}

	d, differ := format.Diff(got.Bytes(), want)
	if !differ {
		return nil
	}
	same, err := token.Equivalent(bytes.NewReader(got.Bytes()), bytes.NewReader(want))
	if err != nil {
		return fmt.Errorf("%s: %w", args[1], err)
	}
	fmt.Fprint(cc.Out, d)
	if same {
		fmt.Fprintf(cc.Out, "%s: equivalent, only the layout differs\n", args[1])
	}
	return cli.ExitCodeErr(1)
}
