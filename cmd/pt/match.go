package main

import (
	"fmt"

	"github.com/parti-format/parti"
	"github.com/parti-format/parti/patop"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Tags {
		fmt.Fprintf(cc.Out, "available pattern tags:\n")
		for _, s := range patop.Symbols() {
			fmt.Fprintf(cc.Out, "\t- !%s\n", s)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a pattern", cli.ErrUsage)
	}
	pattern, err := getish(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return err
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	var opts []parti.CompareOpt
	if cfg.Trace {
		opts = append(opts, parti.WithTrace(cc.Out))
	}
	allOk := true
	for _, file := range files {
		docs, err := readDocs(cc, file)
		if err != nil {
			return err
		}
		for i, doc := range docs {
			out := parti.Compare(doc, pattern, opts...)
			if !out.Ok() {
				allOk = false
			}
			if cfg.Quiet {
				continue
			}
			if len(docs) > 1 {
				fmt.Fprintf(cc.Out, "%s[%d]: %s\n", file, i, out.Describe())
			} else {
				fmt.Fprintf(cc.Out, "%s: %s\n", file, out.Describe())
			}
		}
	}
	if !allOk {
		return cli.ExitCodeErr(1)
	}
	return nil
}
