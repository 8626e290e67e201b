package main

import (
	"github.com/parti-format/parti/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := cfg.MainConfig.encOpts(cc.Out)
	first := true
	for _, file := range args {
		docs, err := readDocs(cc, file)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if !first {
				if _, err := cc.Out.Write([]byte("---\n")); err != nil {
					return err
				}
			}
			first = false
			if err := encode.Encode(doc, cc.Out, opts...); err != nil {
				return err
			}
		}
	}
	return nil
}
