package main

import (
	"fmt"

	"github.com/parti-format/parti/version"

	"github.com/scott-cotton/cli"
)

func versionCheck(cfg *VersionConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Version.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: version requires 2 arguments, <have> and <min>", cli.ErrUsage)
	}
	have, err := version.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	min, err := version.Parse(args[1])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if have.AtLeast(min) {
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s >= %s\n", have, min)
		}
		return nil
	}
	if !cfg.Quiet {
		fmt.Fprintf(cc.Out, "%s < %s\n", have, min)
	}
	return cli.ExitCodeErr(1)
}
