package main

import (
	"fmt"

	"github.com/parti-format/parti/dataset"

	"github.com/scott-cotton/cli"
)

var dataFiles = []string{
	dataset.BlockedHostsFile,
	dataset.EasyListFile,
	dataset.EasyPrivacyFile,
	dataset.AdblockTSVFile,
}

func data(cfg *DataConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Data.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.List {
		for _, name := range dataFiles {
			fmt.Fprintf(cc.Out, "%s\n", name)
		}
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: data requires 1 argument, a data file name", cli.ErrUsage)
	}
	var opts []dataset.OpenOption
	if cfg.Dir != "" {
		opts = append(opts, dataset.WithDir(cfg.Dir))
	}
	lines, err := dataset.Open(args[0], opts...)
	if err != nil {
		return err
	}
	if cfg.N <= 0 {
		_, err = lines.WriteTo(cc.Out)
		return err
	}
	defer lines.Close()
	for i := 0; i < cfg.N && lines.Next(); i++ {
		if _, err := fmt.Fprintln(cc.Out, lines.Text()); err != nil {
			return err
		}
	}
	return lines.Err()
}
