package main

import (
	"fmt"
	"io"
	"os"

	"github.com/parti-format/parti/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	OutFormat *encode.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **encode.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := encode.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat encode.Format
	switch {
	case cfg.Y:
		fmat = encode.YAMLFormat
	case cfg.J:
		fmat = encode.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	String bool `cli:"name=s desc='consider pattern a string argument'"`
	File   bool `cli:"name=f desc='consider pattern a file path'"`
	Trace  bool `cli:"name=trace desc='print a comparison trace'"`
	Quiet  bool `cli:"name=q desc='no output, exit status only'"`
	Tags   bool `cli:"name=tags desc='show available pattern tags'"`
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type PatchConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='consider patch a string argument'"`
	File   bool `cli:"name=f desc='consider patch a file path'"`

	Patch *cli.Command
}

type DataConfig struct {
	*MainConfig

	Dir  string `cli:"name=dir desc='data directory'"`
	List bool   `cli:"name=l desc='list known data files'"`
	N    int    `cli:"name=n desc='output at most n lines'"`

	Data *cli.Command
}

type VersionConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='no output, exit status only'"`

	Version *cli.Command
}
