package main

import (
	"encoding/json"
	"fmt"

	"github.com/parti-format/parti/encode"
	"github.com/parti-format/parti/ir"
	"github.com/parti-format/parti/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires 1 argument, a JSON patch", cli.ErrUsage)
	}
	patchNode, err := getish(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return err
	}
	patchJSON, err := json.Marshal(ir.ToAny(patchNode))
	if err != nil {
		return fmt.Errorf("error encoding patch: %w", err)
	}
	p, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	opts := cfg.MainConfig.encOpts(cc.Out)
	first := true
	for _, file := range files {
		docs, err := readDocs(cc, file)
		if err != nil {
			return err
		}
		for i, doc := range docs {
			res, err := applyPatch(p, doc)
			if err != nil {
				return fmt.Errorf("error patching %s document %d: %w", file, i, err)
			}
			if !first {
				if _, err := cc.Out.Write([]byte("---\n")); err != nil {
					return err
				}
			}
			first = false
			if err := encode.Encode(res, cc.Out, opts...); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyPatch(p jsonpatch.Patch, doc *ir.Node) (*ir.Node, error) {
	docJSON, err := json.Marshal(ir.ToAny(doc))
	if err != nil {
		return nil, err
	}
	resJSON, err := p.Apply(docJSON)
	if err != nil {
		return nil, err
	}
	return parse.Parse(resJSON)
}
