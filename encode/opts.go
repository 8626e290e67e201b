package encode

import "fmt"

type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
)

func ParseFormat(v string) (Format, error) {
	switch v {
	case "yaml", "y":
		return YAMLFormat, nil
	case "json", "j":
		return JSONFormat, nil
	default:
		return 0, fmt.Errorf("unknown format %q", v)
	}
}

type EncState struct {
	format Format
	colors *Colors
}

type EncodeOption func(*EncState)

func EncodeFormat(f Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}
