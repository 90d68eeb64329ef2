// Package export encodes the primitive representation of candv constants and
// containers into interchange formats.
//
// Three formats are supported: JSON, YAML, and msgpack. Use the package-level
// helpers for one-shot encoding, or an Encoder when the format is chosen at
// runtime:
//
//	data, err := export.JSON(MyConstants)
//
//	enc, err := export.NewEncoder("yaml")
//	data, err = enc.Encode(MyConstants)
package export

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/o3bvv/candv"
)

// formatRegistry declares the supported formats. The container doubles as
// the source of truth for NewEncoder's validation.
type formatRegistry struct {
	candv.Values[string]
	JSON    *candv.VerboseValueConstant[string]
	YAML    *candv.VerboseValueConstant[string]
	Msgpack *candv.VerboseValueConstant[string]
}

// Formats enumerates the supported encoding formats. The attached value of
// each constant is the format tag accepted by NewEncoder.
var Formats = candv.Register("Formats", &formatRegistry{
	JSON:    candv.NewVerboseValue("json", "JSON", "pretty-printed JSON"),
	YAML:    candv.NewVerboseValue("yaml", "YAML", "YAML document"),
	Msgpack: candv.NewVerboseValue("msgpack", "msgpack", "compact binary msgpack"),
})

// Encoder encodes primitives in a fixed format.
type Encoder struct {
	format string
}

// NewEncoder creates an encoder for the given format tag ("json", "yaml", or
// "msgpack"). Unknown tags return an error wrapping candv.ErrValueNotFound.
func NewEncoder(format string) (*Encoder, error) {
	if _, err := Formats.GetByValue(format); err != nil {
		return nil, fmt.Errorf("export: unknown format %q: %w", format, err)
	}
	return &Encoder{format: format}, nil
}

// Format returns the encoder's format tag.
func (e *Encoder) Format() string {
	return e.format
}

// Encode serializes the primitive representation of p.
func (e *Encoder) Encode(p candv.Primitiver) ([]byte, error) {
	switch e.format {
	case Formats.JSON.Value():
		return json.MarshalIndent(p.ToPrimitive(), "", "  ")
	case Formats.YAML.Value():
		return yaml.Marshal(p.ToPrimitive())
	case Formats.Msgpack.Value():
		return msgpack.Marshal(p.ToPrimitive())
	default:
		return nil, fmt.Errorf("export: unknown format %q: %w", e.format, candv.ErrValueNotFound)
	}
}

// Decode deserializes previously encoded data back into a primitive map.
// Useful for tooling that inspects exported hierarchies; decoded maps are
// plain data, not live containers.
func (e *Encoder) Decode(data []byte) (map[string]any, error) {
	out := make(map[string]any)
	switch e.format {
	case Formats.JSON.Value():
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
	case Formats.YAML.Value():
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, err
		}
	case Formats.Msgpack.Value():
		if err := msgpack.Unmarshal(data, &out); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("export: unknown format %q: %w", e.format, candv.ErrValueNotFound)
	}
	return out, nil
}

// JSON encodes p as pretty-printed JSON.
func JSON(p candv.Primitiver) ([]byte, error) {
	return json.MarshalIndent(p.ToPrimitive(), "", "  ")
}

// YAML encodes p as a YAML document.
func YAML(p candv.Primitiver) ([]byte, error) {
	return yaml.Marshal(p.ToPrimitive())
}

// Msgpack encodes p as compact binary msgpack.
func Msgpack(p candv.Primitiver) ([]byte, error) {
	return msgpack.Marshal(p.ToPrimitive())
}
