package diagfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"notemark/internal/diag"
	"notemark/internal/source"
)

// MsgPack writes the diagnostics in MessagePack encoding, using the
// same shape as the JSON output. Intended for editor plugins that poll
// the checker and want a compact wire format.
func MsgPack(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	return enc.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}

// DecodeMsgPack reads a MessagePack diagnostics payload back. Used by
// tests and by consumers embedding the checker output.
func DecodeMsgPack(r io.Reader) (DiagnosticsOutput, error) {
	var out DiagnosticsOutput
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("json")
	err := dec.Decode(&out)
	return out, err
}
