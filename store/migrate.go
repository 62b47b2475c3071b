package store

import (
	"bytes"
	"encoding/json"
	"io"
)

// Export writes every stored key as a single JSON object. Values are written
// as JSON strings, the same shape produced by dumping the mobile app's
// storage.
func Export(kv KV, w io.Writer) error {
	keys, err := kv.Keys()
	if err != nil {
		return err
	}

	out := make(map[string]string, len(keys))

	for _, k := range keys {
		v, ok, err := kv.Get(k)
		if err != nil {
			return err
		}

		if ok {
			out[k] = v
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

// Import migrates a JSON object of keys to values into the store in a single
// write. Values may be JSON strings holding serialized data, or inline JSON
// documents which are stored in their compact form.
func Import(kv KV, r io.Reader) (int, error) {
	var raw map[string]json.RawMessage

	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return 0, errImport.Wrap(err)
	}

	values := make(map[string]string, len(raw))

	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			values[k] = s
			continue
		}

		var buf bytes.Buffer
		if err := json.Compact(&buf, v); err != nil {
			return 0, errImport.Wrap(err)
		}

		values[k] = buf.String()
	}

	if err := kv.SetMany(values); err != nil {
		return 0, err
	}

	return len(values), nil
}
