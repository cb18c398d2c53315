package replay

import (
	"bufio"
	"encoding/json"
	"os"

	"github.com/klauspost/compress/zstd"
)

// ReadAll decodes every entry of a session log into raw JSON messages.
// Session logs are small (one entry per user interaction, not per frame),
// so loading whole files is fine for inspection tooling and tests.
func ReadAll(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out []json.RawMessage
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := make([]byte, len(sc.Bytes()))
		copy(line, sc.Bytes())
		out = append(out, json.RawMessage(line))
	}
	return out, sc.Err()
}
