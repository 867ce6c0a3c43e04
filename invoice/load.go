package invoice

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors for record loading.
var (
	ErrOpenRecord    = errors.New("invoice: failed to open record file")
	ErrInvalidRecord = errors.New("invoice: invalid record")
)

// Load reads one invoice record from r. A record that is empty or not a
// valid JSON object is reported via ErrInvalidRecord.
func Load(r io.Reader) (*Invoice, error) {
	var inv Invoice
	if err := json.NewDecoder(r).Decode(&inv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return &inv, nil
}

// LoadFile loads the record stored at path. The file is opened
// read-write-create, so a missing record is created empty and then fails to
// parse rather than failing to open.
func LoadFile(path string) (*Invoice, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644) // #nosec G302 G304 -- record path is caller-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenRecord, path, err)
	}
	defer f.Close()

	inv, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inv, nil
}

// Save writes the record to w in the persisted JSON schema. Together with
// Load it round-trips every field, including absent optionals.
func (inv *Invoice) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(inv); err != nil {
		return fmt.Errorf("invoice: encoding record: %w", err)
	}
	return nil
}
