package manifest

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/s2"
)

const (
	// Magic identifies a serialized manifest file.
	Magic = "APKM"

	// Version is the current manifest format version.
	Version = 1

	// FileName is the manifest's file name within the pack output directory.
	FileName = "assets.manifest"

	headerSize = 8
)

// encMode is the CBOR encoder configured with Core Deterministic Encoding
// (RFC 8949 §4.2): sorted map keys, smallest integer encoding. The same
// set of entries always serializes to identical bytes, which keeps packer
// output reproducible.
var encMode cbor.EncMode

// decMode is the CBOR decoder; unknown fields are ignored for forward
// compatibility.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("manifest: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("manifest: CBOR decoder initialization failed: " + err.Error())
	}
}

// Manifest maps logical asset keys to their entries. It is built once by a
// pack run, written to disk, and loaded read-only by the runtime store; no
// synchronization is needed after load.
type Manifest struct {
	// Version is the format version the manifest was written with.
	Version uint16 `cbor:"version"`

	// Entries maps Key(group, path) to the asset's entry.
	Entries map[string]Entry `cbor:"entries"`
}

// New creates an empty manifest at the current format version.
func New() *Manifest {
	return &Manifest{
		Version: Version,
		Entries: make(map[string]Entry),
	}
}

// Add inserts an entry, rejecting duplicate keys and entries whose byte
// range overlaps another entry in the same bundle.
func (m *Manifest) Add(e Entry) error {
	key := e.Key()
	if _, ok := m.Entries[key]; ok {
		return fmt.Errorf("duplicate asset key %q", key)
	}

	for _, other := range m.Entries {
		if other.Bundle != e.Bundle {
			continue
		}
		if e.Offset < other.Offset+other.Size && other.Offset < e.Offset+e.Size {
			return fmt.Errorf("asset %q overlaps %q in bundle %q", key, other.Key(), e.Bundle)
		}
	}

	m.Entries[key] = e

	return nil
}

// Lookup returns the entry for the given key.
func (m *Manifest) Lookup(key string) (Entry, bool) {
	e, ok := m.Entries[key]
	return e, ok
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	return len(m.Entries)
}

// Marshal serializes the manifest: an 8-byte header (magic, version,
// reserved) followed by the s2-compressed deterministic-CBOR payload.
func (m *Manifest) Marshal() ([]byte, error) {
	payload, err := encMode.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}

	compressed := s2.Encode(nil, payload)

	buf := make([]byte, headerSize+len(compressed))
	copy(buf, Magic)
	binary.LittleEndian.PutUint16(buf[4:6], Version)
	// buf[6:8] reserved
	copy(buf[headerSize:], compressed)

	return buf, nil
}

// Unmarshal deserializes a manifest produced by Marshal.
func Unmarshal(data []byte) (*Manifest, error) {
	if len(data) < headerSize || string(data[:4]) != Magic {
		return nil, fmt.Errorf("not a manifest: bad magic")
	}
	if v := binary.LittleEndian.Uint16(data[4:6]); v != Version {
		return nil, fmt.Errorf("unsupported manifest version %d", v)
	}

	payload, err := s2.Decode(nil, data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("decompress manifest: %w", err)
	}

	var m Manifest
	if err := decMode.Unmarshal(payload, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if m.Entries == nil {
		m.Entries = make(map[string]Entry)
	}

	return &m, nil
}

// WriteFile serializes the manifest to the given path.
func (m *Manifest) WriteFile(path string) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// ReadFile loads a manifest from the given path.
func ReadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Unmarshal(data)
}
