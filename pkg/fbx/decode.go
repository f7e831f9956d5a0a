package fbx

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zlib"
)

// Magic is the binary FBX file signature.
const Magic = "Kaydara FBX Binary  \x00\x1a\x00"

// Supported versions.
const (
	MinVersion = 7100
	// wideVersion is the first version with 64-bit record headers.
	wideVersion = 7500
)

const headerSize = len(Magic) + 4

// Array encodings.
const (
	encodingRaw  = 0
	encodingZlib = 1
)

// maxInflateRatio is the largest expansion deflate can achieve.
const maxInflateRatio = 1032

// Decode errors.
var (
	ErrNotBinary   = errors.New("fbx: not a binary FBX file")
	ErrUnsupported = errors.New("fbx: unsupported version")
	ErrTruncated   = errors.New("fbx: unexpected end of data")
	ErrTooLarge    = errors.New("fbx: array larger than its payload allows")
)

// Decode reads a binary FBX document from r.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fbx: read: %w", err)
	}
	if len(data) < headerSize || string(data[:len(Magic)]) != Magic {
		return nil, ErrNotBinary
	}
	version := binary.LittleEndian.Uint32(data[len(Magic):headerSize])
	if version < MinVersion {
		return nil, fmt.Errorf("%w: %d (need %d or later)", ErrUnsupported, version, MinVersion)
	}

	d := &decoder{data: data, off: headerSize, wide: version >= wideVersion}
	records, err := d.readList(true)
	if err != nil {
		return nil, err
	}
	return &Document{Version: version, Records: records}, nil
}

type decoder struct {
	data []byte
	off  int
	wide bool
}

func (d *decoder) recordHeaderSize() int {
	if d.wide {
		return 25
	}
	return 13
}

// readList reads records up to and including a null record. At the top level
// the list may also end with the data, before the footer.
func (d *decoder) readList(top bool) ([]*Record, error) {
	var out []*Record
	for {
		if top && len(d.data)-d.off < d.recordHeaderSize() {
			return out, nil
		}
		rec, err := d.readRecord()
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return out, nil
		}
		out = append(out, rec)
	}
}

// readRecord returns nil at a null record.
func (d *decoder) readRecord() (*Record, error) {
	start := d.off
	end, err := d.offset()
	if err != nil {
		return nil, err
	}
	numProps, err := d.offset()
	if err != nil {
		return nil, err
	}
	propLen, err := d.offset()
	if err != nil {
		return nil, err
	}
	nameLen, err := d.u8()
	if err != nil {
		return nil, err
	}
	if end == 0 && numProps == 0 && propLen == 0 && nameLen == 0 {
		return nil, nil
	}
	if end <= uint64(start) || end > uint64(len(d.data)) {
		return nil, fmt.Errorf("fbx: record at %d has invalid end offset %d", start, end)
	}

	name, err := d.bytes(int(nameLen))
	if err != nil {
		return nil, err
	}
	rec := &Record{Name: string(name)}

	propStart := d.off
	if uint64(propStart) > end || propLen > end-uint64(propStart) {
		return nil, fmt.Errorf("fbx: record %s property list exceeds the record", rec.Name)
	}
	if numProps > propLen {
		return nil, fmt.Errorf("fbx: record %s declares %d properties in %d bytes", rec.Name, numProps, propLen)
	}
	rec.Props = make([]any, 0, numProps)
	for i := uint64(0); i < numProps; i++ {
		p, err := d.readProperty()
		if err != nil {
			return nil, fmt.Errorf("fbx: record %s property %d: %w", rec.Name, i, err)
		}
		rec.Props = append(rec.Props, p)
	}
	if uint64(d.off-propStart) != propLen {
		return nil, fmt.Errorf("fbx: record %s property list is %d bytes, header says %d", rec.Name, d.off-propStart, propLen)
	}

	for uint64(d.off) < end {
		child, err := d.readRecord()
		if err != nil {
			return nil, err
		}
		if child == nil {
			break
		}
		rec.Children = append(rec.Children, child)
	}
	if uint64(d.off) > end {
		return nil, fmt.Errorf("fbx: record %s overruns its end offset", rec.Name)
	}
	d.off = int(end)
	return rec, nil
}

func (d *decoder) readProperty() (any, error) {
	code, err := d.u8()
	if err != nil {
		return nil, err
	}
	switch code {
	case 'Y':
		b, err := d.bytes(2)
		if err != nil {
			return nil, err
		}
		return int16(binary.LittleEndian.Uint16(b)), nil
	case 'C':
		b, err := d.u8()
		if err != nil {
			return nil, err
		}
		return b != 0, nil
	case 'I':
		b, err := d.bytes(4)
		if err != nil {
			return nil, err
		}
		return int32(binary.LittleEndian.Uint32(b)), nil
	case 'F':
		b, err := d.bytes(4)
		if err != nil {
			return nil, err
		}
		return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
	case 'D':
		b, err := d.bytes(8)
		if err != nil {
			return nil, err
		}
		return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
	case 'L':
		b, err := d.bytes(8)
		if err != nil {
			return nil, err
		}
		return int64(binary.LittleEndian.Uint64(b)), nil
	case 'S', 'R':
		n, err := d.u32()
		if err != nil {
			return nil, err
		}
		b, err := d.bytes(int(n))
		if err != nil {
			return nil, err
		}
		if code == 'S' {
			return string(b), nil
		}
		return bytes.Clone(b), nil
	case 'f', 'd', 'l', 'i', 'b':
		return d.readArray(code)
	default:
		return nil, fmt.Errorf("unknown property type %q", code)
	}
}

func elemSize(code byte) int {
	switch code {
	case 'd', 'l':
		return 8
	case 'f', 'i':
		return 4
	default:
		return 1
	}
}

func (d *decoder) readArray(code byte) (any, error) {
	count, err := d.u32()
	if err != nil {
		return nil, err
	}
	encoding, err := d.u32()
	if err != nil {
		return nil, err
	}
	size, err := d.u32()
	if err != nil {
		return nil, err
	}
	raw, err := d.bytes(int(size))
	if err != nil {
		return nil, err
	}

	if uint64(count)*uint64(elemSize(code)) > uint64(size)*maxInflateRatio {
		return nil, fmt.Errorf("%w: %d elements of type %q in %d bytes", ErrTooLarge, count, code, size)
	}
	want := int(count) * elemSize(code)
	switch encoding {
	case encodingRaw:
	case encodingZlib:
		zr, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("array: %w", err)
		}
		defer zr.Close()
		raw, err = io.ReadAll(io.LimitReader(zr, int64(want)+1))
		if err != nil {
			return nil, fmt.Errorf("array: %w", err)
		}
	default:
		return nil, fmt.Errorf("array: unknown encoding %d", encoding)
	}
	if len(raw) != want {
		return nil, fmt.Errorf("array: %d bytes for %d elements of type %q", len(raw), count, code)
	}

	le := binary.LittleEndian
	switch code {
	case 'f':
		out := make([]float32, count)
		for i := range out {
			out[i] = math.Float32frombits(le.Uint32(raw[i*4:]))
		}
		return out, nil
	case 'd':
		out := make([]float64, count)
		for i := range out {
			out[i] = math.Float64frombits(le.Uint64(raw[i*8:]))
		}
		return out, nil
	case 'l':
		out := make([]int64, count)
		for i := range out {
			out[i] = int64(le.Uint64(raw[i*8:]))
		}
		return out, nil
	case 'i':
		out := make([]int32, count)
		for i := range out {
			out[i] = int32(le.Uint32(raw[i*4:]))
		}
		return out, nil
	default:
		out := make([]bool, count)
		for i := range out {
			out[i] = raw[i] != 0
		}
		return out, nil
	}
}

func (d *decoder) bytes(n int) ([]byte, error) {
	if n < 0 || n > len(d.data)-d.off {
		return nil, ErrTruncated
	}
	b := d.data[d.off : d.off+n]
	d.off += n
	return b, nil
}

func (d *decoder) u8() (uint8, error) {
	b, err := d.bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *decoder) u32() (uint32, error) {
	b, err := d.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// offset reads a record header field, 32 or 64 bit depending on version.
func (d *decoder) offset() (uint64, error) {
	if !d.wide {
		n, err := d.u32()
		return uint64(n), err
	}
	b, err := d.bytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}
