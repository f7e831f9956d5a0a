package fbx

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zlib"
)

// DefaultVersion is the version written when a document does not set one.
const DefaultVersion = 7400

// footerPadding is written after the closing null record. Readers stop at the
// null record, so the footer content is not interpreted.
var footerPadding = make([]byte, 16)

// Encoder writes binary FBX documents.
type Encoder struct {
	w io.Writer

	// Compress stores array properties zlib-compressed.
	Compress bool
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes doc. Property values must have one of the Go types produced
// by Decode; plain int is written as int64.
func (e *Encoder) Encode(doc *Document) error {
	version := doc.Version
	if version == 0 {
		version = DefaultVersion
	}
	if version < MinVersion {
		return fmt.Errorf("%w: %d", ErrUnsupported, version)
	}

	b := &builder{wide: version >= wideVersion, compress: e.Compress}
	b.buf.WriteString(Magic)
	b.u32(version)
	for _, r := range doc.Records {
		if err := b.record(r); err != nil {
			return err
		}
	}
	b.null()
	b.buf.Write(footerPadding)

	_, err := e.w.Write(b.buf.Bytes())
	return err
}

type builder struct {
	buf      bytes.Buffer
	wide     bool
	compress bool
}

func (b *builder) u32(v uint32) {
	_ = binary.Write(&b.buf, binary.LittleEndian, v)
}

func (b *builder) offset(v uint64) {
	if b.wide {
		_ = binary.Write(&b.buf, binary.LittleEndian, v)
		return
	}
	b.u32(uint32(v))
}

func (b *builder) null() {
	n := 13
	if b.wide {
		n = 25
	}
	b.buf.Write(make([]byte, n))
}

// patch overwrites a header field written at pos.
func (b *builder) patch(pos int, v uint64) {
	raw := b.buf.Bytes()
	if b.wide {
		binary.LittleEndian.PutUint64(raw[pos:], v)
		return
	}
	binary.LittleEndian.PutUint32(raw[pos:], uint32(v))
}

func (b *builder) record(r *Record) error {
	if len(r.Name) > math.MaxUint8 {
		return fmt.Errorf("fbx: record name %q too long", r.Name)
	}
	width := 4
	if b.wide {
		width = 8
	}

	start := b.buf.Len()
	b.offset(0) // end offset, patched below
	b.offset(uint64(len(r.Props)))
	b.offset(0) // property list length, patched below
	b.buf.WriteByte(byte(len(r.Name)))
	b.buf.WriteString(r.Name)

	propStart := b.buf.Len()
	for i, p := range r.Props {
		if err := b.property(p); err != nil {
			return fmt.Errorf("fbx: record %s property %d: %w", r.Name, i, err)
		}
	}
	b.patch(start+2*width, uint64(b.buf.Len()-propStart))

	if len(r.Children) > 0 {
		for _, c := range r.Children {
			if err := b.record(c); err != nil {
				return err
			}
		}
		b.null()
	}
	b.patch(start, uint64(b.buf.Len()))
	return nil
}

func (b *builder) property(v any) error {
	le := binary.LittleEndian
	switch x := v.(type) {
	case int16:
		b.buf.WriteByte('Y')
		return binary.Write(&b.buf, le, x)
	case bool:
		b.buf.WriteByte('C')
		if x {
			return b.buf.WriteByte(1)
		}
		return b.buf.WriteByte(0)
	case int32:
		b.buf.WriteByte('I')
		return binary.Write(&b.buf, le, x)
	case float32:
		b.buf.WriteByte('F')
		return binary.Write(&b.buf, le, x)
	case float64:
		b.buf.WriteByte('D')
		return binary.Write(&b.buf, le, x)
	case int64:
		b.buf.WriteByte('L')
		return binary.Write(&b.buf, le, x)
	case int:
		b.buf.WriteByte('L')
		return binary.Write(&b.buf, le, int64(x))
	case string:
		b.buf.WriteByte('S')
		b.u32(uint32(len(x)))
		b.buf.WriteString(x)
		return nil
	case []byte:
		b.buf.WriteByte('R')
		b.u32(uint32(len(x)))
		b.buf.Write(x)
		return nil
	case []float32:
		return b.array('f', len(x), x)
	case []float64:
		return b.array('d', len(x), x)
	case []int64:
		return b.array('l', len(x), x)
	case []int32:
		return b.array('i', len(x), x)
	case []bool:
		return b.array('b', len(x), x)
	default:
		return fmt.Errorf("unsupported property type %T", v)
	}
}

func (b *builder) array(code byte, count int, data any) error {
	var raw bytes.Buffer
	if err := binary.Write(&raw, binary.LittleEndian, data); err != nil {
		return err
	}
	payload := raw.Bytes()
	encoding := uint32(encodingRaw)
	if b.compress {
		var z bytes.Buffer
		zw := zlib.NewWriter(&z)
		if _, err := zw.Write(payload); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
		payload = z.Bytes()
		encoding = encodingZlib
	}

	b.buf.WriteByte(code)
	b.u32(uint32(count))
	b.u32(encoding)
	b.u32(uint32(len(payload)))
	b.buf.Write(payload)
	return nil
}
