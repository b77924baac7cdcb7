// Package snapshot serializes a view's remaining window into a small
// self-describing record: magic, version, compression flag, varint raw
// length, payload. Records are meant to leave the process — typically
// through an ffibuffer carrier — so the payload can optionally be
// zstd-compressed when that actually saves space.
package snapshot

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/bytecursor"
	"github.com/rawbytedev/bytecursor/internal/common"
)

const (
	magic   = 0xB7
	version = 1

	compRaw  = 0x00
	compZstd = 0x01

	// magic + version + flag + at least one varint byte
	headerMin = 4
)

var (
	ErrBadMagic       = errors.New("bad magic")
	ErrShortRecord    = errors.New("short record")
	ErrLengthMismatch = errors.New("payload length mismatch")
)

// Options controls record encoding.
type Options struct {
	// Zstd compresses payloads when the compressed form is smaller.
	// Records stay raw otherwise, so tiny windows pay no codec tax.
	Zstd bool
}

// Packer turns view windows into records and back. It owns the zstd
// codec state, so a Packer is not safe for concurrent use.
type Packer struct {
	opts Options
	enc  *zstd.Encoder
	dec  *zstd.Decoder
}

func NewPacker(opts Options) (*Packer, error) {
	p := &Packer{opts: opts}
	if opts.Zstd {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return nil, err
		}
		p.enc = enc
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	p.dec = dec
	return p, nil
}

// Pack serializes v's remaining window. The view's cursor does not move,
// so packing is a read-side observer, not a consumer.
func (p *Packer) Pack(v *bytecursor.View) ([]byte, error) {
	raw := v.Snapshot().ByteSlice()
	comp := byte(compRaw)
	payload := raw
	if p.enc != nil {
		if z := p.enc.EncodeAll(raw, nil); len(z) < len(raw) {
			comp = compZstd
			payload = z
		}
	}
	out := make([]byte, 0, len(payload)+headerMin+8)
	out = append(out, magic, version, comp)
	out = common.WriteVarUintTo(out, uint64(len(raw)))
	return append(out, payload...), nil
}

// Unpack decodes a record into a fresh view with position 0 and limit at
// the raw length. Raw records share the record's bytes; compressed ones
// decode into a new store.
func (p *Packer) Unpack(rec []byte) (*bytecursor.View, error) {
	if len(rec) < headerMin {
		return nil, ErrShortRecord
	}
	if rec[0] != magic {
		return nil, ErrBadMagic
	}
	if rec[1] != version {
		return nil, fmt.Errorf("unsupported record version %d", rec[1])
	}
	comp := rec[2]
	rawLen, n := common.ReadVarUint(rec[3:])
	if n == 0 {
		return nil, ErrShortRecord
	}
	payload := rec[3+n:]
	switch comp {
	case compRaw:
		if uint64(len(payload)) != rawLen {
			return nil, ErrLengthMismatch
		}
		return bytecursor.NewFromBytes(payload, 0, len(payload)), nil
	case compZstd:
		raw, err := p.dec.DecodeAll(payload, make([]byte, 0, rawLen))
		if err != nil {
			return nil, fmt.Errorf("zstd decode: %w", err)
		}
		if uint64(len(raw)) != rawLen {
			return nil, ErrLengthMismatch
		}
		return bytecursor.NewFromBytes(raw, 0, len(raw)), nil
	default:
		return nil, fmt.Errorf("unknown compression flag %#x", comp)
	}
}
