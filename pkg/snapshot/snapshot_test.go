package snapshot

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rawbytedev/bytecursor"
)

func windowBytes(v *bytecursor.View) []byte {
	out := make([]byte, v.Remaining())
	v.Duplicate().GetInto(out, 0, len(out))
	return out
}

func TestPackUnpackRaw(t *testing.T) {
	v := bytecursor.New(16, 16)
	v.PutFrom([]byte("hello window"), 0, 12)
	v.Flip()

	p, err := NewPacker(Options{})
	if err != nil {
		t.Fatal(err)
	}
	rec, err := p.Pack(v)
	if err != nil {
		t.Fatal(err)
	}
	if v.Position() != 0 {
		t.Fatalf("Pack moved the cursor to %d", v.Position())
	}

	got, err := p.Unpack(rec)
	if err != nil {
		t.Fatal(err)
	}
	if got.Position() != 0 || got.Remaining() != 12 {
		t.Fatalf("bad window: pos=%d rem=%d", got.Position(), got.Remaining())
	}
	if !bytes.Equal(windowBytes(got), []byte("hello window")) {
		t.Fatalf("window mismatch: %q", windowBytes(got))
	}
}

func TestPackUnpackZstd(t *testing.T) {
	v := bytecursor.New(4096, 4096)
	blob := bytes.Repeat([]byte("compressible "), 256)
	v.PutFrom(blob, 0, len(blob))
	v.Flip()

	p, err := NewPacker(Options{Zstd: true})
	if err != nil {
		t.Fatal(err)
	}
	rec, err := p.Pack(v)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec) >= len(blob) {
		t.Fatalf("repetitive payload did not compress: %d >= %d", len(rec), len(blob))
	}
	got, err := p.Unpack(rec)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(windowBytes(got), blob) {
		t.Fatal("round trip mismatch")
	}
}

func TestZstdFallsBackToRaw(t *testing.T) {
	// a tiny window never wins against the zstd frame overhead
	v := bytecursor.New(4, 4)
	v.PutFrom([]byte{1, 2, 3}, 0, 3)
	v.Flip()

	p, err := NewPacker(Options{Zstd: true})
	if err != nil {
		t.Fatal(err)
	}
	rec, err := p.Pack(v)
	if err != nil {
		t.Fatal(err)
	}
	if rec[2] != compRaw {
		t.Fatalf("expected raw flag, got %#x", rec[2])
	}
	got, err := p.Unpack(rec)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(windowBytes(got), []byte{1, 2, 3}) {
		t.Fatal("round trip mismatch")
	}
}

func TestUnpackErrors(t *testing.T) {
	p, err := NewPacker(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Unpack([]byte{magic, version}); !errors.Is(err, ErrShortRecord) {
		t.Fatalf("want ErrShortRecord, got %v", err)
	}
	if _, err := p.Unpack([]byte{0x00, version, compRaw, 0}); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("want ErrBadMagic, got %v", err)
	}
	if _, err := p.Unpack([]byte{magic, 99, compRaw, 0}); err == nil {
		t.Fatal("want version error")
	}
	if _, err := p.Unpack([]byte{magic, version, 0x7F, 0}); err == nil {
		t.Fatal("want unknown flag error")
	}
	// declared length longer than payload
	if _, err := p.Unpack([]byte{magic, version, compRaw, 5, 1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("want ErrLengthMismatch, got %v", err)
	}
}

func BenchmarkPackRaw(b *testing.B) {
	v := bytecursor.New(1024, 1024)
	v.SetPosition(1024)
	v.Flip()
	p, _ := NewPacker(Options{})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = p.Pack(v)
	}
}

func BenchmarkPackZstd(b *testing.B) {
	v := bytecursor.New(1024, 1024)
	v.SetPosition(1024)
	v.Flip()
	p, _ := NewPacker(Options{Zstd: true})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = p.Pack(v)
	}
}
