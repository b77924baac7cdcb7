package bytecursor

import "testing"

func BenchmarkPutFromGetInto(b *testing.B) {
	src := make([]byte, 1024)
	dst := make([]byte, 1024)
	v := New(1024, 1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v.Clear()
		v.PutFrom(src, 0, len(src))
		v.Flip()
		v.GetInto(dst, 0, len(dst))
	}
}

func BenchmarkRawCopyBaseline(b *testing.B) {
	src := make([]byte, 1024)
	dst := make([]byte, 1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		copy(dst, src)
		copy(src, dst)
	}
}

func BenchmarkPutView(b *testing.B) {
	src := New(1024, 1024)
	dst := New(1024, 1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		src.Rewind()
		dst.Clear()
		dst.PutView(src)
	}
}

func BenchmarkSlice(b *testing.B) {
	v := New(1024, 1024)
	v.SetPosition(512)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.Slice()
	}
}

func BenchmarkSingleBytePutGet(b *testing.B) {
	v := New(4096, 4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v.Clear()
		for j := 0; j < 4096; j++ {
			v.Put(byte(j))
		}
		v.Flip()
		for j := 0; j < 4096; j++ {
			_ = v.Get()
		}
	}
}

func BenchmarkSyncViewPut(b *testing.B) {
	v := NewSync(4096, 4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v.Clear()
		for j := 0; j < 4096; j++ {
			v.Put(byte(j))
		}
	}
}
