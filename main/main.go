package main

import (
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rawbytedev/bytecursor"
	"github.com/rawbytedev/bytecursor/pkg/ffibuffer"
	"github.com/rawbytedev/bytecursor/pkg/snapshot"
)

// Profiling harness for the buffer hot path: fill, flip, bulk-drain,
// pack. Heap profile lands in mem.prof; live profiles on :6060.
func main() {
	log := logrus.New()
	go func() {
		log.Error(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	packer, err := snapshot.NewPacker(snapshot.Options{Zstd: true})
	if err != nil {
		log.Fatal(err)
	}

	src := make([]byte, 512)
	for i := range src {
		src[i] = byte(i % 7)
	}
	dst := make([]byte, 512)
	v := bytecursor.New(1024, 1024)

	var rec []byte
	start := time.Now()
	for i := 0; i < 10000; i++ {
		v.Clear()
		v.PutFrom(src, 0, len(src))
		v.Flip()
		rec, err = packer.Pack(v)
		if err != nil {
			log.Fatal(err)
		}
		v.GetInto(dst, 0, len(dst))
	}
	carrier := ffibuffer.FromBytes(rec)
	log.WithFields(logrus.Fields{
		"window":  len(src),
		"record":  carrier.Len(),
		"elapsed": time.Since(start),
	}).Info("last packed window handed to carrier")
	carrier.Destroy()

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Fatal(err)
	}
	time.Sleep(5 * time.Minute)
}
