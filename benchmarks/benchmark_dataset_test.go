package dataset_test

import (
	"bytes"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/reoring/dataset"
	"github.com/reoring/dataset/codec"
)

// Corpus-sized dataset: word/tag/head columns
func corpus(tb testing.TB, n int) *dataset.Dataset {
	tb.Helper()
	words := make([]any, n)
	tags := make([]any, n)
	heads := make([]any, n)
	for i := range n {
		words[i] = "Word" + strconv.Itoa(i%1000)
		if i%7 == 0 {
			tags[i] = nil
		} else {
			tags[i] = "NN"
		}
		heads[i] = strconv.Itoa(i % 40)
	}
	d, err := dataset.New(
		dataset.Column{Name: "word", Values: words},
		dataset.Column{Name: "tag", Values: tags},
		dataset.Column{Name: "head", Values: heads},
	)
	if err != nil {
		tb.Fatalf("build failed: %v", err)
	}
	return d
}

func Benchmark_Write_10k(b *testing.B) {
	d := corpus(b, 10_000)
	var buf bytes.Buffer
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		if err := d.Write(&buf); err != nil {
			b.Fatal(err)
		}
	}
	b.SetBytes(int64(buf.Len()))
}

func Benchmark_Read_10k(b *testing.B) {
	var buf bytes.Buffer
	if err := corpus(b, 10_000).Write(&buf); err != nil {
		b.Fatal(err)
	}
	data := buf.Bytes()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dataset.Read(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Shuffle_10k(b *testing.B) {
	d := corpus(b, 10_000)
	r := rand.New(rand.NewPCG(1, 1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.ShuffleWith(r)
	}
}

func Benchmark_Convert_10k(b *testing.B) {
	d := corpus(b, 10_000)
	convs := map[string]dataset.Converter{
		"word": codec.Lower(),
		"head": codec.Int(),
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Convert(convs, false); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Rows_10k(b *testing.B) {
	d := corpus(b, 10_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range d.Rows() {
			n++
		}
		if n != d.Len() {
			b.Fatalf("rows=%d", n)
		}
	}
}
