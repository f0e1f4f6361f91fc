package lzs

import (
	"strings"
	"testing"
)

var benchText = strings.Repeat(`{"id":42,"name":"slime","hp":12,"pos":[3,7],"drops":["gel","coin"]},`, 150)

func BenchmarkEncodeBase64(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	for b.Loop() {
		_ = EncodeBase64(benchText)
	}
}

func BenchmarkDecodeBase64(b *testing.B) {
	packed := EncodeBase64(benchText)
	b.SetBytes(int64(len(benchText)))
	for b.Loop() {
		if _, err := DecodeBase64(packed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeUTF16(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	for b.Loop() {
		_ = EncodeUTF16(benchText)
	}
}

func BenchmarkDecodeUTF16(b *testing.B) {
	packed := EncodeUTF16(benchText)
	b.SetBytes(int64(len(benchText)))
	for b.Loop() {
		if _, err := DecodeUTF16(packed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeBytes(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	for b.Loop() {
		_ = EncodeBytes(benchText)
	}
}

func BenchmarkDecodeBytes(b *testing.B) {
	packed := EncodeBytes(benchText)
	b.SetBytes(int64(len(benchText)))
	for b.Loop() {
		if _, err := DecodeBytes(packed); err != nil {
			b.Fatal(err)
		}
	}
}
