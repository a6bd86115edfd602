package bstr

import "testing"

func BenchmarkAppendFmt(b *testing.B) {
	s, err := Empty()
	if err != nil {
		b.Fatal(err)
	}
	defer s.Release()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err = s.AppendFmt("%s=%i;", "count", int64(i))
		if err != nil {
			b.Fatal(err)
		}
		s.Clear()
	}
}

func BenchmarkAppendFormat(b *testing.B) {
	s, err := Empty()
	if err != nil {
		b.Fatal(err)
	}
	defer s.Release()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err = s.AppendFormat("%s=%d;", "count", i)
		if err != nil {
			b.Fatal(err)
		}
		s.Clear()
	}
}

func BenchmarkAppend(b *testing.B) {
	payload := make([]byte, 64)

	s, err := Empty()
	if err != nil {
		b.Fatal(err)
	}
	defer s.Release()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err = s.Append(payload)
		if err != nil {
			b.Fatal(err)
		}
		if s.Len() > 1<<20 {
			s.Clear()
		}
	}
}
