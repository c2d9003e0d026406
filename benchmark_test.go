package strhelp

import (
	"testing"
)

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, err := New()
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkGenerator_New(b *testing.B) {
	gen := NewGenerator()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := gen.New()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerator_NewConcurrent(b *testing.B) {
	gen := NewGenerator()
	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, err := gen.New()
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkNewV4(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := NewV4()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewULID(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := NewULID()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_String(b *testing.B) {
	uuid, _ := New()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.String()
	}
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(sampleString)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsValidUUID(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if !IsValidUUID(sampleString) {
			b.Fatal("sample rejected")
		}
	}
}

func BenchmarkUUIDToBin(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := UUIDToBin(sampleString)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRandom(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Random(32, CharsetAll)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUID(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := UID(32)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCamelCase(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = CamelCase("my_variable-name 1")
	}
}

func BenchmarkKebabCase(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = KebabCase("Crème Brûlée, à la carte!", WithLowercase(true))
	}
}

func BenchmarkCheckComplexity(b *testing.B) {
	rules := ComplexityRules{MinLength: 8, MinLower: 1, MinUpper: 1, MinDigits: 1, MinSpecial: 1}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = CheckComplexity("Tr0ub4dor&3", rules)
	}
}
