package strhelp

import (
	"errors"
	"testing"
)

func TestUUID_EncodeToHex(t *testing.T) {
	expected := "f47ac10b58cc4372a5670e02b2c3d479"

	if got := sampleUUID.EncodeToHex(); got != expected {
		t.Errorf("EncodeToHex() = %v, want %v", got, expected)
	}

	got, err := DecodeFromHex(expected)
	if err != nil {
		t.Fatalf("DecodeFromHex() error = %v", err)
	}
	if got != sampleUUID {
		t.Errorf("DecodeFromHex() = %v, want %v", got, sampleUUID)
	}
}

func TestDecodeFromHex_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too short", "f47ac10b58cc4372"},
		{"too long", "f47ac10b58cc4372a5670e02b2c3d479ff"},
		{"invalid hex", "g47ac10b58cc4372a5670e02b2c3d479"},
		{"canonical form", sampleString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeFromHex(tt.input); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("DecodeFromHex(%q) error = %v, want ErrInvalidFormat", tt.input, err)
			}
		})
	}
}

func TestDecodeFromBase64(t *testing.T) {
	tests := []struct {
		name   string
		encode func(UUID) string
		decode func(string) (UUID, error)
	}{
		{"url", UUID.EncodeToBase64, DecodeFromBase64},
		{"std", UUID.EncodeToBase64Std, DecodeFromBase64Std},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := tt.decode(tt.encode(sampleUUID))
			if err != nil {
				t.Fatalf("decode error = %v", err)
			}
			if decoded != sampleUUID {
				t.Errorf("decode = %v, want %v", decoded, sampleUUID)
			}
		})
	}
}

func TestDecodeFromBase64_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"invalid base64", "!!!invalid!!!", ErrInvalidFormat},
		{"wrong length", "YWJj", ErrInvalidLength}, // "abc", only 3 bytes
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeFromBase64(tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeFromBase64(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestFromBytes(t *testing.T) {
	got, err := FromBytes(sampleUUID[:])
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if got != sampleUUID {
		t.Errorf("FromBytes() = %v, want %v", got, sampleUUID)
	}

	for _, b := range [][]byte{{0x01, 0x02, 0x03}, make([]byte, 20), {}} {
		if _, err := FromBytes(b); err != ErrInvalidLength {
			t.Errorf("FromBytes(%d bytes) error = %v, want %v", len(b), err, ErrInvalidLength)
		}
	}
}

func TestMustFromBytes(t *testing.T) {
	if MustFromBytes(sampleUUID[:]) != sampleUUID {
		t.Error("MustFromBytes() returned wrong UUID")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustFromBytes() did not panic on invalid input")
		}
	}()
	MustFromBytes([]byte{0x01})
}

func TestEncodingRoundTrips(t *testing.T) {
	gen := NewGenerator()

	for i := 0; i < 10; i++ {
		uuid := Must(gen.New())

		fromHex, err := DecodeFromHex(uuid.EncodeToHex())
		if err != nil || fromHex != uuid {
			t.Errorf("Hex round-trip = %v, %v; want %v", fromHex, err, uuid)
		}

		fromB64, err := DecodeFromBase64(uuid.EncodeToBase64())
		if err != nil || fromB64 != uuid {
			t.Errorf("Base64 round-trip = %v, %v; want %v", fromB64, err, uuid)
		}

		fromString, err := Parse(uuid.String())
		if err != nil || fromString != uuid {
			t.Errorf("String round-trip = %v, %v; want %v", fromString, err, uuid)
		}
	}
}
