package jpegorient

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

func TestDataURIRoundTrip(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	large := bytes.Repeat(all, 100) // several chunks, not a multiple of 3
	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty", []byte{}},
		{"one byte", []byte{0xFF}},
		{"all byte values", all},
		{"large", large},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uri := EncodeDataURI(tt.buf, "image/jpeg")
			if !strings.HasPrefix(uri, "data:image/jpeg;base64,") {
				t.Fatalf("unexpected prefix in %.40q", uri)
			}
			got, err := DecodeDataURI(uri)
			if err != nil {
				t.Fatalf("DecodeDataURI: %v", err)
			}
			if !bytes.Equal(got, tt.buf) {
				t.Errorf("round trip mismatch: got %d bytes, want %d", len(got), len(tt.buf))
			}

			// The zero Codec uses standard base64 and the default chunk size.
			var zero Codec
			got, err = zero.Decode(zero.Encode(tt.buf, "image/jpeg"))
			if err != nil {
				t.Fatalf("zero Codec: %v", err)
			}
			if !bytes.Equal(got, tt.buf) {
				t.Errorf("zero Codec round trip mismatch: got %d bytes, want %d", len(got), len(tt.buf))
			}
		})
	}
}

func TestEncodeChunkSizes(t *testing.T) {
	buf := bytes.Repeat([]byte("jpegorient"), 1000)
	want := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf)
	for _, size := range []int{0, 1, 2, 3, 7, 8192, 1 << 20} {
		c := Codec{Encoding: base64.StdEncoding, ChunkSize: size}
		if got := c.Encode(buf, "image/png"); got != want {
			t.Errorf("chunk size %d: encoding differs from single call", size)
		}
	}
	if got := (Codec{}).Encode(buf, "image/png"); got != want {
		t.Error("zero Codec: encoding differs from standard base64")
	}
	if got := (Codec{ChunkSize: 5}).Encode(buf, "image/png"); got != want {
		t.Error("Codec without Encoding: encoding differs from standard base64")
	}
}

func TestDecodeUnpadded(t *testing.T) {
	tests := []struct {
		payload string
		want    []byte
	}{
		{"AAE", []byte{0, 1}},
		{"AAE=", []byte{0, 1}},
		{"AA", []byte{0}},
		{"AAECAw", []byte{0, 1, 2, 3}},
	}
	for _, tt := range tests {
		got, err := DecodeDataURI("data:image/png;base64," + tt.payload)
		if err != nil {
			t.Errorf("%q: %v", tt.payload, err)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("%q: got %v, want %v", tt.payload, got, tt.want)
		}
	}
	blob, err := (Codec{}).DecodeBlob("data:image/png;base64,AAE")
	if err != nil || !bytes.Equal(blob.Data, []byte{0, 1}) || blob.Type != "image/png" {
		t.Errorf("DecodeBlob unpadded = %+v, %v", blob, err)
	}
	if _, err := DecodeDataURI("data:image/png;base64,A"); err == nil {
		t.Error("single character payload decoded without error")
	}
}

func TestDecodeDataURIErrors(t *testing.T) {
	tests := []struct {
		name      string
		uri       string
		malformed bool
	}{
		{"no comma", "data:image/jpeg;base64", true},
		{"no scheme", "image/jpeg;base64,AAAA", true},
		{"empty", "", true},
		{"bad payload", "data:image/jpeg;base64,!!!", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDataURI(tt.uri)
			if err == nil {
				t.Fatal("expected an error")
			}
			if errors.Is(err, ErrMalformedDataURI) != tt.malformed {
				t.Errorf("errors.Is(%v, ErrMalformedDataURI) = %v", err, !tt.malformed)
			}
		})
	}
}

func TestDecodeDataURIToBlob(t *testing.T) {
	blob, err := DecodeDataURIToBlob("DATA:image/webp;base64,AAEC")
	if err != nil {
		t.Fatalf("DecodeDataURIToBlob: %v", err)
	}
	if blob.Type != "image/webp" {
		t.Errorf("Type = %q, want image/webp", blob.Type)
	}
	if !bytes.Equal(blob.Data, []byte{0, 1, 2}) {
		t.Errorf("Data = %v, want [0 1 2]", blob.Data)
	}

	if _, err := DecodeDataURIToBlob("data:image/webp,AAEC"); !errors.Is(err, ErrMalformedDataURI) {
		t.Errorf("missing ';': err = %v, want ErrMalformedDataURI", err)
	}
}

func TestNewBlobCopies(t *testing.T) {
	data := []byte{1, 2, 3}
	blob := NewBlob(data, "application/octet-stream")
	data[0] = 9
	if blob.Data[0] != 1 {
		t.Error("NewBlob shares its input buffer")
	}
}

func TestDataURIFeedsParser(t *testing.T) {
	uri := EncodeDataURI(exifJPEG(binary.LittleEndian, []ifdField{{0x0112, 8}}), "image/jpeg")
	buf, err := DecodeDataURI(uri)
	if err != nil {
		t.Fatal(err)
	}
	if got := Parse(buf); got != (Descriptor{-90, 1, 1}) {
		t.Errorf("Parse = %+v, want {-90 1 1}", got)
	}
}
