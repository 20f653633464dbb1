package jpegorient

import (
	"encoding/binary"
	"testing"
)

func TestReadSegments(t *testing.T) {
	buf := exifJPEG(binary.LittleEndian, []ifdField{{0x0112, 6}})
	segments, err := ReadSegments(buf)
	if err != nil {
		t.Fatalf("ReadSegments: %v", err)
	}
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	app1 := segments[0]
	if app1.Marker != APP1 || app1.Offset != 2 {
		t.Errorf("first segment = %s at %d, want APP1 at 2", app1.Marker.Name(), app1.Offset)
	}
	if string(app1.Data[:6]) != "Exif\x00\x00" {
		t.Errorf("APP1 data starts with %q", app1.Data[:6])
	}
	if offset, _ := FindAPP1Offset(buf); offset != app1.Offset {
		t.Errorf("FindAPP1Offset = %d, ReadSegments offset = %d", offset, app1.Offset)
	}
	if segments[1].Marker != EOI || segments[1].Data != nil {
		t.Errorf("last segment = %+v, want EOI", segments[1])
	}
}

func TestReadSegmentsFillAndSOS(t *testing.T) {
	buf := []byte{
		0xFF, 0xD8,
		0xFF, 0xFF, 0xE0, 0x00, 0x04, 'a', 'b', // fill byte before APP0
		0xFF, 0xDA, 0x00, 0x02,
		0x12, 0x34, // scan data, not read
	}
	segments, err := ReadSegments(buf)
	if err != nil {
		t.Fatalf("ReadSegments: %v", err)
	}
	if len(segments) != 2 || segments[0].Marker != APP0 || string(segments[0].Data) != "ab" || segments[1].Marker != SOS {
		t.Errorf("segments = %+v", segments)
	}
}

func TestReadSegmentsErrors(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		n    int // segments read before the error
	}{
		{"not jpeg", []byte("GIF89a"), 0},
		{"no marker", []byte{0xFF, 0xD8, 0x00}, 0},
		{"marker 0", []byte{0xFF, 0xD8, 0xFF, 0x00}, 0},
		{"ends in marker", []byte{0xFF, 0xD8, 0xFF, 0xFF}, 0},
		{"truncated length", []byte{0xFF, 0xD8, 0xFF, 0xE1, 0x00}, 0},
		{"length past end", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x02, 0xFF, 0xE1, 0x00, 0x10}, 1},
		{"no EOI", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x02}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, err := ReadSegments(tt.buf)
			if err == nil {
				t.Fatal("expected an error")
			}
			if len(segments) != tt.n {
				t.Errorf("got %d segments before the error, want %d", len(segments), tt.n)
			}
		})
	}
}
