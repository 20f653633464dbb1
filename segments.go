package jpegorient

import (
	"errors"
	"fmt"
)

// Segment represents a marker and its segment data. Offset is the
// position of the marker's 0xFF byte and Data is a slice of the scanned
// buffer, nil for markers without a segment.
type Segment struct {
	Marker Marker
	Offset int
	Data   []byte
}

// Indicate if a marker stands alone, without a length and data.
func standalone(m Marker) bool {
	return m == TEM || m == SOI || m == EOI || m >= RST0 && m <= RST0+7
}

// Read a marker at pos, skipping any 0xFF fill bytes. Returns the marker
// and the position following it.
func readMarker(buf []byte, pos int) (Marker, int, error) {
	if pos >= len(buf) {
		return 0, pos, errors.New("unexpected end of data before marker")
	}
	if buf[pos] != 0xFF {
		return 0, pos, fmt.Errorf("0xFF expected in marker at offset %d", pos)
	}
	pos++
	for pos < len(buf) && buf[pos] == 0xFF {
		pos++
	}
	if pos >= len(buf) {
		return 0, pos, errors.New("unexpected end of data in marker")
	}
	if buf[pos] == 0 {
		return 0, pos, fmt.Errorf("invalid marker 0 at offset %d", pos)
	}
	return Marker(buf[pos]), pos + 1, nil
}

// ReadSegments lists the markers and segments of a JPEG buffer up to
// and including the SOS or EOI marker. The data slices point into buf.
// Segments read before an error are returned along with it.
func ReadSegments(buf []byte) ([]Segment, error) {
	segments := make([]Segment, 0, 20)
	if !IsJPEGHeader(buf) {
		return segments, errors.New("SOI marker not found")
	}
	pos := HeaderSize
	for {
		start := pos
		marker, next, err := readMarker(buf, pos)
		if err != nil {
			return segments, err
		}
		pos = next
		if standalone(marker) {
			segments = append(segments, Segment{marker, start, nil})
			if marker == EOI {
				return segments, nil
			}
			continue
		}
		if pos+2 > len(buf) {
			return segments, fmt.Errorf("%s at offset %d: truncated length", marker.Name(), start)
		}
		length := int(buf[pos])<<8 + int(buf[pos+1])
		if length < 2 || pos+length > len(buf) {
			return segments, fmt.Errorf("%s at offset %d: invalid length %d", marker.Name(), start, length)
		}
		segments = append(segments, Segment{marker, start, buf[pos+2 : pos+length]})
		pos += length
		if marker == SOS {
			return segments, nil
		}
	}
}
