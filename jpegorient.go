package jpegorient

import (
	"fmt"
)

const (
	TEM  = 0x01
	SOF0 = 0xC0 // SOFn = SOF0+n, n = 0-15 excluding 4, 8 and 12
	DHT  = 0xC4
	JPG  = 0xC8
	DAC  = 0xCC
	RST0 = 0xD0 // RSTn = RST0+n, n = 0-7
	SOI  = 0xD8
	EOI  = 0xD9
	SOS  = 0xDA
	DQT  = 0xDB
	DNL  = 0xDC
	DRI  = 0xDD
	DHP  = 0xDE
	EXP  = 0xDF
	APP0 = 0xE0 // APPn = APP0+n, n = 0-15
	APP1 = APP0 + 1
	JPG0 = 0xF0 // JPGn = JPG0+n  n = 0-13
	COM  = 0xFE
)

// Marker represents a JPEG marker, which usually indicates the start of a
// segment.
type Marker uint8

var markerNames [256]string

func init() {
	markerNames[0] = "NUL"
	markerNames[TEM] = "TEM"
	markerNames[DHT] = "DHT"
	markerNames[JPG] = "JPG"
	markerNames[DAC] = "DAC"
	markerNames[SOI] = "SOI"
	markerNames[EOI] = "EOI"
	markerNames[SOS] = "SOS"
	markerNames[DQT] = "DQT"
	markerNames[DNL] = "DNL"
	markerNames[DRI] = "DRI"
	markerNames[DHP] = "DHP"
	markerNames[EXP] = "EXP"
	markerNames[COM] = "COM"
	markerNames[0xFF] = "FILL"

	var i Marker
	for i = 0x02; i <= 0xBF; i++ {
		markerNames[i] = fmt.Sprintf("RES%.2X", i) // Reserved
	}
	for i = SOF0; i <= SOF0+0xF; i++ {
		if i == SOF0+4 || i == SOF0+8 || i == SOF0+12 {
			continue
		}
		markerNames[i] = fmt.Sprintf("SOF%d", i-SOF0)
	}
	for i = RST0; i <= RST0+7; i++ {
		markerNames[i] = fmt.Sprintf("RST%d", i-RST0)
	}
	for i = APP0; i <= APP0+0xF; i++ {
		markerNames[i] = fmt.Sprintf("APP%d", i-APP0)
	}
	for i = JPG0; i <= JPG0+0xD; i++ {
		markerNames[i] = fmt.Sprintf("JPG%d", i-JPG0)
	}
}

// Name returns the name of a marker value.
func (m Marker) Name() string {
	return markerNames[m]
}

// Size of a JPEG file header.
const HeaderSize = 2

// Indicate if buffer starts with a JPEG header (the SOI marker).
func IsJPEGHeader(buf []byte) bool {
	return len(buf) >= HeaderSize && buf[0] == 0xFF && buf[1] == SOI
}

// FindAPP1Offset returns the position of the first APP1 marker in a JPEG
// buffer, pointing at its 0xFF byte. The search goes one byte at a time
// from the end of the header and ignores segment lengths. Returns false
// if buf isn't a JPEG or no APP1 marker is found.
func FindAPP1Offset(buf []byte) (int, bool) {
	if !IsJPEGHeader(buf) {
		return 0, false
	}
	for pos := HeaderSize; pos+1 < len(buf); pos++ {
		if buf[pos] == 0xFF && buf[pos+1] == APP1 {
			return pos, true
		}
	}
	return 0, false
}

// GetOrientation finds the Exif orientation of a JPEG image. As with
// ReadOrientation, a found value is reset to 1 in buf.
func GetOrientation(buf []byte) (Orientation, bool) {
	app1, ok := FindAPP1Offset(buf)
	if !ok {
		return Unspecified, false
	}
	return ReadOrientation(buf, app1)
}

// Parse returns the transform that displays the image in buf upright.
// Images without usable orientation data get the identity transform.
func Parse(buf []byte) Descriptor {
	orientation, _ := GetOrientation(buf)
	return ToDescriptor(orientation)
}
