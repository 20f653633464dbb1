package jpegorient

import (
	tiff "github.com/garyhouston/tiff66"
)

// Exif identifier at the start of an APP1 segment's data.
const exifHeader = "Exif"

const (
	// Offsets from the APP1 marker: 2 bytes of marker and 2 of segment
	// length come before the identifier, which is "Exif\0\0".
	exifIDOffset   = 4
	tiffHeaderSkip = 10

	ifdEntrySize   = 12
	ifdCountSize   = 2
	ifdValueOffset = 8 // of an entry's value field within the entry
)

// ReadOrientation reads the Orientation tag from the 0th IFD of the
// Exif data in the APP1 segment starting at position app1 of buf.
//
// The stored value is returned as found, even if it is outside 1-8, and
// is then overwritten in buf with 1 in the same byte order, so reading
// the same buffer again gives 1. Only the first Orientation entry is
// used. Returns false, with buf unchanged, if the segment isn't Exif, the
// TIFF header is invalid, the tag isn't present, or any position falls
// outside buf.
func ReadOrientation(buf []byte, app1 int) (Orientation, bool) {
	if app1 < 0 || app1 > len(buf) {
		return Unspecified, false
	}
	idPos := app1 + exifIDOffset
	if idPos+len(exifHeader) > len(buf) || string(buf[idPos:idPos+len(exifHeader)]) != exifHeader {
		return Unspecified, false
	}
	tiffPos := app1 + tiffHeaderSkip
	if tiffPos > len(buf) {
		return Unspecified, false
	}
	valid, order, ifdPos := tiff.GetHeader(buf[tiffPos:])
	if !valid || ifdPos < tiff.HeaderSize {
		return Unspecified, false
	}
	// ifdPos is untrusted; compare before adding so the sum can't wrap.
	if uint64(ifdPos)+ifdCountSize > uint64(len(buf)-tiffPos) {
		return Unspecified, false
	}
	ifdStart := tiffPos + int(ifdPos)
	count := int(order.Uint16(buf[ifdStart:]))
	for i := 0; i < count; i++ {
		entry := ifdStart + ifdCountSize + i*ifdEntrySize
		if entry+2 > len(buf) {
			return Unspecified, false
		}
		if tiff.Tag(order.Uint16(buf[entry:])) != tiff.Orientation {
			continue
		}
		valuePos := entry + ifdValueOffset
		if valuePos+2 > len(buf) {
			return Unspecified, false
		}
		orientation := Orientation(order.Uint16(buf[valuePos:]))
		order.PutUint16(buf[valuePos:], uint16(TopLeft))
		return orientation, true
	}
	return Unspecified, false
}
