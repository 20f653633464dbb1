package jpegorient

import "fmt"

// Orientation is the value of the Exif Orientation tag. It says how
// the stored image must be transformed to be displayed upright. The
// names give the position of the 0th row and 0th column of the stored
// image, as in the Exif standard.
type Orientation uint16

const (
	Unspecified Orientation = 0
	TopLeft     Orientation = 1
	TopRight    Orientation = 2
	BottomRight Orientation = 3
	BottomLeft  Orientation = 4
	LeftTop     Orientation = 5
	RightTop    Orientation = 6
	RightBottom Orientation = 7
	LeftBottom  Orientation = 8
)

var orientationNames = [...]string{
	Unspecified: "Unspecified",
	TopLeft:     "TopLeft",
	TopRight:    "TopRight",
	BottomRight: "BottomRight",
	BottomLeft:  "BottomLeft",
	LeftTop:     "LeftTop",
	RightTop:    "RightTop",
	RightBottom: "RightBottom",
	LeftBottom:  "LeftBottom",
}

// Valid reports whether o is one of the eight defined orientations.
func (o Orientation) Valid() bool {
	return o >= TopLeft && o <= LeftBottom
}

func (o Orientation) String() string {
	if int(o) < len(orientationNames) {
		return orientationNames[o]
	}
	return fmt.Sprintf("Orientation(%d)", uint16(o))
}

// Descriptor is a canvas transform: rotate by Rotate degrees (clockwise
// positive), then scale each axis by ScaleX and ScaleY, which are 1 or -1.
type Descriptor struct {
	Rotate int
	ScaleX int
	ScaleY int
}

// Identity is the transform for images that need no correction.
var Identity = Descriptor{Rotate: 0, ScaleX: 1, ScaleY: 1}

var descriptors = [...]Descriptor{
	TopLeft:     Identity,
	TopRight:    {Rotate: 0, ScaleX: -1, ScaleY: 1},
	BottomRight: {Rotate: -180, ScaleX: 1, ScaleY: 1},
	BottomLeft:  {Rotate: 0, ScaleX: 1, ScaleY: -1},
	LeftTop:     {Rotate: 90, ScaleX: 1, ScaleY: -1},
	RightTop:    {Rotate: 90, ScaleX: 1, ScaleY: 1},
	RightBottom: {Rotate: 90, ScaleX: -1, ScaleY: 1},
	LeftBottom:  {Rotate: -90, ScaleX: 1, ScaleY: 1},
}

// ToDescriptor maps an orientation to the transform which corrects it.
// Unspecified and out of range values give Identity.
func ToDescriptor(o Orientation) Descriptor {
	if !o.Valid() {
		return Identity
	}
	return descriptors[o]
}

// Dimensions returns the size of the displayed image for a stored image
// of w by h, swapping the two for quarter turns.
func (d Descriptor) Dimensions(w, h int) (int, int) {
	if d.Rotate == 90 || d.Rotate == -90 {
		return h, w
	}
	return w, h
}

func (d Descriptor) String() string {
	return fmt.Sprintf("rotate=%d scaleX=%d scaleY=%d", d.Rotate, d.ScaleX, d.ScaleY)
}
