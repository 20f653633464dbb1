package jpegorient

import "testing"

func TestToDescriptor(t *testing.T) {
	tests := []struct {
		orientation Orientation
		want        Descriptor
	}{
		{Unspecified, Descriptor{0, 1, 1}},
		{1, Descriptor{0, 1, 1}},
		{2, Descriptor{0, -1, 1}},
		{3, Descriptor{-180, 1, 1}},
		{4, Descriptor{0, 1, -1}},
		{5, Descriptor{90, 1, -1}},
		{6, Descriptor{90, 1, 1}},
		{7, Descriptor{90, -1, 1}},
		{8, Descriptor{-90, 1, 1}},
		{9, Descriptor{0, 1, 1}},
		{0xFFFF, Descriptor{0, 1, 1}},
	}
	for _, tt := range tests {
		if got := ToDescriptor(tt.orientation); got != tt.want {
			t.Errorf("ToDescriptor(%d) = %+v, want %+v", tt.orientation, got, tt.want)
		}
	}
}

func TestOrientationString(t *testing.T) {
	tests := []struct {
		orientation Orientation
		want        string
	}{
		{Unspecified, "Unspecified"},
		{TopLeft, "TopLeft"},
		{RightTop, "RightTop"},
		{LeftBottom, "LeftBottom"},
		{42, "Orientation(42)"},
	}
	for _, tt := range tests {
		if got := tt.orientation.String(); got != tt.want {
			t.Errorf("Orientation(%d).String() = %q, want %q", uint16(tt.orientation), got, tt.want)
		}
	}
}

func TestDescriptorDimensions(t *testing.T) {
	for o := TopLeft; o <= LeftBottom; o++ {
		w, h := ToDescriptor(o).Dimensions(640, 480)
		swapped := o >= LeftTop
		if swapped && (w != 480 || h != 640) || !swapped && (w != 640 || h != 480) {
			t.Errorf("%s: Dimensions(640, 480) = (%d, %d)", o, w, h)
		}
	}
}
