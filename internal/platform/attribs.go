package platform

import "fmt"

// ContextAttribs describes the pixel format and context requested for the
// real window.
type ContextAttribs struct {
	Major, Minor int
	Core         bool
	Debug        bool

	RedBits, GreenBits, BlueBits, AlphaBits int
	DepthBits                               int
	DoubleBuffer                            bool
	SRGBCapable                             bool
	Samples                                 int
}

// DefaultContextAttribs returns an accelerated, double-buffered 4.3 core
// debug context with 32 colour bits, 8 alpha bits and a 24-bit depth buffer.
func DefaultContextAttribs() ContextAttribs {
	return ContextAttribs{
		Major:        4,
		Minor:        3,
		Core:         true,
		Debug:        true,
		RedBits:      8,
		GreenBits:    8,
		BlueBits:     8,
		AlphaBits:    8,
		DepthBits:    24,
		DoubleBuffer: true,
		SRGBCapable:  true,
		Samples:      0,
	}
}

// ColorBits is the total colour depth, alpha included.
func (a ContextAttribs) ColorBits() int {
	return a.RedBits + a.GreenBits + a.BlueBits + a.AlphaBits
}

func (a ContextAttribs) String() string {
	profile := "compat"
	if a.Core {
		profile = "core"
	}
	return fmt.Sprintf("%d.%d %s debug=%t color=%d alpha=%d depth=%d",
		a.Major, a.Minor, profile, a.Debug, a.ColorBits(), a.AlphaBits, a.DepthBits)
}
