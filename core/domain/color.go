// ABOUTME: Color domain model for thumbnail accent colors
// ABOUTME: Defines the RGB color extracted from suggestion thumbnails

package domain

// RGBColor represents an RGB color extracted from an image.
type RGBColor struct {
	R uint8
	G uint8
	B uint8
}
