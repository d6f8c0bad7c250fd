// Package card assembles a printable card image from a merged config.
//
// Construction loads the background (and optional backside), frames it with
// a coloured border, and draws cut ticks into the border corners. Render
// then walks the fields declared in the Card section in order, compositing
// images, fitted text, markup text, and QR codes into their declared areas.
// Save writes the finished canvas as a PNG carrying the background's dpi.
package card
