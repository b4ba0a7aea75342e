// Package render draws scenario targets.
//
// [Snapshot] reads every target of a scene into a [Frame] of screen-space
// polygons and polylines without writing to them. A frame is then drawn
// offscreen by [Raster] (golang.org/x/image/vector, no GPU needed) or into an
// ebiten window by [Screen]. [Curve] and [Grid] turn the curve and grid
// shapes into lines.
package render
