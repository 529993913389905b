// Package tile renders mapline overlays as XYZ web map tiles.
//
// A Layer holds the overlay currently shown and the gradient configuration
// it is drawn with; replacing either publishes a new immutable Snapshot.
// A Renderer turns a snapshot and a tile coordinate into an image or PNG.
package tile
