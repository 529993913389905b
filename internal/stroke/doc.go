// Package stroke converts polylines into the filled outline of their stroke.
//
// The outline is built from two offset paths at ±width/2 along the segment
// normals. One side is emitted forward, the end cap joins it to the other
// side, which is emitted in reverse, and the start cap closes the shape. The result is meant to be filled with the nonzero winding rule,
// which is how it is used as a clip region.
//
// Only straight segments are accepted as input. Round caps and round joins
// are emitted as cubic Bézier arcs, so consumers must handle CubicTo.
//
//	e := stroke.NewExpander(stroke.Style{
//	    Width:      2,
//	    Cap:        stroke.CapButt,
//	    Join:       stroke.JoinMiter,
//	    MiterLimit: 10,
//	})
//	outline := e.Expand([]stroke.Element{
//	    stroke.MoveTo{Point: stroke.Point{X: 0, Y: 0}},
//	    stroke.LineTo{Point: stroke.Point{X: 100, Y: 0}},
//	    stroke.LineTo{Point: stroke.Point{X: 100, Y: 100}},
//	})
//
// The join and cap construction follows kurbo's stroke.rs.
package stroke
