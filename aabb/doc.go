// Package aabb provides the 3D axis-aligned bounding box as a min/max
// corner pair. Comparisons are component-wise: a box is right when max
// exceeds min on every axis, and containment is inclusive of the faces.
// Construction does not validate the corners; an inverted box has a
// negative volume and contains nothing.
package aabb
