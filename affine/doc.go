// Package affine provides the 3D affine transform: a linear part (scale,
// rotation, shear as a Matrix3) plus a translation, applied as M·v + t.
// Constructors cover every combination of scale, rotation and translation;
// the linear part composes as rotation · scale, so scaling happens in the
// object's local axes before it is rotated.
package affine
