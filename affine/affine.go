package affine

import (
	"github.com/katalvlaran/linmath/mat"
	"github.com/katalvlaran/linmath/quat"
	"github.com/katalvlaran/linmath/scalar"
	"github.com/katalvlaran/linmath/vec"
)

// Affine3 is an affine transformation of 3D space: Apply maps v to
// Matrix·v + Translation. The zero value is the degenerate all-zero
// transform; use Identity3 for the do-nothing transform.
type Affine3[T scalar.Float] struct {
	Translation vec.Vector3[T]
	Matrix      mat.Matrix3[T]
}

// Identity3 returns the transform mapping every vector to itself.
func Identity3[T scalar.Float]() Affine3[T] {
	return Affine3[T]{Matrix: mat.Identity3[T]()}
}

// FromScaleRotationTranslation builds the full transform: scale in local
// axes, then rotate, then translate.
func FromScaleRotationTranslation[T scalar.Float](
	scale vec.Vector3[T],
	rotation quat.Quaternion[T],
	translation vec.Vector3[T],
) Affine3[T] {
	return Affine3[T]{
		Translation: translation,
		Matrix:      rotation.Matrix3().Mul(mat.Scaling3(scale)),
	}
}

// FromRotationTranslation builds a rigid transform: rotate, then
// translate.
func FromRotationTranslation[T scalar.Float](
	rotation quat.Quaternion[T],
	translation vec.Vector3[T],
) Affine3[T] {
	return Affine3[T]{Translation: translation, Matrix: rotation.Matrix3()}
}

// FromScaleRotation builds a transform scaling in local axes and rotating,
// with no translation.
func FromScaleRotation[T scalar.Float](
	scale vec.Vector3[T],
	rotation quat.Quaternion[T],
) Affine3[T] {
	return Affine3[T]{Matrix: rotation.Matrix3().Mul(mat.Scaling3(scale))}
}

// FromScaleTranslation builds a transform scaling and translating, with no
// rotation.
func FromScaleTranslation[T scalar.Float](scale, translation vec.Vector3[T]) Affine3[T] {
	return Affine3[T]{Translation: translation, Matrix: mat.Scaling3(scale)}
}

// FromTranslation builds a pure translation.
func FromTranslation[T scalar.Float](translation vec.Vector3[T]) Affine3[T] {
	return Affine3[T]{Translation: translation, Matrix: mat.Identity3[T]()}
}

// FromRotation builds a pure rotation.
func FromRotation[T scalar.Float](rotation quat.Quaternion[T]) Affine3[T] {
	return Affine3[T]{Matrix: rotation.Matrix3()}
}

// FromScale builds a pure per-axis scale.
func FromScale[T scalar.Float](scale vec.Vector3[T]) Affine3[T] {
	return Affine3[T]{Matrix: mat.Scaling3(scale)}
}

// Apply transforms v: the linear part first, then the translation.
func (a Affine3[T]) Apply(v vec.Vector3[T]) vec.Vector3[T] {
	return a.Matrix.MulVec(v).Add(a.Translation)
}

// Matrix4 returns the transform as a homogeneous 4×4 matrix:
// Translation4(t) · (the linear part extended with a unit corner).
func (a Affine3[T]) Matrix4() mat.Matrix4[T] {
	linear := a.Matrix.Extend(vec.Zero3[T](), vec.Zero3[T](), scalar.One[T]())

	return mat.Translation4(a.Translation).Mul(linear)
}
