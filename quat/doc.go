// Package quat provides quaternions for 3D rotation along with
// unit-tagged Euler angles and the conversions between the rotation
// representations: quaternion ↔ rotation matrix, quaternion ↔ axis-angle
// and quaternion ↔ Euler angles.
//
// The quat package provides:
//
//   - Quaternion, a scalar plus Vector3 pair with the Hamilton product,
//     normalization, reciprocal, exponential/logarithm/power and the three
//     interpolations Lerp, Nlerp and Slerp.
//   - Euler, a yaw/pitch/roll triple whose angle unit (Radians or Degrees)
//     is part of the type, so a degree triple cannot be passed where a
//     radian triple is expected. ToRadians and ToDegrees are the only
//     bridges between the two instantiations.
//   - Conversions from and to rotation matrices, axis-angle pairs and
//     radian Euler triples.
//
// Euler angles follow the aerospace convention: yaw rotates around Z,
// pitch around X and roll around Y, composing as qZ(yaw) · qY(roll) ·
// qX(pitch) — pitch is applied first, then roll, then yaw.
//
// Rotation helpers assume unit quaternions; Normalize first when the
// quaternion was built by accumulation. Degenerate extractions keep their
// IEEE behavior: the axis of a zero rotation is NaN, it is not corrected.
package quat
