// SPDX-License-Identifier: MIT
// Package: lvgeo/geom
//
// ops.go — construction and accessor operation tags understood by kernels.

package geom

import "fmt"

// Op names a single kernel operation. Every dispatch signature maps to exactly
// one Op, and so does every well-defined kind conversion. Kernels switch on Op
// and must handle all of them.
type Op uint8

const (
	OpInvalid Op = iota

	// Circles. Number arguments are squared radii.

	// OpCircleThreePoints: (point, point, point), 2D and 3D.
	OpCircleThreePoints
	// OpCircleDiametral: (point, point), 2D.
	OpCircleDiametral
	// OpCircleCenterPlane: (point, number, plane), 3D.
	OpCircleCenterPlane
	// OpCircleCenterNormal: (point, number, vector), 3D.
	OpCircleCenterNormal
	// OpCircleCenterRadius: (point, number), 2D.
	OpCircleCenterRadius
	// OpCircleSphereSphere: (sphere, sphere), 3D.
	OpCircleSphereSphere
	// OpCircleSpherePlane: (sphere, plane), 3D.
	OpCircleSpherePlane

	// Spheres.

	// OpSphereFourPoints: (point, point, point, point), 3D.
	OpSphereFourPoints
	// OpSphereThreePoints: (point, point, point), 3D.
	OpSphereThreePoints
	// OpSphereDiametral: (point, point), 3D.
	OpSphereDiametral
	// OpSphereCenterRadius: (point, number), 3D.
	OpSphereCenterRadius
	// OpSphereGreatCircle: (circle), 3D.
	OpSphereGreatCircle

	// Accessors and conversions.

	// OpCircleSupportingPlane: (circle), 3D.
	OpCircleSupportingPlane
	// OpCircleDiametralSphere: (circle), 3D.
	OpCircleDiametralSphere
	// OpPointToVector: (point), 2D and 3D.
	OpPointToVector
	// OpVectorToPoint: (vector), 2D and 3D.
	OpVectorToPoint
)

var opNames = [...]string{
	OpInvalid:               "invalid",
	OpCircleThreePoints:     "circle/three-points",
	OpCircleDiametral:       "circle/diametral",
	OpCircleCenterPlane:     "circle/center-plane",
	OpCircleCenterNormal:    "circle/center-normal",
	OpCircleCenterRadius:    "circle/center-radius",
	OpCircleSphereSphere:    "circle/sphere-sphere",
	OpCircleSpherePlane:     "circle/sphere-plane",
	OpSphereFourPoints:      "sphere/four-points",
	OpSphereThreePoints:     "sphere/three-points",
	OpSphereDiametral:       "sphere/diametral",
	OpSphereCenterRadius:    "sphere/center-radius",
	OpSphereGreatCircle:     "sphere/great-circle",
	OpCircleSupportingPlane: "circle/supporting-plane",
	OpCircleDiametralSphere: "circle/diametral-sphere",
	OpPointToVector:         "point/to-vector",
	OpVectorToPoint:         "vector/to-point",
}

// String returns a stable "<result>/<form>" label used in errors and logs.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}
