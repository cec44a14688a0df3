// SPDX-License-Identifier: MIT
// Package: lvgeo/construct
//
// errors.go — method labels and the wrapping helper. The sentinels themselves
// live in package geom so kernels can return them too.

package construct

import "fmt"

// Method labels prefix every error returned by this package.
const (
	MethodBuild           = "Build"
	MethodAs              = "As"
	MethodSupportingPlane = "SupportingPlane"
	MethodDiametralSphere = "DiametralSphere"
)

// constructErrorf returns "<method>: <formatted message>: <sentinel>" with the
// sentinel kept for errors.Is.
func constructErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
