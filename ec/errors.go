/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ec

import "errors"

// Sentinel error kinds returned by the point-arithmetic core. Callers should
// use errors.Is against these values rather than matching on error strings;
// call sites wrap them with github.com/pkg/errors to attach context.
var (
	// ErrInvalidArgument is returned for malformed caller input: a negative
	// exponent to Point.TimesPow2, a malformed SEC1 encoding passed to
	// DecodePoint, or a request for the affine coordinates of the point at
	// infinity. Curve.CreateRawPoint does not check whether exactly one of
	// (x, y) is nil and never returns this error.
	ErrInvalidArgument = errors.New("ec: invalid argument")

	// ErrNotNormalized is returned by affine coordinate accessors when
	// called on a projective point whose Z coordinate is not one.
	ErrNotNormalized = errors.New("ec: point is not normalized")

	// ErrCurveMismatch is returned when an operation combines points that
	// do not belong to compatible curves.
	ErrCurveMismatch = errors.New("ec: points belong to different curves")

	// ErrUnsupportedCoordinateSystem is returned when an operation is
	// invoked on a coordinate system tag the branch does not implement.
	ErrUnsupportedCoordinateSystem = errors.New("ec: unsupported coordinate system")

	// ErrInvariantViolation is returned by CheckCurveEquation when a point
	// does not lie on its curve.
	ErrInvariantViolation = errors.New("ec: point does not satisfy the curve equation")
)
