/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package f2m

// toLambda converts an ordinary affine (x, y) pair into the lambda
// representation lambda = y/x + x. The curve's unique order-2 point has
// x == 0, where lambda is undefined; y is stored verbatim for that point and
// fromLambda inverts the same way, so the pair round-trips.
func toLambda(x, y *Element) *Element {
	if x.IsZero() {
		return y
	}
	return y.Divide(x).(*Element).Add(x).(*Element)
}

// fromLambda recovers y = x*(lambda+x) from a lambda representation.
func fromLambda(x, lambda *Element) *Element {
	if x.IsZero() {
		return lambda
	}
	return x.Multiply(lambda.Add(x)).(*Element)
}
