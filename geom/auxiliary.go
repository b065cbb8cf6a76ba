// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// vecDist returns the Euclidean distance between points a and b
func vecDist(a, b []float64) (res float64) {
	for i := 0; i < len(a); i++ {
		res += (a[i] - b[i]) * (a[i] - b[i])
	}
	return math.Sqrt(res)
}
