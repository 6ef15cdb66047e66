// Copyright 2026 go-yuv Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package yuv

import (
	"fmt"
	"math"
)

// Fractional bit counts of the fixed-point coefficient sets. Kernels
// evaluate (sum_of_products + 1<<(bits-1)) >> bits, so every shift
// rounds to nearest instead of truncating.
const (
	chromaBits = 6 // forward Cb->B and Cr->R factors
	lumaBits   = 7 // forward green factors and both luma scales
	weightBits = 8 // inverse luma weights and chroma factors
)

// forwardCoeff is the integer coefficient set for YUV -> RGB.
type forwardCoeff struct {
	cbToB   int32 // chromaBits fractional bits
	crToR   int32 // chromaBits fractional bits
	cbToG   int32 // lumaBits fractional bits
	crToG   int32 // lumaBits fractional bits
	yScale  int32 // lumaBits fractional bits
	yOffset int32
}

// inverseCoeff is the integer coefficient set for RGB -> YUV. Luma is
// first computed at full range from the weights, then rescaled into
// [yOffset, yOffset+span]; chroma factors apply to full-range B-Y and
// R-Y differences.
type inverseCoeff struct {
	rToY    int32 // weightBits fractional bits
	gToY    int32 // weightBits fractional bits
	bToY    int32 // weightBits fractional bits
	bToCb   int32 // weightBits fractional bits
	rToCr   int32 // weightBits fractional bits
	yScale  int32 // lumaBits fractional bits
	yOffset int32
}

// fixedPoint quantizes v to an integer with the given fractional bit
// count, rounding to nearest.
func fixedPoint(v float64, bits int) int32 {
	return int32(v*float64(int32(1)<<bits) + 0.5)
}

// The coefficient tables are derived once at init and read-only from
// then on, so they are safe for concurrent use. Scalar and vector
// kernels share the same tables: any divergence between them is a bug,
// not coefficient variance.
var (
	forwardTab [numStandards]forwardCoeff
	inverseTab [numStandards]inverseCoeff
)

func init() {
	for s := ColorStandard(0); s < numStandards; s++ {
		c := colorimetries[s]
		greenY := 1 - c.redY - c.blueY
		cbNorm := 2 * (1 - c.blueY) // Cb = (B-Y)/cbNorm, normalized
		crNorm := 2 * (1 - c.redY)  // Cr = (R-Y)/crNorm, normalized
		lumaSpan := c.lumaMax - c.lumaMin

		forwardTab[s] = forwardCoeff{
			cbToB:   fixedPoint(255*cbNorm/c.chromaSpan, chromaBits),
			crToR:   fixedPoint(255*crNorm/c.chromaSpan, chromaBits),
			cbToG:   fixedPoint(c.blueY/greenY*255*cbNorm/c.chromaSpan, lumaBits),
			crToG:   fixedPoint(c.redY/greenY*255*crNorm/c.chromaSpan, lumaBits),
			yScale:  fixedPoint(255/lumaSpan, lumaBits),
			yOffset: int32(c.lumaMin),
		}
		rToY, gToY, bToY := lumaWeights(c.redY, greenY, c.blueY)
		inverseTab[s] = inverseCoeff{
			rToY:    rToY,
			gToY:    gToY,
			bToY:    bToY,
			bToCb:   fixedPoint(c.chromaSpan/255/cbNorm, weightBits),
			rToCr:   fixedPoint(c.chromaSpan/255/crNorm, weightBits),
			yScale:  fixedPoint(lumaSpan/255, lumaBits),
			yOffset: int32(c.lumaMin),
		}
	}
}

// lumaWeights quantizes the three luma weights and forces their sum to
// exactly 1<<weightBits, placing any rounding residual on the weight it
// distorts least. A sum of exactly one guarantees that neutral input
// reproduces its gray level bit-exactly through the full-range luma,
// which keeps the chroma differences of gray input at exactly zero.
// Independent rounding can miss the target: the BT.709 weights round to
// 54+183+18 = 255.
func lumaWeights(redY, greenY, blueY float64) (rToY, gToY, bToY int32) {
	w := [3]int32{
		fixedPoint(redY, weightBits),
		fixedPoint(greenY, weightBits),
		fixedPoint(blueY, weightBits),
	}
	exact := [3]float64{redY, greenY, blueY}
	for {
		d := int32(1)<<weightBits - (w[0] + w[1] + w[2])
		if d == 0 {
			return w[0], w[1], w[2]
		}
		step := int32(1)
		if d < 0 {
			step = -1
		}
		best, bestErr := 0, math.Inf(1)
		for i := range w {
			e := math.Abs(float64(w[i]+step) - exact[i]*float64(int32(1)<<weightBits))
			if e < bestErr {
				best, bestErr = i, e
			}
		}
		w[best] += step
	}
}

func forwardCoeffs(s ColorStandard) (*forwardCoeff, error) {
	if s < 0 || s >= numStandards {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedStandard, int(s))
	}
	return &forwardTab[s], nil
}

func inverseCoeffs(s ColorStandard) (*inverseCoeff, error) {
	if s < 0 || s >= numStandards {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedStandard, int(s))
	}
	return &inverseTab[s], nil
}
