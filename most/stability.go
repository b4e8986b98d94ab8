/*
Copyright © 2018 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package most

import "math"

// stablePsi is the stable and neutral form shared by the heat and
// momentum corrections (Brutsaert, 2005). stablePsi(0) == 0.
func stablePsi(zoL float64) float64 {
	const (
		a = 6.1
		b = 2.5
	)
	return -a * math.Log(zoL+math.Pow(1+math.Pow(zoL, b), 1/b))
}

// PsiH calculates the adiabatic correction factor for heat
// transport [-] when given the stability parameter z/L [-]
// (Brutsaert, 2005). A NaN argument gives 0.
func PsiH(zoL float64) float64 {
	switch {
	case zoL >= 0:
		return stablePsi(zoL)
	case zoL < 0:
		const (
			c = 0.33
			d = 0.057
			n = 0.78
		)
		y := -zoL
		return ((1 - d) / n) * math.Log((c+math.Pow(y, n))/c)
	}
	return 0
}

// PsiM calculates the adiabatic correction factor for momentum
// transport [-] when given the stability parameter z/L [-]
// (Brutsaert, 2005). A NaN argument gives 0.
//
// Under unstable conditions -z/L is capped at 0.41^-3 in the
// logarithmic and cubic-root terms to keep the integral finite for very
// unstable conditions, so more negative values of z/L saturate. This is
// a numerical safeguard rather than a physical limit.
func PsiM(zoL float64) float64 {
	switch {
	case zoL >= 0:
		return stablePsi(zoL)
	case zoL < 0:
		const (
			a        = 0.33
			b        = 0.41
			cubeRoot = 0.333333 // intentionally truncated; not 1./3
		)
		y := math.Max(-zoL, 0)
		x := math.Pow(y/a, cubeRoot)
		ψ0 := -math.Log(a) + math.Sqrt(3)*b*math.Pow(a, cubeRoot)*math.Pi/6
		y = math.Min(y, math.Pow(b, -3))
		return math.Log(a+y) - 3*b*math.Pow(y, cubeRoot) +
			b*math.Pow(a, cubeRoot)/2*math.Log((1+x)*(1+x)/(1-x+x*x)) +
			math.Sqrt(3)*b*math.Pow(a, cubeRoot)*math.Atan((2*x-1)/math.Sqrt(3)) +
			ψ0
	}
	return 0
}

// PhiMBrutsaert calculates the dimensionless wind shear φ_M [-] for
// stability parameter z/L [-]. Unstable conditions follow Brutsaert (1992),
// with -z/L capped at 0.41^-3 as in PsiM. Stable conditions use the
// gradient form that corresponds to the stable branch of PsiM,
// φ_M = 1 - z/L · dΨ_M/d(z/L).
func PhiMBrutsaert(zoL float64) float64 {
	if zoL < 0 {
		const (
			a = 0.33
			b = 0.41
		)
		y := math.Min(-zoL, math.Pow(b, -3))
		return (a + b*math.Pow(y, 4./3)) / (a + y)
	}
	const (
		a = 6.1
		b = 2.5
	)
	xb := math.Pow(zoL, b)
	return 1 + a*(zoL+xb*math.Pow(1+xb, (1-b)/b))/(zoL+math.Pow(1+xb, 1/b))
}

// PhiHDyer calculates the dimensionless temperature gradient φ_H [-]
// for stability parameter z/L [-] from Dyer (1974).
func PhiHDyer(zoL float64) float64 {
	if zoL < 0 {
		return math.Pow(1-16*zoL, -0.5)
	}
	return 1 + 5*zoL
}

// PhiMDyer calculates the dimensionless wind shear φ_M [-]
// for stability parameter z/L [-] from Dyer (1974).
func PhiMDyer(zoL float64) float64 {
	if zoL < 0 {
		return math.Pow(1-16*zoL, -0.25)
	}
	return 1 + 5*zoL
}
