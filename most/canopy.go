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

// CanopyWindSpeed calculates wind speed at the top of the canopy
// [m s-1] from friction velocity (ustar [m s-1]), canopy height
// (hC [m]), zero-plane displacement height (d0 [m]) and roughness
// length for momentum (z0M [m]). It is the Norman et al. (1995)
// canopy wind speed rewritten in terms of friction velocity.
//
// z0M == 0 and hC == d0 are not guarded.
func CanopyWindSpeed(ustar, hC, d0, z0M float64) float64 {
	return math.Log((hC-d0)/z0M) * ustar / VonKarman
}

// CanopyWindSpeedMOST calculates wind speed at the top of the canopy
// [m s-1] like CanopyWindSpeed, but corrected for stability with the
// Obukhov length L [m]. With L = +Inf it equals CanopyWindSpeed.
func CanopyWindSpeedMOST(ustar, hC, d0, z0M, L float64) float64 {
	ψM := PsiM((hC - d0) / L)
	ψM0 := PsiM(z0M / L)
	return ustar * (math.Log((hC-d0)/z0M) - ψM + ψM0) / VonKarman
}

// GoudriaanExtinction calculates the wind speed extinction
// coefficient within a canopy [-] from canopy height (hC [m]), leaf
// area index (LAI [-]) and effective leaf width (leafWidth [m]),
// using the form in Norman et al. (1995) of Goudriaan (1977).
func GoudriaanExtinction(hC, LAI, leafWidth float64) float64 {
	const k3 = 0.28
	return k3 * math.Pow(LAI, 2./3) * math.Pow(hC, 1./3) * math.Pow(leafWidth, -1./3)
}

// GoudriaanWindSpeed calculates wind speed [m s-1] at height z [m]
// below the top of a canopy with height hC [m], where uC [m s-1] is the
// wind speed at the top of the canopy (Goudriaan 1977, eq. 4.48).
// At z == hC the result is uC.
func GoudriaanWindSpeed(uC, hC, LAI, leafWidth, z float64) float64 {
	a := GoudriaanExtinction(hC, LAI, leafWidth)
	return uC * math.Exp(-a*(1-z/hC))
}
