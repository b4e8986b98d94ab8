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

// Package surflayer calculates atmospheric surface-layer quantities used in
// surface energy balance modeling: friction velocity, the Monin-Obukhov
// length, stability corrections for heat and momentum transport, and wind
// speed at and below the top of a plant canopy.
//
// The functions here apply the single-value relations in package
// github.com/spatialmodel/surflayer/most element by element to
// N-dimensional arrays. Arguments are broadcast against each other the
// way NumPy does it, so a value from Scalar combines with an array of any
// shape. Errors are only returned for arguments that cannot be broadcast;
// physically invalid inputs propagate through the results as Inf or NaN.
package surflayer

import (
	"math"

	"github.com/ctessum/sparse"
	"github.com/spatialmodel/surflayer/most"
)

// ObukhovLength calculates the Monin-Obukhov length [m] from friction
// velocity (ustar [m s-1]), air temperature (T [K]), air density
// (rho [kg m-3]), heat capacity of air (cp [J kg-1 K-1]), sensible heat
// flux (H [W m-2]) and latent heat flux (LE [W m-2]).
// Elements where the virtual sensible heat flux is zero are +Inf.
func ObukhovLength(ustar, T, rho, cp, H, LE *sparse.DenseArray) (*sparse.DenseArray, error) {
	return apply(func(v []float64) float64 {
		return most.ObukhovLength(v[0], v[1], v[2], v[3], v[4], v[5])
	}, ustar, T, rho, cp, H, LE)
}

// PsiH calculates the adiabatic correction factor for heat transport
// for each element of the stability parameter zoL (z/L) [-].
func PsiH(zoL *sparse.DenseArray) (*sparse.DenseArray, error) {
	return apply(func(v []float64) float64 { return most.PsiH(v[0]) }, zoL)
}

// PsiM calculates the adiabatic correction factor for momentum transport
// for each element of the stability parameter zoL (z/L) [-].
func PsiM(zoL *sparse.DenseArray) (*sparse.DenseArray, error) {
	return apply(func(v []float64) float64 { return most.PsiM(v[0]) }, zoL)
}

// PhiMBrutsaert calculates the Brutsaert (1992) dimensionless wind shear.
func PhiMBrutsaert(zoL *sparse.DenseArray) (*sparse.DenseArray, error) {
	return apply(func(v []float64) float64 { return most.PhiMBrutsaert(v[0]) }, zoL)
}

// PhiHDyer calculates the Dyer (1974) dimensionless temperature gradient.
func PhiHDyer(zoL *sparse.DenseArray) (*sparse.DenseArray, error) {
	return apply(func(v []float64) float64 { return most.PhiHDyer(v[0]) }, zoL)
}

// PhiMDyer calculates the Dyer (1974) dimensionless wind shear.
func PhiMDyer(zoL *sparse.DenseArray) (*sparse.DenseArray, error) {
	return apply(func(v []float64) float64 { return most.PhiMDyer(v[0]) }, zoL)
}

// Richardson calculates the bulk Richardson number [-] from wind speed
// (u [m s-1]), measurement height (zu [m]), displacement height (d0 [m]),
// radiometric surface temperatures (TR0, TR1 [K]) and air temperatures
// (TA0, TA1 [K]) at two times. Zero wind speed is not guarded.
func Richardson(u, zu, d0, TR0, TR1, TA0, TA1 *sparse.DenseArray) (*sparse.DenseArray, error) {
	return apply(func(v []float64) float64 {
		return most.Richardson(v[0], v[1], v[2], v[3], v[4], v[5], v[6])
	}, u, zu, d0, TR0, TR1, TA0, TA1)
}

// FrictionVelocity calculates friction velocity [m s-1] from wind speed
// (u [m s-1]) at height zu [m], displacement height d0 [m] and roughness
// length z0M [m]. L holds Obukhov lengths [m], or bulk Richardson numbers
// if useRi is true. Zero Obukhov lengths are treated as
// most.NeutralObukhovLength; L itself is left unchanged.
func FrictionVelocity(u, zu, L, d0, z0M *sparse.DenseArray, useRi bool) (*sparse.DenseArray, error) {
	return apply(func(v []float64) float64 {
		return most.FrictionVelocity(v[0], v[1], v[2], v[3], v[4], useRi)
	}, u, zu, L, d0, z0M)
}

// CanopyWindSpeed calculates wind speed at the top of the canopy
// [m s-1] from friction velocity (ustar [m s-1]), canopy height (hC [m]),
// displacement height (d0 [m]) and roughness length (z0M [m]).
func CanopyWindSpeed(ustar, hC, d0, z0M *sparse.DenseArray) (*sparse.DenseArray, error) {
	return apply(func(v []float64) float64 {
		return most.CanopyWindSpeed(v[0], v[1], v[2], v[3])
	}, ustar, hC, d0, z0M)
}

// CanopyWindSpeedMOST is CanopyWindSpeed with a stability correction
// for Obukhov length L [m]. A nil L means neutral conditions (L = +Inf).
func CanopyWindSpeedMOST(ustar, hC, d0, z0M, L *sparse.DenseArray) (*sparse.DenseArray, error) {
	if L == nil {
		L = Scalar(math.Inf(1))
	}
	return apply(func(v []float64) float64 {
		return most.CanopyWindSpeedMOST(v[0], v[1], v[2], v[3], v[4])
	}, ustar, hC, d0, z0M, L)
}

// GoudriaanExtinction calculates the wind extinction coefficient [-]
// of a canopy with height hC [m], leaf area index LAI [-] and leaf
// width leafWidth [m].
func GoudriaanExtinction(hC, LAI, leafWidth *sparse.DenseArray) (*sparse.DenseArray, error) {
	return apply(func(v []float64) float64 {
		return most.GoudriaanExtinction(v[0], v[1], v[2])
	}, hC, LAI, leafWidth)
}

// GoudriaanWindSpeed calculates wind speed [m s-1] at height z [m]
// within a canopy, given the wind speed at the canopy top uC [m s-1].
func GoudriaanWindSpeed(uC, hC, LAI, leafWidth, z *sparse.DenseArray) (*sparse.DenseArray, error) {
	return apply(func(v []float64) float64 {
		return most.GoudriaanWindSpeed(v[0], v[1], v[2], v[3], v[4])
	}, uC, hC, LAI, leafWidth, z)
}
