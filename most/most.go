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

// Package most implements closed-form relations from Monin-Obukhov
// similarity theory for the atmospheric surface layer: the Obukhov length,
// stability corrections for heat and momentum transport, the bulk Richardson
// number, friction velocity and wind speed at and below a plant canopy.
//
// All functions operate on single values and are free of side effects.
// Inputs are not checked for physical plausibility: zero or negative
// arguments to divisions and logarithms propagate as Inf or NaN.
package most

import (
	"math"

	"github.com/spatialmodel/surflayer/meteo"
)

// Physical constants.
const (
	// VonKarman is the von Kármán constant [-].
	VonKarman = 0.4
	// Gravity is acceleration of gravity [m s-2].
	Gravity = 9.8
	// DragCoefficient is the leaf drag coefficient from Goudriaan (1977) [-].
	// It is not used here and is provided for callers.
	DragCoefficient = 0.2
	// TurbulenceIntensity is the relative turbulence intensity from
	// Goudriaan (1977) [-]. It is not used here and is provided for callers.
	TurbulenceIntensity = 0.5

	// NeutralObukhovLength [m] replaces an Obukhov length of exactly
	// zero in FrictionVelocity so that z/L stays finite.
	NeutralObukhovLength = 1e-36
)

// ObukhovLength calculates the Monin-Obukhov length [m] when given
// friction velocity (ustar [m s-1]), air temperature (T [K]), air
// density (ρ [kg m-3]), heat capacity of air at constant pressure
// (cp [J kg-1 K-1]), sensible heat flux (H [W m-2]) and latent heat
// flux (LE [W m-2]), based on Brutsaert (2005).
//
// When the virtual sensible heat flux is zero the stratification is
// neutral and the result is +Inf. Zero T or ρ·cp are not guarded.
func ObukhovLength(ustar, T, ρ, cp, H, LE float64) float64 {
	// Rate of surface evaporation [kg m-2 s-1]; latent heat in J kg-1.
	E := LE / (meteo.LatentHeat(T) * 1e6)

	// Virtual sensible heat flux [W m-2].
	Hv := H + 0.61*T*cp*E
	if Hv == 0 {
		return math.Inf(1)
	}
	c := VonKarman * Gravity / T
	return -math.Pow(ustar, 3) / (c * (Hv / (ρ * cp)))
}

// Richardson calculates the bulk Richardson number [-] from the
// dual-temperature-difference method of Norman et al. (2000, eq. 12),
// when given wind speed (u [m s-1]), wind measurement height (zu [m]),
// zero-plane displacement height (d0 [m]), radiometric surface
// temperatures at times 0 and 1 (TR0, TR1 [K]) and air temperatures
// at times 0 and 1 (TA0, TA1 [K]).
//
// u == 0 is not guarded and yields ±Inf or NaN.
func Richardson(u, zu, d0, TR0, TR1, TA0, TA1 float64) float64 {
	return -(Gravity * (zu - d0) / TA1) *
		(((TR1 - TR0) - (TA1 - TA0)) / (u * u))
}

// FrictionVelocity calculates friction velocity [m s-1] from wind speed
// (u [m s-1]) measured at height zu [m] above a surface with zero-plane
// displacement height d0 [m] and roughness length for momentum z0M [m]
// (Brutsaert, 2005).
//
// L is the Obukhov length [m]. An L of exactly zero is replaced by
// NeutralObukhovLength. If useRi is true, L is instead taken to be the
// bulk Richardson number and the approximation Ri ≈ (zu-d0)/L from
// section 2.2 of Norman et al. (2000) is used for the stability
// corrections.
//
// z0M == 0 and zu == d0 are not guarded.
func FrictionVelocity(u, zu, L, d0, z0M float64, useRi bool) float64 {
	var ψM, ψM0 float64
	if useRi {
		ψM = PsiM(L)
		ψM0 = PsiM(L / (zu - d0) * z0M)
	} else {
		if L == 0 {
			L = NeutralObukhovLength
		}
		ψM = PsiM((zu - d0) / L)
		ψM0 = PsiM(z0M / L)
	}
	return u * VonKarman / (math.Log((zu-d0)/z0M) - ψM + ψM0)
}
