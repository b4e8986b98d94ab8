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

// Package meteo provides the meteorological properties of moist air
// needed to evaluate surface-layer similarity relations.
package meteo

import "math"

const (
	rd      = 287.04 // J kg-1 K-1, specific gas constant for dry air
	epsilon = 0.622  // ratio of molecular weights of water vapor and dry air
	cpd     = 1003.5 // J kg-1 K-1, heat capacity of dry air
	cpv     = 1865.  // J kg-1 K-1, heat capacity of water vapor
	t0      = 273.15 // K, 0 °C
)

// LatentHeat calculates the latent heat of vaporization [MJ kg-1] at
// air temperature T [K].
func LatentHeat(T float64) float64 {
	return 2.501 - 2.361e-3*(T-t0)
}

// Pressure calculates barometric pressure [mb] at elevation z [m]
// above sea level for a standard atmosphere.
func Pressure(z float64) float64 {
	return 1013.25 * math.Pow(1-2.225577e-5*z, 5.25588)
}

// SaturationVaporPressure calculates saturation water vapor
// pressure [mb] at temperature T [K] (Bolton, 1980).
func SaturationVaporPressure(T float64) float64 {
	Tc := T - t0
	return 6.112 * math.Exp(17.67*Tc/(Tc+243.5))
}

// AirDensity calculates the density of moist air [kg m-3] when given
// pressure (p [mb]), water vapor pressure (ea [mb]) and air
// temperature (T [K]).
func AirDensity(p, ea, T float64) float64 {
	return p * 100 / (rd * T) * (1 - (1-epsilon)*ea/p)
}

// SpecificHeat calculates the heat capacity of moist air at constant
// pressure [J kg-1 K-1] when given pressure (p [mb]) and water vapor
// pressure (ea [mb]).
func SpecificHeat(p, ea float64) float64 {
	q := epsilon * ea / (p + (epsilon-1)*ea) // specific humidity
	return (1-q)*cpd + q*cpv
}

// Psychrometric calculates the psychrometric constant [mb K-1] from
// pressure (p [mb]), heat capacity of air (cp [J kg-1 K-1]) and latent
// heat of vaporization (lambda [MJ kg-1]).
func Psychrometric(p, cp, lambda float64) float64 {
	return cp * p / (epsilon * lambda * 1e6)
}
