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

package surflayer

import (
	"fmt"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/surflayer/most"
)

var (
	// joulePerKilogramKelvin is the unit of specific heat capacity [J kg-1 K-1].
	joulePerKilogramKelvin = unit.Dimensions{
		unit.LengthDim:      2,
		unit.TimeDim:        -2,
		unit.TemperatureDim: -1,
	}
	// wattPerMeter2 is the unit of an energy flux density [W m-2].
	wattPerMeter2 = unit.Dimensions{
		unit.MassDim: 1,
		unit.TimeDim: -3,
	}
)

// quantity pairs an argument with the dimensions it must have.
type quantity struct {
	name string
	v    *unit.Unit
	d    unit.Dimensions
}

// checkDims returns an error naming the first quantity that is nil or
// has the wrong dimensions.
func checkDims(quantities ...quantity) error {
	for _, q := range quantities {
		if q.v == nil {
			return fmt.Errorf("surflayer: %s is nil", q.name)
		}
		if err := q.v.Check(q.d); err != nil {
			return fmt.Errorf("surflayer: %s: %v", q.name, err)
		}
	}
	return nil
}

// ObukhovLengthUnit is a dimension-checked version of
// most.ObukhovLength. The result is in meters.
func ObukhovLengthUnit(ustar, T, rho, cp, H, LE *unit.Unit) (*unit.Unit, error) {
	err := checkDims(
		quantity{"friction velocity", ustar, unit.MeterPerSecond},
		quantity{"air temperature", T, unit.Kelvin},
		quantity{"air density", rho, unit.KilogramPerMeter3},
		quantity{"heat capacity", cp, joulePerKilogramKelvin},
		quantity{"sensible heat flux", H, wattPerMeter2},
		quantity{"latent heat flux", LE, wattPerMeter2},
	)
	if err != nil {
		return nil, err
	}
	L := most.ObukhovLength(ustar.Value(), T.Value(), rho.Value(), cp.Value(), H.Value(), LE.Value())
	return unit.New(L, unit.Meter), nil
}

// FrictionVelocityUnit is a dimension-checked version of
// most.FrictionVelocity. L must be a length, or dimensionless if useRi
// is true. The result is in meters per second.
func FrictionVelocityUnit(u, zu, L, d0, z0M *unit.Unit, useRi bool) (*unit.Unit, error) {
	stability := quantity{"Obukhov length", L, unit.Meter}
	if useRi {
		stability = quantity{"Richardson number", L, unit.Dimless}
	}
	err := checkDims(
		quantity{"wind speed", u, unit.MeterPerSecond},
		quantity{"measurement height", zu, unit.Meter},
		stability,
		quantity{"displacement height", d0, unit.Meter},
		quantity{"roughness length", z0M, unit.Meter},
	)
	if err != nil {
		return nil, err
	}
	ustar := most.FrictionVelocity(u.Value(), zu.Value(), L.Value(), d0.Value(), z0M.Value(), useRi)
	return unit.New(ustar, unit.MeterPerSecond), nil
}

// RichardsonUnit is a dimension-checked version of most.Richardson.
// The result is dimensionless.
func RichardsonUnit(u, zu, d0, TR0, TR1, TA0, TA1 *unit.Unit) (*unit.Unit, error) {
	err := checkDims(
		quantity{"wind speed", u, unit.MeterPerSecond},
		quantity{"measurement height", zu, unit.Meter},
		quantity{"displacement height", d0, unit.Meter},
		quantity{"radiometric temperature at time 0", TR0, unit.Kelvin},
		quantity{"radiometric temperature at time 1", TR1, unit.Kelvin},
		quantity{"air temperature at time 0", TA0, unit.Kelvin},
		quantity{"air temperature at time 1", TA1, unit.Kelvin},
	)
	if err != nil {
		return nil, err
	}
	Ri := most.Richardson(u.Value(), zu.Value(), d0.Value(), TR0.Value(), TR1.Value(), TA0.Value(), TA1.Value())
	return unit.New(Ri, unit.Dimless), nil
}
