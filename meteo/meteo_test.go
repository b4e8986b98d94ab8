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

package meteo

import (
	"testing"

	"github.com/gonum/floats"
)

func TestMeteo(t *testing.T) {
	const tol = 1.e-10
	// Want values are from the reference implementation.
	tests := []struct {
		name       string
		have, want float64
	}{
		{name: "LatentHeat 0 °C", have: LatentHeat(273.15), want: 2.501},
		{name: "LatentHeat 25 °C", have: LatentHeat(298.15), want: 2.501 - 2.361e-3*25},
		{name: "Pressure sea level", have: Pressure(0), want: 1013.25},
		{name: "Pressure 1500 m", have: Pressure(1500), want: 847.6452119947469},
		{name: "SaturationVaporPressure 0 °C", have: SaturationVaporPressure(273.15), want: 6.112},
		{name: "SaturationVaporPressure 25 °C", have: SaturationVaporPressure(298.15), want: 31.67429436187285},
		{name: "AirDensity", have: AirDensity(1013.25, 15, 293.15), want: 1.1974219597190476},
		{name: "SpecificHeat dry", have: SpecificHeat(1013.25, 0), want: 1003.5},
		{name: "SpecificHeat moist", have: SpecificHeat(1013.25, 15), want: 1011.4773268623832},
		{name: "Psychrometric", have: Psychrometric(1013.25, 1005, 2.45), want: 0.6682303628847037},
	}
	for _, test := range tests {
		if !floats.EqualWithinAbsOrRel(test.have, test.want, tol, tol) {
			t.Errorf("%s: have %g, want %g", test.name, test.have, test.want)
		}
	}
}
