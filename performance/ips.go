// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package performance

// CalcIPS takes the number of instructions executed and a duration (in
// seconds) and returns the instructions-per-second and that value as a
// percentage of the clock speed.
func CalcIPS(clockSpeed int, numInstructions uint64, duration float64) (ips float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	ips = float64(numInstructions) / duration
	if clockSpeed > 0 {
		accuracy = 100 * ips / float64(clockSpeed)
	}
	return ips, accuracy
}
