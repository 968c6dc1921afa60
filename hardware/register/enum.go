// This file is part of n64pac.
//
// n64pac is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// n64pac is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with n64pac.  If not, see <https://www.gnu.org/licenses/>.

package register

// Enum is a Field that can only hold one of a closed set of values of type E.
//
// Hardware is allowed to present bit patterns that aren't in the set
// (reserved or undocumented encodings). Those patterns decode to the Default
// value rather than causing an error.
type Enum[V Value, E Value] struct {
	Field   Field[V]
	Default E
	values  []E
}

// NewEnum creates an Enum for field f. The default value should normally also
// be in the list of values.
func NewEnum[V Value, E Value](f Field[V], def E, values ...E) Enum[V, E] {
	return Enum[V, E]{
		Field:   f,
		Default: def,
		values:  values,
	}
}

// Values returns the list of values the Enum recognises.
func (e Enum[V, E]) Values() []E {
	return e.values
}

// Decode the field bits (already extracted from the register) into a value.
// Bit patterns not in the list of values decode to the Default.
func (e Enum[V, E]) Decode(bits V) E {
	for _, v := range e.values {
		if e.Field.Get(e.Field.Put(V(v))) == bits {
			return v
		}
	}
	return e.Default
}

// Get the Enum value from register value r.
func (e Enum[V, E]) Get(r V) E {
	return e.Decode(e.Field.Get(r))
}

// Set the field in register value r to the encoding of v. Other bits are
// preserved.
func (e Enum[V, E]) Set(r V, v E) V {
	return e.Field.Set(r, V(v))
}

// Put returns a register value containing only the encoding of v.
func (e Enum[V, E]) Put(v E) V {
	return e.Field.Put(V(v))
}

// Named attaches a name to the Enum's field for the purposes of display.
func (e Enum[V, E]) Named(name string) Named {
	return e.Field.Named(name)
}
