// This file is part of cdgplay.
//
// cdgplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cdgplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cdgplay.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cdgplay/cdgplay/curated"
)

// Value represents the actual Go preference value.
type Value any

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Error patterns returned by the Set() function of the preference types.
const (
	CannotConvert = "prefs: cannot convert %T to %s"
	InvalidValue  = "prefs: invalid value for %s: %v"
)

// the hook function is called just after the value has been updated. the
// new value is passed to the function
type hook func(value Value) error

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value atomic.Bool
	post  hook
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.value.Load())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return curated.Errorf(CannotConvert, v, "prefs.Bool")
	}

	p.value.Store(nv)

	if p.post != nil {
		return p.post(nv)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.value.Load()
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
func (p *Bool) SetHookPost(f func(value Value) error) {
	p.post = f
}

// String implements a string type in the prefs system.
type String struct {
	crit   sync.Mutex
	maxLen int
	value  string
	post   hook
}

func (p *String) String() string {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.value
}

// SetMaxLen sets the maximum length for a string when it is set. To set no
// limit use a value less than or equal to zero. Note that the existing string
// will be cropped if necessary.
func (p *String) SetMaxLen(max int) {
	p.crit.Lock()
	defer p.crit.Unlock()

	p.maxLen = max
	if p.maxLen > 0 && len(p.value) > p.maxLen {
		p.value = p.value[:p.maxLen]
	}
}

// Set new value to String type. Values of any type are converted to a
// string.
func (p *String) Set(v Value) error {
	p.crit.Lock()
	nv := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}
	p.value = nv
	p.crit.Unlock()

	if p.post != nil {
		return p.post(nv)
	}
	return nil
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated.
func (p *String) SetHookPost(f func(value Value) error) {
	p.post = f
}

// Int implements an integer type in the prefs system. The range of values can
// be limited with SetRange().
type Int struct {
	value atomic.Int64
	post  hook

	// inclusive range of valid values. only checked if ranged is true
	ranged bool
	min    int
	max    int
}

func (p *Int) String() string {
	return strconv.FormatInt(p.value.Load(), 10)
}

// SetRange limits the values that can be set. Values outside of the range are
// rejected by Set(). The existing value is not checked.
func (p *Int) SetRange(min, max int) {
	p.ranged = true
	p.min = min
	p.max = max
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int64:
		nv = int(v)
	case int32:
		nv = int(v)
	case int:
		nv = v
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return curated.Errorf(CannotConvert, v, "prefs.Int")
		}
	default:
		return curated.Errorf(CannotConvert, v, "prefs.Int")
	}

	if p.ranged && (nv < p.min || nv > p.max) {
		return curated.Errorf(InvalidValue, "prefs.Int", nv)
	}

	p.value.Store(int64(nv))

	if p.post != nil {
		return p.post(nv)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return int(p.value.Load())
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated.
func (p *Int) SetHookPost(f func(value Value) error) {
	p.post = f
}

// Float implements a floating point type in the prefs system.
type Float struct {
	value atomic.Value // float64
	post  hook
}

func (p *Float) String() string {
	return fmt.Sprintf("%.3f", p.Get())
}

// Set new value to Float type. New value can be a float, an int or a string.
func (p *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case float32:
		nv = float64(v)
	case int:
		nv = float64(v)
	case string:
		var err error
		nv, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return curated.Errorf(CannotConvert, v, "prefs.Float")
		}
	default:
		return curated.Errorf(CannotConvert, v, "prefs.Float")
	}

	p.value.Store(nv)

	if p.post != nil {
		return p.post(nv)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return float64(0.0)
	}
	return ov.(float64)
}

// Reset sets the float value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated.
func (p *Float) SetHookPost(f func(value Value) error) {
	p.post = f
}

// Generic is a general purpose preferences type, useful for values that
// cannot be represented by a single live value. You must use the NewGeneric()
// function to initialise a new instance of Generic.
//
// The Generic type does not have a way of registering a callback function.
// The set function serves the same purpose.
type Generic struct {
	crit sync.Mutex
	set  func(string) error
	get  func() string
}

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(string) error, get func() string) *Generic {
	return &Generic{
		set: set,
		get: get,
	}
}

func (p *Generic) String() string {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.get()
}

// Set triggers the set value procedure for the generic type.
func (p *Generic) Set(v Value) error {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.set(fmt.Sprintf("%v", v))
}

// Get triggers the get value procedure for the generic type.
func (p *Generic) Get() Value {
	return p.String()
}

// Reset sets the generic value to the empty string.
func (p *Generic) Reset() error {
	return p.Set("")
}
