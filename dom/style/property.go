/*
Package style holds CSS property values for grid elements.

A column's computed style is a PropertyMap: property groups (padding,
flex, …) of raw property values. The map serializes to the value of an
HTML style attribute and may be read back from one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"fmt"
	"sort"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'gridstyle.dom'
func tracer() tracing.Trace {
	return tracing.Select("gridstyle.dom")
}

// Property is a raw value for a CSS property. For example, with
//
//     padding-left: 10px
//
// a property value of "10px" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- CSS Property Groups ----------------------------------------------

// PropertyGroup is a collection of propertes sharing a common topic.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].
type PropertyGroup struct {
	name      string
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	pg := &PropertyGroup{}
	pg.name = groupname
	return pg
}

// Name returns the name of the property group. Once named (during
// construction, property groups may not be renamed.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for _, kv := range pg.Properties() {
		s += fmt.Sprintf("  %s = %s\n", kv.Key, kv.Value)
	}
	return s
}

// Properties returns all properties of a group, in canonical order (see
// PropertyOrder).
func (pg *PropertyGroup) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool {
		return PropertyOrder(r[i].Key, r[j].Key)
	})
	return r
}

// IsSet is a predicated wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
//
// Values are stored as given; flex values in particular are passed through
// verbatim.
func (pg *PropertyGroup) Set(key string, p Property) {
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (pg *PropertyGroup) Add(key string, p Property) {
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	_, exists := pg.propsDict[key]
	if !exists {
		pg.propsDict[key] = p
	}
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("padding-top") => "Padding"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGFlex      = "Flex"
	PGX         = "X"
)

// groupOrder is the order in which groups are serialized.
var groupOrder = []string{PGDisplay, PGFlex, PGDimension, PGMargins, PGPadding, PGX}

var groupNameFromPropertyKey = map[string]string{
	"margin-top":     PGMargins, // Margins
	"margin-left":    PGMargins,
	"margin-right":   PGMargins,
	"margin-bottom":  PGMargins,
	"padding-top":    PGPadding, // Padding
	"padding-left":   PGPadding,
	"padding-right":  PGPadding,
	"padding-bottom": PGPadding,
	"width":          PGDimension, // Dimension
	"max-width":      PGDimension,
	"min-height":     PGDimension,
	"display":        PGDisplay, // Display
	"position":       PGDisplay,
	"left":           PGDisplay,
	"right":          PGDisplay,
	"flex":           PGFlex, // Flex
	"flex-flow":      PGFlex,
	"order":          PGFlex,
}

// keyOrder ranks property keys within a group. Box edges follow CSS
// shorthand order: top, right, bottom, left.
var keyOrder = map[string]int{
	"padding-top": 1, "padding-right": 2, "padding-bottom": 3, "padding-left": 4,
	"margin-top": 1, "margin-right": 2, "margin-bottom": 3, "margin-left": 4,
	"display": 1, "position": 2, "left": 3, "right": 4,
	"flex": 1, "flex-flow": 2, "order": 3,
	"width": 1, "max-width": 2, "min-height": 3,
}

// PropertyOrder is a less-function for property keys: properties of the same
// group are ordered by their rank, unknown keys alphabetically after known ones.
func PropertyOrder(a, b string) bool {
	ra, oka := keyOrder[a]
	rb, okb := keyOrder[b]
	switch {
	case oka && okb && ra != rb:
		return ra < rb
	case oka != okb:
		return oka
	}
	return a < b
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
// A property map is the entity styling a grid element.
type PropertyMap struct {
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]*PropertyGroup)}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	for _, g := range pmap.Groups() {
		s += g.String()
	}
	s += "}"
	return s
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	group := pmap.m[groupname]
	return group
}

// Groups returns the property groups of pmap in serialization order.
func (pmap *PropertyMap) Groups() []*PropertyGroup {
	if pmap == nil {
		return nil
	}
	groups := make([]*PropertyGroup, 0, len(pmap.m))
	for _, name := range groupOrder {
		if g, ok := pmap.m[name]; ok {
			groups = append(groups, g)
		}
	}
	return groups
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	groupname := GroupNameFromPropertyKey(key)
	group := pmap.Group(groupname)
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// AddAllFromGroup transfers all style properties from a property group
// to a property map. If overwrite is set, existing style property values
// will be overwritten, otherwise only new values are set.
//
// If the property map does not yet contain a group of this kind, it will
// simply set this group (instead of copying values).
func (pmap *PropertyMap) AddAllFromGroup(group *PropertyGroup, overwrite bool) *PropertyMap {
	if pmap == nil {
		pmap = NewPropertyMap()
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	g := pmap.Group(group.name)
	if g == nil {
		pmap.m[group.name] = group
	} else {
		for k, v := range group.propsDict {
			if overwrite {
				g.Set(k, v)
			} else {
				g.Add(k, v)
			}
		}
	}
	return pmap
}

// Add adds a property to this property map, e.g.,
//
//    pm.Add("padding-left", "10px")
//
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}

// Equal is true if two property maps hold the same properties.
func (pmap *PropertyMap) Equal(other *PropertyMap) bool {
	a, b := pmap.Properties(), other.Properties()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Properties returns all properties of pmap in serialization order.
func (pmap *PropertyMap) Properties() []KeyValue {
	var props []KeyValue
	for _, g := range pmap.Groups() {
		props = append(props, g.Properties()...)
	}
	return props
}
