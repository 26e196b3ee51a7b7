/*
Package cssom provides a minimal CSS object model for grid stylesheets.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

Grid columns are styled by class tokens; the meaning of the tokens lives in
a stylesheet (see package grid/gridcss). CSSOM is the "CSS Object Model",
similar to the DOM for HTML. We use it to answer one question: which rules of
a stylesheet apply to a rendered grid element at a given viewport width?

Selectors are matched with https://godoc.org/github.com/andybalholm/cascadia.
CSS parsing is de-coupled by introducing the interfaces StyleSheet and Rule.
A concrete implementation may be found in sub-package douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'gridstyle.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("gridstyle.cssom")
}
