/*
Package fontregistry manages a cache for loaded font metadata.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fisboard.fonts'
func tracer() tracing.Trace {
	return tracing.Select("fisboard.fonts")
}
