/*
Package resources locates the resources of a display application: the
directory of bitmap fonts and the directory of flag images.

Locations are taken from the application configuration. Flags are image
files (PNG or BMP), each accompanied by a JSON file of the same base name,
holding a display name and an info text for the flag.

Loading a flag may be done in an async/await fashion. Functions named

   Resolve…(…)

return a resource-specific promise type, which the client will call later
to receive the loaded resource. The call to the promise-function will then
block until loading has completed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'fisboard.resources'.
func tracer() tracing.Trace {
	return tracing.Select("fisboard.resources")
}
