/*
Package trimview implements a trim view: a control for selecting a sub-range (the trim window)
inside a fixed range [0, max] by dragging its two edge handles or its body, together with a
progress indicator which always stays inside the selected window.

The Controller holds the whole state and is independent of any toolkit. A rendering surface
owns a controller, forwards the pointer events it receives and draws the Geometry it exposes.
The gui sub-package provides a Gio widget and window, tui a terminal host and raster
a headless renderer. Config, LoadConfig and WatchConfig give the hosts a shared TOML
configuration which can be reloaded while they run.

A minimal host looks like this:

	package main

	import (
		"fmt"

		"github.com/hmomeni/trimview"
	)

	func main() {
		c := trimview.NewController()
		if err := c.Configure(trimview.Range{Max: 100, Trim: 50, MinTrim: 20, MaxTrim: 80}); err != nil {
			panic(err)
		}
		c.SetListener(trimview.EdgeChanged(func(trimStart, trim int) {
			fmt.Println("window:", trimStart, trimStart+trim)
		}))
		c.Resize(148, 0)

		c.PointerDown(5, 10) // on the left handle
		c.PointerMove(25, 10)
		c.PointerUp(25, 10)
	}
*/
package trimview
