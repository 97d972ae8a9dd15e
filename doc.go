// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package shaape renders ASCII diagrams as PNG, JPEG, SVG, EPS or PDF images. It supports
// diagrams containing UTF-8 content, dashed lines, arrow heads, labels and custom styling of
// shapes through an embedded YAML block.
//
// Parsing is a Pipeline of Stages. Each Stage reads the text left by the previous ones,
// consumes what it understands and adds entities to a Collection. What happens to an entity
// afterwards depends on the interfaces it implements: Drawable ones are painted, Scalable ones
// are rescaled to output units and the first Footprint, normally the Background, sets the
// canvas size.
//
// Example usage:
//
//	import (
//	    "os"
//
//	    "github.com/shaape/shaape"
//	)
//
//	...
//
//	    png, err := shaape.Render(diagram, shaape.Options{Format: shaape.PNG, Width: 400})
//	    if err != nil {
//	        return err
//	    }
//	    err = os.WriteFile("diagram.png", png, 0o644)
//
//	...
//
// A style block starts on a line beginning with "options:" and runs to the end of the input:
//
//	+-----+    +-----+
//	| db  |--->| app |
//	+-----+    +-----+
//
//	options:
//	- "db": {fill: "#f80", frame: [0, 0, 0.5]}
//	- "app": {dash: true, width: 3}
//	background: "#eee"
package shaape
