// meshforge evaluates a Lisp scene script and writes the generated
// triangle meshes as STL or OBJ files.
//
// Usage:
//
//	meshforge [-out dir] [-format stl|obj] scene.lisp
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)

	outDir := flag.String("out", ".", "output directory for exported meshes")
	format := flag.String("format", "stl", "output format: stl or obj")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: meshforge [-out dir] [-format stl|obj] scene.lisp")
		os.Exit(2)
	}

	app, err := NewApp(*outDir, *format)
	if err != nil {
		log.Fatalf("meshforge: %v", err)
	}
	if err := app.Run(flag.Arg(0)); err != nil {
		log.Fatalf("meshforge: %v", err)
	}
}
