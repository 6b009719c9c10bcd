package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chazu/meshforge/pkg/engine"
	"github.com/chazu/meshforge/pkg/export"
)

// App wires the script engine to the exporters: it evaluates a scene
// script and writes one output file per emitted mesh.
type App struct {
	engine *engine.Engine
	outDir string
	format string // "stl" or "obj"
}

// NewApp creates an App writing the given format into outDir.
func NewApp(outDir, format string) (*App, error) {
	switch format {
	case "stl", "obj":
	default:
		return nil, fmt.Errorf("unknown format %q, expected stl or obj", format)
	}
	return &App{
		engine: engine.NewEngine(),
		outDir: outDir,
		format: format,
	}, nil
}

// Run evaluates the script at scriptPath and exports every emitted mesh.
// Script eval errors are logged with their line numbers and reported as
// one failure.
func (a *App) Run(scriptPath string) error {
	source, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	scene, evalErrs, err := a.engine.Evaluate(string(source))
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			log.Printf("%s: %s", scriptPath, e.Error())
		}
		return fmt.Errorf("evaluate: %d error(s) in %s", len(evalErrs), scriptPath)
	}

	if scene.Len() == 0 {
		log.Printf("%s: script emitted no meshes", scriptPath)
		return nil
	}

	if err := os.MkdirAll(a.outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, nm := range scene.Meshes {
		path := filepath.Join(a.outDir, sanitizeName(nm.Name)+"."+a.format)
		switch a.format {
		case "stl":
			err = export.STL(nm.Buffer, path)
		case "obj":
			err = export.OBJ(nm.Buffer, path, nm.Name)
		}
		if err != nil {
			return fmt.Errorf("export %s: %w", nm.Name, err)
		}
		log.Printf("wrote %s (%d vertices, %d triangles)",
			path, nm.Buffer.VertexCount(), nm.Buffer.TriangleCount())
	}
	return nil
}

// sanitizeName makes an emitted mesh name safe to use as a file name.
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
}
