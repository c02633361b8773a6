package gatenet_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/pborges/gatenet/examples"
	"github.com/pborges/gatenet/internal/elab"
	"github.com/pborges/gatenet/internal/gatenet"
)

// Every embedded example must parse and pass elaboration.
func TestBlackboxExamples(t *testing.T) {
	files, err := fs.Glob(examples.FS, "*.ckt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no .ckt files found in examples FS")
	}

	for _, path := range files {
		name := strings.TrimSuffix(path, ".ckt")
		t.Run(name, func(t *testing.T) {
			src, err := examples.FS.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}
			prog, err := gatenet.Parse(string(src))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if err := elab.Check(prog); err != nil {
				t.Fatalf("check: %v", err)
			}
		})
	}
}
