// Command composites generates the fixed-size ArrayN and TupleN encoders.
//
// Go generics cannot abstract over array length or tuple arity, so each size
// gets its own small type that delegates to the shared sequence and tuple
// routines. The ceiling is a flag:
//
//	go run ./internal/gen/composites -max 20 -out composite_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"strings"
	"text/template"
)

type arity struct {
	N      int
	Params []string // T1 ... TN
	Fields []string // V1 ... VN
	Args   []string // v1 ... vN
}

// TypeParams renders "[T1, T2 Encodable]".
func (a arity) TypeParams() string {
	return "[" + strings.Join(a.Params, ", ") + " Encodable]"
}

// TypeArgs renders "[T1, T2]".
func (a arity) TypeArgs() string {
	return "[" + strings.Join(a.Params, ", ") + "]"
}

func (a arity) Signature() string {
	parts := make([]string, a.N)
	for i := range a.N {
		parts[i] = a.Args[i] + " " + a.Params[i]
	}

	return strings.Join(parts, ", ")
}

func (a arity) Literal() string {
	parts := make([]string, a.N)
	for i := range a.N {
		parts[i] = a.Fields[i] + ": " + a.Args[i]
	}

	return strings.Join(parts, ", ")
}

func (a arity) Selectors() string {
	parts := make([]string, a.N)
	for i := range a.N {
		parts[i] = "t." + a.Fields[i]
	}

	return strings.Join(parts, ", ")
}

func newArity(n int) arity {
	a := arity{N: n}
	for i := 1; i <= n; i++ {
		a.Params = append(a.Params, fmt.Sprintf("T%d", i))
		a.Fields = append(a.Fields, fmt.Sprintf("V%d", i))
		a.Args = append(a.Args, fmt.Sprintf("v%d", i))
	}

	return a
}

var fileTemplate = template.Must(template.New("composites").Parse(`// Code generated by internal/gen/composites; DO NOT EDIT.

package {{.Package}}

import "io"

{{range .Arities}}
// Array{{.N}} is a fixed-size array of length {{.N}}, encoded in index order.
type Array{{.N}}[T Encodable] [{{.N}}]T

func (a Array{{.N}}[T]) Encode(w io.Writer, opts *Options) error {
	return Seq[T](a[:]).Encode(w, opts)
}
{{end}}
// Tuple0 is the empty tuple. It encodes to zero bytes.
type Tuple0 struct{}

func (Tuple0) Encode(io.Writer, *Options) error {
	return nil
}
{{range .Tuples}}{{$a := .}}
// Tuple{{.N}} is a tuple of arity {{.N}}, encoded in field order.
type Tuple{{.N}}{{.TypeParams}} struct {
{{- range $i, $f := .Fields}}
	{{$f}} {{index $a.Params $i}}
{{- end}}
}

// NewTuple{{.N}} builds a Tuple{{.N}} from its values.
func NewTuple{{.N}}{{.TypeParams}}({{.Signature}}) Tuple{{.N}}{{.TypeArgs}} {
	return Tuple{{.N}}{{.TypeArgs}}{ {{- .Literal -}} }
}

func (t Tuple{{.N}}{{.TypeArgs}}) Encode(w io.Writer, opts *Options) error {
	return encodeAll(w, opts, {{.Selectors}})
}
{{end}}`))

func main() {
	maxArity := flag.Int("max", 20, "largest array size and tuple arity to generate")
	out := flag.String("out", "", "output file (stdout when empty)")
	pkg := flag.String("pkg", "binwrite", "package name of the generated file")
	flag.Parse()

	if *maxArity < 1 {
		log.Fatalf("composites: -max must be at least 1, got %d", *maxArity)
	}

	src, err := generate(*pkg, *maxArity)
	if err != nil {
		log.Fatalf("composites: %v", err)
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("composites: %v", err)
		}
		defer f.Close()
		w = f
	}

	if _, err := w.Write(src); err != nil {
		log.Fatalf("composites: %v", err)
	}
}

func generate(pkg string, maxArity int) ([]byte, error) {
	data := struct {
		Package string
		Arities []arity
		Tuples  []arity
	}{Package: pkg}

	for n := 0; n <= maxArity; n++ {
		data.Arities = append(data.Arities, newArity(n))
		if n > 0 {
			data.Tuples = append(data.Tuples, newArity(n))
		}
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}

	return src, nil
}
