// Copyright 2026 go-dispatch Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/printer"
	"go/token"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

const dispatchImport = "github.com/ajroetker/go-dispatch/dispatch"

// Spec describes one dispatched function to generate boilerplate for.
type Spec struct {
	Func    string   // kernel base name, e.g. "sum"
	Sig     string   // Go signature, e.g. "func([]float32) float32"
	Package string   // output package name
	Ladder  []Target // ascending levels, from ParseLadder
}

var titler = cases.Title(language.Und, cases.NoLower)

// Generate produces the registration file: the exported forwarding
// wrapper and the variant table binding one kernel per ladder level.
func Generate(spec Spec) ([]byte, error) {
	ft, err := parseSignature(spec.Sig)
	if err != nil {
		return nil, err
	}
	params, args, err := wrapperParams(ft)
	if err != nil {
		return nil, err
	}
	results, err := renderResults(ft)
	if err != nil {
		return nil, err
	}

	wrapper := titler.String(spec.Func)
	binding := spec.Func + "Func"

	kernels := make([]string, len(spec.Ladder))
	for i, t := range spec.Ladder {
		kernels[i] = spec.Func + t.Suffix
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by dispatchgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", spec.Package)
	fmt.Fprintf(&buf, "import %q\n\n", dispatchImport)

	fmt.Fprintf(&buf, "// %s forwards through the %s binding, resolved on first call.\n", wrapper, spec.Func)
	fmt.Fprintf(&buf, "func %s(%s)%s {\n", wrapper, params, results)
	ret := "return "
	if results == "" {
		ret = ""
	}
	fmt.Fprintf(&buf, "\t%s%s.Get()(%s)\n", ret, binding, args)
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "// %s binds the best of: %s.\n", binding, strings.Join(kernels, ", "))
	fmt.Fprintf(&buf, "var %s = dispatch.New(\n", binding)
	for i, t := range spec.Ladder {
		fmt.Fprintf(&buf, "\tdispatch.At(dispatch.%s, %s),\n", t.Ident, kernels[i])
	}
	fmt.Fprintf(&buf, ")\n")

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	out, err := imports.Process(spec.Func+"_dispatch.go", formatted, nil)
	if err != nil {
		return nil, fmt.Errorf("fixing imports: %w", err)
	}
	return out, nil
}

func parseSignature(sig string) (*ast.FuncType, error) {
	expr, err := parser.ParseExpr(sig)
	if err != nil {
		return nil, fmt.Errorf("parsing signature %q: %w", sig, err)
	}
	ft, ok := expr.(*ast.FuncType)
	if !ok {
		return nil, fmt.Errorf("signature %q is not a function type", sig)
	}
	if ft.TypeParams != nil {
		return nil, fmt.Errorf("generic signatures are not supported")
	}
	return ft, nil
}

// wrapperParams renders the wrapper's parameter list and the matching
// forwarding argument list. Parameter names from the signature are
// discarded; the wrapper names its own (x0, x1, ...).
func wrapperParams(ft *ast.FuncType) (params, args string, err error) {
	if ft.Params == nil {
		return "", "", nil
	}
	var ps, as []string
	n := 0
	for _, field := range ft.Params.List {
		typ, err := renderType(field.Type)
		if err != nil {
			return "", "", err
		}
		count := len(field.Names)
		if count == 0 {
			count = 1
		}
		_, variadic := field.Type.(*ast.Ellipsis)
		for i := 0; i < count; i++ {
			name := fmt.Sprintf("x%d", n)
			n++
			ps = append(ps, name+" "+typ)
			if variadic {
				as = append(as, name+"...")
			} else {
				as = append(as, name)
			}
		}
	}
	return strings.Join(ps, ", "), strings.Join(as, ", "), nil
}

func renderResults(ft *ast.FuncType) (string, error) {
	if ft.Results == nil || len(ft.Results.List) == 0 {
		return "", nil
	}
	var rs []string
	for _, field := range ft.Results.List {
		typ, err := renderType(field.Type)
		if err != nil {
			return "", err
		}
		count := len(field.Names)
		if count == 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			rs = append(rs, typ)
		}
	}
	if len(rs) == 1 {
		return " " + rs[0], nil
	}
	return " (" + strings.Join(rs, ", ") + ")", nil
}

func renderType(expr ast.Expr) (string, error) {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, token.NewFileSet(), expr); err != nil {
		return "", fmt.Errorf("rendering type: %w", err)
	}
	return buf.String(), nil
}
