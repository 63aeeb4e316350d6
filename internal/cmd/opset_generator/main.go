// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// opset_generator generates the operator bindings (gen_bindings.go) and the typed wrappers (gen_ops.go) of an
// operator domain from its schemas.yaml file.
//
// It is meant to be called with go generate from the package of the domain:
//
//	//go:generate go run ../../../internal/cmd/opset_generator -schemas=schemas.yaml
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"text/template"

	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagSchemas = flag.String("schemas", "schemas.yaml", "YAML file with the operator schemas.")
	flagOutput  = flag.String("output", ".", "Directory where to write the generated files.")
	flagPackage = flag.String("package", "",
		"Package name of the generated files. If empty, the name of the output directory is used.")
)

const (
	bindingsFile = "gen_bindings.go"
	opsFile      = "gen_ops.go"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	klog.V(1).Infof("opset_generator: schemas=%q, output=%q", *flagSchemas, *flagOutput)
	pkg := *flagPackage
	if pkg == "" {
		pkg = filepath.Base(must.M1(filepath.Abs(*flagOutput)))
	}
	schemas := must.M1(LoadSchemas(*flagSchemas))
	data := must.M1(Prepare(schemas, path.Base(*flagSchemas), pkg))
	generate(filepath.Join(*flagOutput, bindingsFile), bindingsTemplate, data)
	generate(filepath.Join(*flagOutput, opsFile), opsTemplate, data)
}

func generate(fileName string, tmpl *template.Template, data *Data) {
	f := must.M1(os.Create(fileName))
	must.M(tmpl.Execute(f, data))
	must.M(f.Close())
	cmd := exec.Command("go", "fmt", fileName)
	cmd.Stderr = os.Stderr
	must.M(cmd.Run())
	fmt.Printf("✅ opset_generator:      \tsuccessfully generated %s\n", fileName)
}

var (
	bindingsTemplate = template.Must(template.New(bindingsFile).Parse(`/***** File generated by ./internal/cmd/opset_generator, based on {{.Source}}. Don't edit it directly. *****/

package {{.Package}}

import (
{{- if .BindingsUseAttributes}}
	"github.com/spoxml/spox/pkg/core/attributes"
{{- end}}
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/inference"
	"github.com/spoxml/spox/pkg/core/opset"
)

const (
	// Domain of the operators.
	Domain = {{printf "%q" .Domain}}

	// LatestVersion of the domain covered by the bindings.
	LatestVersion = {{.LatestVersion}}
)

// Type constraint groups.
var (
{{- range .Groups}}
	{{.Var}} = {{.Literal}}
{{- end}}
)

// Bindings of every version of the operators of the domain, sorted by operator and version.
var Bindings = []*opset.Binding{
{{- range .Bindings}}
	{
		Domain:       Domain,
		OpType:       {{printf "%q" .OpType}},
		SinceVersion: {{.Since}},
{{- if .StableThrough}}
		StableThrough: {{.StableThrough}},
{{- end}}
		Signature: &opset.Signature{
{{- if .Inputs}}
			Inputs: {{.Inputs}},
{{- end}}
			Outputs: {{.Outputs}},
			TypeConstraints: {{.Constraints}},
{{- if .Attributes}}
			Attributes: []opset.AttrSpec{
{{- range .Attributes}}
				{{.}}
{{- end}}
			},
{{- end}}
		},
		Rule: {{.Rule}},
{{- if .ValueRule}}
		ValueRule: {{.ValueRule}},
{{- end}}
{{- if .Pure}}
		Pure: true,
{{- end}}
		Doc: {{.Doc}},
	},
{{- end}}
}
`))

	opsTemplate = template.Must(template.New(opsFile).Parse(`/***** File generated by ./internal/cmd/opset_generator, based on {{.Source}}. Don't edit it directly. *****/

package {{.Package}}

import (
{{- if .OpsUseAttributes}}
	"github.com/spoxml/spox/pkg/core/attributes"
{{- end}}
	"github.com/spoxml/spox/pkg/core/graph"
{{- if .OpsUseTensors}}
	"github.com/spoxml/spox/pkg/core/tensors"
{{- end}}
)
{{- range .Ops}}

{{range .Comment}}//{{if .}} {{.}}{{end}}
{{end}}//
// Versions: {{.Versions}}.
func (o *Ops) {{.Name}}({{.Params}}) {{.Result}} {
	{{.Body}}
}
{{- end}}
`))
)
