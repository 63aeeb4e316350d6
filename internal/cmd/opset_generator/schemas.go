// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/support/sets"
	"github.com/spoxml/spox/pkg/support/xslices"
	"gopkg.in/yaml.v3"
)

// Schemas of the operators of one domain, as read from the YAML file.
type Schemas struct {
	Domain        string              `yaml:"domain"`
	LatestVersion int                 `yaml:"latest_version"`
	TypeGroups    map[string][]string `yaml:"type_groups"`
	Operators     []*OperatorSchema   `yaml:"operators"`
}

// OperatorSchema describes an operator. Its fields are the defaults of every version, and each VersionSchema
// overrides what changed in that version.
type OperatorSchema struct {
	Name        string              `yaml:"name"`
	Doc         string              `yaml:"doc"`
	Rule        string              `yaml:"rule"`
	ValueRule   string              `yaml:"value_rule"`
	Impure      bool                `yaml:"impure"`
	Inputs      []ParamSchema       `yaml:"inputs"`
	Outputs     []ParamSchema       `yaml:"outputs"`
	Constraints map[string][]string `yaml:"constraints"`
	Attributes  []AttrSchema        `yaml:"attributes"`
	Versions    []*VersionSchema    `yaml:"versions"`
}

// VersionSchema is one version of an operator. Inputs, outputs and attributes, if given, replace the ones of the
// operator. Constraints are merged, per type variable.
type VersionSchema struct {
	Since         int                 `yaml:"since"`
	StableThrough int                 `yaml:"stable_through"`
	Rule          string              `yaml:"rule"`
	ValueRule     string              `yaml:"value_rule"`
	Inputs        []ParamSchema       `yaml:"inputs"`
	Outputs       []ParamSchema       `yaml:"outputs"`
	Constraints   map[string][]string `yaml:"constraints"`
	Attributes    []AttrSchema        `yaml:"attributes"`
}

// ParamSchema is an input or output of an operator. Option is "", "optional" or "variadic".
type ParamSchema struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Option   string `yaml:"option"`
	MinArity int    `yaml:"min_arity"`
}

// AttrSchema is an attribute of an operator. Kind is one of the names of attributes.Kind.
type AttrSchema struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Required bool   `yaml:"required"`
	Default  any    `yaml:"default"`
}

// LoadSchemas reads the schemas from the YAML file.
func LoadSchemas(path string) (*Schemas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read schemas")
	}
	return ParseSchemas(data)
}

// ParseSchemas parses the YAML contents of a schemas file.
func ParseSchemas(data []byte) (*Schemas, error) {
	s := &Schemas{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrapf(err, "failed to parse schemas")
	}
	if s.LatestVersion <= 0 {
		return nil, errors.Errorf("schemas of domain %q have no latest_version", s.Domain)
	}
	return s, nil
}

// Data given to the templates.
type Data struct {
	Source, Package, Domain string
	LatestVersion           int
	Groups                  []GroupData
	Bindings                []*BindingData
	Ops                     []*OpData

	BindingsUseAttributes, OpsUseAttributes, OpsUseTensors bool
}

// GroupData is a named list of dtypes, used by the type constraints.
type GroupData struct {
	Var, Literal string
}

// BindingData is one opset.Binding, with the Go literals already rendered.
type BindingData struct {
	OpType               string
	Since, StableThrough int
	Inputs, Outputs      string
	Constraints          string
	Attributes           []string
	Rule, ValueRule      string
	Pure                 bool
	Doc                  string
}

// OpData is one typed wrapper method.
type OpData struct {
	Name     string
	Comment  []string
	Params   string
	Result   string
	Body     string
	Versions string
}

// Prepare validates the schemas and renders the template data.
func Prepare(s *Schemas, source, pkg string) (*Data, error) {
	data := &Data{Source: source, Package: pkg, Domain: s.Domain, LatestVersion: s.LatestVersion}
	groups, err := resolveGroups(s.TypeGroups)
	if err != nil {
		return nil, err
	}
	for _, name := range xslices.SortedKeys(groups) {
		data.Groups = append(data.Groups, GroupData{Var: groupVar(name), Literal: dtypesLiteral(groups[name])})
	}

	operators := slices.Clone(s.Operators)
	slices.SortFunc(operators, func(a, b *OperatorSchema) int { return strings.Compare(a.Name, b.Name) })
	seen := sets.Make[string]()
	for _, op := range operators {
		if seen.Has(op.Name) {
			return nil, errors.Errorf("operator %q defined twice", op.Name)
		}
		seen.Insert(op.Name)
		if len(op.Versions) == 0 {
			return nil, errors.Errorf("operator %q has no versions", op.Name)
		}
		versions := slices.Clone(op.Versions)
		slices.SortFunc(versions, func(a, b *VersionSchema) int { return a.Since - b.Since })
		var latest *resolvedVersion
		var sinces []string
		for ii, v := range versions {
			if ii > 0 && v.Since == versions[ii-1].Since {
				return nil, errors.Errorf("operator %q has version %d twice", op.Name, v.Since)
			}
			if v.Since > s.LatestVersion {
				return nil, errors.Errorf("operator %q version %d is newer than the latest version %d",
					op.Name, v.Since, s.LatestVersion)
			}
			if v.StableThrough != 0 && v.StableThrough < v.Since {
				return nil, errors.Errorf("operator %q version %d is stable through an older version %d",
					op.Name, v.Since, v.StableThrough)
			}
			if v.StableThrough > s.LatestVersion {
				return nil, errors.Errorf("operator %q version %d is stable through %d, past the latest version %d",
					op.Name, v.Since, v.StableThrough, s.LatestVersion)
			}
			rv, err := resolveVersion(op, v, groups)
			if err != nil {
				return nil, errors.WithMessagef(err, "operator %q version %d", op.Name, v.Since)
			}
			binding := rv.binding(op, v)
			data.BindingsUseAttributes = data.BindingsUseAttributes || len(binding.Attributes) > 0
			data.Bindings = append(data.Bindings, binding)
			latest = rv
			sinces = append(sinces, fmt.Sprint(v.Since))
		}
		opData := latest.wrapper(op, sinces)
		data.OpsUseAttributes = data.OpsUseAttributes || strings.Contains(opData.Body, "attributes.")
		data.OpsUseTensors = data.OpsUseTensors || strings.Contains(opData.Params, "tensors.")
		data.Ops = append(data.Ops, opData)
	}
	return data, nil
}

// resolveGroups expands the type groups, which can refer to other groups or to dtypes by name.
func resolveGroups(raw map[string][]string) (map[string][]dtypes.DType, error) {
	groups := make(map[string][]dtypes.DType, len(raw))
	var resolve func(name string, visiting sets.Set[string]) ([]dtypes.DType, error)
	resolve = func(name string, visiting sets.Set[string]) ([]dtypes.DType, error) {
		if list, found := groups[name]; found {
			return list, nil
		}
		if visiting.Has(name) {
			return nil, errors.Errorf("type group %q is defined in terms of itself", name)
		}
		visiting.Insert(name)
		var list []dtypes.DType
		for _, entry := range raw[name] {
			if _, isGroup := raw[entry]; isGroup {
				sub, err := resolve(entry, visiting)
				if err != nil {
					return nil, err
				}
				list = append(list, sub...)
				continue
			}
			dtype, err := dtypes.FromName(entry)
			if err != nil {
				return nil, errors.WithMessagef(err, "type group %q", name)
			}
			list = append(list, dtype)
		}
		list = dedupDTypes(list)
		groups[name] = list
		return list, nil
	}
	for _, name := range xslices.SortedKeys(raw) {
		if _, err := resolve(name, sets.Make[string]()); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

func dedupDTypes(list []dtypes.DType) []dtypes.DType {
	seen := sets.Make[dtypes.DType]()
	result := make([]dtypes.DType, 0, len(list))
	for _, dtype := range list {
		if !seen.Has(dtype) {
			seen.Insert(dtype)
			result = append(result, dtype)
		}
	}
	return result
}

// resolvedVersion is a version of an operator with the overrides applied.
type resolvedVersion struct {
	rule, valueRule string
	inputs, outputs []ParamSchema
	attributes      []AttrSchema
	constraints     map[string]string // Type variable to Go expression.
	defaults        map[string]string // Attribute name to Go expression of the default.
}

func resolveVersion(op *OperatorSchema, v *VersionSchema, groups map[string][]dtypes.DType) (*resolvedVersion, error) {
	rv := &resolvedVersion{
		rule:        firstNonEmpty(v.Rule, op.Rule),
		valueRule:   firstNonEmpty(v.ValueRule, op.ValueRule),
		inputs:      op.Inputs,
		outputs:     op.Outputs,
		attributes:  op.Attributes,
		constraints: make(map[string]string),
		defaults:    make(map[string]string),
	}
	if v.Inputs != nil {
		rv.inputs = v.Inputs
	}
	if v.Outputs != nil {
		rv.outputs = v.Outputs
	}
	if v.Attributes != nil {
		rv.attributes = v.Attributes
	}
	if rv.rule == "" {
		return nil, errors.New("no inference rule")
	}
	if len(rv.outputs) == 0 {
		return nil, errors.New("no outputs")
	}

	constraints := make(map[string][]string, len(op.Constraints)+len(v.Constraints))
	for typeVar, entries := range op.Constraints {
		constraints[typeVar] = entries
	}
	for typeVar, entries := range v.Constraints {
		constraints[typeVar] = entries
	}
	for _, param := range slices.Concat(rv.inputs, rv.outputs) {
		if param.Name == "" || param.Type == "" {
			return nil, errors.Errorf("parameter %q has no name or type", param.Name)
		}
		switch param.Option {
		case "", "optional", "variadic":
		default:
			return nil, errors.Errorf("parameter %q has unknown option %q", param.Name, param.Option)
		}
		if _, found := rv.constraints[param.Type]; found {
			continue
		}
		entries, found := constraints[param.Type]
		if !found {
			return nil, errors.Errorf("parameter %q has unconstrained type %q", param.Name, param.Type)
		}
		expr, err := constraintExpr(entries, groups)
		if err != nil {
			return nil, errors.WithMessagef(err, "type %q", param.Type)
		}
		rv.constraints[param.Type] = expr
	}

	for _, attr := range rv.attributes {
		kind, err := attributes.KindFromName(attr.Kind)
		if err != nil {
			return nil, errors.WithMessagef(err, "attribute %q", attr.Name)
		}
		if attr.Default == nil {
			continue
		}
		if attr.Required {
			return nil, errors.Errorf("required attribute %q has a default", attr.Name)
		}
		expr, err := defaultExpr(kind, attr.Default)
		if err != nil {
			return nil, errors.WithMessagef(err, "attribute %q", attr.Name)
		}
		rv.defaults[attr.Name] = expr
	}
	return rv, nil
}

// constraintExpr renders a list of groups and dtypes: a single group is referred to by its variable.
func constraintExpr(entries []string, groups map[string][]dtypes.DType) (string, error) {
	if len(entries) == 1 {
		if _, found := groups[entries[0]]; found {
			return groupVar(entries[0]), nil
		}
	}
	var list []dtypes.DType
	for _, entry := range entries {
		if group, found := groups[entry]; found {
			list = append(list, group...)
			continue
		}
		dtype, err := dtypes.FromName(entry)
		if err != nil {
			return "", err
		}
		list = append(list, dtype)
	}
	if len(list) == 0 {
		return "", errors.New("empty type constraint")
	}
	return dtypesLiteral(dedupDTypes(list)), nil
}

func defaultExpr(kind attributes.Kind, value any) (string, error) {
	switch kind {
	case attributes.Int:
		switch v := value.(type) {
		case int:
			return fmt.Sprintf("attributes.IntValue(%d)", v), nil
		case bool:
			if v {
				return "attributes.IntValue(1)", nil
			}
			return "attributes.IntValue(0)", nil
		}
	case attributes.Float:
		switch v := value.(type) {
		case int:
			return fmt.Sprintf("attributes.FloatValue(%d)", v), nil
		case float64:
			return fmt.Sprintf("attributes.FloatValue(%v)", float32(v)), nil
		}
	case attributes.String:
		if v, ok := value.(string); ok {
			return fmt.Sprintf("attributes.StringValue(%q)", v), nil
		}
	case attributes.Ints:
		if list, ok := value.([]any); ok {
			parts := make([]string, len(list))
			for ii, item := range list {
				n, ok := item.(int)
				if !ok {
					return "", errors.Errorf("invalid item %v in ints default", item)
				}
				parts[ii] = fmt.Sprint(n)
			}
			return "attributes.IntsValue(" + strings.Join(parts, ", ") + ")", nil
		}
	case attributes.Floats:
		if list, ok := value.([]any); ok {
			parts := make([]string, len(list))
			for ii, item := range list {
				switch n := item.(type) {
				case int:
					parts[ii] = fmt.Sprint(n)
				case float64:
					parts[ii] = fmt.Sprint(float32(n))
				default:
					return "", errors.Errorf("invalid item %v in floats default", item)
				}
			}
			return "attributes.FloatsValue(" + strings.Join(parts, ", ") + ")", nil
		}
	default:
		return "", errors.Errorf("attributes of kind %s can't have defaults", kind)
	}
	return "", errors.Errorf("invalid default %v (%T) for kind %s", value, value, kind)
}

func (rv *resolvedVersion) binding(op *OperatorSchema, v *VersionSchema) *BindingData {
	b := &BindingData{
		OpType:        op.Name,
		Since:         v.Since,
		StableThrough: v.StableThrough,
		Inputs:        paramsLiteral(rv.inputs),
		Outputs:       paramsLiteral(rv.outputs),
		Rule:          "inference." + rv.rule,
		Pure:          !op.Impure,
		Doc:           fmt.Sprintf("%q", strings.TrimSpace(op.Doc)),
	}
	if rv.valueRule != "" {
		b.ValueRule = "inference." + rv.valueRule
	}
	typeVars := xslices.SortedKeys(rv.constraints)
	parts := make([]string, len(typeVars))
	for ii, typeVar := range typeVars {
		parts[ii] = fmt.Sprintf("%q: %s", typeVar, rv.constraints[typeVar])
	}
	b.Constraints = "map[string][]dtypes.DType{" + strings.Join(parts, ", ") + "}"
	for _, attr := range rv.attributes {
		kind, _ := attributes.KindFromName(attr.Kind)
		literal := fmt.Sprintf("{Name: %q, Kind: attributes.%s", attr.Name, kindConstant(kind))
		if attr.Required {
			literal += ", Required: true"
		}
		if expr, found := rv.defaults[attr.Name]; found {
			literal += ", Default: " + expr
		}
		b.Attributes = append(b.Attributes, literal+"},")
	}
	return b
}

func paramsLiteral(params []ParamSchema) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, len(params))
	for ii, p := range params {
		literal := fmt.Sprintf("{Name: %q, TypeVar: %q", p.Name, p.Type)
		switch p.Option {
		case "optional":
			literal += ", Option: opset.Optional"
		case "variadic":
			literal += ", Option: opset.Variadic"
		}
		if p.MinArity > 0 {
			literal += fmt.Sprintf(", MinArity: %d", p.MinArity)
		}
		parts[ii] = literal + "}"
	}
	return "[]opset.Param{" + strings.Join(parts, ", ") + "}"
}

// goTypes of the required attributes in the wrappers, and the constructor of their values.
var goTypes = map[attributes.Kind][2]string{
	attributes.Int:     {"int64", "attributes.IntValue(%s)"},
	attributes.Float:   {"float32", "attributes.FloatValue(%s)"},
	attributes.String:  {"string", "attributes.StringValue(%s)"},
	attributes.Tensor:  {"*tensors.Tensor", "attributes.TensorValue(%s)"},
	attributes.Graph:   {"*graph.Graph", "attributes.GraphValue(%s)"},
	attributes.Ints:    {"[]int64", "attributes.IntsValue(%s...)"},
	attributes.Floats:  {"[]float32", "attributes.FloatsValue(%s...)"},
	attributes.Strings: {"[]string", "attributes.StringsValue(%s...)"},
	attributes.Tensors: {"[]*tensors.Tensor", "attributes.TensorsValue(%s...)"},
}

// wrapper renders the typed method of the latest version of the operator.
func (rv *resolvedVersion) wrapper(op *OperatorSchema, sinces []string) *OpData {
	o := &OpData{Name: op.Name, Versions: strings.Join(sinces, ", ")}
	var params, fixed []string
	variadic := ""
	for _, input := range rv.inputs {
		name := goName(input.Name)
		if input.Option == "variadic" {
			params = append(params, name+" []*graph.Var")
			variadic = name
			continue
		}
		params = append(params, name+" *graph.Var")
		fixed = append(fixed, name)
	}
	var required, optional []string
	for _, attr := range rv.attributes {
		kind, _ := attributes.KindFromName(attr.Kind)
		if !attr.Required {
			description := fmt.Sprintf("%s (%s", attr.Name, kind)
			if expr, found := rv.defaults[attr.Name]; found {
				description += ", default " + defaultDescription(expr)
			}
			optional = append(optional, description+")")
			continue
		}
		name := goName(attr.Name)
		params = append(params, name+" "+goTypes[kind][0])
		required = append(required, fmt.Sprintf("%q: "+goTypes[kind][1], attr.Name, name))
	}

	numOutputs := fmt.Sprint(len(rv.outputs))
	if rv.outputs[len(rv.outputs)-1].Option == "variadic" {
		params = append(params, "numOutputs int")
		numOutputs = "numOutputs"
	}
	params = append(params, "attrs ...Attribute")
	o.Params = strings.Join(params, ", ")

	var inputsExpr string
	switch {
	case variadic != "" && len(fixed) > 0:
		inputsExpr = fmt.Sprintf("append([]*graph.Var{%s}, %s...)", strings.Join(fixed, ", "), variadic)
	case variadic != "":
		inputsExpr = variadic
	case len(fixed) > 0:
		inputsExpr = "[]*graph.Var{" + strings.Join(fixed, ", ") + "}"
	default:
		inputsExpr = "nil"
	}
	requiredExpr := "nil"
	if len(required) > 0 {
		requiredExpr = "attributes.Map{" + strings.Join(required, ", ") + "}"
	}
	if numOutputs == "1" {
		o.Result = "*graph.Var"
		o.Body = fmt.Sprintf("return o.Call1(%q, %s, %s, attrs)", op.Name, inputsExpr, requiredExpr)
	} else {
		o.Result = "[]*graph.Var"
		o.Body = fmt.Sprintf("return o.Call(%q, %s, %s, attrs, %s)", op.Name, inputsExpr, requiredExpr, numOutputs)
	}

	o.Comment = wrapText(strings.TrimSpace(op.Doc), 110)
	if len(optional) > 0 {
		o.Comment = append(o.Comment, "")
		o.Comment = append(o.Comment, wrapText("Optional attributes: "+strings.Join(optional, ", ")+".", 110)...)
	}
	return o
}

// defaultDescription turns "attributes.IntValue(1)" into "1".
func defaultDescription(expr string) string {
	start := strings.Index(expr, "(")
	return strings.TrimSuffix(expr[start+1:], ")")
}

func kindConstant(kind attributes.Kind) string {
	name := kind.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// goKeywords that can't be used as parameter names.
var goKeywords = sets.MakeWith("break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface", "map", "package", "range", "return",
	"select", "struct", "switch", "type", "var")

// goName converts an ONNX parameter name ("X", "data_0", "transA") to a Go parameter name ("x", "data0", "transA").
func goName(name string) string {
	var sb strings.Builder
	upperNext := false
	for ii, r := range name {
		switch {
		case r == '_':
			upperNext = sb.Len() > 0
			continue
		case ii == 0:
			r = unicode.ToLower(r)
		case upperNext:
			r = unicode.ToUpper(r)
		}
		upperNext = false
		sb.WriteRune(r)
	}
	result := sb.String()
	if len(name) > 1 && strings.ToUpper(name) == name {
		result = strings.ToLower(result)
	}
	if goKeywords.Has(result) || result == "attrs" || result == "o" || result == "numOutputs" {
		result += "Value"
	}
	return result
}

// groupVar is the name of the variable holding the type group: "numeric" -> "typesNumeric".
func groupVar(name string) string {
	return "types" + strings.ToUpper(name[:1]) + goName(name)[1:]
}

func dtypesLiteral(list []dtypes.DType) string {
	parts := make([]string, len(list))
	for ii, dtype := range list {
		parts[ii] = "dtypes." + dtype.String()
	}
	return "[]dtypes.DType{" + strings.Join(parts, ", ") + "}"
}

func wrapText(text string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if len(line)+1+len(word) > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line += " " + word
		}
		lines = append(lines, line)
	}
	return lines
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
