// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// Package opset resolves operator invocations to their versioned bindings.
//
// A Binding is one version of an operator: its signature, inference rules and whether it is safe to deduplicate.
// Bindings are collected in named Tables, keyed by (domain, operator) and sorted by the version that introduced
// them. Resolve selects, for a requested opset version, the latest binding introduced at or before it.
//
// Tables are filled once, usually at package initialization from generated code, and then frozen: a frozen Table is
// read-only and can be shared by any number of concurrent graph builders.
package opset

import (
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/inference"
	"k8s.io/klog/v2"
)

// DefaultDomain is the ONNX default operator domain. The domain "ai.onnx" is an alias to it.
const DefaultDomain = ""

// NormalizeDomain maps aliases of a domain to its canonical name.
func NormalizeDomain(domain string) string {
	if domain == "ai.onnx" {
		return DefaultDomain
	}
	return domain
}

// DomainName returns a printable name for the domain.
func DomainName(domain string) string {
	if domain == DefaultDomain {
		return "ai.onnx"
	}
	return domain
}

// Version is a versioned operator domain.
type Version struct {
	Domain  string
	Version int
}

// String implements fmt.Stringer.
func (v Version) String() string {
	return fmt.Sprintf("%s@%d", DomainName(v.Domain), v.Version)
}

// Binding is one version of an operator.
type Binding struct {
	Domain string
	OpType string

	// SinceVersion is the opset version that introduced this version of the operator.
	SinceVersion int

	// StableThrough is the last opset version under which this binding behaves the same as the one resolved for
	// that version. This is the case of version bumps that only extend the accepted types. Zero means only its own
	// epoch.
	StableThrough int

	Signature *Signature
	Rule      inference.Rule

	// ValueRule is optional.
	ValueRule inference.ValueRule

	// Pure bindings have no side effects and no randomness: identical invocations can be deduplicated.
	Pure bool

	Doc string

	// Body is set for local functions, operators defined by a graph of other operators. See graph.Function.
	Body FunctionBody
}

// FunctionBody is the definition of a local function. Its nodes are resolved like any other, and the models using
// the function carry its definition.
type FunctionBody interface {
	Name() string
	Key() string
}

// String implements fmt.Stringer.
func (b *Binding) String() string {
	return fmt.Sprintf("%s-%d", b.OpType, b.SinceVersion)
}

type opKey struct {
	domain, op string
}

// Table is a named collection of operator bindings. See package documentation.
type Table struct {
	name string

	mu       sync.Mutex
	frozen   bool
	latest   map[string]int
	bindings map[opKey][]*Binding
}

// NewTable creates an empty, unfrozen, table.
func NewTable(name string) *Table {
	return &Table{
		name:     name,
		latest:   make(map[string]int),
		bindings: make(map[opKey][]*Binding),
	}
}

// Clone returns an unfrozen copy of the table with a new name, to be extended with more bindings.
func (t *Table) Clone(name string) *Table {
	t.mu.Lock()
	defer t.mu.Unlock()
	clone := NewTable(name)
	for domain, version := range t.latest {
		clone.latest[domain] = version
	}
	for key, list := range t.bindings {
		clone.bindings[key] = slices.Clone(list)
	}
	return clone
}

// Name of the table.
func (t *Table) Name() string { return t.name }

// String implements fmt.Stringer.
func (t *Table) String() string { return "opset.Table(" + t.name + ")" }

// SupportDomain declares a domain and the latest opset version of it the table supports.
// It can be called again to raise the latest version.
func (t *Table) SupportDomain(domain string, latestVersion int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.frozen {
		return errors.Errorf("table %q is frozen", t.name)
	}
	domain = NormalizeDomain(domain)
	if latestVersion < t.latest[domain] {
		return errors.Errorf("table %q: can't lower latest version of domain %q from %d to %d",
			t.name, DomainName(domain), t.latest[domain], latestVersion)
	}
	t.latest[domain] = latestVersion
	return nil
}

// Register adds a binding. The domain must have been declared with SupportDomain, and there can be only one
// binding per (domain, op, SinceVersion).
func (t *Table) Register(b *Binding) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.frozen {
		return errors.Errorf("table %q is frozen, can't register %s", t.name, b)
	}
	b.Domain = NormalizeDomain(b.Domain)
	latest, found := t.latest[b.Domain]
	if !found {
		return errors.Errorf("table %q doesn't support domain %q, can't register %s",
			t.name, DomainName(b.Domain), b)
	}
	if b.SinceVersion < 1 || b.SinceVersion > latest {
		return errors.Errorf("table %q: %s has version out of range [1, %d] for domain %q",
			t.name, b, latest, DomainName(b.Domain))
	}
	if b.Signature == nil || b.Rule == nil {
		return errors.Errorf("table %q: %s must have a signature and a rule", t.name, b)
	}
	if err := b.Signature.Validate(); err != nil {
		return errors.WithMessagef(err, "table %q: invalid signature for %s", t.name, b)
	}
	key := opKey{b.Domain, b.OpType}
	list := t.bindings[key]
	idx, found := slices.BinarySearchFunc(list, b.SinceVersion, func(e *Binding, v int) int {
		return e.SinceVersion - v
	})
	if found {
		return errors.Errorf("table %q: %s registered twice", t.name, b)
	}
	t.bindings[key] = slices.Insert(list, idx, b)
	return nil
}

// MustRegister registers the bindings and panics on error. Used by the generated code.
func (t *Table) MustRegister(bindings ...*Binding) {
	for _, b := range bindings {
		if err := t.Register(b); err != nil {
			panic(err)
		}
	}
}

// Freeze makes the table read-only. It returns the table for convenience.
func (t *Table) Freeze() *Table {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frozen = true
	if klog.V(1).Enabled() {
		count := 0
		for _, list := range t.bindings {
			count += len(list)
		}
		klog.Infof("opset table %q frozen with %d bindings over %d domains", t.name, count, len(t.latest))
	}
	return t
}

// IsFrozen returns whether the table was frozen.
func (t *Table) IsFrozen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frozen
}

// Domains returns the domains supported by the table, sorted.
func (t *Table) Domains() []string {
	domains := make([]string, 0, len(t.latest))
	for domain := range t.latest {
		domains = append(domains, domain)
	}
	sort.Strings(domains)
	return domains
}

// LatestVersion returns the latest opset version of the domain supported by the table, or 0 if the domain is not
// supported.
func (t *Table) LatestVersion(domain string) int {
	return t.latest[NormalizeDomain(domain)]
}

// Ops returns the operators of the domain, sorted.
func (t *Table) Ops(domain string) []string {
	domain = NormalizeDomain(domain)
	var ops []string
	for key := range t.bindings {
		if key.domain == domain {
			ops = append(ops, key.op)
		}
	}
	sort.Strings(ops)
	return ops
}

// Bindings returns all the versions of the operator, sorted by SinceVersion.
func (t *Table) Bindings(domain, op string) []*Binding {
	return slices.Clone(t.bindings[opKey{NormalizeDomain(domain), op}])
}

// Resolve returns the binding of the operator with the greatest SinceVersion <= version.
//
// It fails with an errs.UnsupportedOpsetError if the domain is not supported, if the version is beyond the
// latest version of the domain, or if no version of the operator qualifies.
func (t *Table) Resolve(domain string, version int, op string) (*Binding, error) {
	domain = NormalizeDomain(domain)
	latest, found := t.latest[domain]
	if !found {
		return nil, errs.At(errs.Newf(errs.UnsupportedOpsetError,
			"domain %q is not supported by table %q", DomainName(domain), t.name), op, "")
	}
	if version < 1 || version > latest {
		return nil, errs.At(errs.Newf(errs.UnsupportedOpsetError,
			"version %d of domain %q is not supported by table %q (latest is %d)",
			version, DomainName(domain), t.name, latest), op, "")
	}
	list := t.bindings[opKey{domain, op}]
	idx := sort.Search(len(list), func(i int) bool { return list[i].SinceVersion > version })
	if idx == 0 {
		if len(list) == 0 {
			return nil, errs.At(errs.Newf(errs.UnsupportedOpsetError,
				"operator %q of domain %q is not supported by table %q", op, DomainName(domain), t.name), op, "")
		}
		return nil, errs.At(errs.Newf(errs.UnsupportedOpsetError,
			"operator %q was introduced in version %d of domain %q, version %d requested",
			op, list[0].SinceVersion, DomainName(domain), version), op, "")
	}
	return list[idx-1], nil
}

// CheckEpoch validates that an operator requested at nodeVersion can be emitted in a graph whose opset version for
// the domain is graphVersion: the binding resolved for graphVersion must be the same, unless the node's binding is
// declared stable through graphVersion.
func (t *Table) CheckEpoch(b *Binding, nodeVersion, graphVersion int) error {
	if nodeVersion > graphVersion {
		return errs.At(errs.Newf(errs.UnsupportedOpsetError,
			"operator requested at version %d of domain %q, but the graph uses version %d",
			nodeVersion, DomainName(b.Domain), graphVersion), b.OpType, "")
	}
	bn, err := t.Resolve(b.Domain, nodeVersion, b.OpType)
	if err != nil {
		return err
	}
	bg, err := t.Resolve(b.Domain, graphVersion, b.OpType)
	if err != nil {
		return err
	}
	if bn != bg && bn.StableThrough < graphVersion {
		return errs.At(errs.Newf(errs.UnsupportedOpsetError,
			"%s requested at version %d of domain %q changed semantics as %s in the graph's version %d",
			bn, nodeVersion, DomainName(b.Domain), bg, graphVersion), b.OpType, "")
	}
	return nil
}
