// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// Package opsets defines the opset tables built from the generated bindings of the supported domains:
//
//   - Stable: ONNX up to opset 17 and ai.onnx.ml up to version 3.
//   - Weekly: Stable plus the operators of opset 18.
//
// The tables are built once, at package initialization, and are frozen.
package opsets

import (
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/spoxml/spox/pkg/core/opset"
	"github.com/spoxml/spox/pkg/opsets/onnx"
	"github.com/spoxml/spox/pkg/opsets/onnxml"
)

const (
	// StableVersion is the latest version of the default domain in the Stable table.
	StableVersion = 17

	// WeeklyVersion is the latest version of the default domain in the Weekly table.
	WeeklyVersion = 18

	// MLVersion is the latest version of the ai.onnx.ml domain in the tables.
	MLVersion = onnxml.LatestVersion
)

var (
	// Stable resolves the operators of the default domain up to StableVersion and of ai.onnx.ml up to MLVersion.
	Stable = newStable()

	// Weekly extends Stable with the bindings introduced up to WeeklyVersion.
	Weekly = newWeekly(Stable)
)

// registerUpTo registers the bindings with SinceVersion in (after, upTo].
func registerUpTo(t *opset.Table, bindings []*opset.Binding, after, upTo int) {
	for _, b := range bindings {
		if b.SinceVersion > after && b.SinceVersion <= upTo {
			must.M(t.Register(b))
		}
	}
}

func newStable() *opset.Table {
	t := opset.NewTable("stable")
	must.M(t.SupportDomain(onnx.Domain, StableVersion))
	registerUpTo(t, onnx.Bindings, 0, StableVersion)
	must.M(t.SupportDomain(onnxml.Domain, MLVersion))
	registerUpTo(t, onnxml.Bindings, 0, MLVersion)
	return t.Freeze()
}

func newWeekly(stable *opset.Table) *opset.Table {
	t := stable.Clone("weekly")
	must.M(t.SupportDomain(onnx.Domain, WeeklyVersion))
	registerUpTo(t, onnx.Bindings, StableVersion, WeeklyVersion)
	return t.Freeze()
}

// Names of the tables, as accepted by ByName.
func Names() []string {
	return []string{Stable.Name(), Weekly.Name()}
}

// ByName returns the table with the given name: "stable" or "weekly".
func ByName(name string) (*opset.Table, error) {
	switch name {
	case Stable.Name():
		return Stable, nil
	case Weekly.Name():
		return Weekly, nil
	}
	return nil, errors.Errorf("unknown opset table %q, valid names are %q", name, Names())
}
