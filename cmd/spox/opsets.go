// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spoxml/spox/pkg/core/opset"
	"github.com/spoxml/spox/pkg/opsets"
)

var (
	opsetsFlags       = flag.NewFlagSet("opsets", flag.ExitOnError)
	flagOpsetsTable   = opsetsFlags.String("table", "stable", fmt.Sprintf("Opset table to list, one of %q.", opsets.Names()))
	flagOpsetsDomain  = opsetsFlags.String("domain", "", "Domain to list. If empty, all domains of the table are listed.")
	flagOpsetsNoColor = opsetsFlags.Bool("nocolor", false, "Disable colors and text styles.")

	opsetsCommand = &command{
		name:        "opsets",
		description: "Lists the operators supported by an opset table, with the versions of each one.",
		flags:       opsetsFlags,
		run:         runOpsets,
	}
)

func runOpsets(args []string) error {
	if len(args) > 0 {
		return errors.Errorf("unexpected arguments %q", args)
	}
	if *flagOpsetsNoColor {
		disableColors()
	}
	table, err := opsets.ByName(*flagOpsetsTable)
	if err != nil {
		return err
	}
	domains := table.Domains()
	if *flagOpsetsDomain != "" {
		domain := opset.NormalizeDomain(*flagOpsetsDomain)
		if table.LatestVersion(domain) == 0 {
			return errors.Errorf("domain %q is not supported by table %q, supported domains are %q",
				*flagOpsetsDomain, table.Name(), domains)
		}
		domains = []string{domain}
	}
	listOpsets(os.Stdout, table, domains)
	return nil
}

// describeVersions lists the versions of an operator, e.g. "6*, 13*, 14". Versions marked with "*" are stable through
// later opset versions.
func describeVersions(bindings []*opset.Binding) string {
	parts := make([]string, len(bindings))
	for ii, b := range bindings {
		parts[ii] = fmt.Sprint(b.SinceVersion)
		if b.StableThrough > b.SinceVersion {
			parts[ii] += "*"
		}
	}
	return strings.Join(parts, ", ")
}

// maxDocLength is the maximum length of the documentation listed for each operator.
const maxDocLength = 60

func shortDoc(doc string) string {
	doc = firstLine(strings.TrimSpace(doc))
	if len(doc) > maxDocLength {
		doc = doc[:maxDocLength-3] + "..."
	}
	return doc
}

func listOpsets(w io.Writer, table *opset.Table, domains []string) {
	for _, domain := range domains {
		_, _ = fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s, version %d (table %q)",
			domainName(domain), table.LatestVersion(domain), table.Name())))
		t := newTable([]string{"Operator", "Versions", "Pure", "Description"}, lipgloss.Left)
		for _, op := range table.Ops(domain) {
			bindings := table.Bindings(domain, op)
			latest := bindings[len(bindings)-1]
			pure := "yes"
			if !latest.Pure {
				pure = "no"
			}
			t.Row(!latest.Pure, op, describeVersions(bindings), pure, shortDoc(latest.Doc))
		}
		_, _ = fmt.Fprintln(w, t.Render())
	}
	_, _ = fmt.Fprintln(w, "Versions marked with * can be used in graphs of later opset versions, up to their StableThrough version.")
}
