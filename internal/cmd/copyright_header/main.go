// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// copyright_header adds the copyright header to the Go files that don't have one.
//
// Generated files (gen_*.go) and the files under hidden, vendor, testdata or _* directories are skipped.
// With -check it only lists the files missing the header, and exits with an error if there are any.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagProject = flag.String("project", "Spox", "Project name used in the copyright header.")
	flagCheck   = flag.Bool("check", false, "Only list the files missing the header, without changing them.")
)

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [flags] [path ...]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Adds the copyright header to the Go files missing it. The default path is \".\".\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	roots := flag.Args()
	if len(roots) == 0 {
		roots = []string{"."}
	}
	header := Header(*flagProject)
	var missing []string
	for _, root := range roots {
		files, err := goFiles(root)
		if err != nil {
			klog.Errorf("Failed to list Go files: %+v", err)
			os.Exit(1)
		}
		for _, path := range files {
			changed, err := processFile(path, header, !*flagCheck)
			if err != nil {
				klog.Errorf("%+v", err)
				os.Exit(1)
			}
			if changed {
				missing = append(missing, path)
			}
		}
	}
	if *flagCheck && len(missing) > 0 {
		klog.Errorf("%d files without copyright header:\n\t%s", len(missing), strings.Join(missing, "\n\t"))
		os.Exit(1)
	}
}

// Header returns the copyright header line of the project.
func Header(project string) string {
	return fmt.Sprintf("// Copyright 2023-2026 The %s Authors. SPDX-License-Identifier: Apache-2.0", project)
}

// goFiles lists the non-generated Go files under root.
func goFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
				name == "vendor" || name == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(name, ".go") && !strings.HasPrefix(name, "gen_") {
			files = append(files, path)
		}
		return nil
	})
	return files, errors.Wrapf(err, "failed to walk %q", root)
}

// processFile adds the header to the file if it's missing, and returns whether it was missing.
// If write is false the file is not changed.
func processFile(path, header string, write bool) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %q", path)
	}
	updated, changed := AddHeader(content, header)
	if !changed || !write {
		return changed, nil
	}
	klog.Infof("Adding copyright header to %s", path)
	if err := os.WriteFile(path, updated, 0o644); err != nil {
		return false, errors.Wrapf(err, "failed to write %q", path)
	}
	return true, nil
}

// maxHeaderLines is how far into the file the copyright and the build constraints are searched for.
const maxHeaderLines = 50

// AddHeader returns the content with the header added, after the build constraints if there are any.
// It returns false, and the content unchanged, if the content already has a copyright line.
func AddHeader(content []byte, header string) ([]byte, bool) {
	lines := strings.Split(string(content), "\n")
	lastConstraint := -1
	for ii, line := range lines {
		if ii >= maxHeaderLines {
			break
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "// Copyright") {
			return content, false
		}
		if strings.HasPrefix(trimmed, "//go:build") || strings.HasPrefix(trimmed, "// +build") {
			lastConstraint = ii
		}
	}
	if lastConstraint == -1 {
		return []byte(header + "\n\n" + string(content)), true
	}
	constraints := strings.Join(lines[:lastConstraint+1], "\n")
	rest := strings.TrimLeft(strings.Join(lines[lastConstraint+1:], "\n"), "\n")
	return []byte(constraints + "\n\n" + header + "\n\n" + rest), true
}
