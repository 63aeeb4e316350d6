// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spoxml/spox/pkg/core/graph"
	"github.com/spoxml/spox/pkg/core/onnx"
	"github.com/spoxml/spox/pkg/core/opset"
	"github.com/spoxml/spox/pkg/core/tensors"
	"github.com/spoxml/spox/pkg/core/tensors/numpy"
	"github.com/spoxml/spox/pkg/opsets"
	"github.com/spoxml/spox/pkg/support/fsutil"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

var (
	inspectFlags       = flag.NewFlagSet("inspect", flag.ExitOnError)
	flagInspectValues  = inspectFlags.Bool("values", false, "Lists the initializers, with a summary of their values.")
	flagInspectNoColor = inspectFlags.Bool("nocolor", false, "Disable colors and text styles.")
	flagInspectExport  = inspectFlags.String("export", "",
		"If set, the initializers of each model are saved in this directory, in a .npz file named after the model.")
	flagInspectTable   = inspectFlags.String("table", "weekly",
		"Opset table used to import the models and re-run the type inference. "+
			"Models that fail to import are still reported.")
	flagInspectOverwrite = inspectFlags.Bool("overwrite", false, "Overwrite existing .npz files with -export.")

	inspectCommand = &command{
		name:        "inspect",
		args:        "FILE...",
		description: "Prints a report of each ONNX model: inputs, outputs, opsets and operators used.",
		flags:       inspectFlags,
		run:         runInspect,
	}
)

// maxValuesInSummary is the number of values of each initializer listed with -values.
const maxValuesInSummary = 8

// modelInfo holds a parsed model and the result of importing it.
type modelInfo struct {
	Path  string
	Size  int
	Model *onnx.ModelProto

	// Graph is nil if the model failed to import, in which case ImportErr is set.
	Graph     *graph.Graph
	ImportErr error
}

func runInspect(args []string) error {
	if len(args) == 0 {
		return errors.New("missing model files to inspect")
	}
	if *flagInspectNoColor {
		disableColors()
	}
	table, err := opsets.ByName(*flagInspectTable)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if len(args) > 1 {
		bar = progressbar.NewOptions(len(args),
			progressbar.OptionSetDescription("Parsing models"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetTheme(progressbar.ThemeUnicode),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish())
	}
	infos, err := loadModels(args, table, func() {
		if bar != nil {
			_ = bar.Add(1)
		}
	})
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}
	for _, info := range infos {
		info.Report(os.Stdout, *flagInspectValues)
		if *flagInspectExport != "" {
			npzPath, err := info.ExportInitializers(*flagInspectExport, *flagInspectOverwrite)
			if err != nil {
				return err
			}
			klog.Infof("Saved %d initializers of %q to %q", len(info.Model.Graph.Initializer), info.Path, npzPath)
		}
	}
	return nil
}

// loadModels parses the model files concurrently. Parsing errors abort the loading, import errors are kept in the
// returned modelInfo. done is called after each model is loaded, and it must be safe for concurrent use.
func loadModels(paths []string, table *opset.Table, done func()) ([]*modelInfo, error) {
	infos := make([]*modelInfo, len(paths))
	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for ii, path := range paths {
		eg.Go(func() error {
			info, err := loadModel(path, table)
			if err != nil {
				return err
			}
			infos[ii] = info
			if done != nil {
				done()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return infos, nil
}

func loadModel(path string, table *opset.Table) (*modelInfo, error) {
	fullPath, err := fsutil.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read model")
	}
	m, err := onnx.Unmarshal(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to parse model in %q", path)
	}
	if m.Graph == nil {
		return nil, errors.Errorf("model in %q has no graph", path)
	}
	info := &modelInfo{Path: path, Size: len(data), Model: m}
	info.Graph, info.ImportErr = onnx.Import(m, table)
	if info.ImportErr != nil {
		klog.V(1).Infof("Failed to import %q: %+v", path, info.ImportErr)
	}
	return info, nil
}

// domainName returns the name of the domain for display.
func domainName(domain string) string {
	if domain == "" {
		return "ai.onnx"
	}
	return domain
}

// valueType returns the type of the value, as a string.
func valueType(vi *onnx.ValueInfoProto) string {
	shape, err := vi.Shape()
	if err != nil {
		return "?"
	}
	return shape.String()
}

// opCount is the number of times an operator is used.
type opCount struct {
	Op    string
	Count int
}

// Histogram of the operators used in the model, sorted by decreasing count.
func (info *modelInfo) Histogram() []opCount {
	counts := make(map[string]int)
	for _, node := range info.Model.Graph.Node {
		op := node.OpType
		if node.Domain != "" {
			op = node.Domain + ":" + op
		}
		counts[op]++
	}
	histogram := make([]opCount, 0, len(counts))
	for op, count := range counts {
		histogram = append(histogram, opCount{op, count})
	}
	slices.SortFunc(histogram, func(a, b opCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Op, b.Op)
	})
	return histogram
}

// InitializersBytes is the total size of the initializers values.
func (info *modelInfo) InitializersBytes() uint64 {
	var total uint64
	for _, tp := range info.Model.Graph.Initializer {
		t, err := tp.Tensor()
		if err != nil {
			continue
		}
		total += uint64(t.Memory())
	}
	return total
}

// Report writes the tables describing the model.
func (info *modelInfo) Report(w io.Writer, values bool) {
	m := info.Model
	writeln := func(s string) { _, _ = fmt.Fprintln(w, s) }
	writeln(titleStyle.Render(info.Path))

	summary := newTable(nil, lipgloss.Right, lipgloss.Left)
	summary.Row(false, "file size", humanize.Bytes(uint64(info.Size)))
	summary.Row(false, "IR version", fmt.Sprint(m.IRVersion))
	producer := m.ProducerName
	if m.ProducerVersion != "" {
		producer += " " + m.ProducerVersion
	}
	summary.Row(false, "producer", producer)
	summary.Row(false, "graph", m.Graph.Name)
	if m.Graph.DocString != "" {
		summary.Row(false, "doc", m.Graph.DocString)
	}
	summary.Row(false, "# nodes", humanize.Comma(int64(len(m.Graph.Node))))
	summary.Row(false, "# initializers", humanize.Comma(int64(len(m.Graph.Initializer))))
	summary.Row(false, "initializers size", humanize.Bytes(info.InitializersBytes()))
	if info.ImportErr != nil {
		summary.Row(true, "import", firstLine(info.ImportErr.Error()))
	} else {
		summary.Row(false, "import", fmt.Sprintf("ok, %d nodes after dead-node elimination", info.Graph.NumNodes()))
	}
	writeln(summary.Render())

	opsetsTable := newTable([]string{"Domain", "Version"}, lipgloss.Left, lipgloss.Right)
	for _, imp := range m.OpsetImport {
		opsetsTable.Row(false, domainName(imp.Domain), fmt.Sprint(imp.Version))
	}
	writeln(opsetsTable.Render())

	signature := newTable([]string{"", "Name", "Type"}, lipgloss.Right, lipgloss.Left)
	for _, vi := range m.Graph.Input {
		signature.Row(false, "input", vi.Name, valueType(vi))
	}
	for _, vi := range m.Graph.Output {
		signature.Row(false, "output", vi.Name, valueType(vi))
	}
	writeln(signature.Render())

	histogram := newTable([]string{"Operator", "Count"}, lipgloss.Left, lipgloss.Right)
	for _, entry := range info.Histogram() {
		histogram.Row(false, entry.Op, humanize.Comma(int64(entry.Count)))
	}
	writeln(histogram.Render())

	if values && len(m.Graph.Initializer) > 0 {
		initializers := newTable([]string{"Initializer", "Bytes", "Values"}, lipgloss.Left, lipgloss.Right,
			lipgloss.Left)
		for _, tp := range m.Graph.Initializer {
			t, err := tp.Tensor()
			if err != nil {
				initializers.Row(true, tp.Name, "", firstLine(err.Error()))
				continue
			}
			initializers.Row(false, tp.Name, humanize.Bytes(uint64(t.Memory())), t.Summary(maxValuesInSummary))
		}
		writeln(initializers.Render())
	}
}

// ExportInitializers saves the initializers of the model in a .npz file in the given directory, and returns its
// path.
func (info *modelInfo) ExportInitializers(dir string, overwrite bool) (string, error) {
	values := make(map[string]*tensors.Tensor, len(info.Model.Graph.Initializer))
	for _, tp := range info.Model.Graph.Initializer {
		t, err := tp.Tensor()
		if err != nil {
			return "", errors.WithMessagef(err, "failed to export initializers of %q", info.Path)
		}
		values[tp.Name] = t
	}
	dir, err := fsutil.EnsureDir(dir)
	if err != nil {
		return "", err
	}
	base := filepath.Base(info.Path)
	npzPath := filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".npz")
	exists, err := fsutil.FileExists(npzPath)
	if err != nil {
		return "", err
	}
	if exists && !overwrite {
		return "", errors.Errorf("%q already exists, use -overwrite to replace it", npzPath)
	}
	f, err := os.Create(npzPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to export initializers of %q", info.Path)
	}
	if err := numpy.ToNpzWriter(values, f); err != nil {
		_ = f.Close()
		return "", errors.WithMessagef(err, "failed to export initializers of %q", info.Path)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to export initializers of %q", info.Path)
	}
	return npzPath, nil
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
