// Copyright (c) 2026 the redd authors
//
// MIT License

// Command redd builds a set of example decision diagrams and writes each of
// them to a Graphviz DOT file. Without a manifest it reduces every built-in
// fixture under both reduction rules and runs one apply and one compose
// example; a YAML manifest can replace that list with arbitrary jobs.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pzeller/redd"
	"github.com/pzeller/redd/fixture"
)

// Manifest is the YAML description of an export run.
type Manifest struct {
	Outdir string `yaml:"outdir"`
	Jobs   []Job  `yaml:"jobs"`
}

// Job describes one diagram to build and export. Exactly one of Fixture,
// Apply or Compose must be set. Rule selects the reduction rule; the value
// "tree" exports the raw fixture tree without canonicalization and is only
// valid together with Fixture.
type Job struct {
	Name    string      `yaml:"name"`
	Rule    string      `yaml:"rule"`
	Fixture string      `yaml:"fixture"`
	Apply   *ApplyJob   `yaml:"apply"`
	Compose *ComposeJob `yaml:"compose"`
}

// ApplyJob combines two fixtures with a binary operator.
type ApplyJob struct {
	Op    string `yaml:"op"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// ComposeJob substitutes a fixture for one variable of another.
type ComposeJob struct {
	Left  string `yaml:"left"`
	With  string `yaml:"with"`
	Level int    `yaml:"level"`
}

var operators = map[string]redd.Operator{
	"and":    redd.OPand,
	"xor":    redd.OPxor,
	"or":     redd.OPor,
	"nand":   redd.OPnand,
	"nor":    redd.OPnor,
	"imp":    redd.OPimp,
	"biimp":  redd.OPbiimp,
	"diff":   redd.OPdiff,
	"less":   redd.OPless,
	"invimp": redd.OPinvimp,
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		outdir   string
		manifest string
		compress bool
		parallel int
		toStdout bool
	)
	cmd := &cobra.Command{
		Use:           "redd",
		Short:         "build example decision diagrams and export them as DOT files",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs := defaultJobs()
			if manifest != "" {
				m, err := readManifest(manifest)
				if err != nil {
					return err
				}
				jobs = m.Jobs
				if m.Outdir != "" && !cmd.Flags().Changed("outdir") {
					outdir = m.Outdir
				}
			}
			if toStdout {
				// files would interleave, so stdout output is sequential
				for _, job := range jobs {
					if err := dumpJob(cmd.OutOrStdout(), job); err != nil {
						return err
					}
				}
				return nil
			}
			if err := os.MkdirAll(outdir, 0o755); err != nil {
				return err
			}
			var g errgroup.Group
			g.SetLimit(parallel)
			for _, job := range jobs {
				job := job
				g.Go(func() error {
					return runJob(job, outdir, compress)
				})
			}
			return g.Wait()
		},
	}
	cmd.Flags().StringVarP(&outdir, "outdir", "o", "out", "directory receiving the DOT files")
	cmd.Flags().StringVarP(&manifest, "manifest", "f", "", "YAML manifest replacing the default job list")
	cmd.Flags().BoolVar(&compress, "compress", false, "gzip every output file")
	cmd.Flags().IntVarP(&parallel, "parallel", "j", 4, "number of files written concurrently")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "write every DOT text to the standard output instead of files")
	return cmd
}

// dumpJob writes one job's DOT text to w, preceded by a comment line naming
// the job.
func dumpJob(w io.Writer, job Job) error {
	out, err := buildJob(job)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "// %s (%d nodes)\n", job.Name, out.Size()); err != nil {
		return err
	}
	return out.WriteDot(w)
}

func readManifest(filename string) (*Manifest, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	m := &Manifest{}
	if err := yaml.Unmarshal(buf, m); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", filename, err)
	}
	return m, nil
}

// defaultJobs reproduces the historical behavior of the tool: every fixture
// as a raw tree and under both rules, plus one apply and one compose example.
func defaultJobs() []Job {
	names := []string{"independent-set", "kernels", "majority", "x1x3", "x2x3", "x1x2x4"}
	var jobs []Job
	for _, n := range names {
		for _, rule := range []string{"tree", "bdd", "zdd"} {
			jobs = append(jobs, Job{Name: n + "-" + rule, Rule: rule, Fixture: n})
		}
	}
	jobs = append(jobs,
		Job{Name: "x1x3-or-x2x3", Rule: "bdd", Apply: &ApplyJob{Op: "or", Left: "x1x3", Right: "x2x3"}},
		Job{Name: "x1x2x4-by-x2x3", Rule: "bdd", Compose: &ComposeJob{Left: "x1x2x4", With: "x2x3", Level: 1}},
	)
	return jobs
}

// exporter is anything we can write out; both raw trees and reduced diagrams
// qualify.
type exporter interface {
	WriteDot(w io.Writer) error
	Size() int
}

func runJob(job Job, outdir string, compress bool) error {
	out, err := buildJob(job)
	if err != nil {
		return err
	}
	name := filepath.Join(outdir, job.Name+".dot")
	if compress {
		name += ".gz"
	}
	if err := writeFile(name, compress, out.WriteDot); err != nil {
		color.Red("%s: %s", job.Name, err)
		return err
	}
	color.Green("wrote %s (%d nodes)", name, out.Size())
	return nil
}

func buildJob(job Job) (exporter, error) {
	rule := redd.BDD
	switch job.Rule {
	case "zdd":
		rule = redd.ZDD
	case "bdd", "tree", "":
	default:
		return nil, fmt.Errorf("job %s: unknown rule %q", job.Name, job.Rule)
	}
	switch {
	case job.Fixture != "":
		tree, err := buildFixture(job.Fixture)
		if err != nil {
			return nil, fmt.Errorf("job %s: %w", job.Name, err)
		}
		if job.Rule == "tree" {
			return tree, nil
		}
		return redd.Reduce(tree, rule), nil
	case job.Apply != nil:
		op, ok := operators[job.Apply.Op]
		if !ok {
			return nil, fmt.Errorf("job %s: unknown operator %q", job.Name, job.Apply.Op)
		}
		left, err := buildFixture(job.Apply.Left)
		if err != nil {
			return nil, fmt.Errorf("job %s: %w", job.Name, err)
		}
		right, err := buildFixture(job.Apply.Right)
		if err != nil {
			return nil, fmt.Errorf("job %s: %w", job.Name, err)
		}
		return redd.Reduce(left, rule).Apply(redd.Reduce(right, rule), op), nil
	case job.Compose != nil:
		left, err := buildFixture(job.Compose.Left)
		if err != nil {
			return nil, fmt.Errorf("job %s: %w", job.Name, err)
		}
		with, err := buildFixture(job.Compose.With)
		if err != nil {
			return nil, fmt.Errorf("job %s: %w", job.Name, err)
		}
		return redd.Reduce(left, rule).Compose(redd.Reduce(with, rule), job.Compose.Level), nil
	}
	return nil, fmt.Errorf("job %s: one of fixture, apply or compose is required", job.Name)
}

func buildFixture(name string) (*redd.Node, error) {
	build, ok := fixture.ByName[name]
	if !ok {
		return nil, fmt.Errorf("unknown fixture %q", name)
	}
	return build(), nil
}

// writeFile creates the file and streams the DOT text into it, through a gzip
// writer when asked to. Any failure aborts the whole run; there is no partial
// write recovery.
func writeFile(name string, compress bool, write func(io.Writer) error) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer out.Close()
	var w io.Writer = out
	var zw *gzip.Writer
	if compress {
		zw = gzip.NewWriter(out)
		w = zw
	}
	if err := write(w); err != nil {
		return err
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return err
		}
	}
	return out.Close()
}
