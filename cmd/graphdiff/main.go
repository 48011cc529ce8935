// Copyright 2023 Google LLC
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

/*
graphdiff compares two ".deps" (or, with -gradle, raw `gradle dependencies`
text tree) files and renders the result as a GraphViz DOT document.

	graphdiff before.deps after.deps > delta.dot
	dot -Tpng delta.dot > delta.png

Given a single file, it renders that graph in full against an empty
"before", matching the undiffed single-graph mode of the tool this command
generalizes.
*/
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/depscope/graphdiff/depgraph"
	"github.com/depscope/graphdiff/diff"
	"github.com/depscope/graphdiff/dotwriter"
	"github.com/depscope/graphdiff/gradle"
	"golang.org/x/sync/errgroup"
)

// job is one before/after comparison to render, whether supplied on the
// command line or as one line of a -batch file.
type job struct {
	before, after string
	out           string // "" means stdout; required in batch mode
	singleGraph   bool

	gradleInput bool
	transitive  bool
	group       bool
	dark        bool
	caption     string
}

func main() {
	log.SetFlags(0)

	var (
		outPath    = flag.String("out", "", "write the DOT document here instead of stdout")
		gradleIn   = flag.Bool("gradle", false, "treat input files as `gradle dependencies` task output instead of .deps lines")
		transitive = flag.Bool("transitive", false, "synthesize intermediate edges to show multi-hop context between otherwise-visible nodes")
		group      = flag.Bool("group", false, "annotate nodes with their Gradle project group, highlighting groups that appeared or disappeared")
		dark       = flag.Bool("dark", false, "render with the dark color palette")
		caption    = flag.String("caption", "", "title embedded in the rendered graph")
		batch      = flag.String("batch", "", "path to a tab-separated file of before, after and output paths, one comparison per line, run concurrently")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: graphdiff [flags] <before.deps> [after.deps]\n")
		fmt.Fprintf(os.Stderr, "       graphdiff [flags] -batch <file>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	base := job{
		gradleInput: *gradleIn,
		transitive:  *transitive,
		group:       *group,
		dark:        *dark,
		caption:     *caption,
	}

	if *batch != "" {
		if err := runBatch(*batch, base); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	j := base
	j.out = *outPath
	switch flag.NArg() {
	case 1:
		j.after = flag.Arg(0)
		j.singleGraph = true
	case 2:
		j.before, j.after = flag.Arg(0), flag.Arg(1)
	default:
		flag.Usage()
		os.Exit(1)
	}

	if err := run(j); err != nil {
		var empty dotwriter.ErrEmptyGraph
		if errors.As(err, &empty) {
			return
		}
		log.Fatalf("%v", err)
	}
}

// run executes a single before/after comparison end to end: load, compare,
// render, write.
func run(j job) error {
	before := depgraph.New()
	if !j.singleGraph {
		var err error
		before, err = loadGraph(j.before, j.gradleInput)
		if err != nil {
			return fmt.Errorf("loading %s: %w", j.before, err)
		}
	}
	after, err := loadGraph(j.after, j.gradleInput)
	if err != nil {
		return fmt.Errorf("loading %s: %w", j.after, err)
	}

	dopts := diff.DefaultOptions()
	dopts.ShortestTransitivePath = j.transitive
	if j.group {
		dopts.ParentFunc = gradle.Split
	}
	ag := diff.Compare(before, after, dopts)

	ropts := dotwriter.RenderOptions{Caption: j.caption, DarkMode: j.dark}
	if j.singleGraph {
		style := dotwriter.LightStyle.NoColor()
		ropts.Style = &style
		ropts.DarkMode = false
	}
	doc, err := dotwriter.Render(ag, ropts)
	if err != nil {
		return err
	}

	w := os.Stdout
	if j.out != "" {
		f, err := os.Create(j.out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", j.out, err)
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	if err := doc.WriteTo(bw); err != nil {
		return fmt.Errorf("writing dot output: %w", err)
	}
	return bw.Flush()
}

// loadGraph reads a .deps file, or the text tree printed by a Gradle
// `dependencies` task when gradleMode is set.
func loadGraph(path string, gradleMode bool) (*depgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if gradleMode {
		lines, err := gradle.ParseDependenciesTree(f, false)
		if err != nil {
			return nil, err
		}
		return depgraph.ParseDeps(lines)
	}

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return depgraph.ParseDeps(lines)
}

// runBatch fans out a set of independent comparisons concurrently. Each
// line of path is "before<TAB>after<TAB>out"; every comparison runs in its
// own goroutine against its own graphs, so none of the single-call core
// packages ever see concurrent use.
func runBatch(path string, base job) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var jobs []job
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return fmt.Errorf("malformed batch line %q: want before<TAB>after<TAB>out", line)
		}
		j := base
		j.before, j.after, j.out = fields[0], fields[1], fields[2]
		jobs = append(jobs, j)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	var g errgroup.Group
	for _, j := range jobs {
		g.Go(func() error {
			if err := run(j); err != nil {
				var empty dotwriter.ErrEmptyGraph
				if errors.As(err, &empty) {
					return nil
				}
				return fmt.Errorf("%s vs %s: %w", j.before, j.after, err)
			}
			return nil
		})
	}
	return g.Wait()
}
