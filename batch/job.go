// SPDX-License-Identifier: MIT
// Package: lvquad/batch
//
// job.go — job descriptions and YAML job files.

package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvquad/quadrature"
	"github.com/katalvlaran/lvquad/sampler"
)

// Job is one integral. Exactly one of Samples or Func must be set; Func
// names a sampler catalog function evaluated on N points.
type Job struct {
	Name    string          `yaml:"name"`
	Rule    quadrature.Rule `yaml:"rule"`
	X1      float64         `yaml:"x1"`
	X2      float64         `yaml:"x2"`
	Samples []float64       `yaml:"samples,omitempty"`
	Func    string          `yaml:"func,omitempty"`
	N       int             `yaml:"n,omitempty"`
}

// Validate checks the job shape without evaluating it.
func (j Job) Validate() error {
	if !j.Rule.Valid() {
		return fmt.Errorf("job %q: unknown rule %s: %w", j.Name, j.Rule, ErrBadJob)
	}
	hasSamples, hasFunc := len(j.Samples) > 0, j.Func != ""
	switch {
	case hasSamples && hasFunc:
		return fmt.Errorf("job %q: samples and func are mutually exclusive: %w", j.Name, ErrBadJob)
	case !hasSamples && !hasFunc:
		return fmt.Errorf("job %q: one of samples or func is required: %w", j.Name, ErrBadJob)
	case hasFunc && j.N < 1:
		return fmt.Errorf("job %q: n must be ≥ 1 for func jobs, got %d: %w", j.Name, j.N, ErrBadJob)
	case hasFunc:
		if _, ok := sampler.Lookup(j.Func); !ok {
			return fmt.Errorf("job %q: unknown func %q: %w", j.Name, j.Func, ErrBadJob)
		}
	}
	return nil
}

// jobSpec is the on-disk form; the rule stays textual so a file-level
// default can fill it in.
type jobSpec struct {
	Name    string    `yaml:"name"`
	Rule    string    `yaml:"rule"`
	X1      float64   `yaml:"x1"`
	X2      float64   `yaml:"x2"`
	Samples []float64 `yaml:"samples"`
	Func    string    `yaml:"func"`
	N       int       `yaml:"n"`
}

type jobFile struct {
	Rule string    `yaml:"rule"`
	Jobs []jobSpec `yaml:"jobs"`
}

// ParseJobs decodes a YAML job file. Jobs without a rule take the file's
// top-level rule, then defaultRule. Unnamed jobs are named "job-<index>".
func ParseJobs(data []byte, defaultRule quadrature.Rule) ([]Job, error) {
	var f jobFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("ParseJobs: decode: %w", err)
	}

	fileRule := defaultRule
	if f.Rule != "" {
		r, err := quadrature.ParseRule(f.Rule)
		if err != nil {
			return nil, fmt.Errorf("ParseJobs: file rule: %v: %w", err, ErrBadJob)
		}
		fileRule = r
	}

	jobs := make([]Job, 0, len(f.Jobs))
	for i, s := range f.Jobs {
		j := Job{
			Name:    s.Name,
			Rule:    fileRule,
			X1:      s.X1,
			X2:      s.X2,
			Samples: s.Samples,
			Func:    s.Func,
			N:       s.N,
		}
		if j.Name == "" {
			j.Name = fmt.Sprintf("job-%d", i)
		}
		if s.Rule != "" {
			r, err := quadrature.ParseRule(s.Rule)
			if err != nil {
				return nil, fmt.Errorf("ParseJobs: job %q: %v: %w", j.Name, err, ErrBadJob)
			}
			j.Rule = r
		}
		if err := j.Validate(); err != nil {
			return nil, fmt.Errorf("ParseJobs: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// LoadJobs reads and parses a YAML job file from disk.
func LoadJobs(path string, defaultRule quadrature.Rule) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadJobs: %w", err)
	}
	return ParseJobs(data, defaultRule)
}
