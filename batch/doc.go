// Package batch runs many independent integrals concurrently.
//
// A Processor fans Jobs out to a fixed-size worker pool and returns one
// Result per job in submission order. Weight vectors depend only on
// (rule, n), so jobs share them through a WeightCache backed by go-cache.
//
// Jobs may be described in YAML:
//
//	rule: simpson13            # default for jobs without a rule
//	jobs:
//	  - name: gauss
//	    func: gauss
//	    x1: -100
//	    x2: 100
//	    n: 1001
//	  - name: raw
//	    rule: trapezoid
//	    x1: 0
//	    x2: 1
//	    samples: [0, 0.5, 1]
//
// Each job is evaluated by the pure quadrature package; failures are
// reported per job and never stop the batch.
package batch
