// SPDX-License-Identifier: MIT

// Package job runs analysis jobs described by JSON setup files.
//
// A setup file names its inputs once and lists the methods to run:
//
//	{
//	  "parameters": {"n": 3, "R": [[0, 1], [1, 2]], "l": 0},
//	  "methods": [
//	    {"name": "reflexive_closure", "params": ["n", "R"]},
//	    {"name": "find_subframe",     "params": ["n", "l", "R"]}
//	  ]
//	}
//
// Method params bind positionally. A param is either the name of an entry in
// "parameters" or a binding {"<slot>": ["<method>_result"]} that feeds the
// result of an earlier method into this one:
//
//	{"name": "quotient_frame", "params": ["X", "R", {"closure_V": ["compute_closure_result"]}]}
//
// Method names map to a closed set of Operations through a fixed dispatch
// table; nothing is looked up reflectively. A method that fails, including
// an unknown name, records its error in its Result and the remaining methods
// still run.
//
// Runner adds the ambient concerns: a run ID (uuid), a tracing span per run,
// slog records per method, and Prometheus metrics:
//
//	framelogic_job_methods_total{method,status}      counter
//	framelogic_job_method_duration_seconds{method}   histogram
//
// WriteLog and AppendLog render a Report as a block of text:
//
//	Run: <run id>
//	Parameters:
//	<name>: <compact JSON>
//	...
//
//	Results:
//	<method>: <result>
//	...
//	****************************************************************
package job
