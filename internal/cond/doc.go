// Package cond parses the window condition language used throughout veil's
// configuration: exclusion lists, inversion lists, and opacity rules all
// carry condition strings such as `class_g = 'URxvt'` or
// `! name ~= '^Steam' && window_type = 'utility'`.
//
// Parse compiles a condition into a Pattern without evaluating it; matching
// against live windows is the renderer's concern. A Pattern always remembers
// its source text, so configuration tooling can echo rules back verbatim.
package cond
