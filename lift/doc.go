// Package lift provides fixed-arity helpers over tracker sources, so the
// common "derive from k inputs" and "watch k inputs" shapes need no
// hand-written closure plumbing. The wrappers in lift.go are generated by
// cmd/codegen; edit the template there, not the output.
package lift
