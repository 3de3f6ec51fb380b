// Package debugtrace is a passive, append-only diagnostic ledger that
// accumulates trace entries as a SupDef pipeline progresses through its
// stages (internal/pipeline records "normalise+pragma-scan" and "expand").
// It performs no I/O — internal/pipeline renders the entries through the
// debug logger when -d/--debug is set.
//
// Adapted from the teacher assembler's internal/debugcontext package: same
// append-only, mutex-guarded shape, generalised from "pipeline phase" to
// SupDef's named stages and extended with a diff helper so a trace
// entry can show exactly what a stage changed.
package debugtrace
