// Package batch renders many footprint reports in one run.
//
// Every entry of a manifest is an independent pipeline: its snapshot is
// loaded, the report is built and the document is written on its own. Entries
// run concurrently up to a configured limit. A failing entry never cancels
// the others; all failures are reported together once the run completes.
package batch
