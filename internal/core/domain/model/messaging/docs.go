// Package messaging implements the templated-message send workflow.
//
// A send marks one specific template as in flight, waits out a simulated
// latency, and then appends the template text to the order's message log.
// The workflow here only tracks the in-flight marker and attempt token; the
// actual append is orchestrated by the application controller.
package messaging
