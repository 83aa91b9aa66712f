// Package telemetry is a pass-through progress table: it has no
// algorithmic role in training, it only accumulates per-scan/per-block
// log-likelihood and prior records and forwards them to an optional
// caller-supplied callback with "advance by N" semantics. A callback
// that returns true asks the driver to stop at the next scan boundary;
// it is consulted cooperatively, never mid-block.
package telemetry
