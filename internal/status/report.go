// internal/status/report.go
package status

// Report is exactly what a register sink is allowed to deliver.
// It contains no logic.
type Report struct {
	Present bool
	Message []byte
}
