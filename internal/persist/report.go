// internal/persist/report.go
package persist

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/tamzrod/crash-persist/internal/region"
)

// Report persists a preformatted diagnostic. It does not reset; that
// decision belongs to the caller. Use it from custom failure handlers.
func Report(r *region.Region, f Framing, text string) {
	w := NewWriter(r, f)
	_, _ = w.WriteString(text)
}

// ReportValue persists a panic value the same way Capture does.
func ReportValue(r *region.Region, f Framing, v any) {
	writePanic(NewWriter(r, f), v)
}

// writePanic formats a recovered panic value as one line.
func writePanic(w *Writer, v any) {
	_, _ = fmt.Fprintf(w, "panicked: %v\n", v)
}

// writeLocation formats only where the panic happened.
func writeLocation(w *Writer) {
	if file, line, ok := panicSite(); ok {
		_, _ = fmt.Fprintf(w, "panicked at %s:%d\n", file, line)
		return
	}
	_, _ = w.WriteString("panic occurred\n")
}

// captureFrames are the functions between the panic site and panicSite.
var captureFrames = []string{
	".panicSite",
	".writeLocation",
	".(*Store).Capture",
	".(*Store).Recover",
	".Capture",
	".Recover",
}

// panicSite returns the first frame outside the runtime and the capture
// machinery.
func panicSite() (string, int, bool) {
	var pcs [32]uintptr
	n := runtime.Callers(1, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	for {
		fr, more := frames.Next()
		if fr.Function != "" && !strings.HasPrefix(fr.Function, "runtime.") && !isCaptureFrame(fr.Function) {
			return fr.File, fr.Line, true
		}
		if !more {
			return "", 0, false
		}
	}
}

func isCaptureFrame(fn string) bool {
	if !strings.HasPrefix(fn, pkgPath+".") {
		return false
	}
	for _, s := range captureFrames {
		if strings.HasSuffix(fn, s) {
			return true
		}
	}
	return false
}

const pkgPath = "github.com/tamzrod/crash-persist/internal/persist"
