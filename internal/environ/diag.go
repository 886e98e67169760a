package environ

import "github.com/sonnet007/AppManager/internal/logging"

// diag is the diagnostic sink. Everything reported here is advisory;
// resolution never fails because a message could not be written.
var diag = logging.Nop()

// SetDiagnostics routes environ diagnostics to l. A nil l silences them.
func SetDiagnostics(l *logging.Logger) {
	if l == nil {
		l = logging.Nop()
	}
	diag = l
}
