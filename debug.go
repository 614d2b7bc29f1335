package fmath

// checkPrecondition reports a violated caller precondition. The library
// never validates these on the hot path; builds tagged fmathdebug log them
// as warnings, release builds compile the call away. Return values are
// identical either way.
func checkPrecondition(ok bool, msg string, args ...any) {
	if debugChecks && !ok {
		Logger().Warn(msg, args...)
	}
}
