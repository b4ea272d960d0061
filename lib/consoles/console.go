package consoles

// Console is the user-facing output channel. Prefixes let nested pipeline
// stages tag their lines without threading loggers around.
type Console interface {
	Printf(format string, a ...any)

	PushPrefix(format string, a ...any)
	PopPrefix()
}
