package i

// Logger is the logging surface services depend on.
type Logger interface {
	Info(string)
	Warn(string)
	Error(string)
}
