package hashmapbench

// InvalidConfiguration - Custom error to inform that a measurement was requested with a configuration
// that would lead to a division by zero, i.e. zero capacity for an insertion measurement or zero loop
// for a search measurement. It is always returned before any table is constructed or any timing is done.
type InvalidConfiguration struct {
	msg string
}

// Error - Used to notify that the requested measurement configuration is invalid
func (E InvalidConfiguration) Error() string {
	if E.msg == "" {
		return "invalid configuration"
	}
	return E.msg
}

// MalformedArgument - Custom error to inform that a command line argument could not be parsed as an
// unsigned decimal number
type MalformedArgument struct {
	msg string
}

// Error - Used to notify that a command line argument was malformed
func (E MalformedArgument) Error() string {
	if E.msg == "" {
		return "malformed argument, expected an unsigned decimal number"
	}
	return E.msg
}
