package root

const exitCodeUsage = 2

// usageError marks invalid invocations; main exits with its code.
type usageError struct {
	msg string
}

func (e usageError) Error() string { return e.msg }
func (e usageError) ExitCode() int { return exitCodeUsage }
