package constants

// ExitFailure is the process exit code for a failed command or a rejected message.
const ExitFailure = 1
