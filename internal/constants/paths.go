// Package constants contains file names and defaults shared by t3commit packages.
package constants

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "t3commit"

	// LogFilename is the default log file name for t3commit.
	LogFilename = "t3commit.log"

	// ConfigFilename is the project config file looked up by default.
	ConfigFilename = ".t3commit.yml"
)
