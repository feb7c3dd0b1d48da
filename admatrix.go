// Package admatrix builds allelic-depth matrices from sorted single-sample
// VCF files.
package admatrix

// Version is reported by each subcommand.
const Version = "0.1.1"

// Exit codes follow BSD sysexits so callers can distinguish failure causes.
const (
	ExitUsage      = 64 // wrong arguments
	ExitDataError  = 65 // malformed or unsorted record, bad manifest line
	ExitNoManifest = 66 // manifest unreadable
	ExitInputOpen  = 69 // a listed input unreadable
	ExitAlloc      = 71 // out of memory
	ExitOutputOpen = 73 // an output could not be created
)
