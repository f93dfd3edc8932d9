package cli

import "flag"

// NewFlagSet returns a FlagSet with ContinueOnError and the grouped usage
// text installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	installUsage(fs, name)
	return fs
}
