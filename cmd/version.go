package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time. It must match
// selfupdate.DevVersion for unreleased builds.
var version = "(devel)"

// currentVersion is the ldflags version, or the module version recorded by
// `go install` when the binary was built without ldflags.
func currentVersion() string {
	if version != "(devel)" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return version
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pathwise %s (%s/%s, %s)\n", currentVersion(), runtime.GOOS, runtime.GOARCH, runtime.Version())
	},
}
