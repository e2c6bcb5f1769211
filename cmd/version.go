package cmd

import (
	"context"
	"os/exec"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const compilerVersionTimeout = 5 * time.Second

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show elmdecode and Elm compiler versions",
		Long: `Print the elmdecode build version, the Go version it was built with and the
version reported by the configured Elm compiler (compiler.command).`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			toolVersion, goVersion := buildVersions()

			cmd.Println("elmdecode version\t", toolVersion)
			cmd.Println("go version\t", goVersion)
			cmd.Println("elm version\t", compilerVersion(cmd.Context(), viper.GetString(compilerCommandKey)))
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}

func buildVersions() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown", "unknown"
	}

	toolVersion := info.Main.Version
	if toolVersion == "" {
		toolVersion = "unknown"
	}

	return toolVersion, info.GoVersion
}

// compilerVersion runs `<command> --version`; a missing or failing compiler
// reads as "unavailable".
func compilerVersion(ctx context.Context, command string) string {
	if strings.TrimSpace(command) == "" {
		return "unavailable"
	}

	if ctx == nil {
		ctx = context.Background()
	}

	ctx, cancel := context.WithTimeout(ctx, compilerVersionTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, command, "--version").Output()
	if err != nil {
		return "unavailable"
	}

	version := strings.TrimSpace(string(out))
	if version == "" {
		return "unavailable"
	}

	return version
}
