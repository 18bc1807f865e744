// Replay grid workloads against a partition tree.
// Usage: go run ./cmd/ptree run <workload.yaml>
//        go run ./cmd/ptree inspect <workload.yaml>
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"BIPTree/script"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:           "ptree",
	Short:         "Binary index partition tree workloads",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var runCmd = &cobra.Command{
	Use:   "run <workload.yaml>",
	Short: "Apply a workload and print one line per operation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dump, _ := cmd.Flags().GetBool("dump")
		return replay(args[0], cmd.OutOrStdout(), cmd.ErrOrStderr(), dump)
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <workload.yaml>",
	Short: "Apply a workload silently and dump the resulting tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := load(args[0], io.Discard, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		return r.Tree().DumpFunc(cmd.OutOrStdout(), r.Palette().Name)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the workload log level (debug, info, warn, error)")
	runCmd.Flags().Bool("dump", false, "dump the tree after the last operation")
	rootCmd.AddCommand(runCmd, inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func replay(path string, out, errOut io.Writer, dump bool) error {
	r, err := load(path, out, errOut)
	if err != nil {
		return err
	}
	if dump {
		return r.Tree().DumpFunc(out, r.Palette().Name)
	}
	return nil
}

func load(path string, out, errOut io.Writer) (*script.Runner, error) {
	s, err := script.Load(path)
	if err != nil {
		return nil, err
	}
	name := s.LogLevel
	if logLevel != "" {
		name = logLevel
	}
	lvl, err := script.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: lvl}))
	logger.Debug("workload loaded",
		slog.String("path", path),
		slog.Any("dims", s.Dimensions),
		slog.Int("ops", len(s.Ops)),
	)
	return script.RunScript(s, out, logger)
}
