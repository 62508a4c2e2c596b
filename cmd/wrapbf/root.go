package main

import (
	"errors"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jaredmtdev/wrapnum/internal/bf"
	"github.com/spf13/cobra"
)

var errNoProgram = errors.New("pass a program as an argument or with --file")

func newRootCmd() *cobra.Command {
	var (
		file    string
		cells   int
		steps   int64
		verbose int
	)

	cmd := &cobra.Command{
		Use:   "wrapbf [program]",
		Short: "Run a brainfuck program whose cells and data pointer wrap around.",
		Long: `Run a brainfuck program whose cells and data pointer wrap around. ` +
			`Cells hold 0-255 and wrap on overflow; moving the data pointer past ` +
			`either end of the tape continues at the other end.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(file, args)
			if err != nil {
				return err
			}

			logger := hclog.New(&hclog.LoggerOptions{
				Name:   "wrapbf",
				Level:  logLevel(verbose),
				Output: cmd.ErrOrStderr(),
			})

			prog, err := bf.Compile(src)
			if err != nil {
				return err
			}
			m, err := bf.New(
				bf.WithCells(cells),
				bf.WithStepLimit(steps),
				bf.WithLogger(logger),
			)
			if err != nil {
				return err
			}
			return m.Run(cmd.Context(), prog, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the program from a file")
	cmd.Flags().IntVar(&cells, "cells", bf.DefaultCells, "tape length")
	cmd.Flags().Int64Var(&steps, "steps", 0, "stop after this many instructions (0 for no limit)")
	cmd.Flags().CountVarP(&verbose, "verbose", "v", "log program progress (-vv also logs pointer wraparound)")

	return cmd
}

func loadSource(file string, args []string) (string, error) {
	switch {
	case file != "" && len(args) > 0:
		return "", errors.New("use either a program argument or --file, not both")
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case len(args) > 0:
		return args[0], nil
	}
	return "", errNoProgram
}

func logLevel(verbose int) hclog.Level {
	switch {
	case verbose >= 2:
		return hclog.Trace
	case verbose == 1:
		return hclog.Debug
	}
	return hclog.Warn
}
