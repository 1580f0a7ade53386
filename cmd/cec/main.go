// Copyright 2026 The CEC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command cec checks two combinational aiger networks for functional
// equivalence by bit-parallel simulation of their miter.
//
// In satcomp mode the exit code is 10 when the networks are
// equivalent, 20 when they are not and 0 when the check was not
// attempted.
package main

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/irifrance/cec"
	"github.com/irifrance/cec/logic"
	"github.com/irifrance/cec/logic/aiger"
)

var (
	stats   bool
	satcomp bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cec NTK1 NTK2",
	Short: "Check two combinational aiger networks for equivalence.",
	Long: `cec decides whether two combinational networks in ascii aiger (aag)
format compute the same Boolean functions, by bit-parallel logic
simulation.  Networks with more than 40 inputs are not attempted and
report unknown.  Files ending in .gz or .bz2 are decompressed
transparently.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		a, err := readPath(args[0])
		if err != nil {
			return err
		}
		b, err := readPath(args[1])
		if err != nil {
			return err
		}
		var st cec.Stats
		v := cec.Check(a, b, &st)
		fmt.Println(v)
		if stats {
			fmt.Printf("c split vars %d\nc rounds %d\n", st.SplitVars, st.Rounds)
		}
		if satcomp {
			switch v {
			case cec.Equivalent:
				os.Exit(10)
			case cec.NotEquivalent:
				os.Exit(20)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&stats, "stats", "s", false, "print split/round statistics")
	rootCmd.Flags().BoolVar(&satcomp, "satcomp", false, "exit 10 equivalent, 20 not equivalent")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each simulation round")
}

func readPath(p string) (*logic.C, error) {
	r, err := path2Reader(p)
	if err != nil {
		return nil, err
	}
	c, err := aiger.ReadAscii(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return c, nil
}

func path2Reader(p string) (io.Reader, error) {
	if p == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(p, ".gz") {
		r, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	if strings.HasSuffix(p, ".bz2") {
		return bzip2.NewReader(f), nil
	}
	return f, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
