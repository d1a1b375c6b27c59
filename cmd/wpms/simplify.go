package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wpms-io/wpms-core/internal/dimacsio"
	"github.com/wpms-io/wpms-core/internal/satoracle"
	"github.com/wpms-io/wpms-core/wcnf"
)

var simplifyFlags struct {
	gzipped         bool
	harden          bool
	eqs             bool
	units           bool
	mxFind          int
	mxMemLim        int64
	mxCPULim        time.Duration
	mxSeedOrig      bool
	simplifyAndExit bool
	hardenBudget    int64
	outFile         string
}

var simplifyCmd = &cobra.Command{
	Use:   "simplify <instance.wcnf>",
	Short: "run the preprocessing pipeline over a weighted partial MaxSAT instance",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimplify,
}

func init() {
	f := simplifyCmd.Flags()
	f.BoolVar(&simplifyFlags.gzipped, "gzip", false, "input file is gzip-compressed")
	f.BoolVar(&simplifyFlags.harden, "wcnf_harden", true, "run simple hardening by transition weights")
	f.BoolVar(&simplifyFlags.eqs, "wcnf_eqs", true, "find equality SCCs in the binary implication graph")
	f.BoolVar(&simplifyFlags.units, "wcnf_units", true, "propagate units")
	f.IntVar(&simplifyFlags.mxFind, "mx_find_mxes", int(wcnf.MxFindBoth), "mutex kinds to find: 0=none 1=core 2=non-core 3=both")
	f.Int64Var(&simplifyFlags.mxMemLim, "mx_mem_lim", wcnf.DefaultParams.MxMemLimit, "byte budget for cached MX(.) sets")
	f.DurationVar(&simplifyFlags.mxCPULim, "mx_cpu_lim", wcnf.DefaultParams.MxCPULimit, "wall-clock budget for mutex discovery")
	f.BoolVar(&simplifyFlags.mxSeedOrig, "mx_seed_originals", false, "retain original blits in mutex records")
	f.BoolVar(&simplifyFlags.simplifyAndExit, "simplify_and_exit", false, "emit the simplified WCNF and stop")
	f.Int64Var(&simplifyFlags.hardenBudget, "wcnf_harden_budget", wcnf.DefaultParams.HardenPropagationBudget, "propagation budget per hardening tier")
	f.StringVarP(&simplifyFlags.outFile, "out", "o", "", "write the simplified WCNF here (defaults to stdout)")
}

func newOracle() wcnf.Oracle {
	return satoracle.NewWcnfOracle()
}

func runSimplify(cmd *cobra.Command, args []string) error {
	filename := args[0]

	store := wcnf.NewStore()
	if err := dimacsio.LoadWCNF(filename, simplifyFlags.gzipped, store); err != nil {
		return err
	}
	store.SetOriginalSource(dimacsio.NewReloader(filename, simplifyFlags.gzipped))

	params := wcnf.Params{
		Harden:                  simplifyFlags.harden,
		Eqs:                     simplifyFlags.eqs,
		Units:                   simplifyFlags.units,
		MxFind:                  wcnf.MxFindMode(simplifyFlags.mxFind),
		MxMemLimit:              simplifyFlags.mxMemLim,
		MxCPULimit:              simplifyFlags.mxCPULim,
		MxSeedOriginals:         simplifyFlags.mxSeedOrig,
		HardenPropagationBudget: simplifyFlags.hardenBudget,
		SimplifyAndExit:         simplifyFlags.simplifyAndExit,
		Logger:                  logrus.StandardLogger(),
	}

	err := store.Simplify(func() wcnf.Oracle { return newOracle() }, params)
	if err != nil && err != wcnf.ErrUnsat {
		return fmt.Errorf("simplify: %w", err)
	}

	out := os.Stdout
	if simplifyFlags.outFile != "" {
		f, ferr := os.Create(simplifyFlags.outFile)
		if ferr != nil {
			return ferr
		}
		defer f.Close()
		out = f
	}

	if store.Unsat {
		fmt.Fprintln(out, "c formula is unsatisfiable")
		return nil
	}

	store.WriteStats(out)
	store.WriteDimacs(out)
	return nil
}
