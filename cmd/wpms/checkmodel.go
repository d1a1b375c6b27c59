package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wpms-io/wpms-core/internal/dimacsio"
	"github.com/wpms-io/wpms-core/wcnf"
)

var checkModelFlags struct {
	gzipped bool
}

var checkModelCmd = &cobra.Command{
	Use:   "check-model <instance.wcnf> <models-file>",
	Short: "score one or more candidate models against an instance",
	Args:  cobra.ExactArgs(2),
	RunE:  runCheckModel,
}

func init() {
	checkModelCmd.Flags().BoolVar(&checkModelFlags.gzipped, "gzip", false, "instance file is gzip-compressed")
}

func runCheckModel(cmd *cobra.Command, args []string) error {
	instanceFile, modelsFile := args[0], args[1]

	store := wcnf.NewStore()
	if err := dimacsio.LoadWCNF(instanceFile, checkModelFlags.gzipped, store); err != nil {
		return err
	}
	store.SetOriginalSource(dimacsio.NewReloader(instanceFile, checkModelFlags.gzipped))

	// The models are over the instance's own variables, so lift them
	// through an identity remap.
	store.NOrigVars = store.MaxOrigVar + 1
	store.In2Ex = make([]int32, store.NOrigVars)
	for v := range store.In2Ex {
		store.In2Ex[v] = int32(v)
	}

	models, err := dimacsio.LoadModels(modelsFile)
	if err != nil {
		return err
	}

	for i, m := range models {
		cost, err := store.CheckModel(m, false)
		if err != nil {
			return err
		}
		if cost == wcnf.UnsatModel {
			fmt.Printf("model %d: UNSAT (violates a hard clause)\n", i)
			continue
		}
		fmt.Printf("model %d: cost=%v\n", i, cost)
	}
	return nil
}
