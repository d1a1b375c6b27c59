package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "wpms",
	Short: "wpms preprocesses and scores weighted partial MaxSAT instances",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(lvl)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "logging level (trace, debug, info, warn, error)")
	rootCmd.AddCommand(simplifyCmd)
	rootCmd.AddCommand(checkModelCmd)
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
	os.Exit(0)
}
