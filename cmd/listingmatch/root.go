package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "listingmatch",
		Short: "Match product listings to a product catalog",
		Long: `listingmatch assigns free-text product listings to canonical products by
keyword overlap. Each listing is given to at most one product, and products
described by more keywords are matched first.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(newMatchCmd(v, &cfgFile))
	return rootCmd
}
