package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/listops/list-walker/pkg/client"
)

var (
	logPath, configFile, alphabet string

	nodes, minLen, maxLen, deleteIntervalMS, readers, deleters int

	seed int64
)

// RootCmd describes "list-walker" command
var RootCmd = &cobra.Command{
	Use:     "list-walker",
	Aliases: []string{"list-walker"},
	Short:   "A concurrent linked list walk-and-delete demo",
	Long: `A demo of fine-grained concurrent access to a shared doubly-linked list:
reader workers repeatedly concatenate the whole list while deleter workers
remove random nodes, synchronized only through per-node locks.

	Complete documentation is available at https://github.com/listops/list-walker`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := client.NewConfig(configFile)
		if err != nil {
			return fmt.Errorf("init config error: %v", err)
		}

		// flags set on the command line win over config file values
		flagOverrides(cmd, config)

		// work starts here
		client, err := client.NewClient(config, logPath)
		if err != nil {
			return fmt.Errorf("init demo client error: %v", err)
		}

		cmd.SilenceUsage = true

		return client.Run()
	},
}

func flagOverrides(cmd *cobra.Command, config *client.Config) {
	if cmd.Flags().Changed("nodes") {
		config.Nodes = nodes
	}
	if cmd.Flags().Changed("min-len") {
		config.MinPayloadLen = minLen
	}
	if cmd.Flags().Changed("max-len") {
		config.MaxPayloadLen = maxLen
	}
	if cmd.Flags().Changed("alphabet") {
		config.Alphabet = alphabet
	}
	if cmd.Flags().Changed("delete-interval") {
		config.DeleteIntervalMS = deleteIntervalMS
	}
	if cmd.Flags().Changed("seed") {
		config.Seed = seed
	}
	if cmd.Flags().Changed("readers") {
		config.Readers = readers
	}
	if cmd.Flags().Changed("deleters") {
		config.Deleters = deleters
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path, yaml/yml/json format")
	RootCmd.PersistentFlags().StringVar(&logPath, "log", "", "log file path (default in os.Stderr)")
	RootCmd.PersistentFlags().IntVarP(&nodes, "nodes", "n", 140, "number of nodes the list starts with")
	RootCmd.PersistentFlags().IntVar(&minLen, "min-len", 3, "minimum payload length")
	RootCmd.PersistentFlags().IntVar(&maxLen, "max-len", 9, "maximum payload length")
	RootCmd.PersistentFlags().StringVar(&alphabet, "alphabet", "abcdefghijklmnopqrstuvwxyz", "characters payloads are drawn from")
	RootCmd.PersistentFlags().IntVarP(&deleteIntervalMS, "delete-interval", "i", 500, "pause between deletions in milliseconds")
	RootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed, 0 means time-based")
	RootCmd.PersistentFlags().IntVar(&readers, "readers", 1, "numbers of reader goroutines")
	RootCmd.PersistentFlags().IntVar(&deleters, "deleters", 1, "numbers of deleter goroutines")
}

// Execute executes the RootCmd
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
