package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups <file>",
	Short: "List the distinct groups present in a vault",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db := openVault(args[0], passphraseEnv, passphraseFile)
		for _, g := range db.Groups() {
			fmt.Println(g)
		}
	},
}

func init() {
	rootCmd.AddCommand(groupsCmd)
	addPassphraseFlags(groupsCmd)
}
