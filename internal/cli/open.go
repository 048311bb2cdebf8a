package cli

import (
	"fmt"

	"github.com/barnettlynn/pwsafe3/pkg/pwsafe3"
	"github.com/spf13/cobra"
)

var (
	passphraseEnv  string
	passphraseFile string
)

var openCmd = &cobra.Command{
	Use:   "open <file>",
	Short: "Unlock a vault and print a summary of its header and records",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db := openVault(args[0], passphraseEnv, passphraseFile)
		printHeaderSummary(db)
		fmt.Printf("%d record(s)\n", len(db.Records))
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	addPassphraseFlags(openCmd)
}

func addPassphraseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&passphraseEnv, "passphrase-env", "", "read the passphrase from this environment variable")
	cmd.Flags().StringVar(&passphraseFile, "passphrase-file", "", "read the passphrase from this file")
}

func printHeaderSummary(db *pwsafe3.Database) {
	for _, f := range db.Header {
		switch f.Type {
		case pwsafe3.HeaderDatabaseName:
			fmt.Printf("name: %s\n", f.Str)
		case pwsafe3.HeaderDatabaseDescription:
			fmt.Printf("description: %s\n", f.Str)
		case pwsafe3.HeaderVersion:
			fmt.Printf("format version: %d.%d\n", f.U16>>8, f.U16&0xFF)
		}
	}
}
