package cli

import (
	"fmt"

	"github.com/barnettlynn/pwsafe3/pkg/pwsafe3"
	"github.com/spf13/cobra"
)

var (
	lookupTitle    string
	lookupUsername string
	lookupGroup    string
	showPassword   bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <file>",
	Short: "Find records by title, username, or group",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db := openVault(args[0], passphraseEnv, passphraseFile)

		matches := selectRecords(db)
		if len(matches) == 0 {
			fmt.Println("no matching records")
			return
		}
		for _, r := range matches {
			printRecord(r)
		}
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	addPassphraseFlags(lookupCmd)
	lookupCmd.Flags().StringVar(&lookupTitle, "title", "", "match records with this exact title")
	lookupCmd.Flags().StringVar(&lookupUsername, "username", "", "match records with this exact username")
	lookupCmd.Flags().StringVar(&lookupGroup, "group", "", "match records with this exact group")
	lookupCmd.Flags().BoolVar(&showPassword, "show-password", false, "print the password field in clear text")
}

// selectRecords applies whichever of --title/--username/--group was set,
// narrowing the result on each subsequent filter. With none set, every
// record in the vault matches.
func selectRecords(db *pwsafe3.Database) []*pwsafe3.Record {
	matches := db.Records
	if lookupTitle != "" {
		matches = intersect(matches, db.ByTitle(lookupTitle))
	}
	if lookupUsername != "" {
		matches = intersect(matches, db.ByUsername(lookupUsername))
	}
	if lookupGroup != "" {
		matches = intersect(matches, db.ByGroup(lookupGroup))
	}
	return matches
}

func intersect(a, b []*pwsafe3.Record) []*pwsafe3.Record {
	set := make(map[*pwsafe3.Record]bool, len(b))
	for _, r := range b {
		set[r] = true
	}
	var out []*pwsafe3.Record
	for _, r := range a {
		if set[r] {
			out = append(out, r)
		}
	}
	return out
}

func printRecord(r *pwsafe3.Record) {
	title, _ := r.Title()
	username, _ := r.Username()
	group, _ := r.Group()
	url, _ := r.URL()

	fmt.Printf("title:    %s\n", title)
	if group != "" {
		fmt.Printf("group:    %s\n", group)
	}
	if username != "" {
		fmt.Printf("username: %s\n", username)
	}
	if url != "" {
		fmt.Printf("url:      %s\n", url)
	}
	if showPassword {
		password, _ := r.Password()
		fmt.Printf("password: %s\n", password)
	}
	fmt.Println()
}
