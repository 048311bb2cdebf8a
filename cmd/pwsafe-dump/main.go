// Command pwsafe-dump opens Password Safe v3 vaults and prints their
// contents. All command-line parsing and sub-command dispatch are handled
// by the internal/cli package via Cobra; main() delegates to cli.Execute().
package main

import "github.com/barnettlynn/pwsafe3/internal/cli"

func main() { cli.Execute() }
