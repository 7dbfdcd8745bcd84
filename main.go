package main

import "ledger-recon/cmd"

func main() {
	cmd.Execute()
}
