package main

import "github.com/kava-labs/collateral-monitor/cmd"

func main() {
	cmd.Execute()
}
