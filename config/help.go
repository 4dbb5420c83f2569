package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
  pickup-share - ride coordination backend

  Usage:
    pickupshare [flags]

  Flags:
    -config-path  path to yaml config file (default "config.yaml")
    -help         print this message and exit

  Configuration is read from the yaml file and may be overridden with
  environment variables (SERVER_PORT, DATABASE_HOST, LOCATIONIQ_API_KEY, ...).
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}
