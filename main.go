package main

import (
	"os"
)

func main() {
	cli := parseArgs(os.Args[1:])

	switch cli.mode {
	case romInfosMode:
		checkf(romInfosMain(os.Stdout, cli.RomInfos), "failed to read ROM infos")
	case versionMode:
		printVersion(os.Stdout)
	case runMode:
		checkf(runMain(cli.Run), "emulation failed")
	}
}
