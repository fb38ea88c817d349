package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd/gocharm <command> <flags>

var (
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "sets the logging level (trace, debug, info, warn, error)",
		Value: "info",
	}
	redisURIFlag = cli.StringFlag{
		Name:  "redis-uri",
		Usage: "redis:// uri of the server storing the closed itemsets",
	}
	redisKeyFlag = cli.StringFlag{
		Name:  "redis-key",
		Usage: "key the closed itemsets are stored under, generated if empty",
	}
	topKFlag = cli.IntFlag{
		Name:  "top-k",
		Usage: "only keep the k closed itemsets with the highest support, disabled if 0",
		Value: 0,
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "gocharm",
		Usage: "frequent closed itemset mining with CHARM and dCHARM",
		Flags: []cli.Flag{
			&logLevelFlag,
		},
		Before: setLogLevel,
		Commands: []*cli.Command{
			&MineCmd,
			&ShowCmd,
		},
	}
}

func setLogLevel(context *cli.Context) error {
	level, err := log.ParseLevel(context.String(logLevelFlag.Name))
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
