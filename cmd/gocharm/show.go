package main

import (
	"fmt"

	"github.com/kwertop/gocharm"
	"github.com/kwertop/gocharm/sink"
	"github.com/urfave/cli/v2"
)

var ShowCmd = cli.Command{
	Action: doShow,
	Name:   "show",
	Usage:  "print the closed itemsets stored in redis by a previous run",
	Flags: []cli.Flag{
		&redisURIFlag,
		&redisKeyFlag,
		&topKFlag,
	},
}

func doShow(context *cli.Context) error {
	uri, key := context.String(redisURIFlag.Name), context.String(redisKeyFlag.Name)
	if uri == "" || key == "" {
		return fmt.Errorf("gocharm: show requires --%s and --%s", redisURIFlag.Name, redisKeyFlag.Name)
	}
	options, err := gocharm.ParseRedisURI(uri)
	if err != nil {
		return err
	}
	client := gocharm.MakeRedisClient(*options)
	writer := sink.NewWriter(context.App.Writer)
	if k := context.Int(topKFlag.Name); k > 0 {
		top, err := sink.TopRedis(context.Context, client, key, k)
		if err != nil {
			return err
		}
		if err := writeAll(writer, top); err != nil {
			return err
		}
		return writer.Flush()
	}
	itemsets, err := sink.LoadRedis(context.Context, client, key)
	if err != nil {
		return err
	}
	if err := writeAll(writer, itemsets.Sorted()); err != nil {
		return err
	}
	return writer.Flush()
}
