package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/kwertop/gocharm"
	"github.com/kwertop/gocharm/charm"
	"github.com/kwertop/gocharm/database"
	"github.com/kwertop/gocharm/itemset"
	"github.com/kwertop/gocharm/sink"
	"github.com/kwertop/gocharm/stats"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	outputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "file the closed itemsets are written to, standard output if empty",
	}
	metricsFileFlag = cli.StringFlag{
		Name:  "metrics-file",
		Usage: "file the Prometheus metrics of the run are written to, disabled if empty",
	}
)

var MineCmd = cli.Command{
	Action:    doMine,
	Name:      "mine",
	Usage:     "mine the frequent closed itemsets of a transaction file",
	ArgsUsage: "<transaction file>",
	Flags: []cli.Flag{
		&configFlag,
		&minsupFlag,
		&triangularMatrixFlag,
		&hashTableSizeFlag,
		&diffsetsFlag,
		&outputFlag,
		&redisURIFlag,
		&redisKeyFlag,
		&topKFlag,
		&metricsFileFlag,
	},
}

func doMine(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("gocharm: missing transaction file parameter")
	}
	config, err := loadConfig(context)
	if err != nil {
		return err
	}
	db, err := database.LoadFile(context.Args().Get(0))
	if err != nil {
		return err
	}
	log.Infof("loaded %s transactions with %s distinct items",
		humanize.Comma(int64(db.Size())), humanize.Comma(int64(db.Items())))

	ctx, stop := signal.NotifyContext(context.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var writer *sink.Writer
	if path := context.String(outputFlag.Name); path != "" {
		writer, err = sink.CreateFile(path)
		if err != nil {
			return err
		}
	} else {
		writer = sink.NewWriter(context.App.Writer)
	}
	defer writer.Close()

	var sinks sink.Chain
	var topK *sink.TopK
	if k := context.Int(topKFlag.Name); k > 0 {
		if topK, err = sink.NewTopK(k); err != nil {
			return err
		}
		sinks = append(sinks, topK)
	} else {
		sinks = append(sinks, writer)
	}
	if uri := context.String(redisURIFlag.Name); uri != "" {
		options, err := gocharm.ParseRedisURI(uri)
		if err != nil {
			return err
		}
		key := context.String(redisKeyFlag.Name)
		if key == "" {
			key = gocharm.GenerateRedisKey()
		}
		redisSink, err := sink.NewRedis(ctx, gocharm.MakeRedisClient(*options), key)
		if err != nil {
			return err
		}
		log.WithField("key", key).Info("storing closed itemsets in redis")
		sinks = append(sinks, redisSink)
	}

	reporters := stats.Multi{stats.NewLogReporter(log.StandardLogger())}
	registry := prometheus.NewRegistry()
	metricsFile := context.String(metricsFileFlag.Name)
	if metricsFile != "" {
		reporters = append(reporters, stats.NewPrometheusReporter(registry))
	}

	miner, err := charm.NewMiner(config, sinks, charm.WithReporter(reporters))
	if err != nil {
		return err
	}
	if _, err := miner.Run(ctx, db); err != nil {
		return err
	}
	if topK != nil {
		if err := writeAll(writer, topK.Values()); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}
	if metricsFile != "" {
		return prometheus.WriteToTextfile(metricsFile, registry)
	}
	return nil
}

func writeAll(writer *sink.Writer, itemsets []itemset.Itemset) error {
	for _, is := range itemsets {
		if err := writer.Emit(is); err != nil {
			return err
		}
	}
	return nil
}
