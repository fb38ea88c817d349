package main

import (
	"os"

	"github.com/kwertop/gocharm/charm"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "YAML file with the mining parameters, overridden by flags",
	}
	minsupFlag = cli.Float64Flag{
		Name:  "minsup",
		Usage: "minimum support as a fraction of the transactions, in (0, 1]",
		Value: charm.DefaultConfig().Minsup,
	}
	triangularMatrixFlag = cli.BoolFlag{
		Name:  "triangular-matrix",
		Usage: "skip infrequent item pairs using a co-occurrence matrix",
		Value: charm.DefaultConfig().UseTriangularMatrix,
	}
	hashTableSizeFlag = cli.IntFlag{
		Name:  "hash-table-size",
		Usage: "number of buckets of the closure table",
		Value: charm.DefaultConfig().HashTableSize,
	}
	diffsetsFlag = cli.BoolFlag{
		Name:  "diffsets",
		Usage: "use diffsets (dCHARM) instead of tidsets",
	}
)

// loadConfig reads the file given by --config, if any, then applies the
// flags set on the command line
func loadConfig(context *cli.Context) (charm.Config, error) {
	config := charm.DefaultConfig()
	if path := context.String(configFlag.Name); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return config, errors.Wrapf(err, "gocharm: could not read config file %s", path)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "gocharm: invalid config file %s", path)
		}
	}
	if context.IsSet(minsupFlag.Name) {
		config.Minsup = context.Float64(minsupFlag.Name)
	}
	if context.IsSet(triangularMatrixFlag.Name) {
		config.UseTriangularMatrix = context.Bool(triangularMatrixFlag.Name)
	}
	if context.IsSet(hashTableSizeFlag.Name) {
		config.HashTableSize = context.Int(hashTableSizeFlag.Name)
	}
	if context.IsSet(diffsetsFlag.Name) {
		config.Representation = charm.Tidsets
		if context.Bool(diffsetsFlag.Name) {
			config.Representation = charm.Diffsets
		}
	}
	return config, config.Validate()
}
