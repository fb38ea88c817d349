package database

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Load reads a database in the SPMF format: one transaction per line, items
// separated by white space. Empty lines and lines starting with '#', '%' or
// '@' are skipped.
func Load(input io.Reader) (*Database, error) {
	db := &Database{make([][]int, 0, 64), -1}
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || isMetadata(text) {
			continue
		}
		fields := strings.Fields(text)
		transaction := make([]int, 0, len(fields))
		for _, field := range fields {
			item, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(err, "gocharm: line %d contains a non integer item %q", line, field)
			}
			transaction = append(transaction, item)
		}
		if err := db.add(db.Size(), transaction); err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "gocharm: error reading transactions")
	}
	log.Debugf("loaded %d transactions, max item %d", db.Size(), db.MaxItem())
	return db, nil
}

// LoadFile loads the database stored at _path_. Files ending in ".gz" are
// decompressed on the fly.
func LoadFile(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "gocharm: could not open %s", path)
	}
	defer f.Close()
	var input io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "gocharm: could not decompress %s", path)
		}
		defer z.Close()
		input = z
	}
	return Load(input)
}

func isMetadata(line string) bool {
	switch line[0] {
	case '#', '%', '@':
		return true
	}
	return false
}
