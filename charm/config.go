package charm

import (
	"fmt"
	"math"
	"strings"

	"github.com/kwertop/gocharm/closure"
)

// Representation selects the vertical representation used for joins
type Representation int

const (
	// Tidsets intersects transaction sets (CHARM)
	Tidsets Representation = iota
	// Diffsets subtracts difference sets (dCHARM)
	Diffsets
)

func (r Representation) String() string {
	switch r {
	case Tidsets:
		return "tidsets"
	case Diffsets:
		return "diffsets"
	}
	return fmt.Sprintf("representation(%d)", int(r))
}

// MarshalText encodes the representation by name
func (r Representation) MarshalText() ([]byte, error) {
	if r != Tidsets && r != Diffsets {
		return nil, fmt.Errorf("gocharm: unknown representation %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText decodes "tidsets" or "diffsets", case insensitive
func (r *Representation) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "tidsets", "tidset", "charm":
		*r = Tidsets
	case "diffsets", "diffset", "dcharm":
		*r = Diffsets
	default:
		return fmt.Errorf("gocharm: unknown representation %q", text)
	}
	return nil
}

// Config holds the parameters of a mining run.
// _Minsup_ is the minimum support as a fraction of the transactions, in (0, 1]
// _UseTriangularMatrix_ skips the joins of item pairs counted as infrequent
// by a triangular matrix; it never changes the result
// _HashTableSize_ is the bucket count of the closure table
type Config struct {
	Minsup              float64        `yaml:"minsup"`
	UseTriangularMatrix bool           `yaml:"triangular_matrix"`
	HashTableSize       int            `yaml:"hash_table_size"`
	Representation      Representation `yaml:"representation"`
}

// DefaultConfig returns a tidset Config with a minimum support of 0.5 and
// the triangular matrix enabled
func DefaultConfig() Config {
	return Config{
		Minsup:              0.5,
		UseTriangularMatrix: true,
		HashTableSize:       closure.DefaultSize,
		Representation:      Tidsets,
	}
}

// Validate checks the ranges of every parameter
func (c Config) Validate() error {
	if math.IsNaN(c.Minsup) || c.Minsup <= 0 || c.Minsup > 1 {
		return fmt.Errorf("gocharm: minsup should be in (0, 1], got %v", c.Minsup)
	}
	if c.HashTableSize <= 0 {
		return fmt.Errorf("gocharm: hash table size should be greater than 0, got %d", c.HashTableSize)
	}
	if c.Representation != Tidsets && c.Representation != Diffsets {
		return fmt.Errorf("gocharm: unknown representation %d", int(c.Representation))
	}
	return nil
}

// MinsupRelative converts the fractional _minsup_ into a transaction count
// for a database of _size_ transactions
func MinsupRelative(minsup float64, size int) int {
	return int(math.Ceil(minsup * float64(size)))
}
