package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/kwertop/gocharm/itemset"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Redis persists itemsets under a common _key_.
// _key_:itemsets is a Redis Hash from the itemset fingerprint to its JSON
// _key_:support is a Sorted Set of the fingerprints scored by support
// _key_:meta is a Redis Hash holding the number of itemsets stored
// A Lua script keeps the three keys consistent on every Emit.
type Redis struct {
	ctx    context.Context
	client *redis.Client
	key    string
}

var emitScript = redis.NewScript(`
	local key = KEYS[1]
	local fingerprint = ARGV[1]
	local value = ARGV[2]
	local support = ARGV[3]
	local added = redis.call('HSET', key .. ':itemsets', fingerprint, value)
	redis.call('ZADD', key .. ':support', support, fingerprint)
	if added == 1 then
		redis.call('HINCRBY', key .. ':meta', 'count', 1)
	end
	return added
`)

// NewRedis creates a Redis sink storing under _key_. Itemsets previously
// stored under _key_ are deleted.
func NewRedis(ctx context.Context, client *redis.Client, key string) (*Redis, error) {
	if key == "" {
		return nil, fmt.Errorf("gocharm: redis key should not be empty")
	}
	r := &Redis{ctx, client, key}
	err := client.Del(ctx, r.itemsetsKey(), r.supportKey(), r.metaKey()).Err()
	if err != nil {
		return nil, errors.Wrapf(err, "gocharm: error resetting redis key %s", key)
	}
	return r, nil
}

// Key returns the key the itemsets are stored under
func (r *Redis) Key() string {
	return r.key
}

func (r *Redis) itemsetsKey() string {
	return r.key + ":itemsets"
}

func (r *Redis) supportKey() string {
	return r.key + ":support"
}

func (r *Redis) metaKey() string {
	return r.key + ":meta"
}

// Emit stores _is_
func (r *Redis) Emit(is itemset.Itemset) error {
	value, err := json.Marshal(is)
	if err != nil {
		return errors.Wrap(err, "gocharm: error encoding itemset")
	}
	err = emitScript.Run(r.ctx, r.client, []string{r.key}, is.Fingerprint(), string(value), is.Support).Err()
	if err != nil {
		return errors.Wrapf(err, "gocharm: error storing itemset %s", is.Key())
	}
	return nil
}

// Count returns the number of itemsets stored
func (r *Redis) Count() (int, error) {
	return CountRedis(r.ctx, r.client, r.key)
}

// CountRedis returns the number of itemsets stored under _key_
func CountRedis(ctx context.Context, client *redis.Client, key string) (int, error) {
	val, err := client.HGet(ctx, key+":meta", "count").Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrapf(err, "gocharm: error reading count of %s", key)
	}
	return strconv.Atoi(val)
}

// LoadRedis reads back every itemset stored under _key_
func LoadRedis(ctx context.Context, client *redis.Client, key string) (*itemset.Itemsets, error) {
	values, err := client.HGetAll(ctx, key+":itemsets").Result()
	if err != nil {
		return nil, errors.Wrapf(err, "gocharm: error reading itemsets of %s", key)
	}
	all := make([]itemset.Itemset, 0, len(values))
	for fingerprint, value := range values {
		var is itemset.Itemset
		if err := json.Unmarshal([]byte(value), &is); err != nil {
			return nil, errors.Wrapf(err, "gocharm: error decoding itemset %s", fingerprint)
		}
		all = append(all, is)
	}
	sort.Slice(all, func(i, j int) bool { return itemset.Less(all[i], all[j]) })
	itemsets := itemset.NewItemsets(key)
	for _, is := range all {
		itemsets.Add(is)
	}
	return itemsets, nil
}

// TopRedis returns the _n_ itemsets with the highest support stored under
// _key_, highest first
func TopRedis(ctx context.Context, client *redis.Client, key string, n int) ([]itemset.Itemset, error) {
	if n <= 0 {
		return nil, nil
	}
	fingerprints, err := client.ZRevRange(ctx, key+":support", 0, int64(n-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "gocharm: error ranking itemsets of %s", key)
	}
	if len(fingerprints) == 0 {
		return nil, nil
	}
	values, err := client.HMGet(ctx, key+":itemsets", fingerprints...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "gocharm: error reading itemsets of %s", key)
	}
	top := make([]itemset.Itemset, 0, len(values))
	for k, value := range values {
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("gocharm: itemset %s is missing from %s", fingerprints[k], key)
		}
		var is itemset.Itemset
		if err := json.Unmarshal([]byte(s), &is); err != nil {
			return nil, errors.Wrapf(err, "gocharm: error decoding itemset %s", fingerprints[k])
		}
		top = append(top, is)
	}
	return top, nil
}
