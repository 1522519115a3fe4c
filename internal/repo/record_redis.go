package repo

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/inventory-rest/internal/models"
)

const (
	recordsHashKey   = "records"
	recordsNextIDKey = "records:next_id"
)

// replaceIfExistsScript overwrites a hash field only when it is already present.
var replaceIfExistsScript = redis.NewScript(`
if redis.call('HEXISTS', KEYS[1], ARGV[1]) == 0 then
	return 0
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
return 1
`)

// RedisRecordInventory stores records as JSON values of a single Redis hash.
type RedisRecordInventory struct {
	client *redis.Client
}

func NewRedisRecordInventory(client *redis.Client) *RedisRecordInventory {
	return &RedisRecordInventory{client: client}
}

func (r *RedisRecordInventory) List(ctx context.Context) ([]models.Record, error) {
	values, err := r.client.HGetAll(ctx, recordsHashKey).Result()
	if err != nil {
		return nil, err
	}

	records := make([]models.Record, 0, len(values))
	for _, v := range values {
		var rec models.Record
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return *records[i].ID < *records[j].ID })
	return records, nil
}

func (r *RedisRecordInventory) Get(ctx context.Context, id int) (models.Record, error) {
	v, err := r.client.HGet(ctx, recordsHashKey, strconv.Itoa(id)).Result()
	if errors.Is(err, redis.Nil) {
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		return models.Record{}, err
	}

	var rec models.Record
	if err := json.Unmarshal([]byte(v), &rec); err != nil {
		return models.Record{}, err
	}
	return rec, nil
}

func (r *RedisRecordInventory) Add(ctx context.Context, record models.Record) (models.Record, error) {
	id, err := r.client.Incr(ctx, recordsNextIDKey).Result()
	if err != nil {
		return models.Record{}, err
	}
	record.ID = models.IntPtr(int(id))

	data, err := json.Marshal(record)
	if err != nil {
		return models.Record{}, err
	}
	if err := r.client.HSet(ctx, recordsHashKey, strconv.FormatInt(id, 10), data).Err(); err != nil {
		return models.Record{}, err
	}
	return record, nil
}

func (r *RedisRecordInventory) Update(ctx context.Context, id int, record models.Record) (models.Record, error) {
	record.ID = models.IntPtr(id)
	data, err := json.Marshal(record)
	if err != nil {
		return models.Record{}, err
	}

	replaced, err := replaceIfExistsScript.Run(ctx, r.client, []string{recordsHashKey}, strconv.Itoa(id), data).Int()
	if err != nil {
		return models.Record{}, err
	}
	if replaced == 0 {
		return models.Record{}, ErrRecordNotFound
	}
	return record, nil
}

func (r *RedisRecordInventory) Delete(ctx context.Context, id int) error {
	n, err := r.client.HDel(ctx, recordsHashKey, strconv.Itoa(id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRecordNotFound
	}
	return nil
}
