package record

import (
	"context"
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
)

const (
	playerKey  = "deal:player:%s"
	resultsKey = "deal:results"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Redis keeps a hash of totals per player and a capped list of results.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Dial connects to addr and checks the server answers.
func Dial(ctx context.Context, addr string, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", addr, err)
	}
	return NewRedis(client), nil
}

func (r *Redis) Record(ctx context.Context, result Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	pipe := r.client.TxPipeline()
	for _, name := range result.Players {
		pipe.HSet(ctx, fmt.Sprintf(playerKey, name), "name", name)
		pipe.HIncrBy(ctx, fmt.Sprintf(playerKey, name), "played", 1)
	}
	if result.Winner != "" {
		pipe.HIncrBy(ctx, fmt.Sprintf(playerKey, result.Winner), "won", 1)
	}
	pipe.LPush(ctx, resultsKey, data)
	pipe.LTrim(ctx, resultsKey, 0, RecentLimit-1)
	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record game %s: %w", result.GameID, err)
	}
	return nil
}

func (r *Redis) Stats(ctx context.Context, name string) (Stats, error) {
	fields, err := r.client.HGetAll(ctx, fmt.Sprintf(playerKey, name)).Result()
	if err != nil {
		return Stats{Name: name}, err
	}
	return decodeStats(name, fields)
}

func (r *Redis) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 || limit > RecentLimit {
		limit = RecentLimit
	}
	items, err := r.client.LRange(ctx, resultsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(items))
	for _, item := range items {
		var result Result
		if err := json.UnmarshalFromString(item, &result); err != nil {
			return nil, fmt.Errorf("decode result: %w", err)
		}
		results = append(results, result)
	}
	return results, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func decodeStats(name string, fields map[string]string) (Stats, error) {
	stats := Stats{Name: name}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: stringToIntHookFunc(),
		Result:     &stats,
		TagName:    "json",
	})
	if err != nil {
		return stats, err
	}
	if err := decoder.Decode(fields); err != nil {
		return stats, fmt.Errorf("decode stats of %s: %w", name, err)
	}
	return stats, nil
}

// stringToIntHookFunc turns the string fields of a redis hash into ints.
func stringToIntHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if from == reflect.String && to == reflect.Int {
			return strconv.Atoi(data.(string))
		}
		return data, nil
	}
}
