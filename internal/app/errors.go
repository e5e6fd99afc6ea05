package app

import "errors"

var (
	errMissingBrokers = errors.New("KAFKA_BROKERS is required")
	errMissingRedis   = errors.New("REDIS_ADDR is required to warm the public profile cache")
)
