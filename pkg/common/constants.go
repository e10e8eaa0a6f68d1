package common

const (
	// RedisKeyLastPrice holds the most recent quote per symbol as a hash
	// {price, timestamp}.
	RedisKeyLastPrice = "last_price:%s"

	// RedisKeyAlertTrigger marks a (configuration, position) pair as recently
	// triggered; while present the pair is not re-triggered.
	RedisKeyAlertTrigger = "alert_trigger:%d:%d"
)
