package notify

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Region is a logical view-region of the admin panel that caches store data.
type Region string

const (
	RegionDashboard     Region = "dashboard"
	RegionCategory      Region = "category"
	RegionSubCategory   Region = "sub-category"
	RegionBrands        Region = "brands"
	RegionVariantType   Region = "variant-type"
	RegionVariants      Region = "variants"
	RegionCoupons       Region = "coupons"
	RegionPosters       Region = "posters"
	RegionNotifications Region = "notifications"
)

// AllRegions is the fixed broadcast set. Every successful mutation marks
// every region stale; there is no per-entity targeting.
var AllRegions = []Region{
	RegionDashboard,
	RegionCategory,
	RegionSubCategory,
	RegionBrands,
	RegionVariantType,
	RegionVariants,
	RegionCoupons,
	RegionPosters,
	RegionNotifications,
}

// Notifier tells external view layers their cached data is stale. Calls are
// fire-and-forget: implementations must not block and have no error to
// report back to the mutation that triggered them.
type Notifier interface {
	Invalidate(regions ...Region)
}

// Func adapts a function to the Notifier interface.
type Func func(regions ...Region)

func (f Func) Invalidate(regions ...Region) { f(regions...) }

// Nop discards all invalidations.
func Nop() Notifier { return Func(func(...Region) {}) }

// LogNotifier records invalidations through the structured logger. Useful as
// the default when no external view layer is subscribed.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Invalidate(regions ...Region) {
	names := make([]string, len(regions))
	for i, r := range regions {
		names[i] = string(r)
	}
	n.logger.Debug("View regions invalidated", zap.Strings("regions", names))
}

// Channel is the Redis pub/sub channel stale-region names are published on.
const Channel = "catalog:invalidate"

// RedisNotifier broadcasts invalidations over Redis pub/sub so view layers
// in other processes can drop their caches. The broadcast is best effort
// per region: a failed publish is logged and the remaining regions are
// still attempted; nothing surfaces to the mutation.
type RedisNotifier struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisNotifier(client *redis.Client, logger *zap.Logger) *RedisNotifier {
	return &RedisNotifier{client: client, logger: logger}
}

func (n *RedisNotifier) Invalidate(regions ...Region) {
	ctx := context.Background()
	for _, r := range regions {
		if err := n.client.Publish(ctx, Channel, string(r)).Err(); err != nil {
			n.logger.Warn("Failed to publish invalidation",
				zap.String("region", string(r)),
				zap.Error(err),
			)
		}
	}
}
