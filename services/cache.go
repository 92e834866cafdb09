package services

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"chainscale/config"
	"chainscale/models"
)

// CacheMode indicates which cache backend is active
type CacheMode string

const (
	CacheModeRedis    CacheMode = "redis"
	CacheModeInMemory CacheMode = "in-memory"
)

// CacheItem for in-memory fallback
type CacheItem struct {
	Data      interface{}
	ExpiresAt time.Time
}

// CacheService fronts the static reference datasets and the live monitor
// feed. Redis when available, in-memory otherwise; the serving path never
// depends on Redis being up.
type CacheService struct {
	cfg     *config.Config
	metrics *MetricsService

	// Redis
	redis       *redis.Client
	redisCtx    context.Context
	redisCancel context.CancelFunc
	mode        CacheMode
	modeMutex   sync.RWMutex

	// In-memory fallback
	inMemoryStore sync.Map

	stopChan chan struct{}
}

func NewCacheService(cfg *config.Config, metrics *MetricsService) *CacheService {
	ctx, cancel := context.WithCancel(context.Background())

	cs := &CacheService{
		cfg:         cfg,
		metrics:     metrics,
		redisCtx:    ctx,
		redisCancel: cancel,
		stopChan:    make(chan struct{}),
		mode:        CacheModeInMemory, // Start in memory mode
	}

	// Try to connect to Redis if enabled
	if cfg.Redis.Enabled {
		cs.connectRedis()
	} else {
		log.Println("Redis disabled in config, using in-memory cache only")
	}

	return cs
}

// connectRedis attempts to connect to Redis
func (cs *CacheService) connectRedis() {
	if cs.cfg.Redis.Address == "" {
		log.Println("Redis address not configured, using in-memory cache")
		return
	}

	options := &redis.Options{
		Addr:         cs.cfg.Redis.Address,
		Password:     cs.cfg.Redis.Password,
		DB:           cs.cfg.Redis.DB,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		PoolTimeout:  10 * time.Second,
	}

	if cs.cfg.Redis.UseTLS {
		options.TLSConfig = &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: true, // For cloud providers with shared certs
		}
		log.Printf("TLS enabled for Redis connection")
	}

	cs.redis = redis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pong, err := cs.redis.Ping(ctx).Result()
	if err != nil {
		log.Printf("⚠️  Redis connection failed: %v", err)
		log.Printf("⚠️  Running in IN-MEMORY mode")
		cs.setMode(CacheModeInMemory)
		return
	}

	log.Printf("✓ Redis connected successfully (response: %s)", pong)
	cs.setMode(CacheModeRedis)
}

func (cs *CacheService) setMode(mode CacheMode) {
	cs.modeMutex.Lock()
	defer cs.modeMutex.Unlock()
	cs.mode = mode
}

func (cs *CacheService) getMode() CacheMode {
	cs.modeMutex.RLock()
	defer cs.modeMutex.RUnlock()
	return cs.mode
}

// StartCacheWarmer pre-loads the reference datasets and starts the
// background refresh and Redis health loops.
func (cs *CacheService) StartCacheWarmer() {
	log.Println("Starting Cache Warmer...")

	// Initial warm
	cs.Refresh()

	go cs.runRefreshLoop()
	go cs.runHealthCheckLoop()
}

func (cs *CacheService) Stop() {
	close(cs.stopChan)
	cs.redisCancel()

	if cs.redis != nil {
		cs.redis.Close()
	}
}

// runRefreshLoop re-warms expiring dataset entries
func (cs *CacheService) runRefreshLoop() {
	ticker := time.NewTicker(cs.cfg.CacheTTLDuration())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cs.Refresh()
		case <-cs.stopChan:
			return
		}
	}
}

// runHealthCheckLoop monitors Redis health
func (cs *CacheService) runHealthCheckLoop() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cs.checkRedisHealth()
		case <-cs.stopChan:
			return
		}
	}
}

// checkRedisHealth verifies Redis is responsive and attempts reconnection
func (cs *CacheService) checkRedisHealth() {
	if !cs.cfg.Redis.Enabled || cs.redis == nil {
		return
	}

	mode := cs.getMode()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := cs.redis.Ping(ctx).Result()

	if mode == CacheModeRedis && err != nil {
		log.Printf("⚠️  Redis health check failed: %v", err)
		log.Printf("⚠️  Switching to IN-MEMORY mode")
		cs.setMode(CacheModeInMemory)
	} else if mode == CacheModeInMemory && err == nil {
		log.Printf("✓ Redis reconnected! Switching back to REDIS mode")
		cs.syncInMemoryToRedis()
		cs.setMode(CacheModeRedis)
	}
}

// syncInMemoryToRedis copies in-memory cache to Redis on reconnection
func (cs *CacheService) syncInMemoryToRedis() {
	log.Println("Syncing in-memory cache to Redis...")

	synced := 0
	cs.inMemoryStore.Range(func(key, value interface{}) bool {
		keyStr := key.(string)
		item := value.(*CacheItem)

		ttl := time.Until(item.ExpiresAt)
		if ttl > 0 {
			if err := cs.setRedis(keyStr, item.Data, ttl); err == nil {
				synced++
			}
		}
		return true
	})

	log.Printf("Synced %d items to Redis", synced)
}

// Refresh re-caches every reference dataset payload. The datasets are
// immutable, so this only keeps Redis populated across TTL expiry.
func (cs *CacheService) Refresh() {
	start := time.Now()

	ttl := cs.cfg.CacheTTLDuration()

	cs.Set("metrics:all", cs.metrics.AllSolutions(), ttl)
	cs.Set("metrics:base", cs.metrics.BaseLayer(), ttl)
	cs.Set("metrics:layer2", cs.metrics.Layer2Solutions(), ttl)
	cs.Set("metrics:sharding", cs.metrics.ShardingSolutions(), ttl)
	cs.Set("metrics:trilemma", cs.metrics.TrilemmaData(), ttl)
	cs.Set("metrics:comparison", cs.metrics.ComparisonSummary(), ttl)
	cs.Set("metrics:security", cs.metrics.SecurityVectors(), ttl)

	elapsed := time.Since(start)
	log.Printf("Cache refreshed (%s): 7 dataset payloads | Mode: %s", elapsed, cs.getMode())
}

// ============================================
// Generic Set/Get with Redis + In-Memory
// ============================================

// Set stores data in the active cache backend
func (cs *CacheService) Set(key string, data interface{}, ttl time.Duration) {
	mode := cs.getMode()

	if mode == CacheModeRedis {
		if err := cs.setRedis(key, data, ttl); err != nil {
			log.Printf("Redis SET failed for '%s': %v (falling back to in-memory)", key, err)
			cs.setInMemory(key, data, ttl)
		}
	} else {
		cs.setInMemory(key, data, ttl)
	}
}

// Get retrieves data from the active cache backend
func (cs *CacheService) Get(key string) (interface{}, bool) {
	mode := cs.getMode()

	if mode == CacheModeRedis {
		data, found, err := cs.getRedis(key)
		if err != nil {
			// On Redis error, check in-memory fallback
			return cs.getInMemory(key)
		}
		return data, found
	}

	return cs.getInMemory(key)
}

// ============================================
// Redis Operations
// ============================================

func (cs *CacheService) setRedis(key string, data interface{}, ttl time.Duration) error {
	if cs.redis == nil {
		return fmt.Errorf("redis client not initialized")
	}

	ctx, cancel := context.WithTimeout(cs.redisCtx, 2*time.Second)
	defer cancel()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	return cs.redis.Set(ctx, key, jsonData, ttl).Err()
}

func (cs *CacheService) getRedis(key string) (interface{}, bool, error) {
	if cs.redis == nil {
		return nil, false, fmt.Errorf("redis client not initialized")
	}

	ctx, cancel := context.WithTimeout(cs.redisCtx, 2*time.Second)
	defer cancel()

	jsonData, err := cs.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	// Deserialize based on key pattern so cached payloads keep their shape
	var data interface{}

	switch {
	case key == "metrics:all":
		var all models.AllMetrics
		if err := json.Unmarshal([]byte(jsonData), &all); err != nil {
			return nil, false, err
		}
		data = all
	case key == "metrics:base":
		var base map[string]models.BaseLayerChain
		if err := json.Unmarshal([]byte(jsonData), &base); err != nil {
			return nil, false, err
		}
		data = base
	case key == "metrics:layer2":
		var l2 map[string]models.Layer2Solution
		if err := json.Unmarshal([]byte(jsonData), &l2); err != nil {
			return nil, false, err
		}
		data = l2
	case key == "metrics:sharding":
		var sh map[string]models.ShardingSolution
		if err := json.Unmarshal([]byte(jsonData), &sh); err != nil {
			return nil, false, err
		}
		data = sh
	case key == "metrics:trilemma":
		var tri map[string]models.TrilemmaScores
		if err := json.Unmarshal([]byte(jsonData), &tri); err != nil {
			return nil, false, err
		}
		data = tri
	case key == "metrics:comparison":
		var cmp map[string]models.ComparisonProfile
		if err := json.Unmarshal([]byte(jsonData), &cmp); err != nil {
			return nil, false, err
		}
		data = cmp
	case key == "metrics:security":
		var sec map[string]map[string]models.AttackVector
		if err := json.Unmarshal([]byte(jsonData), &sec); err != nil {
			return nil, false, err
		}
		data = sec
	case key == "monitor:current":
		var sample models.MonitorSample
		if err := json.Unmarshal([]byte(jsonData), &sample); err != nil {
			return nil, false, err
		}
		data = sample
	case strings.HasPrefix(key, "monitor:"):
		var samples []models.MonitorSample
		if err := json.Unmarshal([]byte(jsonData), &samples); err != nil {
			return nil, false, err
		}
		data = samples
	default:
		if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
			return nil, false, err
		}
	}

	return data, true, nil
}

// ============================================
// In-Memory Operations (Fallback)
// ============================================

func (cs *CacheService) setInMemory(key string, data interface{}, ttl time.Duration) {
	item := &CacheItem{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	}
	cs.inMemoryStore.Store(key, item)
}

func (cs *CacheService) getInMemory(key string) (interface{}, bool) {
	val, ok := cs.inMemoryStore.Load(key)
	if !ok {
		return nil, false
	}

	item := val.(*CacheItem)
	if time.Now().After(item.ExpiresAt) {
		return nil, false
	}

	return item.Data, true
}

// ============================================
// Utility Methods
// ============================================

func (cs *CacheService) GetCacheMode() CacheMode {
	return cs.getMode()
}

func (cs *CacheService) ClearCache() error {
	mode := cs.getMode()

	if mode == CacheModeRedis && cs.redis != nil {
		ctx, cancel := context.WithTimeout(cs.redisCtx, 5*time.Second)
		defer cancel()

		// Use SCAN to find and delete our keys
		deleted := 0
		for _, pattern := range []string{"metrics:*", "monitor:*"} {
			iter := cs.redis.Scan(ctx, 0, pattern, 0).Iterator()
			for iter.Next(ctx) {
				cs.redis.Del(ctx, iter.Val())
				deleted++
			}
		}

		log.Printf("Redis cache cleared (%d keys deleted)", deleted)
	}

	// Clear in-memory
	cs.inMemoryStore = sync.Map{}
	log.Println("In-memory cache cleared")

	return nil
}

func (cs *CacheService) GetCacheStats() map[string]interface{} {
	stats := map[string]interface{}{
		"mode":    string(cs.getMode()),
		"enabled": cs.cfg.Redis.Enabled,
	}

	mode := cs.getMode()

	if mode == CacheModeRedis && cs.redis != nil {
		ctx, cancel := context.WithTimeout(cs.redisCtx, 2*time.Second)
		defer cancel()

		dbSize, err := cs.redis.DBSize(ctx).Result()
		if err == nil {
			stats["redis_keys"] = dbSize
		}
	}

	// Count in-memory items
	inMemCount := 0
	cs.inMemoryStore.Range(func(_, _ interface{}) bool {
		inMemCount++
		return true
	})
	stats["in_memory_keys"] = inMemCount

	return stats
}
