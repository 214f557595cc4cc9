package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var (
	Conf   *Config
	confMu sync.RWMutex
)

type Config struct {
	AppName    string     `mapstructure:"appName"`
	Log        LogConf    `mapstructure:"log"`
	HttpPort   int        `mapstructure:"httpPort"`
	MetricPort int        `mapstructure:"metricPort"`
	Engine     EngineConf `mapstructure:"engine"`
	Redis      RedisConf  `mapstructure:"redis"`
	RateLimit  LimitConf  `mapstructure:"rateLimit"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

// EngineConf 搜索缓存与批量分析
type EngineConf struct {
	CacheMaxCost int64         `mapstructure:"cacheMaxCost"`
	CacheTtl     time.Duration `mapstructure:"cacheTtl"`
	BatchWorkers int           `mapstructure:"batchWorkers"`
	BatchLimit   int           `mapstructure:"batchLimit"`
}

// RedisConf addr 为空时不启用分析结果快照
type RedisConf struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	PoolSize     int           `mapstructure:"poolSize"`
	MinIdleConns int           `mapstructure:"minIdleConns"`
	Ttl          time.Duration `mapstructure:"ttl"`
}

func (r RedisConf) Enabled() bool {
	return r.Addr != ""
}

// LimitConf rate 为 0 时不限流
type LimitConf struct {
	Rate  int `mapstructure:"rate"`
	Burst int `mapstructure:"burst"`
}

func newViper(configFile string) *viper.Viper {
	v := viper.New()
	v.SetDefault("appName", "analyzer")
	v.SetDefault("log.level", "info")
	v.SetDefault("httpPort", 8080)
	v.SetDefault("metricPort", 8081)
	v.SetDefault("engine.cacheMaxCost", 1<<20)
	v.SetDefault("engine.cacheTtl", "10m")
	v.SetDefault("engine.batchWorkers", 4)
	v.SetDefault("engine.batchLimit", 256)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("redis.minIdleConns", 2)
	v.SetDefault("redis.ttl", "1h")
	v.SetDefault("rateLimit.rate", 0)
	v.SetDefault("rateLimit.burst", 50)

	v.SetConfigFile(configFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件出错: %w", err)
	}
	if cfg.Engine.BatchWorkers <= 0 {
		return nil, fmt.Errorf("engine.batchWorkers 必须大于 0: %d", cfg.Engine.BatchWorkers)
	}
	if cfg.Engine.BatchLimit <= 0 {
		return nil, fmt.Errorf("engine.batchLimit 必须大于 0: %d", cfg.Engine.BatchLimit)
	}
	return cfg, nil
}

// Load 读取配置文件，环境变量覆盖同名配置，例如 ENGINE_BATCHWORKERS
func Load(configFile string) (*Config, error) {
	v := newViper(configFile)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件出错: %w", err)
	}
	return decode(v)
}

// InitConfig 加载到全局 Conf 并监听文件变化。onChange 可以为 nil，
// 热更新失败时保留旧配置
func InitConfig(configFile string, onChange func(*Config)) error {
	v := newViper(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("读取配置文件出错: %w", err)
	}
	cfg, err := decode(v)
	if err != nil {
		return err
	}
	set(cfg)

	v.OnConfigChange(func(in fsnotify.Event) {
		cfg, err := decode(v)
		if err != nil {
			return
		}
		set(cfg)
		if onChange != nil {
			onChange(cfg)
		}
	})
	v.WatchConfig()
	return nil
}

func set(cfg *Config) {
	confMu.Lock()
	Conf = cfg
	confMu.Unlock()
}

// Current 并发安全地读取全局配置
func Current() *Config {
	confMu.RLock()
	defer confMu.RUnlock()
	return Conf
}
