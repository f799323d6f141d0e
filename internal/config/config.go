package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/eco-travel-service/internal/planner"
)

const (
	AccountStoreFile     = "file"
	AccountStorePostgres = "postgres"
)

type Config struct {
	Server       ServerConfig
	Log          LogConfig
	Catalog      CatalogConfig
	Scoring      ScoringConfig
	Vehicle      VehicleConfig
	Redis        RedisConfig
	RedisStreams RedisStreamsConfig
	Cache        CacheConfig
	Account      AccountConfig
	Database     DatabaseConfig
	RateLimit    RateLimitConfig
	Worker       WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type LogConfig struct {
	Level string
}

// CatalogConfig - пустой Path означает встроенный каталог
type CatalogConfig struct {
	Path string
}

type ScoringConfig struct {
	CostDivisor    float64
	CO2Weight      float64
	TierTopPercent float64
	TierMidPercent float64
	TopN           int
	TreeCO2Kg      float64
}

type VehicleConfig struct {
	PersonalRatePerKm float64
	RentalRatePerKm   float64
	CO2PerKm          float64
	Capacity          int
	AvgSpeedKmh       float64
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// RedisStreamsConfig - отдельный инстанс для стримов, по умолчанию тот же что и кеш
type RedisStreamsConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	EvaluationTTL  time.Duration
	EvaluationSize int
}

type AccountConfig struct {
	Store    string
	FilePath string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	ConsumerName      string
	BatchSize         int
	StreamReadTimeout time.Duration
	MaxRetries        int
}

// Load reads .env from the working directory when present, then the environment.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile - то же что Load, но с явным путём к env-файлу
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Catalog: CatalogConfig{
			Path: v.GetString("CATALOG_PATH"),
		},
		Scoring: ScoringConfig{
			CostDivisor:    v.GetFloat64("SCORE_COST_DIVISOR"),
			CO2Weight:      v.GetFloat64("SCORE_CO2_WEIGHT"),
			TierTopPercent: v.GetFloat64("TIER_TOP_PERCENT"),
			TierMidPercent: v.GetFloat64("TIER_MID_PERCENT"),
			TopN:           v.GetInt("TOP_N"),
			TreeCO2Kg:      v.GetFloat64("TREE_CO2_KG"),
		},
		Vehicle: VehicleConfig{
			PersonalRatePerKm: v.GetFloat64("CAR_PERSONAL_RATE_PER_KM"),
			RentalRatePerKm:   v.GetFloat64("CAR_RENTAL_RATE_PER_KM"),
			CO2PerKm:          v.GetFloat64("CAR_CO2_PER_KM"),
			Capacity:          v.GetInt("CAR_CAPACITY"),
			AvgSpeedKmh:       v.GetFloat64("CAR_AVG_SPEED_KMH"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RedisStreams: RedisStreamsConfig{
			Host:     v.GetString("REDIS_STREAMS_HOST"),
			Port:     v.GetInt("REDIS_STREAMS_PORT"),
			Password: v.GetString("REDIS_STREAMS_PASSWORD"),
			DB:       v.GetInt("REDIS_STREAMS_DB"),
		},
		Cache: CacheConfig{
			EvaluationTTL:  time.Duration(v.GetInt("EVALUATION_CACHE_TTL")) * time.Second,
			EvaluationSize: v.GetInt("EVALUATION_CACHE_SIZE"),
		},
		Account: AccountConfig{
			Store:    strings.ToLower(strings.TrimSpace(v.GetString("ACCOUNT_STORE"))),
			FilePath: v.GetString("ACCOUNT_FILE"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			ConsumerName:      v.GetString("WORKER_CONSUMER_NAME"),
			BatchSize:         v.GetInt("WORKER_BATCH_SIZE"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        v.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	applyDefaults(cfg)

	if cfg.Account.Store != AccountStoreFile && cfg.Account.Store != AccountStorePostgres {
		return nil, fmt.Errorf("unknown ACCOUNT_STORE %q (want %s or %s)",
			cfg.Account.Store, AccountStoreFile, AccountStorePostgres)
	}

	return cfg, nil
}

// Set default values if not provided
func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "production"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	defaults := planner.DefaultSettings()
	if cfg.Scoring.CostDivisor <= 0 {
		cfg.Scoring.CostDivisor = defaults.CostDivisor
	}
	if cfg.Scoring.CO2Weight <= 0 {
		cfg.Scoring.CO2Weight = defaults.CO2Weight
	}
	if cfg.Scoring.TierTopPercent <= 0 {
		cfg.Scoring.TierTopPercent = defaults.TierTopPercent
	}
	if cfg.Scoring.TierMidPercent <= 0 {
		cfg.Scoring.TierMidPercent = defaults.TierMidPercent
	}
	if cfg.Scoring.TopN <= 0 {
		cfg.Scoring.TopN = defaults.TopN
	}
	if cfg.Scoring.TreeCO2Kg <= 0 {
		cfg.Scoring.TreeCO2Kg = defaults.TreeCO2Kg
	}
	if cfg.Vehicle.PersonalRatePerKm <= 0 {
		cfg.Vehicle.PersonalRatePerKm = defaults.Vehicle.PersonalRatePerKm
	}
	if cfg.Vehicle.RentalRatePerKm <= 0 {
		cfg.Vehicle.RentalRatePerKm = defaults.Vehicle.RentalRatePerKm
	}
	if cfg.Vehicle.CO2PerKm <= 0 {
		cfg.Vehicle.CO2PerKm = defaults.Vehicle.CO2PerKm
	}
	if cfg.Vehicle.Capacity <= 0 {
		cfg.Vehicle.Capacity = defaults.Vehicle.Capacity
	}
	if cfg.Vehicle.AvgSpeedKmh <= 0 {
		cfg.Vehicle.AvgSpeedKmh = defaults.Vehicle.AvgSpeedKmh
	}

	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.RedisStreams.Host == "" {
		cfg.RedisStreams.Host = cfg.Redis.Host
		cfg.RedisStreams.Port = cfg.Redis.Port
		cfg.RedisStreams.Password = cfg.Redis.Password
		cfg.RedisStreams.DB = cfg.Redis.DB
	}
	if cfg.RedisStreams.Port == 0 {
		cfg.RedisStreams.Port = 6379
	}

	if cfg.Cache.EvaluationTTL == 0 {
		cfg.Cache.EvaluationTTL = 10 * time.Minute
	}
	if cfg.Cache.EvaluationSize == 0 {
		cfg.Cache.EvaluationSize = 1024
	}

	if cfg.Account.Store == "" {
		cfg.Account.Store = AccountStoreFile
	}
	if cfg.Account.FilePath == "" {
		cfg.Account.FilePath = "users.json"
	}

	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}

	if cfg.RateLimit.RPS == 0 {
		cfg.RateLimit.RPS = 20
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 40
	}

	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "trip-evaluation-workers"
	}
	if cfg.Worker.ConsumerName == "" {
		cfg.Worker.ConsumerName = "worker-1"
	}
	if cfg.Worker.BatchSize == 0 {
		cfg.Worker.BatchSize = 10
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
}

// PlannerSettings - настройки модели стоимости и eco-score
func (c *Config) PlannerSettings() planner.Settings {
	return planner.Settings{
		CostDivisor:    c.Scoring.CostDivisor,
		CO2Weight:      c.Scoring.CO2Weight,
		TierTopPercent: c.Scoring.TierTopPercent,
		TierMidPercent: c.Scoring.TierMidPercent,
		TopN:           c.Scoring.TopN,
		Vehicle: planner.VehicleRates{
			PersonalRatePerKm: c.Vehicle.PersonalRatePerKm,
			RentalRatePerKm:   c.Vehicle.RentalRatePerKm,
			CO2PerKm:          c.Vehicle.CO2PerKm,
			Capacity:          c.Vehicle.Capacity,
			AvgSpeedKmh:       c.Vehicle.AvgSpeedKmh,
		},
		TreeCO2Kg: c.Scoring.TreeCO2Kg,
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
