package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	S3       S3Config
	Upload   UploadConfig
	Pricing  PricingConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Addr          string
	Password      string
	DB            int
	RestaurantTTL time.Duration
}

// Enabled reports whether a restaurant cache should be wired at all.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type KafkaConfig struct {
	Brokers    []string
	OrderTopic string
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

type S3Config struct {
	Endpoint   string
	Region     string
	AccessKey  string
	SecretKey  string
	Bucket     string
	CDNURL     string
	UploadPath string
	UseSSL     bool
}

// Enabled mirrors the deployment reality that the service must come up even
// without object storage credentials; uploads then run against the no-op store.
func (c S3Config) Enabled() bool {
	return c.AccessKey != "" && c.Bucket != ""
}

type UploadConfig struct {
	MaxFileSize          int64
	MaxCoverImages       int
	AllowedContentTypes  []string
	MaxConcurrentResizes int
	OperationTimeout     time.Duration
	TargetWidth          int
	TargetHeight         int
	JPEGQuality          int
}

type PricingConfig struct {
	TaxRate         float64
	FlatDeliveryFee float64
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "restaurant")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "restaurant_directory")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RESTAURANT_CACHE_TTL", "5m")
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_ORDER_TOPIC", "order-events")
	viper.SetDefault("S3_ENDPOINT", "s3.amazonaws.com")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("AWS_ACCESS_KEY_ID", "")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	viper.SetDefault("S3_BUCKET_NAME", "")
	viper.SetDefault("CDN_URL", "")
	viper.SetDefault("S3_UPLOAD_PATH", "restaurant-logos/")
	viper.SetDefault("S3_USE_SSL", true)
	viper.SetDefault("UPLOAD_MAX_FILE_SIZE", 5*1024*1024)
	viper.SetDefault("UPLOAD_MAX_COVER_IMAGES", 4)
	viper.SetDefault("UPLOAD_MAX_CONCURRENT_RESIZES", 4)
	viper.SetDefault("UPLOAD_OPERATION_TIMEOUT", "30s")
	viper.SetDefault("UPLOAD_TARGET_WIDTH", 600)
	viper.SetDefault("UPLOAD_TARGET_HEIGHT", 600)
	viper.SetDefault("UPLOAD_JPEG_QUALITY", 90)
	viper.SetDefault("TAX_RATE", 0.085)
	viper.SetDefault("FLAT_DELIVERY_FEE", 5.99)
	viper.SetDefault("LOG_LEVEL", "info")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("RESTAURANT_CACHE_TTL"))
	if err != nil {
		return nil, err
	}

	uploadTimeout, err := time.ParseDuration(viper.GetString("UPLOAD_OPERATION_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	var brokers []string
	if raw := viper.GetString("KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Redis: RedisConfig{
			Addr:          viper.GetString("REDIS_ADDR"),
			Password:      viper.GetString("REDIS_PASSWORD"),
			DB:            viper.GetInt("REDIS_DB"),
			RestaurantTTL: cacheTTL,
		},
		Kafka: KafkaConfig{
			Brokers:    brokers,
			OrderTopic: viper.GetString("KAFKA_ORDER_TOPIC"),
		},
		S3: S3Config{
			Endpoint:   viper.GetString("S3_ENDPOINT"),
			Region:     viper.GetString("AWS_REGION"),
			AccessKey:  viper.GetString("AWS_ACCESS_KEY_ID"),
			SecretKey:  viper.GetString("AWS_SECRET_ACCESS_KEY"),
			Bucket:     viper.GetString("S3_BUCKET_NAME"),
			CDNURL:     viper.GetString("CDN_URL"),
			UploadPath: viper.GetString("S3_UPLOAD_PATH"),
			UseSSL:     viper.GetBool("S3_USE_SSL"),
		},
		Upload: UploadConfig{
			MaxFileSize:          viper.GetInt64("UPLOAD_MAX_FILE_SIZE"),
			MaxCoverImages:       viper.GetInt("UPLOAD_MAX_COVER_IMAGES"),
			AllowedContentTypes:  []string{"image/jpeg", "image/jpg", "image/png", "image/webp"},
			MaxConcurrentResizes: viper.GetInt("UPLOAD_MAX_CONCURRENT_RESIZES"),
			OperationTimeout:     uploadTimeout,
			TargetWidth:          viper.GetInt("UPLOAD_TARGET_WIDTH"),
			TargetHeight:         viper.GetInt("UPLOAD_TARGET_HEIGHT"),
			JPEGQuality:          viper.GetInt("UPLOAD_JPEG_QUALITY"),
		},
		Pricing: PricingConfig{
			TaxRate:         viper.GetFloat64("TAX_RATE"),
			FlatDeliveryFee: viper.GetFloat64("FLAT_DELIVERY_FEE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
