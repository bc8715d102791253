// config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// --- Các struct con, phản ánh cấu trúc của YAML ---

type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	DBName         string        `mapstructure:"dbName"`
	Collection     string        `mapstructure:"collection"`
	ConnectTimeout time.Duration `mapstructure:"connectTimeout"`
	UniqueOrderID  bool          `mapstructure:"uniqueOrderID"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text | json
}

type DashboardConfig struct {
	PageSize   int    `mapstructure:"pageSize"`
	APIBaseURL string `mapstructure:"apiBaseURL"`
}

type S3Config struct {
	Bucket           string `mapstructure:"bucket"`
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"accessKeyID"`
	SecretAccessKey  string `mapstructure:"secretAccessKey"`
	CloudFrontDomain string `mapstructure:"cloudFrontDomain"`
}

// Enabled reports whether report exports can be uploaded.
func (c S3Config) Enabled() bool {
	return c.Bucket != "" && c.Region != ""
}

// --- Struct Config chính, bao gồm tất cả các struct con ---

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	Log       LogConfig       `mapstructure:"log"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	S3        S3Config        `mapstructure:"s3"`
}

// Validate rejects configurations the server cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Mongo.URI) == "" {
		return fmt.Errorf("mongo.uri is not set: export MONGODB_URI or add it to config.yaml")
	}
	if c.Dashboard.PageSize < 1 {
		return fmt.Errorf("dashboard.pageSize must be positive, got %d", c.Dashboard.PageSize)
	}
	return nil
}

// LoadConfig đọc cấu hình từ file và ghi đè bằng các biến môi trường.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "8080")
	v.SetDefault("mongo.dbName", "returnsDB")
	v.SetDefault("mongo.collection", "returns")
	v.SetDefault("mongo.connectTimeout", "10s")
	v.SetDefault("mongo.uniqueOrderID", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("dashboard.pageSize", 6)

	// Ví dụ: key "mongo.uri" trong YAML sẽ được ánh xạ tới biến môi trường "MONGODB_URI"
	_ = v.BindEnv("mongo.uri", "MONGODB_URI", "MONGO_URI")
	_ = v.BindEnv("mongo.dbName", "MONGO_DBNAME")
	_ = v.BindEnv("mongo.collection", "MONGO_COLLECTION")
	_ = v.BindEnv("server.port", "SERVER_PORT")
	_ = v.BindEnv("server.allowedOrigins", "SERVER_ALLOWED_ORIGINS")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "LOG_FORMAT")
	_ = v.BindEnv("dashboard.pageSize", "DASHBOARD_PAGE_SIZE")
	_ = v.BindEnv("dashboard.apiBaseURL", "DASHBOARD_API_BASE_URL")
	_ = v.BindEnv("s3.bucket", "S3_BUCKET")
	_ = v.BindEnv("s3.region", "S3_REGION")
	_ = v.BindEnv("s3.accessKeyID", "S3_ACCESS_KEY_ID")
	_ = v.BindEnv("s3.secretAccessKey", "S3_SECRET_ACCESS_KEY")
	_ = v.BindEnv("s3.cloudFrontDomain", "S3_CLOUDFRONT_DOMAIN")

	// Nếu file không tồn tại, Viper sẽ chỉ sử dụng các biến môi trường.
	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	// SERVER_ALLOWED_ORIGINS đến dưới dạng "a,b,c"
	config.Server.AllowedOrigins = splitList(config.Server.AllowedOrigins)

	if config.Dashboard.APIBaseURL == "" {
		config.Dashboard.APIBaseURL = fmt.Sprintf("http://localhost:%s/api", config.Server.Port)
	}

	return
}

func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
