package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, DB connection,
//   secrets)
// - default: values common across all environments (timezone, granularity,
//   timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	SMS      SMSConfig
	Schedule ScheduleConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tehran"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tehran"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"12600"` // 3*60*60 + 30*60
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// SMSConfig configures the outbound message gateway. An empty APIKey selects
// the noop gateway, which only logs.
type SMSConfig struct {
	APIKey     string        `envconfig:"SMS_API_KEY" default:""`
	BaseURL    string        `envconfig:"SMS_BASE_URL" default:"https://api.kavenegar.com/v1"`
	Sender     string        `envconfig:"SMS_SENDER" default:""`
	Timeout    time.Duration `envconfig:"SMS_TIMEOUT" default:"10s"`
	CostPerMsg int           `envconfig:"SMS_COST_PER_MESSAGE" default:"1"`
}

// ScheduleConfig carries booking-timeline policy shared by the availability
// engine and the completion sweep.
type ScheduleConfig struct {
	TimeZone       string        `envconfig:"SCHEDULE_TIMEZONE" default:"Asia/Tehran"`
	OpenTime       string        `envconfig:"SCHEDULE_OPEN" default:"09:00"`
	CloseTime      string        `envconfig:"SCHEDULE_CLOSE" default:"21:00"`
	GranularityMin int           `envconfig:"SCHEDULE_GRANULARITY_MIN" default:"15"`
	SweepInterval  time.Duration `envconfig:"SCHEDULE_SWEEP_INTERVAL" default:"1m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *ScheduleConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tehran",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tehran",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 12600,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		SMS: SMSConfig{
			CostPerMsg: 1,
			Timeout:    time.Second,
		},
		Schedule: ScheduleConfig{
			TimeZone:       "Asia/Tehran",
			OpenTime:       "09:00",
			CloseTime:      "21:00",
			GranularityMin: 15,
			SweepInterval:  time.Minute,
		},
	}
}
