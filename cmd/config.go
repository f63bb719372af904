package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "STOREFRONT"

type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Log      LogConfig
	Auth     AuthConfig
	PayPay   PayPayConfig
	Checkout CheckoutConfig
	Jobs     JobsConfig
}

type HTTPConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	// PublicBaseURL is where buyers reach the storefront; PayPay redirects there.
	PublicBaseURL string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type AuthConfig struct {
	JWTSecret  string
	Issuer     string
	AdminRole  string
	CookieName string
}

type PayPayConfig struct {
	BaseURL    string
	APIKey     string
	APISecret  string
	MerchantID string
	Timeout    time.Duration
	Currency   string
}

type CheckoutConfig struct {
	// ResultPathTemplate must contain {merchantPaymentId}.
	ResultPathTemplate string
}

type JobsConfig struct {
	OrphanReportEnabled  bool
	OrphanReportSchedule string
	OrphanReportMinAge   time.Duration
	OrphanReportBatch    int
}

// LoadConfig reads the optional env file into the process environment, then
// builds the config from STOREFRONT_* variables over built-in defaults.
// STOREFRONT_DATABASE_HOST sets database.host, and so on.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("error loading %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		HTTP: HTTPConfig{
			Port:            v.GetString("http.port"),
			ReadTimeout:     v.GetDuration("http.read_timeout"),
			WriteTimeout:    v.GetDuration("http.write_timeout"),
			ShutdownTimeout: v.GetDuration("http.shutdown_timeout"),
			PublicBaseURL:   v.GetString("http.public_base_url"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			Name:            v.GetString("database.name"),
			SSLMode:         v.GetString("database.sslmode"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("database.conn_max_lifetime"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Auth: AuthConfig{
			JWTSecret:  v.GetString("auth.jwt_secret"),
			Issuer:     v.GetString("auth.issuer"),
			AdminRole:  v.GetString("auth.admin_role"),
			CookieName: v.GetString("auth.cookie_name"),
		},
		PayPay: PayPayConfig{
			BaseURL:    v.GetString("paypay.base_url"),
			APIKey:     v.GetString("paypay.api_key"),
			APISecret:  v.GetString("paypay.api_secret"),
			MerchantID: v.GetString("paypay.merchant_id"),
			Timeout:    v.GetDuration("paypay.timeout"),
			Currency:   v.GetString("paypay.currency"),
		},
		Checkout: CheckoutConfig{
			ResultPathTemplate: v.GetString("checkout.result_path_template"),
		},
		Jobs: JobsConfig{
			OrphanReportEnabled:  v.GetBool("jobs.orphan_report_enabled"),
			OrphanReportSchedule: v.GetString("jobs.orphan_report_schedule"),
			OrphanReportMinAge:   v.GetDuration("jobs.orphan_report_min_age"),
			OrphanReportBatch:    v.GetInt("jobs.orphan_report_batch"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("http.public_base_url", "http://localhost:8080")

	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("auth.admin_role", "admin")
	v.SetDefault("auth.cookie_name", "storefront_token")

	v.SetDefault("paypay.base_url", "https://stg-api.sandbox.paypay.ne.jp")
	v.SetDefault("paypay.timeout", 10*time.Second)
	v.SetDefault("paypay.currency", "JPY")

	v.SetDefault("checkout.result_path_template", "/orders/{merchantPaymentId}/result")

	v.SetDefault("jobs.orphan_report_enabled", false)
	v.SetDefault("jobs.orphan_report_schedule", "0 */15 * * * *")
	v.SetDefault("jobs.orphan_report_min_age", time.Hour)
	v.SetDefault("jobs.orphan_report_batch", 100)
}

func (c Config) Validate() error {
	var problems []error
	if c.Database.Host == "" {
		problems = append(problems, errors.New("database host is required"))
	}
	if c.Database.Name == "" {
		problems = append(problems, errors.New("database name is required"))
	}
	if c.Auth.JWTSecret == "" {
		problems = append(problems, errors.New("auth JWT secret is required"))
	}
	if c.PayPay.APIKey == "" || c.PayPay.APISecret == "" || c.PayPay.MerchantID == "" {
		problems = append(problems, errors.New("paypay api key, api secret and merchant id are required"))
	}
	if _, err := url.ParseRequestURI(c.HTTP.PublicBaseURL); err != nil {
		problems = append(problems, fmt.Errorf("http public base url is invalid: %w", err))
	}
	if !strings.Contains(c.Checkout.ResultPathTemplate, "{merchantPaymentId}") {
		problems = append(problems, errors.New("checkout result path template must contain {merchantPaymentId}"))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(problems...))
	}
	return nil
}

// DSN is the lib/pq connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}
