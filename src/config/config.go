package config

import (
	"encoding/json"

	aws_handler "tracker/src/utils/aws"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	Databases DatabasesConfig `mapstructure:"databases"`
	Auth      AuthConfig      `mapstructure:"auth"`
	AWS       AWSConfig       `mapstructure:"aws"`
}

type ServiceConfig struct {
	Port       string `mapstructure:"port"`
	LogLevel   string `mapstructure:"logLevel"`
	ReportsDir string `mapstructure:"reportsDir"`
}

type DatabasesConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
	Enabled  bool   `mapstructure:"enabled"`
}

type AuthConfig struct {
	JWTSecret   string `mapstructure:"jwtSecret"`
	TokenTTLMin int    `mapstructure:"tokenTtlMinutes"`
}

type AWSConfig struct {
	Region       string `mapstructure:"region"`
	SQLSecretARN string `mapstructure:"sqlSecretArn"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	_ = godotenv.Load()

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AWS.SQLSecretARN != "" {
		if err := cfg.loadSQLCredentialsFromSecret(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// loadSQLCredentialsFromSecret overrides the SQL username/password with the
// values stored in AWS Secrets Manager.
func (cfg *Config) loadSQLCredentialsFromSecret() error {
	secretManager, err := aws_handler.NewSecretManager(cfg.AWS.Region)
	if err != nil {
		return err
	}

	secret, err := secretManager.GetSecretValue(cfg.AWS.SQLSecretARN)
	if err != nil {
		return err
	}

	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal([]byte(secret), &creds); err != nil {
		return err
	}

	cfg.Databases.SQL.Username = creds.Username
	cfg.Databases.SQL.Password = creds.Password
	return nil
}
