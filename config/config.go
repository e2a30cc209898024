package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	Exam     Exam
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Auth struct {
	JWTSecret   string
	TokenTTLHrs int
}

type Exam struct {
	// TabSwitchLimit is advisory: the client timer auto-submits when it is
	// exceeded, the server only records the reported count.
	TabSwitchLimit int
	// DeadlineGraceSecs is slack added to the exam duration before a
	// submission is rejected as overdue.
	DeadlineGraceSecs int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("TOKEN_TTL_HOURS", 24)
	viper.SetDefault("TAB_SWITCH_LIMIT", 3)
	viper.SetDefault("DEADLINE_GRACE_SECONDS", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.TokenTTLHrs = viper.GetInt("TOKEN_TTL_HOURS")

	config.Exam.TabSwitchLimit = viper.GetInt("TAB_SWITCH_LIMIT")
	config.Exam.DeadlineGraceSecs = viper.GetInt("DEADLINE_GRACE_SECONDS")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
