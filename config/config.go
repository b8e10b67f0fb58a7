package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server   `mapstructure:"server" validate:"required"`
	Logging  Logging  `mapstructure:"logging" validate:"required"`
	Store    Store    `mapstructure:"store" validate:"required"`
	Queue    Queue    `mapstructure:"queue" validate:"required"`
	Sampling Sampling `mapstructure:"sampling" validate:"required"`
}

type Server struct {
	Port *int `mapstructure:"port" validate:"required"`
}

type Logging struct {
	Driver   *string  `mapstructure:"driver" validate:"oneof=noop stdout influxdb"`
	InfluxDB InfluxDB `mapstructure:"influxdb" validate:"required_if=Driver influxdb"`
}

type InfluxDB struct {
	Host   *string `mapstructure:"host" validate:"required"`
	Token  *string `mapstructure:"token" validate:"required"`
	Org    *string `mapstructure:"org" validate:"required"`
	Bucket *string `mapstructure:"bucket" validate:"required"`
}

type Store struct {
	Driver *string `mapstructure:"driver" validate:"oneof=memory redis"`
	Redis  Redis   `mapstructure:"redis" validate:"required_if=Driver redis"`
}

type Redis struct {
	Addr     *string `mapstructure:"addr" validate:"required"`
	Password *string `mapstructure:"password"`
	DB       *int    `mapstructure:"db" validate:"required"`
}

type Queue struct {
	Enabled       *bool   `mapstructure:"enabled" validate:"required"`
	Name          *string `mapstructure:"name" validate:"required_if=Enabled true"`
	PrefetchLimit *int    `mapstructure:"prefetchLimit"`
	Redis         Redis   `mapstructure:"redis" validate:"required_if=Enabled true"`
}

type Sampling struct {
	// DefaultScale and DefaultIterations fill in run requests that omit the
	// proposal scale or iteration budget.
	DefaultScale      *float64 `mapstructure:"defaultScale" validate:"required"`
	DefaultIterations *int     `mapstructure:"defaultIterations" validate:"required"`
	// AcceptanceLogPeriod is the number of iterations between acceptance rate
	// log lines; 0 disables periodic logging.
	AcceptanceLogPeriod *int `mapstructure:"acceptanceLogPeriod" validate:"required"`
	TimingWindow        *int `mapstructure:"timingWindow" validate:"required"`
	// SampleRetention caps how many accepted samples a stored run keeps;
	// 0 keeps all of them.
	SampleRetention *int `mapstructure:"sampleRetention" validate:"required"`
}

func setDefaults() {
	viper.SetDefault("Server.Port", 8080)

	viper.SetDefault("Logging.Driver", "stdout")

	viper.SetDefault("Store.Driver", "memory")
	viper.SetDefault("Store.Redis.DB", 0)

	viper.SetDefault("Queue.Enabled", false)
	viper.SetDefault("Queue.Name", "metropolis-runs")
	viper.SetDefault("Queue.PrefetchLimit", 1)
	viper.SetDefault("Queue.Redis.DB", 1)

	viper.SetDefault("Sampling.DefaultScale", 0.5)
	viper.SetDefault("Sampling.DefaultIterations", 100000)
	viper.SetDefault("Sampling.AcceptanceLogPeriod", 10000)
	viper.SetDefault("Sampling.TimingWindow", 1000)
	viper.SetDefault("Sampling.SampleRetention", 0)
}

func ReadConfig() *Config {
	viper.AutomaticEnv()
	setDefaults()

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/app")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("config.yaml not found, continuing with defaults")
		} else {
			log.Fatalf("error when reading config file: err = %s", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("error occured while reading configuration file: err = %s", err)
	}
	validate := validator.New()
	err := validate.Struct(&config)
	if err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			log.Printf("unable to validate config: err = %s", err)
		}

		log.Printf("encountered validation errors:\n")

		for _, err := range err.(validator.ValidationErrors) {
			fmt.Printf("\t%s\n", err.Error())
		}

		fmt.Println("Check your configuration file and try again.")
		os.Exit(1)
	}

	return &config
}
