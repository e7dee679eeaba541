package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type storage struct {
	Path          string `mapstructure:"path"`
	CartKey       string `mapstructure:"cart_key"`
	CategoriesKey string `mapstructure:"categories_key"`
}

type catalog struct {
	File  string `mapstructure:"file"`
	Watch bool   `mapstructure:"watch"`
}

type display struct {
	Locale   string `mapstructure:"locale"`
	Currency string `mapstructure:"currency"`
}

type Config struct {
	LogLevel slog.Level `mapstructure:"log_level"`
	PriceCap float64    `mapstructure:"price_cap"`
	Storage  storage    `mapstructure:"storage"`
	Catalog  catalog    `mapstructure:"catalog"`
	Display  display    `mapstructure:"display"`
}

// Load reads the optional config file selected by the --config flag or
// the STOREFRONT_CONFIG_FILE env var; with no file the defaults apply.
func Load() Config {
	setDefaults()

	if path := getConfigFilepath(); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			die(err)
		}
	}

	var cfg Config
	if err := viper.UnmarshalExact(&cfg); err != nil {
		die(err)
	}
	return cfg
}

func setDefaults() {
	viper.SetDefault("log_level", 0)
	viper.SetDefault("price_cap", 2000)
	viper.SetDefault("storage.path", "storefront.db")
	viper.SetDefault("storage.cart_key", "cart")
	viper.SetDefault("storage.categories_key", "categories")
	viper.SetDefault("catalog.file", "")
	viper.SetDefault("catalog.watch", false)
	viper.SetDefault("display.locale", "es")
	viper.SetDefault("display.currency", "EUR")
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	PriceCap=%v

	Storage:
	Path=%q
	CartKey=%q
	CategoriesKey=%q

	Catalog:
	File=%q
	Watch=%v

	Display:
	Locale=%q
	Currency=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.PriceCap,
		c.Storage.Path,
		c.Storage.CartKey,
		c.Storage.CategoriesKey,
		c.Catalog.File,
		c.Catalog.Watch,
		c.Display.Locale,
		c.Display.Currency,
	)
}
