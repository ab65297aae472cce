package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	WhatsApp          WhatsApp          `mapstructure:",squash"`
	RecurringDispatch RecurringDispatch `mapstructure:",squash"`
	MonthlyReportSync MonthlyReportSync `mapstructure:",squash"`
	SecretKey         string            `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type WhatsApp struct {
	URL           string `mapstructure:"whatsapp_url"`
	InstanceID    string `mapstructure:"whatsapp_instance_id"`
	InstanceToken string `mapstructure:"whatsapp_instance_token"`
}

type RecurringDispatch struct {
	CronSchedule string `mapstructure:"recurring_dispatch_cron"`
	Enabled      bool   `mapstructure:"recurring_dispatch_enabled"`
	SendBatch    int    `mapstructure:"recurring_dispatch_send_batch"`
}

type MonthlyReportSync struct {
	CronSchedule  string `mapstructure:"monthly_report_sync_cron"`
	Enabled       bool   `mapstructure:"monthly_report_sync_enabled"`
	MonthLookBack int    `mapstructure:"monthly_report_sync_month_lookback"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/commissions")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("WHATSAPP_URL", "https://api.z-api.io")
	viper.SetDefault("WHATSAPP_INSTANCE_ID", "your_instance_id")
	viper.SetDefault("WHATSAPP_INSTANCE_TOKEN", "your_instance_token")

	// Despacho de mensagens recorrentes
	viper.SetDefault("RECURRING_DISPATCH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("RECURRING_DISPATCH_ENABLED", false)
	viper.SetDefault("RECURRING_DISPATCH_SEND_BATCH", 20) // Mensagens drenadas por ciclo

	// Fechamento mensal dos relatórios de comissão
	viper.SetDefault("MONTHLY_REPORT_SYNC_CRON", "0 5 1 * *") // Primeiro dia do mês às 5h
	viper.SetDefault("MONTHLY_REPORT_SYNC_ENABLED", false)
	viper.SetDefault("MONTHLY_REPORT_SYNC_MONTH_LOOKBACK", 1)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
