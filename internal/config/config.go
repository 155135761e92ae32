package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/organic-report/internal/animation"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
	Report        Report        `mapstructure:",squash"`
	DatasetReload DatasetReload `mapstructure:",squash"`
	Animation     Animation     `mapstructure:",squash"`
	Preview       Preview       `mapstructure:",squash"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Environment string `mapstructure:"environment"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Report aponta para um arquivo de dataset externo. Vazio usa o dataset embutido.
type Report struct {
	DatasetPath string `mapstructure:"report_dataset_path"`
}

type DatasetReload struct {
	CronSchedule string `mapstructure:"dataset_reload_cron"`
	Enabled      bool   `mapstructure:"dataset_reload_enabled"`
}

type Animation struct {
	CounterDuration   time.Duration `mapstructure:"animation_counter_duration"`
	RevealThreshold   float64       `mapstructure:"animation_reveal_threshold"`
	BarDuration       time.Duration `mapstructure:"animation_bar_duration"`
	BarStagger        time.Duration `mapstructure:"animation_bar_stagger"`
	OverlayMinPercent float64       `mapstructure:"animation_overlay_min_percent"`
	FrameInterval     time.Duration `mapstructure:"animation_frame_interval"`
}

type Preview struct {
	Width          int           `mapstructure:"preview_width"`
	Rows           int           `mapstructure:"preview_rows"`
	ScrollStep     int           `mapstructure:"preview_scroll_step"`
	ScrollInterval time.Duration `mapstructure:"preview_scroll_interval"`
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// AnimationOptions converte a configuração para as opções dos widgets animados
func (c *Config) AnimationOptions() animation.Options {
	return animation.Options{
		CounterDuration:   c.Animation.CounterDuration,
		RevealThreshold:   c.Animation.RevealThreshold,
		BarDuration:       c.Animation.BarDuration,
		BarStagger:        c.Animation.BarStagger,
		OverlayMinPercent: c.Animation.OverlayMinPercent,
	}.WithDefaults()
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("ENVIRONMENT", "development")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("REPORT_DATASET_PATH", "")

	viper.SetDefault("DATASET_RELOAD_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("DATASET_RELOAD_ENABLED", false)       // Recarregar o dataset externo periodicamente

	// Defaults das animações
	viper.SetDefault("ANIMATION_COUNTER_DURATION", "1200ms")
	viper.SetDefault("ANIMATION_REVEAL_THRESHOLD", 0.15) // 15% do elemento visível
	viper.SetDefault("ANIMATION_BAR_DURATION", "1s")
	viper.SetDefault("ANIMATION_BAR_STAGGER", "80ms")
	viper.SetDefault("ANIMATION_OVERLAY_MIN_PERCENT", 6)
	viper.SetDefault("ANIMATION_FRAME_INTERVAL", "16ms") // ~60 fps

	viper.SetDefault("PREVIEW_WIDTH", 72)
	viper.SetDefault("PREVIEW_ROWS", 18)
	viper.SetDefault("PREVIEW_SCROLL_STEP", 1)
	viper.SetDefault("PREVIEW_SCROLL_INTERVAL", "120ms")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
