package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"fundflow.db"`
	JWTSecret   string `env:"JWT_SECRET"`

	Payway Payway `envPrefix:"PAYWAY_"`
}

type Payway struct {
	BaseApiURL string `env:"BASE_API_URL"`
	APIKey     string `env:"API_KEY"`
	MerchantID string `env:"MERCHANT_ID"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

func (c *Config) IsDevelopment() bool {
	return c.Environment.Name == "development"
}
