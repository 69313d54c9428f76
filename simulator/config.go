package simulator

type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn"`
	ClearScreen bool   `env:"CLEAR_SCREEN" envDefault:"true"`
}
