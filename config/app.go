package config

type App struct {
	Port           string `env:"APP_PORT" default:"8080"`
	MongoURI       string `env:"MONGO_URI,required"`
	MongoDB        string `env:"MONGO_DB" default:"rentabook"`
	JWTSecret      string `env:"JWT_SECRET" default:"local_dev_secret"`
	JWTTTLHours    int    `env:"JWT_TTL_HOURS" default:"24"`
	GoogleBooksKey string `env:"GOOGLE_BOOKS_KEY"`
	Env            string `env:"APP_ENV" default:"dev"`
}
