package internal

import "time"

type Config struct {
	Host               string        `env:"HOST,default=0.0.0.0"`
	Port               int           `env:"PORT,default=8080"`
	BadgerFilepath     string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel           string        `env:"LOG_LEVEL,default=info"`
	Room               string        `env:"ROOM,default=general"`
	RecentMessageLimit int           `env:"RECENT_MESSAGE_LIMIT,default=10"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT,default=5s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}
