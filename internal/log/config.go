package log

// Config holds the logging flags shared by every command.
type Config struct {
	Level string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"TS3GEN_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" type:"path" env:"TS3GEN_LOG_FILE"`
}
