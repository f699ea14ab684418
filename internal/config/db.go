package config

// DB holds the database configuration settings.
//
// The section is named [mysql] in config.ini for compatibility with existing
// config files; the Engine key can still select another gorm engine.
type DB struct {
	Engine   string `mapstructure:"engine" validate:"oneof=mysql postgres sqlite"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"gte=0,lte=65535"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"database"`
	Path     string `mapstructure:"path"` // database file, sqlite engine only
	Extras   string `mapstructure:"extras"`
}
