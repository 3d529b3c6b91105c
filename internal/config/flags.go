package config

// Overrides holds CLI flag values layered over file settings: the highest
// priority step in the defaults < file < flags chain. The zero value
// changes nothing, so unset flags leave the file configuration alone.
type Overrides struct {
	// SkipBadDirectives forces room.skip_bad_directives on.
	SkipBadDirectives bool
	// Debug forces logging.level to "debug".
	Debug bool
}

// ApplyOverrides applies CLI flag overrides to the config.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.SkipBadDirectives {
		c.Room.SkipBadDirectives = true
	}
	if o.Debug {
		c.Logging.Level = "debug"
	}
}
