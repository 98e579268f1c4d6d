package config

// Settings holds the behavior knobs from settings.toml.
type Settings struct {
	ShowHidden          bool `toml:"show_hidden"`
	PreviewOnStart      bool `toml:"preview_on_start"`
	CaseSensitiveFind   bool `toml:"case_sensitive_find"`
	JumpAmount          int  `toml:"jump_amount"`
	PreviewScrollAmount int  `toml:"preview_scroll_amount"`

	// FindSuppressMS is how long key repeats are swallowed after an
	// auto-navigation triggered by a unique find match, so held keys
	// do not spill into the new directory.
	FindSuppressMS int `toml:"find_suppress_ms"`

	// ExitAfterEdit quits into the current directory once an opened
	// editor closes, instead of returning to the browser.
	ExitAfterEdit bool `toml:"exit_after_edit"`
}

func DefaultSettings() Settings {
	return Settings{
		ShowHidden:          false,
		PreviewOnStart:      false,
		CaseSensitiveFind:   false,
		JumpAmount:          5,
		PreviewScrollAmount: 10,
		FindSuppressMS:      500,
	}
}

// Normalize replaces out-of-range values with their defaults.
func (s Settings) Normalize() Settings {
	def := DefaultSettings()
	if s.JumpAmount < 1 {
		s.JumpAmount = def.JumpAmount
	}
	if s.PreviewScrollAmount < 1 {
		s.PreviewScrollAmount = def.PreviewScrollAmount
	}
	if s.FindSuppressMS < 0 {
		s.FindSuppressMS = def.FindSuppressMS
	}
	return s
}
