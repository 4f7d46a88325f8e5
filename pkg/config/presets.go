package config

// TilePreset returns the tile labels for a named preset.
// If the name is not recognized, the "home" preset is returned.
func TilePreset(name string) []string {
	switch name {
	case "minimal":
		return minimalPreset()
	case "work":
		return workPreset()
	case "home":
		return homePreset()
	default:
		return homePreset()
	}
}

// TilePresetNames lists the known presets.
func TilePresetNames() []string {
	return []string{"home", "minimal", "work"}
}

// homePreset is the default tile row. It mixes localized labels with a raw
// keyword that has no canonical mapping.
//
//	[Терминал] [Браузер] [Файлы] [Настройки] [Музыка] [calculator]
func homePreset() []string {
	return []string{"Терминал", "Браузер", "Файлы", "Настройки", "Музыка", "calculator"}
}

// minimalPreset keeps the terminal and settings only.
//
//	[Терминал] [Настройки]
func minimalPreset() []string {
	return []string{"Терминал", "Настройки"}
}

// workPreset uses the English keywords.
//
//	[terminal] [browser] [mail] [files] [settings]
func workPreset() []string {
	return []string{"terminal", "browser", "mail", "files", "settings"}
}
