package theme

// registerBuiltins registers all built-in themes in the registry.
func registerBuiltins() {
	for _, t := range []Theme{
		defaultTheme(),
		nordTheme(),
		gruvboxTheme(),
		monoTheme(),
	} {
		Register(t)
	}
}

// defaultTheme returns the dark neutral theme with purple accent.
func defaultTheme() Theme {
	return Theme{
		Name:       "default",
		Background: "#1e1e1e",
		Foreground: "#d4d4d4",
		Dim:        "#6b6b6b",
		Accent:     "#7C3AED",

		Clock:       "#f5f5f5",
		ShimmerBase: "#3e3e3e",
		ShimmerPeak: "#A78BFA",
		Tile:        "#3e3e3e",
		ShadeBorder: "#5b21b6",
		ToastFG:     "#1e1e1e",
		ToastBG:     "#A78BFA",
	}
}

// nordTheme returns the arctic Nord palette.
func nordTheme() Theme {
	return Theme{
		Name:       "nord",
		Background: "#2e3440",
		Foreground: "#d8dee9",
		Dim:        "#4c566a",
		Accent:     "#88c0d0",

		Clock:       "#eceff4",
		ShimmerBase: "#3b4252",
		ShimmerPeak: "#8fbcbb",
		Tile:        "#434c5e",
		ShadeBorder: "#5e81ac",
		ToastFG:     "#2e3440",
		ToastBG:     "#88c0d0",
	}
}

// gruvboxTheme returns the warm retro Gruvbox palette.
func gruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Background: "#282828",
		Foreground: "#ebdbb2",
		Dim:        "#928374",
		Accent:     "#fe8019",

		Clock:       "#fbf1c7",
		ShimmerBase: "#3c3836",
		ShimmerPeak: "#fabd2f",
		Tile:        "#504945",
		ShadeBorder: "#d65d0e",
		ToastFG:     "#282828",
		ToastBG:     "#fabd2f",
	}
}

// monoTheme is a grayscale palette for low-color terminals.
func monoTheme() Theme {
	return Theme{
		Name:       "mono",
		Background: "#000000",
		Foreground: "#c0c0c0",
		Dim:        "#808080",
		Accent:     "#ffffff",

		Clock:       "#ffffff",
		ShimmerBase: "#303030",
		ShimmerPeak: "#d0d0d0",
		Tile:        "#505050",
		ShadeBorder: "#a0a0a0",
		ToastFG:     "#000000",
		ToastBG:     "#c0c0c0",
	}
}
