package tui

// Color constants for the fittrack TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#0F1B14" // Dark green
	ColorBorder         = "#3A5543" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E6F2EA" // Primary text (field labels, user input, titles)
	ColorSecondaryText = "#B1C7B8" // Secondary text - subtle green-tinted grey
	ColorDisabledText  = "#6D8374" // Disabled/muted text
	ColorPlaceholder   = "#B1C7B8" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Green theme)
	ColorAccentMain   = "#10B981" // Logo, accent elements, active borders
	ColorAccentBright = "#6EE7B7" // Hover, highlights, current step

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings
)
