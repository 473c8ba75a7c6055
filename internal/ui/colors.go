package ui

// Color accessors return the escape code for the named role in the currently
// active theme. They are functions rather than variables so theme switches
// take effect immediately everywhere.

// ColorPrimary returns the primary accent color code.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the secondary color code.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorGreen returns the success color code.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color code.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the error color code.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorCyan returns the informational color code.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorBlue returns the primary accent color code.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorMagenta returns the highlight color code.
func ColorMagenta() string { return GetCurrentTheme().Accent }

// ColorBold returns the bold formatting code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline formatting code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the formatting reset code.
func ColorReset() string { return GetCurrentTheme().Reset }
