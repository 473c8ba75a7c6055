// Package ui provides terminal color themes and accessors shared by the CLI
// and TUI layers. Themes honor the NO_COLOR convention (https://no-color.org/)
// and can be switched at runtime.
package ui
