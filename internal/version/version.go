package version

const (
	Version = "v0.1.0"

	colorReset    = "\033[0m"
	colorCyanBold = "\033[36;1m"
)

// asciiArtTpl returns the ASCII art banner for the toadDB CLI.
func asciiArtTpl() string {
	asciiArt := `
  __                   ________  ____
 / /_____  ____ _____/ / __  / / __ )
/ __/ __ \/ __ ` + "`" + `/ __  / /_/ / / __  |
\ /_/ /_/ / /_/ / /_/ / ____/ / /_/ /
 \__\____/\__,_/\__,_/_/     /_____/
toadDB ` + Version

	asciiArt = asciiArt[1:] // This just removes the first newline character
	asciiArt = colorCyanBold + asciiArt + colorReset

	return asciiArt
}

// CLIVersion returns the version banner of the toadDB CLI.
func CLIVersion() string {
	return asciiArtTpl()
}
