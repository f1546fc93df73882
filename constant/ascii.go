package constant

// AsciiArtLogo is the banner shown on the root help page.
const AsciiArtLogo = `
                                 _
  _ __   __ _ ___  __ _(_)_ __ ___   __ _
 | '_ \ / _' / __|/ _' | | '_ ' _ \ / _' |
 | | | | (_| \__ \ (_| | | | | | | | (_| |
 |_| |_|\__,_|___/\__,_|_|_| |_| |_|\__, |
                                    |___/`
