package render

import "sort"

// iconPaths maps icon names to 24x24 SVG path data.
var iconPaths = map[string]string{
	"Clock":    "M12 12m-10 0a10 10 0 1 0 20 0a10 10 0 1 0 -20 0 M12 12l3 2",
	"Trophy":   "M12 2C8.13 2 5 5.13 5 9c0 2.38 1.19 4.47 3 5.74V17c0 .55.45 1 1 1h6c.55 0 1-.45 1-1v-2.26c1.81-1.27 3-3.36 3-5.74 0-3.87-3.13-7-7-7zm2.85 11.1l-.85.6V16h-4v-2.3l-.85-.6A4.997 4.997 0 017 9c0-2.76 2.24-5 5-5s5 2.24 5 5c0 1.63-.8 3.16-2.15 4.1z",
	"Star":     "M11.049 2.927c.3-.921 1.603-.921 1.902 0l1.519 4.674a1 1 0 00.95.69h4.915c.969 0 1.371 1.24.588 1.81l-3.976 2.888a1 1 0 00-.363 1.118l1.518 4.674c.3.922-.755 1.688-1.538 1.118l-3.976-2.888a1 1 0 00-1.176 0l-3.976 2.888c-.783.57-1.838-.197-1.538-1.118l1.518-4.674a1 1 0 00-.363-1.118l-3.976-2.888c-.784-.57-.38-1.81.588-1.81h4.914a1 1 0 00.951-.69l1.519-4.674z",
	"Crown":    "M5 16L3 5l5.5 5L12 4l3.5 6L21 5l-2 11H5zm14 3H5v2h14v-2z",
	"Shield":   "M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z",
	"Zap":      "M13 2L3 14h9l-1 8 10-12h-9l1-8z",
	"Target":   "M12 12m-10 0a10 10 0 1 0 20 0a10 10 0 1 0 -20 0 M12 12m-6 0a6 6 0 1 0 12 0a6 6 0 1 0 -12 0 M12 12m-2 0a2 2 0 1 0 4 0a2 2 0 1 0 -4 0",
	"Heart":    "M12 21.35l-1.45-1.32C5.4 15.36 2 12.28 2 8.5 2 5.42 4.42 3 7.5 3c1.74 0 3.41.81 4.5 2.09C13.09 3.81 14.76 3 16.5 3 19.58 3 22 5.42 22 8.5c0 3.78-3.4 6.86-8.55 11.54L12 21.35z",
	"Sword":    "M14.5 17.5L3 6V3h3l11.5 11.5M13 19l6-6m-3 3l3 3-3 3m4-6l3-3",
	"Book":     "M4 19.5v-15A2.5 2.5 0 0 1 6.5 2H20v20H6.5a2.5 2.5 0 0 1 0-5H20",
	"Code":     "m16 18l6-6-6-6M8 6l-6 6 6 6",
	"Palette":  "M12 2C6.49 2 2 6.49 2 12s4.49 10 10 10c1.38 0 2.5-1.12 2.5-2.5 0-.61-.23-1.14-.62-1.54-.32-.32-.5-.76-.5-1.24 0-1.05.85-1.9 1.9-1.9H20c3.31 0 6-2.69 6-6 0-5.51-4.49-10-10-10zm-5.5 8c.83 0 1.5-.67 1.5-1.5S7.33 7 6.5 7 5 7.67 5 8.5 5.67 10 6.5 10zm3 4c-.83 0-1.5-.67-1.5-1.5S8.67 11 9.5 11s1.5.67 1.5 1.5-.67 1.5-1.5 1.5zm3-6c.83 0 1.5-.67 1.5-1.5S12.33 5 11.5 5 10 5.67 10 6.5 10.67 8 11.5 8zm3 6c-.83 0-1.5-.67-1.5-1.5s.67-1.5 1.5-1.5 1.5.67 1.5 1.5-.67 1.5-1.5 1.5z",
	"Music":    "M9 18V5l12-2v13M9 9l12-2",
	"Camera":   "M23 19a2 2 0 0 1-2 2H3a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h4l2-3h6l2 3h4a2 2 0 0 1 2 2zM12 17a4 4 0 1 0 0-8 4 4 0 0 0 0 8z",
	"Gamepad2": "M6 11h4a1 1 0 0 1 1 1v4a1 1 0 0 1-1 1H6a1 1 0 0 1-1-1v-4a1 1 0 0 1 1-1zM16 7h4a1 1 0 0 1 1 1v4a1 1 0 0 1-1 1h-4a1 1 0 0 1-1-1V8a1 1 0 0 1 1-1z",
	"Rocket":   "M12 2C8.13 2 5 5.13 5 9c0 5.25 7 13 7 13s7-7.75 7-13c0-3.87-3.13-7-7-7zm0 9.5a2.5 2.5 0 0 1 0-5 2.5 2.5 0 0 1 0 5z",
	"Diamond":  "M12 2L2 7l10 5 10-5-10-5zM2 17l10 5 10-5M2 12l10 5 10-5",
	"Gem":      "M6 3l6 9 6-9M3 12h18M12 3v18",
	"Sparkles": "M5 3v4M3 5h4M6 17v4m-2-2h4m5-16l2.286 6.857L21 12l-5.714 2.143L13 21l-2.286-6.857L5 12l5.714-2.143L13 3z",
	"Users":    "M17 21v-2a4 4 0 0 0-4-4H5a4 4 0 0 0-4 4v2M9 7a4 4 0 1 0 0-8 4 4 0 0 0 0 8zm6 4a4 4 0 1 0 0-8 4 4 0 0 0 0 8z",
	"Award":    "M12 15l4.243-4.243a6 6 0 1 0-8.486 0L12 15zm0 0l-4.243 4.243a6 6 0 1 1 8.486 0L12 15zm0 0V9",
	"Users2":   "M12 4a4 4 0 1 0 0 8 4 4 0 0 0 0-8zM6 8a6 6 0 1 1 12 0A6 6 0 0 1 6 8zm14 10a4 4 0 0 1-4 4H8a4 4 0 0 1-4-4v-1a3 3 0 0 1 3-3h8a3 3 0 0 1 3 3v1zm-6-7a2 2 0 1 1-4 0 2 2 0 0 1 4 0z",
	"Activity": "M22 12h-4l-3 9L9 3l-3 9H2",
}

// FallbackIcon is used for names missing from the icon table.
const FallbackIcon = "Star"

// IconPath returns the SVG path for name. An empty name has no icon and
// unknown names resolve to FallbackIcon.
func IconPath(name string) string {
	if name == "" {
		return ""
	}
	if path, ok := iconPaths[name]; ok {
		return path
	}
	return iconPaths[FallbackIcon]
}

// IconNames returns the known icon names.
func IconNames() []string {
	names := make([]string, 0, len(iconPaths))
	for name := range iconPaths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
