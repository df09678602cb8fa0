// Package main provides the entry point for the Swatchbook application.
package main

import (
	"log"
	"os"

	"swatchbook/internal/app"
	"swatchbook/internal/version"
	"swatchbook/ui/mainwindow"
	"swatchbook/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", app.Name, version.Version)

	fyneApp := fyneapp.NewWithID(app.ID)
	fyneApp.Settings().SetTheme(&app.SwatchbookTheme{})

	appState := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)

	// A palette path on the command line overrides the remembered one.
	if len(os.Args) > 1 {
		if err := win.OpenPath(os.Args[1]); err != nil {
			log.Printf("Failed to open palette %s: %v", os.Args[1], err)
		}
	} else {
		win.RestoreLastPalette()
	}

	win.ShowAndRun()
}
