// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"image/color"
	"net/url"
	"path/filepath"

	"swatchbook/internal/app"
	"swatchbook/internal/palette"
	"swatchbook/internal/version"
	"swatchbook/ui/canvas"
	"swatchbook/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const (
	defaultWidth  = 900
	defaultHeight = 600
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app      fyne.App
	state    *app.State
	prefs    *prefs.Prefs
	canvas   *canvas.Canvas
	subtitle *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(app.Name)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	w := p.Float(prefs.KeyWindowWidth, defaultWidth)
	h := p.Float(prefs.KeyWindowHeight, defaultHeight)
	win.Resize(fyne.NewSize(float32(w), float32(h)))

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.reflectHistory()

	win.SetCloseIntercept(mw.onClose)

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.New(mw.state.Doc, canvas.DefaultStyle())
	mw.canvas.OnAddColor(mw.onAddColor)
	mw.canvas.OnOpenSite(mw.onOpenSite)
	mw.canvas.OnHistoryChange(mw.onHistoryChange)

	mw.subtitle = widget.NewLabel("")
	mw.subtitle.Alignment = fyne.TextAlignCenter

	content := container.NewBorder(
		mw.subtitle, // top
		nil,         // bottom
		nil,         // left
		nil,         // right
		mw.canvas,   // center
	)

	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Palette", mw.onNewPalette),
		fyne.NewMenuItem("Open Palette...", mw.onOpenPalette),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save Palette", mw.onSavePalette),
		fyne.NewMenuItem("Save Palette As...", mw.onSavePaletteAs),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.onClose() }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", mw.onUndo),
		fyne.NewMenuItem("Redo", mw.onRedo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Add Color...", mw.onAddColor),
		fyne.NewMenuItem("Remove Last Color", mw.onRemoveLastColor),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Rename Palette...", mw.onRenamePalette),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Go to Top", mw.canvas.GoHome),
		fyne.NewMenuItem("Go to End", mw.canvas.GoEnd),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Page Up", mw.canvas.PageUp),
		fyne.NewMenuItem("Page Down", mw.canvas.PageDown),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Scroll Up", mw.canvas.ScrollUp),
		fyne.NewMenuItem("Scroll Down", mw.canvas.ScrollDown),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu)
	mw.SetMainMenu(mainMenu)
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventDocumentLoaded, func(data interface{}) {
		mw.reflectHistory()
	})

	mw.state.On(app.EventDocumentSaved, func(data interface{}) {
		mw.reflectHistory()
	})
}

// reflectHistory syncs the window title and subtitle with the document
// and its saved state. An unsaved document is marked with [*].
func (mw *MainWindow) reflectHistory() {
	title := app.Name
	if mw.state.DocPath != "" {
		title += " - " + filepath.Base(mw.state.DocPath)
	}
	if !mw.canvas.History().IsSaved() {
		title += " [*]"
	}
	mw.SetTitle(title)

	name := mw.state.Doc.Name
	if name == "" {
		name = "Untitled palette"
	}
	mw.subtitle.SetText(fmt.Sprintf("%s (%d colors)", name, mw.state.Doc.Len()))
}

func (mw *MainWindow) onHistoryChange() {
	mw.reflectHistory()
	mw.state.Emit(app.EventHistoryChanged, nil)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefs.KeyLastDir)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefs.KeyLastDir, filepath.Dir(filePath))
}

// OpenPath loads the palette at path and makes it the current document.
func (mw *MainWindow) OpenPath(path string) error {
	doc, err := palette.Load(path)
	if err != nil {
		return err
	}
	mw.state.Doc = doc
	mw.state.DocPath = path
	mw.canvas.SetDocument(doc)
	mw.canvas.History().SetSaved()
	mw.prefs.SetString(prefs.KeyLastPalette, path)
	mw.state.Emit(app.EventDocumentLoaded, path)
	return nil
}

// RestoreLastPalette reopens the palette from the previous session, if any.
func (mw *MainWindow) RestoreLastPalette() {
	path := mw.prefs.String(prefs.KeyLastPalette)
	if path == "" {
		return
	}
	// A stale path is not an error worth a dialog at startup.
	_ = mw.OpenPath(path)
}

// confirmDiscard runs fn immediately if the document is saved, otherwise
// asks the user to confirm discarding changes first.
func (mw *MainWindow) confirmDiscard(fn func()) {
	if mw.canvas.History().IsSaved() {
		fn()
		return
	}
	dialog.ShowConfirm("Unsaved Changes",
		"The palette has unsaved changes. Discard them?",
		func(ok bool) {
			if ok {
				fn()
			}
		}, mw.Window)
}

// Menu action handlers

func (mw *MainWindow) onNewPalette() {
	mw.confirmDiscard(func() {
		mw.state.Doc = palette.New()
		mw.state.DocPath = ""
		mw.canvas.SetDocument(mw.state.Doc)
		mw.prefs.SetString(prefs.KeyLastPalette, "")
		mw.state.Emit(app.EventDocumentLoaded, "")
	})
}

func (mw *MainWindow) onOpenPalette() {
	mw.confirmDiscard(func() {
		fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			reader.Close()
			path := reader.URI().Path()
			mw.saveLastDir(path)
			if err := mw.OpenPath(path); err != nil {
				dialog.ShowError(err, mw.Window)
			}
		}, mw.Window)
		fd.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
		if loc := mw.getLastDir(); loc != nil {
			fd.SetLocation(loc)
		}
		fd.Show()
	})
}

func (mw *MainWindow) onSavePalette() {
	if mw.state.DocPath == "" {
		mw.onSavePaletteAs()
		return
	}
	mw.savePalette(mw.state.DocPath)
}

func (mw *MainWindow) onSavePaletteAs() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) != ".json" {
			path += ".json"
		}
		mw.saveLastDir(path)
		mw.savePalette(path)
	}, mw.Window)
	fd.SetFileName("palette.json")
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) savePalette(path string) {
	if err := mw.state.Doc.Save(path); err != nil {
		dialog.ShowError(err, mw.Window)
		return
	}
	mw.state.DocPath = path
	mw.canvas.History().SetSaved()
	mw.prefs.SetString(prefs.KeyLastPalette, path)
	mw.state.Emit(app.EventDocumentSaved, path)
}

func (mw *MainWindow) onUndo() {
	mw.canvas.History().Undo()
}

func (mw *MainWindow) onRedo() {
	mw.canvas.History().Redo()
}

func (mw *MainWindow) onAddColor() {
	picker := dialog.NewColorPicker("Add Color", "Pick a color for the new swatch",
		func(c color.Color) {
			r, g, b, _ := c.RGBA()
			entry := palette.NewRGB(
				float64(r)/0xffff,
				float64(g)/0xffff,
				float64(b)/0xffff,
			)
			mw.canvas.Editor().AddColor(entry)
		}, mw.Window)
	picker.Advanced = true
	picker.Show()
}

func (mw *MainWindow) onRemoveLastColor() {
	n := mw.state.Doc.Len()
	if n == 0 {
		return
	}
	mw.canvas.Editor().RemoveColor(n - 1)
}

func (mw *MainWindow) onRenamePalette() {
	entry := widget.NewEntry()
	entry.SetText(mw.state.Doc.Name)
	entry.SetPlaceHolder("Palette name")
	dialog.ShowCustomConfirm("Rename Palette", "Rename", "Cancel", entry,
		func(ok bool) {
			if !ok || entry.Text == mw.state.Doc.Name {
				return
			}
			mw.canvas.Editor().RenamePalette(entry.Text)
		}, mw.Window)
}

func (mw *MainWindow) onOpenSite() {
	u, err := url.Parse("https://" + app.Domain)
	if err != nil {
		return
	}
	_ = mw.app.OpenURL(u)
}

func (mw *MainWindow) onClose() {
	mw.confirmDiscard(func() {
		size := mw.Window.Canvas().Size()
		mw.prefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
		mw.prefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
		_ = mw.prefs.Save()
		mw.app.Quit()
	})
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About "+app.Name,
		fmt.Sprintf("%s v%s\n\n"+
			"A color palette viewer and editor.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			app.Name, version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
