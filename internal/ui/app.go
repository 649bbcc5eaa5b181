// Package ui provides the fernet-cypher graphical user interface using Fyne.
//
// The window mirrors the original layout: a key name entry with a Generate
// button, key file and message file pickers, Encrypt/Decrypt/Exit buttons,
// and a scrolling log pane on the right fed by the log sink.
//
// Each button click runs one operation to completion on the event loop;
// operations are never overlapped.
package ui

import (
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/KevinOlvera/fernet-cypher-gui/internal/app"
	apperrors "github.com/KevinOlvera/fernet-cypher-gui/internal/errors"
	"github.com/KevinOlvera/fernet-cypher-gui/internal/keyfile"
	"github.com/KevinOlvera/fernet-cypher-gui/internal/log"
)

// LogFile is the append-only log file written alongside the on-screen pane.
const LogFile = "run.log"

// App represents the main UI application.
type App struct {
	fyneApp fyne.App
	window  fyne.Window

	state  *app.State
	runner *app.Runner

	keyNameEntry     *widget.Entry
	keyFileEntry     *widget.Entry
	messageFileEntry *widget.Entry
	statusLabel      *widget.Label
	logPane          *logPane
}

// NewApp creates the UI application and wires logging to the log file and
// the on-screen pane.
func NewApp(version string) (*App, error) {
	a := &App{
		fyneApp: fyneapp.NewWithID("com.kevinolvera.fernet-cypher"),
		state:   app.NewState(),
	}
	a.window = a.fyneApp.NewWindow("fernet-cypher " + version)

	a.logPane = newLogPane()
	loggers := []log.Logger{log.NewSinkLogger(a.logPane, log.LevelDebug)}
	if fileLogger, err := log.NewFileLogger(LogFile, log.LevelDebug); err == nil {
		loggers = append(loggers, fileLogger)
	}
	log.SetLogger(log.NewTeeLogger(loggers...))

	a.runner = app.NewRunner(a.state, &uiReporter{app: a})
	a.runner.ConfirmOverwrite = func(path string) bool {
		// The event loop is synchronous, so the overwrite decision cannot
		// wait on a dialog mid-operation. Matches the original's silent
		// overwrite, made visible in the log.
		log.Warn("overwriting existing output", log.String("path", path))
		return true
	}

	a.buildLayout()
	return a, nil
}

// Run shows the window and enters the event loop.
func (a *App) Run() {
	log.Info("application started")
	a.window.Resize(fyne.NewSize(720, 420))
	a.window.ShowAndRun()
}

func (a *App) buildLayout() {
	a.keyNameEntry = widget.NewEntry()
	a.keyNameEntry.SetText(keyfile.DefaultName)
	generateBtn := widget.NewButton("Generate", a.onGenerateKey)

	a.keyFileEntry = widget.NewEntry()
	a.keyFileEntry.OnChanged = func(path string) {
		// A passphrase entered for a previous key file must not apply to
		// the new selection.
		a.state.SetPassphrase("")
		a.state.SetKeyPath(path)
	}
	keyBrowseBtn := widget.NewButton("Browse", a.onBrowseKeyFile)

	a.messageFileEntry = widget.NewEntry()
	a.messageFileEntry.OnChanged = a.state.SetMessagePath
	messageBrowseBtn := widget.NewButton("Browse", a.onBrowseMessageFile)

	a.statusLabel = widget.NewLabel(a.state.GetStatus())

	left := container.NewVBox(
		widget.NewLabelWithStyle("Welcome!", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Do you have a key file? If not, please generate a new one."),
		container.NewBorder(nil, nil, nil, generateBtn, a.keyNameEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Key File"), keyBrowseBtn, a.keyFileEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Message File"), messageBrowseBtn, a.messageFileEntry),
		widget.NewButton("Encrypt Message", a.onEncrypt),
		widget.NewButton("Decrypt Message", a.onDecrypt),
		widget.NewButton("Exit", a.onExit),
		a.statusLabel,
	)

	right := container.NewBorder(widget.NewLabel("Output:"), nil, nil, nil, a.logPane.canvasObject())

	split := container.NewHSplit(left, right)
	split.SetOffset(0.45)
	a.window.SetContent(split)
}

func (a *App) onGenerateKey() {
	if a.state.IsWorking() {
		return
	}
	a.state.SetKeyName(a.keyNameEntry.Text)
	_ = a.runner.GenerateKey()
	a.resetInputs()
}

func (a *App) onEncrypt() {
	a.runOperation(a.runner.Encrypt)
}

func (a *App) onDecrypt() {
	a.runOperation(a.runner.Decrypt)
}

func (a *App) runOperation(op func() error) {
	if a.state.IsWorking() {
		return
	}
	if !a.state.CanStart() {
		log.Info("please generate or select a key file and a message file")
		a.setStatus("Select a key file and a message file first")
		return
	}
	_ = op()
	a.resetInputs()
}

func (a *App) onExit() {
	log.Info("program finished by exit button")
	a.fyneApp.Quit()
}

func (a *App) onBrowseKeyFile() {
	picker := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		path := rc.URI().Path()
		_ = rc.Close()

		log.Info("selected key file", log.String("path", path))
		a.keyFileEntry.SetText(path)

		if keyfile.IsProtected(path) {
			a.promptPassphrase()
		}
	}, a.window)
	picker.SetFilter(storage.NewExtensionFileFilter([]string{".key"}))
	picker.Show()
}

func (a *App) onBrowseMessageFile() {
	_, keyPath, _, _ := a.state.Snapshot()
	if keyPath == "" {
		log.Info("please generate or select a key file")
		a.setStatus("Select a key file first")
		return
	}
	dialog.ShowFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		path := rc.URI().Path()
		_ = rc.Close()

		log.Info("selected message file", log.String("path", path))
		a.messageFileEntry.SetText(path)
	}, a.window)
}

// promptPassphrase asks for the passphrase of a protected key file.
func (a *App) promptPassphrase() {
	entry := widget.NewPasswordEntry()
	dialog.ShowCustomConfirm("Protected key file", "OK", "Cancel", entry, func(ok bool) {
		if ok {
			a.state.SetPassphrase(entry.Text)
		} else {
			a.keyFileEntry.SetText("")
		}
	}, a.window)
}

func (a *App) resetInputs() {
	a.keyNameEntry.SetText("")
	a.keyFileEntry.SetText("")
	a.messageFileEntry.SetText("")
}

func (a *App) setStatus(text string) {
	a.state.SetStatus(text)
	a.statusLabel.SetText(text)
}

// uiReporter implements app.StatusReporter on top of the status label.
type uiReporter struct {
	app *App
}

func (r *uiReporter) Status(text string) {
	r.app.setStatus(text)
}

func (r *uiReporter) Success(text string) {
	r.app.setStatus(text)
}

func (r *uiReporter) Failure(err error) {
	r.app.setStatus("Error: " + err.Error())
	if apperrors.IsFatal(err) {
		// Fail-fast policy: nothing further is meaningful without a key.
		d := dialog.NewError(err, r.app.window)
		d.SetOnClosed(func() {
			os.Exit(2)
		})
		d.Show()
	}
}
