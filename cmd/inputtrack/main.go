// Package main is an interactive monitor for the input tracking service.
// It registers the terminal as a tracked window, feeds it tcell events
// through the dispatcher, and renders the tracker state each frame.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inputtrack/internal/app"
	"github.com/dshills/inputtrack/internal/event"
	"github.com/dshills/inputtrack/internal/input"
	"github.com/dshills/inputtrack/internal/input/key"
	"github.com/dshills/inputtrack/internal/registry"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// terminalWindow is the synthetic window ID for the local terminal.
const terminalWindow = registry.WindowID(1)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	service, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer service.Shutdown()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()

	mon := &monitor{
		service: service,
		screen:  screen,
		tracker: service.RegisterWindow(terminalWindow),
	}
	mon.loop()
	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.WatchConfig, "watch", false, "Reload the configuration file on change")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "inputtrack - interactive input state monitor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: inputtrack [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  F2    toggle mouse blocking\n")
		fmt.Fprintf(os.Stderr, "  F3    toggle keyboard blocking\n")
		fmt.Fprintf(os.Stderr, "  F4    toggle cursor immobilization\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+C  quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("inputtrack %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}

// monitor drives the frame loop: tcell events in, state panel out.
type monitor struct {
	service *app.Service
	screen  tcell.Screen
	tracker *input.Tracker

	lastMouse input.Position
	buttons   tcell.ButtonMask
	swallowed uint64
}

func (m *monitor) loop() {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go m.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(m.service.Config().FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch tev := ev.(type) {
			case *tcell.EventKey:
				if tev.Key() == tcell.KeyCtrlC {
					close(quit)
					return
				}
				m.handleKey(tev)
			case *tcell.EventMouse:
				m.handleMouse(tev)
			case *tcell.EventResize:
				m.screen.Sync()
			}

		case <-ticker.C:
			view := m.tracker.Acquire()
			view.NextFrame()
			view.Release()
			m.render()
		}
	}
}

// handleKey converts a tcell key event and dispatches it. Terminals do
// not deliver key releases, so each key is dispatched as a press
// followed by a release within the same frame.
func (m *monitor) handleKey(ev *tcell.EventKey) {
	code, ch := convertKey(ev)
	d := m.service.Dispatcher()

	if code != key.None {
		if swallowed := d.Dispatch(terminalWindow, event.KeyDown(code)); swallowed {
			m.swallowed++
		}
		d.Dispatch(terminalWindow, event.KeyUp(code))
	}
	if ch != 0 {
		if swallowed := d.Dispatch(terminalWindow, event.Text(ch)); swallowed {
			m.swallowed++
		}
	}

	switch code {
	case key.CodeF2:
		m.tracker.BlockMouse(!m.tracker.IsBlockingMouseInput())
	case key.CodeF3:
		m.tracker.BlockKeyboard(!m.tracker.IsBlockingKeyboardInput())
	case key.CodeF4:
		m.tracker.ImmobilizeCursor(!m.tracker.IsImmobilizingCursor())
	}
}

// handleMouse splits a tcell mouse event into move, button, and wheel
// dispatches.
func (m *monitor) handleMouse(ev *tcell.EventMouse) {
	d := m.service.Dispatcher()
	x, y := ev.Position()

	if pos := (input.Position{X: x, Y: y}); pos != m.lastMouse {
		m.lastMouse = pos
		if swallowed := d.Dispatch(terminalWindow, event.MouseMove(x, y)); swallowed {
			m.swallowed++
		}
	}

	mask := ev.Buttons()
	for _, bm := range buttonMap {
		was := m.buttons&bm.mask != 0
		is := mask&bm.mask != 0
		if is && !was {
			if swallowed := d.Dispatch(terminalWindow, event.ButtonDown(bm.button)); swallowed {
				m.swallowed++
			}
		}
		if was && !is {
			d.Dispatch(terminalWindow, event.ButtonUp(bm.button))
		}
	}

	if mask&tcell.WheelUp != 0 {
		d.Dispatch(terminalWindow, event.Wheel(1))
	}
	if mask&tcell.WheelDown != 0 {
		d.Dispatch(terminalWindow, event.Wheel(-1))
	}

	m.buttons = mask &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
}

var buttonMap = []struct {
	mask   tcell.ButtonMask
	button input.Button
}{
	{tcell.Button1, input.ButtonLeft},
	{tcell.Button2, input.ButtonRight},
	{tcell.Button3, input.ButtonMiddle},
	{tcell.Button4, input.ButtonX1},
	{tcell.Button5, input.ButtonX2},
}

// render draws the state panel for the frame that just closed.
func (m *monitor) render() {
	s := m.screen
	s.Clear()

	t := m.tracker
	style := tcell.StyleDefault
	header := tcell.StyleDefault.Bold(true)

	drawText(s, 0, 0, header, fmt.Sprintf("inputtrack %s  frame %d", version, t.FrameCount()))
	drawText(s, 0, 1, style, "F2 block mouse  F3 block keyboard  F4 immobilize  Ctrl+C quit")

	pos := t.MousePosition()
	delta := t.MouseMovementDelta()
	drawText(s, 0, 3, style, fmt.Sprintf("mouse     %s  delta %s  wheel %+d", pos, delta, t.WheelDelta()))
	drawText(s, 0, 4, style, fmt.Sprintf("buttons   %s", downButtons(t)))
	drawText(s, 0, 5, style, fmt.Sprintf("last key  pressed=%s released=%s", t.LastKeyPressed(), t.LastKeyReleased()))
	drawText(s, 0, 6, style, fmt.Sprintf("text      %q", t.TextInput()))

	drawText(s, 0, 8, style, fmt.Sprintf("blocking  mouse=%v keyboard=%v cursor=%v",
		t.IsBlockingMouseInput(), t.IsBlockingKeyboardInput(), t.IsImmobilizingCursor()))
	drawText(s, 0, 9, style, fmt.Sprintf("swallowed %d", m.swallowed))

	snap := t.Metrics().Snapshot()
	drawText(s, 0, 11, style, fmt.Sprintf("metrics   keys=%d mouse=%d text=%d blocked=%d frames=%d",
		snap.KeyEventsTotal, snap.MouseEventsTotal, snap.TextEventsTotal, snap.BlockedEvents, snap.FramesTotal))

	s.Show()
}

// downButtons names the buttons currently held.
func downButtons(t *input.Tracker) string {
	var held []string
	for b := input.ButtonLeft; b < input.ButtonCount; b++ {
		if t.IsButtonDown(b) {
			held = append(held, b.String())
		}
	}
	if len(held) == 0 {
		return "none"
	}
	return strings.Join(held, " ")
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// convertKey maps a tcell key event to a virtual-key code and, for
// printable input, the translated character.
func convertKey(ev *tcell.EventKey) (key.Code, rune) {
	switch ev.Key() {
	case tcell.KeyRune:
		return runeToCode(ev.Rune()), ev.Rune()
	case tcell.KeyEscape:
		return key.CodeEscape, 0
	case tcell.KeyEnter:
		return key.CodeEnter, 0
	case tcell.KeyTab:
		return key.CodeTab, 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.CodeBackspace, 0
	case tcell.KeyDelete:
		return key.CodeDelete, 0
	case tcell.KeyInsert:
		return key.CodeInsert, 0
	case tcell.KeyHome:
		return key.CodeHome, 0
	case tcell.KeyEnd:
		return key.CodeEnd, 0
	case tcell.KeyPgUp:
		return key.CodePageUp, 0
	case tcell.KeyPgDn:
		return key.CodePageDown, 0
	case tcell.KeyUp:
		return key.CodeUp, 0
	case tcell.KeyDown:
		return key.CodeDown, 0
	case tcell.KeyLeft:
		return key.CodeLeft, 0
	case tcell.KeyRight:
		return key.CodeRight, 0
	case tcell.KeyF1:
		return key.CodeF1, 0
	case tcell.KeyF2:
		return key.CodeF2, 0
	case tcell.KeyF3:
		return key.CodeF3, 0
	case tcell.KeyF4:
		return key.CodeF4, 0
	case tcell.KeyF5:
		return key.CodeF5, 0
	case tcell.KeyF6:
		return key.CodeF6, 0
	case tcell.KeyF7:
		return key.CodeF7, 0
	case tcell.KeyF8:
		return key.CodeF8, 0
	case tcell.KeyF9:
		return key.CodeF9, 0
	case tcell.KeyF10:
		return key.CodeF10, 0
	case tcell.KeyF11:
		return key.CodeF11, 0
	case tcell.KeyF12:
		return key.CodeF12, 0
	default:
		return key.None, 0
	}
}

// runeToCode maps printable runes to virtual-key codes. Unmapped runes
// still flow through as text.
func runeToCode(r rune) key.Code {
	switch {
	case r == ' ':
		return key.CodeSpace
	case r >= '0' && r <= '9':
		return key.Code0 + key.Code(r-'0')
	case unicode.IsLetter(r):
		upper := unicode.ToUpper(r)
		if upper >= 'A' && upper <= 'Z' {
			return key.CodeA + key.Code(upper-'A')
		}
	}
	switch r {
	case ';':
		return key.CodeSemicolon
	case '=':
		return key.CodeEquals
	case ',':
		return key.CodeComma
	case '-':
		return key.CodeMinus
	case '.':
		return key.CodePeriod
	case '/':
		return key.CodeSlash
	case '`':
		return key.CodeBackquote
	case '[':
		return key.CodeLeftBracket
	case '\\':
		return key.CodeBackslash
	case ']':
		return key.CodeRightBracket
	case '\'':
		return key.CodeQuote
	}
	return key.None
}
