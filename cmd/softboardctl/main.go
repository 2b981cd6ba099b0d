// softboardctl is the demo and inspection CLI for the softboard keyboard
// toolkit. It prints what the library would hand a view layer: input rows,
// key grids, emoji panels, versions and themes.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/text/language"

	"softboard/internal/logging"
	"softboard/pkg/emoji"
	"softboard/pkg/input"
	"softboard/pkg/layout"
	"softboard/pkg/theme"
)

var (
	logLevel = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	device   = flag.String("device", "phone", "device class (phone, pad)")
	casing   = flag.String("casing", "lower", "casing (auto, lower, upper)")
	locale   = flag.String("locale", "en", "BCP 47 locale tag")
	currency = flag.String("currency", "$", "currency symbol for the numeric set")
)

func main() {
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.New(&logging.Config{
		Level:     level,
		Format:    logging.FormatText,
		Output:    "stderr",
		Component: "softboardctl",
	})

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	switch cmd := flag.Arg(0); cmd {
	case "versions":
		cmdVersions()
	case "categories":
		cmdCategories()
	case "search":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: softboardctl search <query>")
			os.Exit(1)
		}
		cmdSearch(flag.Arg(1))
	case "rows":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: softboardctl rows <qwerty|numeric|symbolic|locale>")
			os.Exit(1)
		}
		cmdRows(flag.Arg(1))
	case "layout":
		cmdLayout()
	case "callouts":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: softboardctl callouts <char>")
			os.Exit(1)
		}
		cmdCallouts(flag.Arg(1))
	case "theme":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: softboardctl theme <file>")
			os.Exit(1)
		}
		cmdTheme(flag.Arg(1))
	case "watch-theme":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: softboardctl watch-theme <file>")
			os.Exit(1)
		}
		cmdWatchTheme(logger, flag.Arg(1))
	case "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `softboardctl - Demo utility for the softboard keyboard toolkit

Usage: softboardctl [options] <command> [args]

Commands:
  versions            List the emoji release registry and the host's release
  categories          Print the standard emoji categories for the host runtime
  search <query>      Search emoji by Unicode name
  rows <set>          Print input rows (qwerty, numeric, symbolic, locale)
  layout              Print the standard key grid for the selected locale
  callouts <char>     Print long-press variants for a character
  theme <file>        Load and print a theme file
  watch-theme <file>  Reload and print a theme file on every change
  help                Show this help message

Options:
  -device <class>     phone or pad (default phone)
  -casing <casing>    auto, lower or upper (default lower)
  -locale <tag>       BCP 47 locale for rows, layout and callouts (default en)
  -currency <symbol>  currency symbol for the numeric set (default $)
  -log-level <level>  debug, info, warn or error (default info)`)
}

func cmdVersions() {
	host := emoji.HostVersion()
	for _, v := range emoji.AllVersions() {
		marker := "  "
		if v.Version == host.Version {
			marker = "* "
		}
		fmt.Printf("%s%-5v %-12s iOS %v, macOS %v, tvOS %v, watchOS %v — %d emoji\n",
			marker, v.Version, v.Comment, v.IOS, v.MacOS, v.TVOS, v.WatchOS, len(v.Emojis()))
	}
	fmt.Printf("\n%d emoji unavailable on this runtime\n", len(emoji.CurrentUnavailableEmojis()))
}

func cmdCategories() {
	for _, c := range emoji.StandardCategories(nil) {
		members := c.Emojis()
		fmt.Printf("%s %-18s %d emoji\n", c.Icon(), c.ID(), len(members))
		if len(members) > 0 {
			limit := min(len(members), 24)
			for _, e := range members[:limit] {
				fmt.Print(e.Char, " ")
			}
			fmt.Println()
		}
	}
}

func cmdSearch(query string) {
	c := emoji.SearchCategory(query)
	for _, e := range c.Emojis() {
		fmt.Printf("%s  %s\n", e.Char, e.UnicodeName())
	}
}

func cmdRows(name string) {
	var set input.Set
	switch name {
	case "qwerty":
		set = input.Qwerty()
	case "numeric":
		set = input.Numeric(*currency)
	case "symbolic":
		set = input.Symbolic(nil)
	case "locale":
		set = input.ForLocale(parseLocale())
	default:
		fmt.Fprintf(os.Stderr, "Unknown input set: %s\n", name)
		os.Exit(1)
	}
	for _, row := range set.CharacterStrings(parseCasing(), parseDevice()) {
		fmt.Println(row)
	}
}

func cmdLayout() {
	set := input.ForLocale(parseLocale())
	l := layout.Standard(set, parseDevice(), layout.TypeAlphabetic, parseCasing())
	for _, row := range l.Rows {
		for _, item := range row {
			fmt.Printf("[%s] ", keyLabel(item))
		}
		fmt.Println()
	}
	fmt.Printf("total height: %.0f points\n", l.TotalHeight())
}

func keyLabel(item layout.Item) string {
	switch item.Action.Kind {
	case layout.ActionCharacter:
		return item.Action.Char
	case layout.ActionSpace:
		return "space"
	case layout.ActionBackspace:
		return "⌫"
	case layout.ActionShift:
		return "⇧"
	case layout.ActionNewline:
		return "⏎"
	case layout.ActionKeyboardType:
		return item.Action.Target.String()
	case layout.ActionNextLocale:
		return "🌐"
	default:
		return "?"
	}
}

func cmdCallouts(char string) {
	variants := layout.CalloutActions(parseLocale(), char)
	if len(variants) == 0 {
		fmt.Printf("%s has no long-press variants\n", char)
		return
	}
	fmt.Println(char, "→", variants)
}

func cmdTheme(path string) {
	th, err := theme.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	printTheme(th)
}

func cmdWatchTheme(logger *slog.Logger, path string) {
	w, err := theme.NewWatcher(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := w.Start(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer w.Stop()

	logger.Info("watching theme", "path", path)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	for {
		select {
		case th := <-w.Themes():
			logger.Info("theme reloaded", "name", th.Name)
			printTheme(th)
		case err := <-w.Errors():
			logger.Error("theme reload failed", "error", err)
		case <-sig:
			return
		}
	}
}

func printTheme(th *theme.Theme) {
	fmt.Printf("theme %q\n", th.Name)
	fmt.Printf("  background    %s\n", th.Background)
	fmt.Printf("  key button    %s on %s, radius %.1f\n",
		th.KeyButton.Foreground, th.KeyButton.Background, th.KeyButton.CornerRadius)
	fmt.Printf("  system button %s on %s, radius %.1f\n",
		th.SystemButton.Foreground, th.SystemButton.Background, th.SystemButton.CornerRadius)
	fmt.Printf("  callout       %s on %s, radius %.1f\n",
		th.Callout.Foreground, th.Callout.Background, th.Callout.CornerRadius)
	fmt.Printf("  font scale    %.2f\n", th.FontScale)
}

func parseDevice() input.DeviceClass {
	if *device == "pad" {
		return input.DevicePad
	}
	return input.DevicePhone
}

func parseCasing() input.Casing {
	switch *casing {
	case "lower":
		return input.CasingLowercased
	case "upper":
		return input.CasingUppercased
	default:
		return input.CasingAuto
	}
}

func parseLocale() language.Tag {
	tag, err := language.Parse(*locale)
	if err != nil {
		return language.English
	}
	return tag
}
