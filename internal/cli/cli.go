// Package cli implements zpersona's command-line subcommands.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"golang.org/x/term"

	"github.com/zarlcorp/zpersona/internal/export"
	"github.com/zarlcorp/zpersona/internal/identity"
)

// ErrUsage is returned when a command is called with the wrong arguments.
var ErrUsage = errors.New("invalid usage")

// localIP stands in for the caller's address when --ip is used without
// --user-ip; the host's public IP is detected regardless.
const localIP = "127.0.0.1"

const usage = `usage: zpersona <command> [flags]

commands:
  generate <type>   generate records (see "zpersona types")
  types             list record types
  locales           list supported locales
  card <number>...  classify card numbers and check luhn
  decrypt <file>    decrypt an encrypted export
  version           print version

generate flags:
  -n, --count int       number of records, 1-100 (default 1)
  -l, --locale string   locale: en, nl, be
  -s, --seed string     integer seed for reproducible output
      --sensitive       include financial data (person)
      --domain string   email domain (email)
      --style string    username style: professional, gaming, social, mixed
      --kind string     card network (creditcard) or key kind (apikey)
      --ip              derive location from this host's public ip (basic_opsec)
      --user-ip string  caller ip shown when geolocation fails (basic_opsec)
  -f, --format string   json, csv or text (default json)
  -o, --output string   write to file instead of stdout
      --encrypt         encrypt the output with a passphrase
`

// DataDir returns the default data directory for zpersona.
func DataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d + "/zpersona"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zpersona"
	}
	return home + "/.local/share/zpersona"
}

// ReadPassword prompts for a password on w and reads it without echo.
func ReadPassword(prompt string, w io.Writer) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// ReadNewPassword prompts for a new password with confirmation.
func ReadNewPassword(w io.Writer) (string, error) {
	pass, err := ReadPassword("passphrase: ", w)
	if err != nil {
		return "", err
	}
	confirm, err := ReadPassword("confirm passphrase: ", w)
	if err != nil {
		return "", err
	}
	if pass != confirm {
		return "", fmt.Errorf("passphrases do not match")
	}
	return pass, nil
}

// CLI dispatches subcommands to the identity service.
type CLI struct {
	svc     *identity.Service
	stdout  io.Writer
	stderr  io.Writer
	locale  string
	version string
	now     func() time.Time
	fsys    func(dir string) zfilesystem.ReadWriteFileFS
	pass    func(confirm bool) ([]byte, error)
}

// Option configures a CLI.
type Option func(*CLI)

// WithOutput sets the writers for results and diagnostics.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(c *CLI) {
		c.stdout = stdout
		c.stderr = stderr
	}
}

// WithDefaultLocale sets the locale used when -l is not given.
func WithDefaultLocale(l string) Option {
	return func(c *CLI) { c.locale = l }
}

// WithVersion sets the string printed by the version command.
func WithVersion(v string) Option {
	return func(c *CLI) { c.version = v }
}

// WithFS sets how a directory is opened for reading and writing files.
func WithFS(fn func(dir string) zfilesystem.ReadWriteFileFS) Option {
	return func(c *CLI) { c.fsys = fn }
}

// WithPassphrase sets the passphrase source for encrypted files.
func WithPassphrase(fn func(confirm bool) ([]byte, error)) Option {
	return func(c *CLI) { c.pass = fn }
}

// WithClock sets the time source for default export file names.
func WithClock(now func() time.Time) Option {
	return func(c *CLI) { c.now = now }
}

// New creates a CLI over svc.
func New(svc *identity.Service, opts ...Option) *CLI {
	c := &CLI{
		svc:     svc,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		version: "dev",
		now:     time.Now,
		fsys: func(dir string) zfilesystem.ReadWriteFileFS {
			// a failure here surfaces on the following read or write
			_ = os.MkdirAll(dir, 0o700)
			return zfilesystem.NewOSFileSystem(dir)
		},
	}
	for _, o := range opts {
		o(c)
	}
	if c.pass == nil {
		c.pass = c.promptPassphrase
	}
	return c
}

// Run executes the subcommand named by args[0].
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(c.stderr, usage)
		return ErrUsage
	}

	switch cmd := args[0]; cmd {
	case "generate", "gen":
		return c.Generate(ctx, args[1:])
	case "types":
		return c.Types()
	case "locales":
		return c.Locales()
	case "card":
		return c.Card(args[1:])
	case "decrypt":
		return c.Decrypt(args[1:])
	case "version":
		fmt.Fprintf(c.stdout, "zpersona %s\n", c.version)
		return nil
	case "help", "-h", "--help":
		fmt.Fprint(c.stdout, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, ErrUsage)
	}
}

// Generate handles "generate <type> [flags]".
func (c *CLI) Generate(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() { fmt.Fprint(c.stderr, usage) }

	count := fs.IntP("count", "n", 1, "")
	locale := fs.StringP("locale", "l", c.locale, "")
	seed := fs.StringP("seed", "s", "", "")
	sensitive := fs.Bool("sensitive", false, "")
	domain := fs.String("domain", "", "")
	style := fs.String("style", identity.StyleMixed, "")
	kind := fs.String("kind", "", "")
	useIP := fs.Bool("ip", false, "")
	userIP := fs.String("user-ip", "", "")
	format := fs.StringP("format", "f", export.FormatJSON, "")
	output := fs.StringP("output", "o", "", "")
	encrypt := fs.Bool("encrypt", false, "")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("generate: %w", err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("generate: expected one record type: %w", ErrUsage)
	}
	recordType := fs.Arg(0)

	opts := identity.Options{
		Locale:           *locale,
		IncludeSensitive: *sensitive,
		Domain:           *domain,
		Style:            *style,
		UseIPForLocation: *useIP,
		UserIP:           *userIP,
		Type:             *kind,
	}
	if opts.UseIPForLocation && opts.UserIP == "" {
		opts.UserIP = localIP
	}

	records, err := c.svc.Generate(ctx, recordType, *count, opts, *seed)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.Encode(&buf, *format, records); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if !*encrypt && *output == "" {
		_, err := c.stdout.Write(buf.Bytes())
		return err
	}

	path := *output
	if path == "" {
		stamp := c.now().Format("20060102-150405")
		path = filepath.Join(DataDir(), "exports", fmt.Sprintf("%s-%s.%s.enc", recordType, stamp, *format))
	}

	if err := c.writeOutput(path, buf.Bytes(), *encrypt); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	fmt.Fprintf(c.stderr, "wrote %d %s record(s) to %s\n", len(records), recordType, path)
	return nil
}

func (c *CLI) writeOutput(path string, data []byte, encrypt bool) error {
	fsys := c.fsys(filepath.Dir(path))
	name := filepath.Base(path)

	if !encrypt {
		return export.WriteFile(fsys, name, data)
	}

	pass, err := c.pass(true)
	if err != nil {
		return err
	}
	return export.WriteEncrypted(fsys, name, data, pass)
}

// Types handles "types".
func (c *CLI) Types() error {
	for _, t := range identity.Types() {
		fmt.Fprintf(c.stdout, "  %-12s %s\n", t.Name, t.Description)
	}
	return nil
}

// Locales handles "locales".
func (c *CLI) Locales() error {
	for _, l := range c.svc.AvailableLocales() {
		fmt.Fprintln(c.stdout, l)
	}
	return nil
}

// Card handles "card <number>...".
func (c *CLI) Card(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("card: expected a card number: %w", ErrUsage)
	}
	for _, n := range args {
		luhn := "invalid"
		if identity.LuhnValid(n) {
			luhn = "valid"
		}
		fmt.Fprintf(c.stdout, "  %-20s %-17s luhn %s\n", n, identity.CardType(n), luhn)
	}
	return nil
}

// Decrypt handles "decrypt <file> [-o out]".
func (c *CLI) Decrypt(args []string) error {
	fs := pflag.NewFlagSet("decrypt", pflag.ContinueOnError)
	fs.SetOutput(c.stderr)
	output := fs.StringP("output", "o", "", "")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("decrypt: %w", err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("decrypt: expected one file: %w", ErrUsage)
	}
	path := fs.Arg(0)

	pass, err := c.pass(false)
	if err != nil {
		return err
	}

	data, err := export.ReadEncrypted(c.fsys(filepath.Dir(path)), filepath.Base(path), pass)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}

	if *output == "" {
		_, err := c.stdout.Write(data)
		return err
	}
	if err := export.WriteFile(c.fsys(filepath.Dir(*output)), filepath.Base(*output), data); err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}
	fmt.Fprintf(c.stderr, "wrote %s\n", *output)
	return nil
}

func (c *CLI) promptPassphrase(confirm bool) ([]byte, error) {
	var (
		pass string
		err  error
	)
	if confirm {
		pass, err = ReadNewPassword(c.stderr)
	} else {
		pass, err = ReadPassword("passphrase: ", c.stderr)
	}
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(pass) == "" {
		return nil, errors.New("empty passphrase")
	}
	return []byte(pass), nil
}
