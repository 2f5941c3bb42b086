package opener

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"sync"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/bnema/richpresence-cli/internal/ports"
)

var ErrNoOpener = errors.New("no prompt opener configured")

// Runner starts an external command without waiting for it to exit.
type Runner func(ctx context.Context, name string, args ...string) error

// Browser hands URLs to the desktop's default browser.
type Browser struct {
	goos string
	run  Runner
}

var _ ports.PromptOpener = (*Browser)(nil)

func NewBrowser() *Browser {
	return &Browser{goos: runtime.GOOS, run: startCommand}
}

func (b *Browser) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, args := browserCommand(b.goos, url)
	if err := b.run(ctx, name, args...); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}

func browserCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

func startCommand(ctx context.Context, name string, args ...string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Writer prints prompts for the user to open by hand. It is the fallback on
// headless machines and the device-code display.
type Writer struct {
	out      io.Writer
	provider string
	mu       sync.Mutex
}

var (
	_ ports.PromptOpener         = (*Writer)(nil)
	_ ports.DeviceCodePresenter  = (*Writer)(nil)
	_ ports.ProviderScopedOpener = (*Writer)(nil)
)

func NewWriter(out io.Writer, provider string) *Writer {
	return &Writer{out: out, provider: provider}
}

// ForProvider returns a writer on the same output labelled with id.
func (w *Writer) ForProvider(id domain.ProviderID) ports.PromptOpener {
	return &Writer{out: w.out, provider: string(id)}
}

func (w *Writer) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.provider == "" {
		_, err := fmt.Fprintf(w.out, "Open this URL to sign in:\n%s\n", url)
		return err
	}
	_, err := fmt.Fprintf(w.out, "Open this URL to sign in to %s:\n%s\n", w.provider, url)
	return err
}

func (w *Writer) PresentDeviceCode(ctx context.Context, verificationURL, userCode string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.provider == "" {
		_, err := fmt.Fprintf(w.out, "To sign in, open %s and enter the code %s\n", verificationURL, userCode)
		return err
	}
	_, err := fmt.Fprintf(w.out, "To sign in to %s, open %s and enter the code %s\n", w.provider, verificationURL, userCode)
	return err
}

// Tee hands the prompt to every opener and succeeds when any of them does.
// Failures of the others are dropped once one succeeded.
type Tee []ports.PromptOpener

var (
	_ ports.PromptOpener         = Tee(nil)
	_ ports.DeviceCodePresenter  = Tee(nil)
	_ ports.ProviderScopedOpener = Tee(nil)
)

func (t Tee) ForProvider(id domain.ProviderID) ports.PromptOpener {
	scoped := make(Tee, len(t))
	for i, o := range t {
		if s, ok := o.(ports.ProviderScopedOpener); ok {
			scoped[i] = s.ForProvider(id)
			continue
		}
		scoped[i] = o
	}
	return scoped
}

func (t Tee) Open(ctx context.Context, url string) error {
	return t.each(ctx, func(o ports.PromptOpener) error {
		return o.Open(ctx, url)
	})
}

// PresentDeviceCode shows the code through presenters and opens the bare
// verification URL through everything else.
func (t Tee) PresentDeviceCode(ctx context.Context, verificationURL, userCode string) error {
	return t.each(ctx, func(o ports.PromptOpener) error {
		if presenter, ok := o.(ports.DeviceCodePresenter); ok {
			return presenter.PresentDeviceCode(ctx, verificationURL, userCode)
		}
		return o.Open(ctx, verificationURL)
	})
}

func (t Tee) each(ctx context.Context, fn func(ports.PromptOpener) error) error {
	if len(t) == 0 {
		return ErrNoOpener
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var errs []error
	succeeded := false
	for _, o := range t {
		if o == nil {
			continue
		}
		if err := fn(o); err != nil {
			errs = append(errs, err)
			continue
		}
		succeeded = true
	}
	if succeeded {
		return nil
	}
	if len(errs) == 0 {
		return ErrNoOpener
	}
	return fmt.Errorf("all prompt openers failed: %w", errors.Join(errs...))
}
