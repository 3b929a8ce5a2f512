package rodpage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"

	"quiz-solver/internal/application/port/output"
	"quiz-solver/internal/domain/entity"
)

var _ output.RendererPort = (*PageRenderer)(nil)

const resultSelector = "#result"

// PageRenderer renders quiz pages in a headless browser. Every call launches
// its own browser process so no state leaks between questions.
type PageRenderer struct {
	cfg    Config
	logger output.LoggerPort
}

type Config struct {
	Headless        bool
	NoSandbox       bool
	NavigateTimeout time.Duration
	SettleDelay     time.Duration
}

func DefaultConfig() Config {
	return Config{
		Headless:        true,
		NoSandbox:       true,
		NavigateTimeout: 30 * time.Second,
		SettleDelay:     2 * time.Second,
	}
}

func NewPageRenderer(cfg Config, logger output.LoggerPort) *PageRenderer {
	return &PageRenderer{cfg: cfg, logger: logger}
}

func (r *PageRenderer) RenderPage(ctx context.Context, url string) (string, error) {
	page, cleanup, err := r.openPage(ctx, url)
	if err != nil {
		return "", err
	}
	defer cleanup()

	// The question is usually decoded into #result by page scripts. Fall
	// back to the whole document when the element is missing or unreadable.
	if has, el, herr := page.Has(resultSelector); herr == nil && has {
		if text, terr := el.Text(); terr == nil {
			r.logger.Debug("Extracted question from result element", "url", url, "chars", len(text))
			return text, nil
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("%w: read document: %v", entity.ErrRender, err)
	}

	text := documentText(html)
	r.logger.Debug("Extracted question from full document", "url", url, "chars", len(text))
	return text, nil
}

func (r *PageRenderer) Screenshot(ctx context.Context, url string) ([]byte, error) {
	page, cleanup, err := r.openPage(ctx, url)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	imgBytes, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: gson.Int(80),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: screenshot: %v", entity.ErrRender, err)
	}

	return shrinkForVision(imgBytes)
}

func (r *PageRenderer) openPage(ctx context.Context, url string) (*rod.Page, func(), error) {
	l := launcher.New().
		Headless(r.cfg.Headless).
		Devtools(false).
		NoSandbox(r.cfg.NoSandbox).
		Delete("use-mock-keychain").
		Set("disable-web-security").
		Set("allow-running-insecure-content").
		Set("disable-setuid-sandbox")

	controlURL, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: launch browser: %v", entity.ErrRender, err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		l.Cleanup()
		return nil, nil, fmt.Errorf("%w: connect browser: %v", entity.ErrRender, err)
	}

	cleanup := func() {
		_ = browser.Close()
		l.Kill()
		l.Cleanup()
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("%w: open page: %v", entity.ErrRender, err)
	}

	page = page.Context(ctx).Timeout(r.cfg.NavigateTimeout)
	if err := page.Navigate(url); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("%w: navigate %s: %v", entity.ErrRender, url, err)
	}
	if err := page.WaitLoad(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("%w: wait load %s: %v", entity.ErrRender, url, err)
	}
	_ = page.WaitIdle(r.cfg.NavigateTimeout)

	// Fixed settle period for deferred script execution after network idle.
	time.Sleep(r.cfg.SettleDelay)

	return page, cleanup, nil
}

// shrinkForVision keeps vision payloads small: anything wider than 1024px is
// downscaled before re-encoding.
func shrinkForVision(imgBytes []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: decode screenshot: %v", entity.ErrRender, err)
	}

	if img.Bounds().Dx() > 1024 {
		img = imaging.Resize(img, 1024, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("%w: encode screenshot: %v", entity.ErrRender, err)
	}
	return buf.Bytes(), nil
}
