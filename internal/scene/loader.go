package scene

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
)

const defaultFetchConcurrency = 4

type LoaderParams struct {
	BaseURL     string
	Concurrency int
	Timeout     time.Duration
	Logger      *logger.Logger
	// HTTPClient overrides the underlying transport (tests).
	HTTPClient *http.Client
}

// Loader downloads the models and textures of a graph.
type Loader struct {
	http        *resty.Client
	concurrency int
	logg        *logger.Logger
}

func NewLoader(params LoaderParams) (*Loader, error) {
	if strings.TrimSpace(params.BaseURL) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "asset base url is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	if params.Concurrency <= 0 {
		params.Concurrency = defaultFetchConcurrency
	}

	var rc *resty.Client
	if params.HTTPClient != nil {
		rc = resty.NewWithClient(params.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(strings.TrimRight(params.BaseURL, "/"))
	if params.Timeout > 0 {
		rc.SetTimeout(params.Timeout)
	}

	return &Loader{http: rc, concurrency: params.Concurrency, logg: params.Logger}, nil
}

// Load fetches every asset of graph once and reports each outcome to progress.
// One failed asset does not stop the others; all failures come back combined.
func (l *Loader) Load(ctx context.Context, graph Graph, progress *Progress) (map[string][]byte, error) {
	progress.Register(len(graph.Assets))

	var (
		mu     sync.Mutex
		assets = make(map[string][]byte, len(graph.Assets))
		errs   error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for _, path := range graph.Assets {
		path := path
		g.Go(func() error {
			body, err := l.fetch(gctx, path)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = multierr.Append(errs, err)
				progress.Fail()
				l.logg.Warn(l.logg.WithField(gctx, "asset", path), "asset fetch failed")
				return nil
			}
			assets[path] = body
			progress.Complete()
			return nil
		})
	}
	_ = g.Wait()

	return assets, errs
}

func (l *Loader) fetch(ctx context.Context, path string) ([]byte, error) {
	resp, err := l.http.R().SetContext(ctx).Get("/" + strings.TrimLeft(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch %s: status %d", path, resp.StatusCode())
	}
	return resp.Body(), nil
}
