package maven

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultRepoURL = "https://repo1.maven.org/maven2"
	EnvRepoURL     = "MAVEN_REPO_URL"
)

// Repository fetches artifacts from a remote repository into a local
// cache directory that mirrors the remote layout. Jars already in the
// cache are never downloaded again.
type Repository struct {
	URL      string
	CacheDir string

	client *http.Client
	log    commonlog.Logger
}

// NewRepository uses $MAVEN_REPO_URL, or Maven Central, as the remote.
func NewRepository(cacheDir string) *Repository {
	url := os.Getenv(EnvRepoURL)
	if url == "" {
		url = DefaultRepoURL
	}
	return &Repository{
		URL:      strings.TrimSuffix(url, "/"),
		CacheDir: cacheDir,
		client:   &http.Client{},
		log:      commonlog.GetLogger("jtype.maven"),
	}
}

// DefaultCacheDir is jtype/maven under the user cache directory.
func DefaultCacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate cache directory: %w", err)
	}
	return filepath.Join(dir, "jtype", "maven"), nil
}

func (r *Repository) JarURL(a Artifact) string {
	return r.URL + "/" + a.Path()
}

// Fetch returns the local path of a's jar, downloading it when missing.
func (r *Repository) Fetch(ctx context.Context, a Artifact) (string, error) {
	dest := filepath.Join(r.CacheDir, filepath.FromSlash(a.Path()))
	if _, err := os.Stat(dest); err == nil {
		r.log.Debugf("cached %s", a)
		return dest, nil
	}

	url := r.JarURL(a)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", a, err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", a, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: HTTP %d for %s", a, resp.StatusCode, url)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}
	// write next to dest and rename, so a failed download never looks cached
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", a.FileName(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", a.FileName(), err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", a.FileName(), err)
	}

	r.log.Infof("downloaded %s", a)
	return dest, nil
}

// FetchAll fetches every artifact concurrently and returns the jar paths in
// the order given.
func (r *Repository) FetchAll(ctx context.Context, artifacts []Artifact) ([]string, error) {
	paths := make([]string, len(artifacts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, a := range artifacts {
		g.Go(func() error {
			p, err := r.Fetch(gctx, a)
			if err != nil {
				return err
			}
			paths[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
