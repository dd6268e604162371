// Package remote fetches template repositories from git remotes into a
// temporary local checkout.
package remote

import (
	"context"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/arthur-debert/zat/pkg/errors"
	"github.com/arthur-debert/zat/pkg/logging"
	git "github.com/go-git/go-git/v5"
)

// SupportedSchemes lists the URL schemes zat can clone from
var SupportedSchemes = []string{"http", "https", "ssh", "file"}

// Checkout is a local clone of a remote repository
type Checkout struct {
	URL string
	Dir string
}

// CloneOptions tunes how a repository is cloned
type CloneOptions struct {
	// Progress receives the server's progress messages, if set
	Progress io.Writer
	// TempDir is the parent of the checkout; defaults to os.TempDir()
	TempDir string
}

// ParseURL validates a remote repository URL
func ParseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRemoteURL,
			"The remote repository URL supplied '%s' is invalid. Zat needs a valid URL to checkout this repository.", raw).
			WithRemediation("Please ensure the remote repository URL supplied is valid.").
			WithDetail("url", raw)
	}

	if !isSupported(u.Scheme) {
		return nil, errors.Newf(errors.ErrRemoteURL,
			"The remote repository URL supplied '%s' has an unsupported scheme '%s'.", raw, u.Scheme).
			WithRemediation("Please use one of these schemes: %s.", strings.Join(SupportedSchemes, ", ")).
			WithDetail("url", raw)
	}

	if u.Scheme != "file" && u.Hostname() == "" {
		return nil, errors.Newf(errors.ErrRemoteURL,
			"The remote repository URL supplied '%s' has an invalid hostname. Zat needs the hostname to be a domain name or IP address. IPv6 addresses should be supplied within square braces.", raw).
			WithRemediation("Please ensure the remote repository URL hostname is a domain or an IP address.").
			WithDetail("url", raw)
	}

	return u, nil
}

func isSupported(scheme string) bool {
	for _, s := range SupportedSchemes {
		if s == scheme {
			return true
		}
	}
	return false
}

// CheckoutPrefix names the temporary checkout after the URL's host and
// path, e.g. zat-github.com_org_repo_
func CheckoutPrefix(u *url.URL) string {
	host := u.Hostname()
	if host == "" {
		host = "local"
	}
	return "zat-" + host + strings.ReplaceAll(u.Path, "/", "_") + "_"
}

// Clone checks rawURL out into a new temporary directory. The caller
// owns the checkout and must call Cleanup when done.
func Clone(ctx context.Context, rawURL string, opts CloneOptions) (*Checkout, error) {
	logger := logging.GetLogger("remote")

	u, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp(opts.TempDir, CheckoutPrefix(u))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRemoteCheckout,
			"Zat could not create a folder under your system's temporary directory. Zat needs to create a temporary local folder to checkout the remote repository.").
			WithRemediation("Please ensure the Zat user has enough privileges to create a temporary directory and that you are not out of disk space")
	}
	checkout := &Checkout{URL: rawURL, Dir: dir}

	cloneOpts := &git.CloneOptions{
		URL:      rawURL,
		Progress: opts.Progress,
	}
	// Local repositories are cloned whole
	if u.Scheme != "file" {
		cloneOpts.Depth = 1
	}

	logger.Info().Str("url", rawURL).Str("dir", dir).Msg("Cloning remote repository")
	if _, err := git.PlainCloneContext(ctx, dir, false, cloneOpts); err != nil {
		checkout.Cleanup()
		return nil, errors.Wrapf(err, errors.ErrRemoteClone,
			"Zat could not clone remote repository '%s' to local path '%s'.", rawURL, dir).
			WithRemediation("Please ensure the repository exists and can be cloned without a password, as Zat does not support private repositories that are not accessible through your Git user.").
			WithDetail("url", rawURL).
			WithDetail("dir", dir)
	}

	return checkout, nil
}

// Cleanup removes the checkout. Failure is logged, not returned.
func (c *Checkout) Cleanup() {
	if err := os.RemoveAll(c.Dir); err != nil {
		logger := logging.GetLogger("remote")
		logger.Warn().Err(err).
			Msgf("Could not remove temporary folder '%s'", c.Dir)
	}
}
