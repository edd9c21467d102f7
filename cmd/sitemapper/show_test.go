package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/sitemapper"
	main "github.com/fwojciec/sitemapper/cmd/sitemapper"
	"github.com/fwojciec/sitemapper/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	recorded := &sitemapper.Crawl{
		ID:      "crawl-1",
		SeedURL: "http://example.com",
		Host:    "example.com",
		URLs:    []string{"http://www.example.com/", "http://www.example.com/about"},
	}
	crawls := &mock.CrawlService{
		FindCrawlByIDFn: func(_ context.Context, id string) (*sitemapper.Crawl, error) {
			if id != "crawl-1" {
				return nil, sitemapper.Errorf(sitemapper.ENOTFOUND, "crawl not found")
			}
			return recorded, nil
		},
	}

	t.Run("prints one URL per line", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Crawls: crawls}

		err := (&main.ShowCmd{ID: "crawl-1"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "http://www.example.com/\nhttp://www.example.com/about\n", stdout.String())
	})

	t.Run("prints the record as JSON", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Crawls: crawls}

		err := (&main.ShowCmd{ID: "crawl-1", JSON: true}).Run(deps)
		require.NoError(t, err)

		var got sitemapper.Crawl
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, "crawl-1", got.ID)
		assert.Equal(t, recorded.URLs, got.URLs)
		assert.Contains(t, stdout.String(), `"seedUrl": "http://example.com"`)
	})

	t.Run("returns ENOTFOUND for an unknown crawl", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Crawls: crawls}

		err := (&main.ShowCmd{ID: "missing"}).Run(deps)

		assert.Equal(t, sitemapper.ENOTFOUND, sitemapper.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: crawl not found")
	})
}
